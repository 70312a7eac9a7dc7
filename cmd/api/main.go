package main

import (
	"glowmart/internal/config"
	"glowmart/internal/domain/model"
	"glowmart/internal/handler"
	"glowmart/internal/infra/db"
	infraRepo "glowmart/internal/infra/repository"
	"glowmart/internal/server"
	"glowmart/internal/token"
	"glowmart/internal/usecase"
	"glowmart/internal/validator"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .envは無くても起動できる（本番は環境変数で渡す）
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config load failed: %v", err)
	}

	if cfg.GoEnv == "prod" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logrus.Fatalf("db connect failed: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.Wishlist{},
		&model.Address{},
		&model.Order{},
	); err != nil {
		logrus.Fatalf("db migrate failed: %v", err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	addressRepo := infraRepo.NewAddressGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//JWT issuer
	issuer := token.NewIssuer(cfg.JWTSecret)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, issuer, validator.NewAuthValidator())
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo)
	addressUC := usecase.NewAddressUsecase(addressRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, cartRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo)
	seedUC := usecase.NewSeedUsecase(productRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		Product:      handler.NewProductHandler(productUC),
		Cart:         handler.NewCartHandler(cartUC),
		Wishlist:     handler.NewWishlistHandler(wishlistUC),
		Address:      handler.NewAddressHandler(addressUC),
		Order:        handler.NewOrderHandler(orderUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC),
		Seed:         handler.NewSeedHandler(seedUC),
	}

	//Server起動
	e := server.New(cfg, issuer, handlers)
	logrus.Infof("starting api server on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
