package repository

import (
	"context"
	"errors"
	"time"

	"glowmart/internal/domain/model"
	repo "glowmart/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// ユーザーのカートを取得（無ければErrNotFound、作成はしない）
func (r *CartGormRepository) FindByUserID(ctx context.Context, userID string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// 同一商品は数量加算、カートが無ければ作成
// itemsの読み書きは行ロックで直列化する
func (r *CartGormRepository) AddItem(ctx context.Context, userID string, productID string, qty int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart model.Cart

		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&cart).Error

		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			//無ければ1明細だけのカートを作る
			newCart := model.Cart{
				ID:        uuid.NewString(),
				UserID:    userID,
				Items:     []model.CartItem{{ProductID: productID, Quantity: qty}},
				UpdatedAt: time.Now(),
			}
			return tx.Create(&newCart).Error
		}
		if findErr != nil {
			return findErr
		}

		cart.AddItem(productID, qty)
		cart.UpdatedAt = time.Now()
		return tx.Save(&cart).Error
	})
}

// qtyが0以下なら明細を削除、商品が無ければ何もしない
// カート自体が無ければErrNotFound
func (r *CartGormRepository) SetQuantity(ctx context.Context, userID string, productID string, qty int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart model.Cart

		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&cart).Error

		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return repo.ErrNotFound
		}
		if findErr != nil {
			return findErr
		}

		cart.SetItemQuantity(productID, qty)
		cart.UpdatedAt = time.Now()
		return tx.Save(&cart).Error
	})
}

// 明細を削除（無くてもエラーにしない）
func (r *CartGormRepository) RemoveItem(ctx context.Context, userID string, productID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart model.Cart

		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&cart).Error

		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return nil
		}
		if findErr != nil {
			return findErr
		}

		cart.RemoveItem(productID)
		cart.UpdatedAt = time.Now()
		return tx.Save(&cart).Error
	})

	return err
}

// カートを丸ごと削除（無くてもエラーにしない）
func (r *CartGormRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Cart{}).Error
}
