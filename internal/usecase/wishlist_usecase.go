package usecase

import (
	"context"
	"net/http"

	"glowmart/internal/domain/model"
	repo "glowmart/internal/repository"
)

type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
}

// DI
func NewWishlistUsecase(wishlistRepo repo.WishlistRepository) *WishlistUsecase {
	return &WishlistUsecase{wishlistRepo: wishlistRepo}
}

// 無ければ空のproduct_idsを返すだけで作成しない
func (u *WishlistUsecase) GetWishlist(ctx context.Context, userID string) (model.Wishlist, error) {
	if userID == "" {
		return model.Wishlist{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	w, err := u.wishlistRepo.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return model.Wishlist{UserID: userID, ProductIDs: []string{}}, nil
	}
	if err != nil {
		return model.Wishlist{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return w, nil
}

// 集合への追加（登録済みでも成功扱い）
func (u *WishlistUsecase) AddToWishlist(ctx context.Context, userID string, productID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if err := u.wishlistRepo.AddProduct(ctx, userID, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// 集合からの削除（未登録でも成功扱い）
func (u *WishlistUsecase) RemoveFromWishlist(ctx context.Context, userID string, productID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if err := u.wishlistRepo.RemoveProduct(ctx, userID, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
