package repository

import (
	"context"
	"errors"

	"glowmart/internal/domain/model"
	repo "glowmart/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

// DI
func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

// ユーザーのお気に入りを取得（無ければErrNotFound）
func (r *WishlistGormRepository) FindByUserID(ctx context.Context, userID string) (model.Wishlist, error) {
	var w model.Wishlist

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&w).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Wishlist{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Wishlist{}, err
	}
	return w, nil
}

// 集合としての追加（登録済みなら何もしない）
func (r *WishlistGormRepository) AddProduct(ctx context.Context, userID string, productID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var w model.Wishlist

		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&w).Error

		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			newW := model.Wishlist{
				ID:         uuid.NewString(),
				UserID:     userID,
				ProductIDs: []string{productID},
			}
			return tx.Create(&newW).Error
		}
		if findErr != nil {
			return findErr
		}

		for _, id := range w.ProductIDs {
			if id == productID {
				return nil
			}
		}

		w.ProductIDs = append(w.ProductIDs, productID)
		return tx.Save(&w).Error
	})
}

// 集合からの削除（未登録でもエラーにしない）
func (r *WishlistGormRepository) RemoveProduct(ctx context.Context, userID string, productID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var w model.Wishlist

		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&w).Error

		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return nil
		}
		if findErr != nil {
			return findErr
		}

		ids := make([]string, 0, len(w.ProductIDs))
		for _, id := range w.ProductIDs {
			if id != productID {
				ids = append(ids, id)
			}
		}

		w.ProductIDs = ids
		return tx.Save(&w).Error
	})
}
