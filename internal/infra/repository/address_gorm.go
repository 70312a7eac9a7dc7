package repository

import (
	"context"

	"glowmart/internal/domain/model"
	domainrepo "glowmart/internal/repository"

	"gorm.io/gorm"
)

type addressGormRepository struct {
	db *gorm.DB
}

// DI
func NewAddressGormRepository(db *gorm.DB) domainrepo.AddressRepository {
	return &addressGormRepository{db: db}
}

// 住所を新規作成
func (r *addressGormRepository) Create(ctx context.Context, address model.Address) (model.Address, error) {
	if err := r.db.WithContext(ctx).Create(&address).Error; err != nil {
		return model.Address{}, err
	}
	return address, nil
}

// ユーザーの住所一覧
func (r *addressGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.Address, error) {
	var addresses []model.Address

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&addresses).Error; err != nil {
		return []model.Address{}, err
	}

	return addresses, nil
}

// 本人の住所だけ削除（他人のIDや存在しないIDなら0件更新のまま）
func (r *addressGormRepository) Delete(ctx context.Context, addressID string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&model.Address{}).Error
}
