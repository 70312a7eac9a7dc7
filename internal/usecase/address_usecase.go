package usecase

import (
	"context"
	"net/http"

	"glowmart/internal/domain/model"
	repo "glowmart/internal/repository"

	"github.com/google/uuid"
)

type AddressCreateInput struct {
	Name         string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Pincode      string
	IsDefault    bool
}

type AddressUsecase struct {
	addresses repo.AddressRepository
}

// DI
func NewAddressUsecase(addresses repo.AddressRepository) *AddressUsecase {
	return &AddressUsecase{addresses: addresses}
}

func (u *AddressUsecase) List(ctx context.Context, userID string) ([]model.Address, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	list, err := u.addresses.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return list, nil
}

func (u *AddressUsecase) Create(ctx context.Context, userID string, in AddressCreateInput) (model.Address, error) {
	if userID == "" {
		return model.Address{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//入力チェック
	if in.Name == "" || in.Phone == "" || in.AddressLine1 == "" || in.City == "" || in.State == "" || in.Pincode == "" {
		return model.Address{}, NewHTTPError(http.StatusBadRequest, "validation error")
	}

	a := model.Address{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         in.Name,
		Phone:        in.Phone,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		Pincode:      in.Pincode,
		IsDefault:    in.IsDefault,
	}

	created, err := u.addresses.Create(ctx, a)
	if err != nil {
		return model.Address{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created, nil
}

// 本人の住所だけ消える（他人のIDは黙って無視される）
func (u *AddressUsecase) Delete(ctx context.Context, userID string, addressID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if addressID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid address id")
	}

	if err := u.addresses.Delete(ctx, addressID, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
