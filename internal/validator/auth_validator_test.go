package validator_test

import (
	"context"
	"testing"

	"glowmart/internal/validator"

	"github.com/stretchr/testify/assert"
)

func TestAuthValidator_ValidateRegister(t *testing.T) {
	v := validator.NewAuthValidator()
	ctx := context.Background()

	//正常
	assert.NoError(t, v.ValidateRegister(ctx, "a@example.com", "password123", "Asha"))

	//必須欠け
	assert.Error(t, v.ValidateRegister(ctx, "", "password123", "Asha"))
	assert.Error(t, v.ValidateRegister(ctx, "a@example.com", "", "Asha"))
	assert.Error(t, v.ValidateRegister(ctx, "a@example.com", "password123", "  "))

	//email形式不正
	assert.Error(t, v.ValidateRegister(ctx, "not-an-email", "password123", "Asha"))
	assert.Error(t, v.ValidateRegister(ctx, "a@b", "password123", "Asha"))

	//パスワード短すぎ
	assert.Error(t, v.ValidateRegister(ctx, "a@example.com", "short", "Asha"))
}

func TestAuthValidator_ValidateLogin(t *testing.T) {
	v := validator.NewAuthValidator()
	ctx := context.Background()

	assert.NoError(t, v.ValidateLogin(ctx, "a@example.com", "password123"))
	assert.Error(t, v.ValidateLogin(ctx, "", "password123"))
	assert.Error(t, v.ValidateLogin(ctx, "a@example.com", ""))
	assert.Error(t, v.ValidateLogin(ctx, "broken@", "password123"))
}
