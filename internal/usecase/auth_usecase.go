package usecase

import (
	"context"
	"net/http"
	"time"

	"glowmart/internal/domain/model"
	"glowmart/internal/repository"
	"glowmart/internal/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, email string, password string, name string) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

type LoginInput struct {
	Email    string
	Password string
}

// 登録・ログインの共通レスポンス（原典は {token, user}）
type AuthOutput struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type AuthUsecase struct {
	users     repository.UserRepository
	issuer    *token.Issuer
	validator AuthValidator
}

// DI
func NewAuthUsecase(
	users repository.UserRepository,
	issuer *token.Issuer,
	validator AuthValidator,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		issuer:    issuer,
		validator: validator,
	}
}

// 会員登録
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (AuthOutput, error) {
	if err := u.validator.ValidateRegister(ctx, in.Email, in.Password, in.Name); err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "validation error")
	}

	//email重複チェック
	existing, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if existing != nil {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "email already registered")
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Name:         in.Name,
		Phone:        in.Phone,
		PasswordHash: string(pwHash),
		Role:         model.RoleUser,
		CreatedAt:    now,
	}

	if err := u.users.Create(ctx, user); err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	signed, err := u.issuer.Issue(user.ID, user.Role, now)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	//passwordハッシュはjsonに出ない（model側で"-"）
	return AuthOutput{Token: signed, User: *user}, nil
}

// ログイン
// emailが無い場合とパスワード不一致は同じエラーにする
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (AuthOutput, error) {
	if err := u.validator.ValidateLogin(ctx, in.Email, in.Password); err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "validation error")
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return AuthOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	signed, err := u.issuer.Issue(user.ID, user.Role, time.Now())
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return AuthOutput{Token: signed, User: *user}, nil
}

// トークン由来のuserIDからユーザーを取り直す
// 参照先が消えていたら401
func (u *AuthUsecase) Me(ctx context.Context, userID string) (model.User, error) {
	if userID == "" {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "user not found")
	}

	return *user, nil
}
