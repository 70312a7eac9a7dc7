package token

import (
	"errors"
	"time"

	"glowmart/internal/domain/model"

	"github.com/golang-jwt/jwt/v5"
)

// 失効・改ざん・期限切れの区別は呼び出し側に見せない
var ErrInvalidToken = errors.New("invalid token")

// アクセストークンの有効期限
const AccessTokenTTL = 7 * 24 * time.Hour

type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// HS256でアクセストークンを発行・検証する
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// DI
func NewIssuer(secret string) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    AccessTokenTTL,
	}
}

// Issue はsub=userIDのトークンを発行する
func (i *Issuer) Issue(userID string, role model.Role, now time.Time) (string, error) {
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify はトークンを検証してuser_idとroleを返す
// 署名不正・形式不正・期限切れはすべてErrInvalidToken
func (i *Issuer) Verify(raw string) (string, model.Role, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return "", "", ErrInvalidToken
	}

	return claims.Subject, model.Role(claims.Role), nil
}
