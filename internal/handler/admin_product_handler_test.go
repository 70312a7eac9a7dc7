package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"glowmart/internal/domain/model"
	"glowmart/internal/handler"
	"glowmart/internal/middleware"
	repo "glowmart/internal/repository"
	"glowmart/internal/token"
	"glowmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	panic("not used in AdminProductHandler tests")
}

func (m *productRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	panic("not used in AdminProductHandler tests")
}

func (m *productRepoMock) Create(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *productRepoMock) Replace(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *productRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *productRepoMock) Count(ctx context.Context) (int64, error) {
	panic("not used in AdminProductHandler tests")
}

func (m *productRepoMock) CreateBulk(ctx context.Context, ps []model.Product) error {
	panic("not used in AdminProductHandler tests")
}

func newAdminProductServer(t *testing.T, products *productRepoMock, role model.Role) (*echo.Echo, string) {
	t.Helper()

	issuer := token.NewIssuer("test-secret")
	h := handler.NewAdminProductHandler(usecase.NewProductUsecase(products))

	e := echo.New()
	admin := e.Group("/api/admin")
	admin.Use(middleware.AuthJWT(issuer))
	admin.Use(middleware.RequireAdmin())
	h.RegisterRoutes(admin)

	signed, err := issuer.Issue("u1", role, time.Now())
	assert.NoError(t, err)

	return e, signed
}

// snake_caseのボディがそのまま商品に載ること
func TestAdminProductHandler_Create_SnakeCaseFieldsBound(t *testing.T) {
	products := new(productRepoMock)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Serum" &&
			p.OfferPrice != nil && *p.OfferPrice == 699 &&
			p.ReviewCount == 10 &&
			p.HowToUse == "apply daily" &&
			p.InStock
	})).Return(nil)

	e, tokenStr := newAdminProductServer(t, products, model.RoleAdmin)

	body := `{"name":"Serum","price":899,"offer_price":699,"review_count":10,"how_to_use":"apply daily","in_stock":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	products.AssertExpectations(t)
}

func TestAdminProductHandler_Replace_SnakeCaseFieldsBound(t *testing.T) {
	products := new(productRepoMock)
	products.On("Replace", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID == "p1" &&
			p.OfferPrice != nil && *p.OfferPrice == 499 &&
			p.InStock
	})).Return(nil)

	e, tokenStr := newAdminProductServer(t, products, model.RoleAdmin)

	body := `{"name":"Serum","price":649,"offer_price":499,"in_stock":true}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/products/p1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	products.AssertExpectations(t)
}

// USERロールのトークンでは届かない
func TestAdminProductHandler_Create_UserRoleForbidden(t *testing.T) {
	products := new(productRepoMock)
	e, tokenStr := newAdminProductServer(t, products, model.RoleUser)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(`{"name":"X","price":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
