package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "oficinas/internal/errors"
	"oficinas/internal/model"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*model.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id uint, name, email, password string) error {
	args := m.Called(ctx, id, name, email, password)
	return args.Error(0)
}

func (m *MockUserService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns 201 with the new user id", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "Ana", "ana@x.com", "pw123456").
			Return(&model.User{ID: 1, Name: "Ana", Email: "ana@x.com"}, nil)

		h := NewAuthHandler(svc, new(MockUserService))
		c, rec := newTestContext(t, http.MethodPost, "/cadastro",
			`{"nome":"Ana","email":"ana@x.com","senha":"pw123456"}`)

		assert.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["usuarioId"])
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		h := NewAuthHandler(new(MockAuthService), new(MockUserService))
		c, rec := newTestContext(t, http.MethodPost, "/cadastro", `{"email":"ana@x.com"}`)

		assert.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "obrigatórios")
	})

	t.Run("taken email returns 400 with the verbatim message", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "Ana", "ana@x.com", "pw123456").
			Return(nil, apperrors.ErrEmailTaken)

		h := NewAuthHandler(svc, new(MockUserService))
		c, rec := newTestContext(t, http.MethodPost, "/cadastro",
			`{"nome":"Ana","email":"ana@x.com","senha":"pw123456"}`)

		assert.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email já cadastrado")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns the user without a password field", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "ana@x.com", "pw123456").
			Return(&model.User{ID: 1, Name: "Ana", Email: "ana@x.com", Role: model.RoleStudent},
				"access-token", "refresh-token", nil)

		h := NewAuthHandler(svc, new(MockUserService))
		c, rec := newTestContext(t, http.MethodPost, "/login",
			`{"email":"ana@x.com","senha":"pw123456"}`)

		assert.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		usuario := body["usuario"].(map[string]interface{})
		assert.Equal(t, "ana@x.com", usuario["email"])
		assert.NotContains(t, usuario, "senha")
		assert.Equal(t, "access-token", body["accessToken"])
	})

	t.Run("wrong password and unknown email yield identical responses", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, "", "", apperrors.ErrInvalidCredentials)

		h := NewAuthHandler(svc, new(MockUserService))

		c1, rec1 := newTestContext(t, http.MethodPost, "/login",
			`{"email":"ana@x.com","senha":"wrongpw"}`)
		assert.NoError(t, h.Login(c1))

		c2, rec2 := newTestContext(t, http.MethodPost, "/login",
			`{"email":"ghost@x.com","senha":"pw123456"}`)
		assert.NoError(t, h.Login(c2))

		assert.Equal(t, http.StatusUnauthorized, rec1.Code)
		assert.Equal(t, rec1.Code, rec2.Code)
		assert.Equal(t, rec1.Body.String(), rec2.Body.String())
	})
}
