package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"oficinas/internal/auth"
	apperrors "oficinas/internal/errors"
	"oficinas/internal/service"
)

// AuthHandler handles registration and session endpoints.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=6"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cadastro [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Todos os campos são obrigatórios")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Todos os campos são obrigatórios")
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"mensagem":  "Usuário cadastrado com sucesso",
		"usuarioId": user.ID,
	})
}

// Login godoc
// @Summary Authenticate a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Email e senha são obrigatórios")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Email e senha são obrigatórios")
	}

	user, accessToken, refreshToken, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"mensagem":     "Login realizado com sucesso",
		"usuario":      user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Token é obrigatório")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Token é obrigatório")
	}

	accessToken, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"accessToken": accessToken})
}

// Logout godoc
// @Summary Invalidate a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "Refresh token"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Token é obrigatório")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Token é obrigatório")
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"mensagem": "Sessão encerrada com sucesso"})
}

// Session godoc
// @Summary Current authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/sessao [get]
func (h *AuthHandler) Session(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return fail(c, apperrors.ErrInvalidToken)
	}

	user, err := h.userService.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
