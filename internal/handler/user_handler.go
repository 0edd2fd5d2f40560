package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"oficinas/internal/service"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateProfileRequest represents a profile update. Senha is optional; when
// omitted the stored hash is left unchanged.
type UpdateProfileRequest struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha"`
}

// GetProfile godoc
// @Summary Fetch a user profile
// @Tags usuarios
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "ID inválido")
	}

	user, err := h.svc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update a user profile
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateProfileRequest true "Profile data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "ID inválido")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Todos os campos são obrigatórios")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Todos os campos são obrigatórios")
	}

	if err := h.svc.UpdateProfile(c.Request().Context(), id, req.Name, req.Email, req.Password); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "Usuário atualizado com sucesso"})
}

// Delete godoc
// @Summary Delete a user
// @Tags usuarios
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "ID inválido")
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "Usuário deletado com sucesso"})
}
