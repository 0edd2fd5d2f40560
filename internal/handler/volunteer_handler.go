package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"oficinas/internal/service"
)

// VolunteerHandler handles volunteer endpoints.
type VolunteerHandler struct {
	svc service.VolunteerService
}

// NewVolunteerHandler creates a handler layer.
func NewVolunteerHandler(svc service.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{svc: svc}
}

// VolunteerRequest represents a volunteer registration request. Department
// and specialization are optional and default server-side.
type VolunteerRequest struct {
	UserID         uint   `json:"userId" validate:"required"`
	Department     string `json:"department"`
	Specialization string `json:"specialization"`
}

// ListAll godoc
// @Summary List all volunteers
// @Tags voluntarios
// @Produce json
// @Success 200 {array} model.VolunteerListItem
// @Router /voluntarios [get]
func (h *VolunteerHandler) ListAll(c echo.Context) error {
	rows, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary Register a volunteer
// @Tags voluntarios
// @Accept json
// @Produce json
// @Param request body VolunteerRequest true "Volunteer data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /voluntarios [post]
func (h *VolunteerHandler) Create(c echo.Context) error {
	var req VolunteerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "ID do usuário é obrigatório")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "ID do usuário é obrigatório")
	}

	volunteer, err := h.svc.Create(c.Request().Context(), req.UserID, req.Department, req.Specialization)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"mensagem": "Voluntário cadastrado com sucesso",
		"id":       volunteer.ID,
	})
}

// Remove godoc
// @Summary Remove a volunteer
// @Tags voluntarios
// @Produce json
// @Param id path int true "Volunteer ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /voluntarios/{id} [delete]
func (h *VolunteerHandler) Remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "ID inválido")
	}

	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "Voluntário deletado com sucesso"})
}
