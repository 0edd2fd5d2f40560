package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"oficinas/internal/service"
)

// EnrollmentHandler handles enrollment endpoints.
type EnrollmentHandler struct {
	svc service.EnrollmentService
}

// NewEnrollmentHandler creates a handler layer.
func NewEnrollmentHandler(svc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

// EnrollRequest represents an enrollment request.
type EnrollRequest struct {
	UserID     uint `json:"usuario_id" validate:"required"`
	WorkshopID uint `json:"oficina_id" validate:"required"`
}

// ListAll godoc
// @Summary List all enrollments (admin view)
// @Tags inscricoes
// @Produce json
// @Success 200 {array} model.EnrollmentListItem
// @Router /inscricoes [get]
func (h *EnrollmentHandler) ListAll(c echo.Context) error {
	rows, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// ListForUser godoc
// @Summary List one user's enrollments
// @Tags inscricoes
// @Produce json
// @Param usuarioId path int true "User ID"
// @Success 200 {array} model.UserEnrollment
// @Router /inscricoes/usuario/{usuarioId} [get]
func (h *EnrollmentHandler) ListForUser(c echo.Context) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return badRequest(c, "ID inválido")
	}

	rows, err := h.svc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary Enroll a user in a workshop
// @Tags inscricoes
// @Accept json
// @Produce json
// @Param request body EnrollRequest true "Enrollment data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /inscricoes [post]
func (h *EnrollmentHandler) Create(c echo.Context) error {
	var req EnrollRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Usuario_id e oficina_id são obrigatórios")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Usuario_id e oficina_id são obrigatórios")
	}

	enrollment, err := h.svc.Create(c.Request().Context(), req.UserID, req.WorkshopID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"mensagem":    "Inscrição realizada com sucesso",
		"inscricaoId": enrollment.ID,
	})
}

// Cancel godoc
// @Summary Cancel an enrollment
// @Tags inscricoes
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /inscricoes/{id} [delete]
func (h *EnrollmentHandler) Cancel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "ID inválido")
	}

	if err := h.svc.Cancel(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "Inscrição cancelada com sucesso"})
}
