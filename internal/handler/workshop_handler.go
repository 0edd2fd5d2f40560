package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"oficinas/internal/model"
	"oficinas/internal/service"
)

// WorkshopHandler handles workshop CRUD endpoints.
type WorkshopHandler struct {
	svc service.WorkshopService
}

// NewWorkshopHandler creates a handler layer.
func NewWorkshopHandler(svc service.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{svc: svc}
}

// WorkshopRequest represents a workshop create/update payload. Dates arrive
// as strings in the formats the admin forms send.
type WorkshopRequest struct {
	Title       string `json:"titulo" validate:"required"`
	Description string `json:"descricao" validate:"required"`
	Instructor  string `json:"instrutor" validate:"required"`
	Category    string `json:"categoria"`
	Capacity    int    `json:"vagas"`
	StartsAt    string `json:"data_inicio" validate:"required"`
	EndsAt      string `json:"data_fim"`
}

func (r *WorkshopRequest) toModel() (*model.Workshop, error) {
	startsAt, err := parseDate(r.StartsAt)
	if err != nil {
		return nil, err
	}

	var endsAt *time.Time
	if r.EndsAt != "" {
		t, err := parseDate(r.EndsAt)
		if err != nil {
			return nil, err
		}
		endsAt = &t
	}

	return &model.Workshop{
		Title:       r.Title,
		Description: r.Description,
		Instructor:  r.Instructor,
		Category:    r.Category,
		Capacity:    r.Capacity,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
	}, nil
}

// List godoc
// @Summary List all workshops
// @Tags oficinas
// @Produce json
// @Success 200 {array} model.Workshop
// @Router /oficinas [get]
func (h *WorkshopHandler) List(c echo.Context) error {
	workshops, err := h.svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, workshops)
}

// Get godoc
// @Summary Fetch a workshop
// @Tags oficinas
// @Produce json
// @Param id path int true "Workshop ID"
// @Success 200 {object} model.Workshop
// @Failure 404 {object} errors.ErrorResponse
// @Router /oficinas/{id} [get]
func (h *WorkshopHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "ID inválido")
	}

	workshop, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, workshop)
}

// Create godoc
// @Summary Create a workshop
// @Tags oficinas
// @Accept json
// @Produce json
// @Param request body WorkshopRequest true "Workshop data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /oficinas [post]
func (h *WorkshopHandler) Create(c echo.Context) error {
	var req WorkshopRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Campos obrigatórios faltando")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Campos obrigatórios faltando")
	}

	workshop, err := req.toModel()
	if err != nil {
		return badRequest(c, "Data inválida")
	}

	created, err := h.svc.Create(c.Request().Context(), workshop)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"mensagem":  "Oficina criada com sucesso",
		"oficinaId": created.ID,
	})
}

// Update godoc
// @Summary Update a workshop
// @Tags oficinas
// @Accept json
// @Produce json
// @Param id path int true "Workshop ID"
// @Param request body WorkshopRequest true "Workshop data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /oficinas/{id} [put]
func (h *WorkshopHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "ID inválido")
	}

	var req WorkshopRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Campos obrigatórios faltando")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Campos obrigatórios faltando")
	}

	workshop, err := req.toModel()
	if err != nil {
		return badRequest(c, "Data inválida")
	}
	workshop.ID = id

	if err := h.svc.Update(c.Request().Context(), workshop); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "Oficina atualizada com sucesso"})
}

// Delete godoc
// @Summary Delete a workshop
// @Tags oficinas
// @Produce json
// @Param id path int true "Workshop ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /oficinas/{id} [delete]
func (h *WorkshopHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "ID inválido")
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "Oficina deletada com sucesso"})
}
