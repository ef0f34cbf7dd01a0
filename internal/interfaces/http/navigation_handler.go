package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ServiCampo-api/internal/application/auth"
	"github.com/jhoicas/ServiCampo-api/internal/application/dto"
	"github.com/jhoicas/ServiCampo-api/internal/application/navigation"
)

// decideRequest intención de navegación del shell de la SPA.
type decideRequest struct {
	Destino string `json:"destino"`
	Desde   string `json:"desde"`
}

// decideResponse decisión del guard.
type decideResponse struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

// NavigationHandler expone el guard de navegación. El endpoint es público:
// el guard debe decidir también para sesiones anónimas.
type NavigationHandler struct {
	guard    *navigation.Guard
	sesiones *auth.SessionStore
}

// NewNavigationHandler construye el handler.
func NewNavigationHandler(guard *navigation.Guard, sesiones *auth.SessionStore) *NavigationHandler {
	return &NavigationHandler{guard: guard, sesiones: sesiones}
}

// Decide godoc
// @Summary      Evaluar una intención de navegación
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body  decideRequest  true  "destino, desde"
// @Success      200   {object}  decideResponse
// @Router       /api/navigation/decide [post]
func (h *NavigationHandler) Decide(c *fiber.Ctx) error {
	var in decideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Destino == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "destino es requerido"})
	}
	d := h.guard.Decide(in.Destino, h.sesiones.Sesion())
	return c.JSON(decideResponse{Allow: d.Allow, RedirectTo: d.RedirectTo})
}
