package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ServiCampo-api/internal/application/dto"
	"github.com/jhoicas/ServiCampo-api/internal/application/visitas"
	"github.com/jhoicas/ServiCampo-api/internal/domain"
	"github.com/jhoicas/ServiCampo-api/internal/domain/entity"
)

// ActaGenerator genera el PDF del acta de una visita. Lo implementa
// pdf.ActaVisitaGenerator; la interfaz evita acoplar el handler a Maroto.
type ActaGenerator interface {
	Generate(visita *entity.Visita) ([]byte, error)
}

// VisitasHandler maneja el historial de visitas y sus catálogos.
type VisitasHandler struct {
	store *visitas.Store
	actas ActaGenerator
}

// NewVisitasHandler construye el handler de visitas.
func NewVisitasHandler(store *visitas.Store, actas ActaGenerator) *VisitasHandler {
	return &VisitasHandler{store: store, actas: actas}
}

// List godoc
// @Summary      Listar visitas completadas
// @Tags         visitas
// @Produce      json
// @Success      200  {array}  entity.Visita
// @Router       /api/visitas [get]
func (h *VisitasHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.ListCompletadas())
}

// GetByID godoc
// @Summary      Obtener una visita
// @Tags         visitas
// @Produce      json
// @Success      200  {object}  entity.Visita
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitas/{id} [get]
func (h *VisitasHandler) GetByID(c *fiber.Ctx) error {
	visita, err := h.store.GetByID(c.Params("id"))
	if err != nil {
		return notFound(c, "la visita no existe")
	}
	return c.JSON(visita)
}

// NextOrden godoc
// @Summary      Número de orden que recibiría la próxima visita
// @Tags         visitas
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/visitas/next-orden [get]
func (h *VisitasHandler) NextOrden(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ordenId": h.store.NextOrdenID()})
}

// Create godoc
// @Summary      Registrar una visita terminada (totales derivados en servidor)
// @Tags         visitas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVisitaRequest  true  "datos de la visita"
// @Success      201   {object}  entity.Visita
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/visitas [post]
func (h *VisitasHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVisitaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Tipo == "" || in.ClienteID == "" || in.TecnicoID == "" || in.Fecha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo, clienteId, tecnicoId y fecha son requeridos"})
	}
	visita, err := h.store.Create(c.Context(), in)
	if err != nil {
		return persistOrInternal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(visita)
}

// Update godoc
// @Summary      Corregir campos de una visita (merge superficial)
// @Tags         visitas
// @Accept       json
// @Produce      json
// @Success      200  {object}  entity.Visita
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitas/{id} [put]
func (h *VisitasHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVisitaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	visita, err := h.store.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "la visita no existe")
		}
		return persistOrInternal(c, err)
	}
	return c.JSON(visita)
}

// Acta godoc
// @Summary      Acta de visita en PDF
// @Tags         visitas
// @Produce      application/pdf
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/visitas/{id}/pdf [get]
func (h *VisitasHandler) Acta(c *fiber.Ctx) error {
	visita, err := h.store.GetByID(c.Params("id"))
	if err != nil {
		return notFound(c, "la visita no existe")
	}
	pdfBytes, err := h.actas.Generate(visita)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", "acta-"+visita.OrdenID+".pdf"))
	return c.Send(pdfBytes)
}

// Tecnicos godoc
// @Summary      Catálogo de técnicos
// @Tags         visitas
// @Produce      json
// @Success      200  {array}  entity.Tecnico
// @Router       /api/visitas/catalogos/tecnicos [get]
func (h *VisitasHandler) Tecnicos(c *fiber.Ctx) error {
	return c.JSON(h.store.Tecnicos())
}

// Clientes godoc
// @Summary      Catálogo de clientes
// @Tags         visitas
// @Produce      json
// @Success      200  {array}  entity.Cliente
// @Router       /api/visitas/catalogos/clientes [get]
func (h *VisitasHandler) Clientes(c *fiber.Ctx) error {
	return c.JSON(h.store.Clientes())
}

// TiposInspeccion godoc
// @Summary      Catálogo de tipos de inspección
// @Tags         visitas
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/visitas/catalogos/tipos [get]
func (h *VisitasHandler) TiposInspeccion(c *fiber.Ctx) error {
	return c.JSON(h.store.TiposInspeccion())
}
