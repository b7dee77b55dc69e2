package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/application/status"
	"github.com/jhoicas/cartera-api/internal/application/usecase"
	"github.com/jhoicas/cartera-api/internal/domain"
)

// StatusHandler catálogo de estados/motivos y actualización masiva.
type StatusHandler struct {
	catalogUC *usecase.CatalogUseCase
	bulk      *status.BulkUpdater
}

// NewStatusHandler construye el handler.
func NewStatusHandler(catalogUC *usecase.CatalogUseCase, bulk *status.BulkUpdater) *StatusHandler {
	return &StatusHandler{catalogUC: catalogUC, bulk: bulk}
}

// ListStatuses godoc
// @Summary      Listar estados del catálogo
// @Tags         statuses
// @Produce      json
// @Success      200  {array}  dto.StatusTypeResponse
// @Security     BearerAuth
// @Router       /api/statuses [get]
func (h *StatusHandler) ListStatuses(c *fiber.Ctx) error {
	out, err := h.catalogUC.ListStatuses(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListReasons godoc
// @Summary      Listar motivos de un estado
// @Tags         statuses
// @Produce      json
// @Param        id   path  string  true  "ID del estado"
// @Success      200  {array}   dto.StatusReasonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/statuses/{id}/reasons [get]
func (h *StatusHandler) ListReasons(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.catalogUC.ListReasons(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estado no encontrado"})
	}
	return c.JSON(out)
}

// BulkUpdate godoc
// @Summary      Actualización masiva de estados de periodo
// @Description  Aplica hasta 100 actualizaciones independientes; el reporte conserva el orden de entrada.
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUpdateRequest  true  "Entradas a aplicar"
// @Success      200   {object}  dto.BulkUpdateReport
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/statuses/bulk-update [post]
func (h *StatusHandler) BulkUpdate(c *fiber.Ctx) error {
	var in dto.BulkUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	caller := status.Caller{UserID: GetUserID(c), CompanyID: GetCompanyID(c)}
	out, err := h.bulk.Execute(c.UserContext(), caller, in.Updates)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requieren entre 1 y 100 entradas"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permiso para actualización masiva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
