package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/application/period"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// PeriodHandler inicialización de periodos de reporte.
type PeriodHandler struct {
	ini *period.Initializer
}

// NewPeriodHandler construye el handler.
func NewPeriodHandler(ini *period.Initializer) *PeriodHandler {
	return &PeriodHandler{ini: ini}
}

// Initialize godoc
// @Summary      Inicializar periodo de reporte
// @Description  Siembra un registro PENDING por afiliado elegible de la administradora del token.
// @Tags         periods
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InitializePeriodRequest  true  "Llave de periodo"
// @Success      200   {object}  dto.InitializationResult
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/periods/initialize [post]
func (h *PeriodHandler) Initialize(c *fiber.Ctx) error {
	var in dto.InitializePeriodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	key := entity.PeriodKey{Type: in.PeriodType, Year: in.PeriodYear, Month: in.PeriodMonth, Quarter: in.PeriodQuarter}
	if err := key.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out := h.ini.InitializePeriod(c.UserContext(), GetCompanyID(c), key)
	return c.JSON(out)
}

// Initialized godoc
// @Summary      Consultar si un periodo ya fue inicializado
// @Tags         periods
// @Produce      json
// @Param        period_type     query  string  true   "monthly | quarterly"
// @Param        period_year     query  int     true   "Año"
// @Param        period_month    query  int     false  "Mes (mensual)"
// @Param        period_quarter  query  int     false  "Trimestre (trimestral)"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/periods/initialized [get]
func (h *PeriodHandler) Initialized(c *fiber.Ctx) error {
	key := entity.PeriodKey{
		Type: c.Query("period_type"),
		Year: c.QueryInt("period_year"),
	}
	if m := c.QueryInt("period_month", -1); m >= 0 {
		key.Month = &m
	}
	if q := c.QueryInt("period_quarter", -1); q >= 0 {
		key.Quarter = &q
	}
	if err := key.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	initialized, err := h.ini.IsPeriodInitialized(c.UserContext(), GetCompanyID(c), key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"initialized": initialized})
}
