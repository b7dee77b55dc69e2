package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de periodo de reporte.
const (
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
)

// PeriodKey identifica un ciclo de reporte: (tipo, año, mes-o-trimestre).
// Un afiliado tiene a lo sumo un ClientPeriodStatus por PeriodKey.
type PeriodKey struct {
	Type    string // monthly | quarterly
	Year    int
	Month   *int // 1..12, solo para monthly
	Quarter *int // 1..4, solo para quarterly
}

// Validate verifica la coherencia de la llave de periodo.
func (k PeriodKey) Validate() error {
	switch k.Type {
	case PeriodMonthly:
		if k.Month == nil || *k.Month < 1 || *k.Month > 12 {
			return fmt.Errorf("periodo mensual requiere mes entre 1 y 12")
		}
		if k.Quarter != nil {
			return fmt.Errorf("periodo mensual no admite trimestre")
		}
	case PeriodQuarterly:
		if k.Quarter == nil || *k.Quarter < 1 || *k.Quarter > 4 {
			return fmt.Errorf("periodo trimestral requiere trimestre entre 1 y 4")
		}
		if k.Month != nil {
			return fmt.Errorf("periodo trimestral no admite mes")
		}
	default:
		return fmt.Errorf("tipo de periodo desconocido: %q", k.Type)
	}
	if k.Year < 2000 || k.Year > 2100 {
		return fmt.Errorf("año fuera de rango: %d", k.Year)
	}
	return nil
}

// String devuelve una representación legible (para logs y mensajes de error).
func (k PeriodKey) String() string {
	if k.Type == PeriodQuarterly && k.Quarter != nil {
		return fmt.Sprintf("%s %d-Q%d", k.Type, k.Year, *k.Quarter)
	}
	if k.Month != nil {
		return fmt.Sprintf("%s %d-%02d", k.Type, k.Year, *k.Month)
	}
	return fmt.Sprintf("%s %d", k.Type, k.Year)
}

// ClientPeriodStatus representa el estado de seguimiento de un afiliado en un
// periodo de reporte. Se crea con estado PENDING por la inicialización del
// periodo (o de forma diferida por la primera actualización masiva), se muta
// repetidamente y nunca se elimina.
type ClientPeriodStatus struct {
	ID            string
	ClientID      string
	PeriodType    string
	PeriodYear    int
	PeriodMonth   *int
	PeriodQuarter *int
	StatusTypeID  string
	ReasonID      *string
	Remarks       string
	HasPayment    bool
	PaymentAmount decimal.Decimal // monto recaudado en el periodo; cero si no hubo pago
	UpdateCount   int
	IsTerminal    bool
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Key devuelve la llave de periodo del registro.
func (s *ClientPeriodStatus) Key() PeriodKey {
	return PeriodKey{Type: s.PeriodType, Year: s.PeriodYear, Month: s.PeriodMonth, Quarter: s.PeriodQuarter}
}

// StatusEvent es la bitácora append-only de cada mutación exitosa de un
// ClientPeriodStatus. Los eventos son inmutables.
type StatusEvent struct {
	ID                   string
	ClientPeriodStatusID string
	StatusTypeID         string
	ReasonID             *string
	Remarks              string
	HasPayment           bool
	PaymentAmount        decimal.Decimal
	CreatedBy            string
	CreatedAt            time.Time
}
