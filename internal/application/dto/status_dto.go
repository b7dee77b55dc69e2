package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BulkStatusUpdateEntry una actualización de estado dentro de una llamada masiva.
type BulkStatusUpdateEntry struct {
	ClientID      string          `json:"client_id"`
	PeriodType    string          `json:"period_type"` // monthly | quarterly
	PeriodYear    int             `json:"period_year"`
	PeriodMonth   *int            `json:"period_month,omitempty"`
	PeriodQuarter *int            `json:"period_quarter,omitempty"`
	StatusID      string          `json:"status_id"`
	ReasonID      *string         `json:"reason_id,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	HasPayment    bool            `json:"has_payment"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
}

// BulkUpdateRequest cuerpo de la actualización masiva de estados.
type BulkUpdateRequest struct {
	Updates []BulkStatusUpdateEntry `json:"updates"`
}

// BulkUpdateResult resultado individual de una entrada, en el orden de entrada.
type BulkUpdateResult struct {
	ClientID string  `json:"client_id"`
	Success  bool    `json:"success"`
	Error    *string `json:"error"`
}

// BulkUpdateReport reporte agregado de la llamada masiva.
type BulkUpdateReport struct {
	Successful int                `json:"successful"`
	Failed     int                `json:"failed"`
	Results    []BulkUpdateResult `json:"results"`
}

// StatusTypeResponse un estado del catálogo.
type StatusTypeResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// StatusReasonResponse un motivo del catálogo.
type StatusReasonResponse struct {
	ID              string `json:"id"`
	StatusTypeID    string `json:"status_type_id"`
	Name            string `json:"name"`
	RequiresRemarks bool   `json:"requires_remarks"`
}

// PeriodStatusResponse estado de periodo de un afiliado.
type PeriodStatusResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id"`
	PeriodType    string          `json:"period_type"`
	PeriodYear    int             `json:"period_year"`
	PeriodMonth   *int            `json:"period_month,omitempty"`
	PeriodQuarter *int            `json:"period_quarter,omitempty"`
	StatusTypeID  string          `json:"status_type_id"`
	ReasonID      *string         `json:"reason_id,omitempty"`
	Remarks       string          `json:"remarks,omitempty"`
	HasPayment    bool            `json:"has_payment"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	UpdateCount   int             `json:"update_count"`
	IsTerminal    bool            `json:"is_terminal"`
	UpdatedBy     string          `json:"updated_by"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
