package dto

// InitializePeriodRequest cuerpo para inicializar un periodo de reporte.
type InitializePeriodRequest struct {
	PeriodType    string `json:"period_type"` // monthly | quarterly
	PeriodYear    int    `json:"period_year"`
	PeriodMonth   *int   `json:"period_month,omitempty"`
	PeriodQuarter *int   `json:"period_quarter,omitempty"`
}

// InitializationError fallo de siembra asociado a un afiliado.
// ClientID "system" señala un fallo de precondición que degradó la llamada completa.
type InitializationError struct {
	ClientID string `json:"client_id"`
	Error    string `json:"error"`
}

// InitializationResult reporte de la inicialización de un periodo.
type InitializationResult struct {
	Success     bool                  `json:"success"`
	Initialized int                   `json:"initialized"`
	Skipped     int                   `json:"skipped"`
	Failed      int                   `json:"failed"`
	Errors      []InitializationError `json:"errors,omitempty"`
}

// BatchError fallo de un registro individual del escritor por lotes,
// con el índice original dentro del slice de entrada.
type BatchError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BatchResult reporte del escritor por lotes: Processed + Failed == total de registros.
type BatchResult struct {
	Success   bool         `json:"success"`
	Processed int          `json:"processed"`
	Failed    int          `json:"failed"`
	Errors    []BatchError `json:"errors,omitempty"`
}
