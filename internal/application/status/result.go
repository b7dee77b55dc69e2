package status

// Códigos de violación de reglas de negocio del validador de transiciones.
// Son resultados esperados, no errores de Go: los validadores nunca devuelven
// error por una violación de negocio.
const (
	CodeStatusNotFound         = "STATUS_NOT_FOUND"
	CodeReasonNotFound         = "REASON_NOT_FOUND"
	CodeInvalidReasonForStatus = "INVALID_REASON_FOR_STATUS"
	CodeRemarksRequired        = "REMARKS_REQUIRED"
	CodeTerminalStatus         = "TERMINAL_STATUS"
	CodeVisitedNotAllowed      = "VISITED_NOT_ALLOWED"
	CodeInvalidTransition      = "INVALID_TRANSITION"
	CodeBackwardTransition     = "BACKWARD_TRANSITION"
	// CodeValidationError señala un fallo de infraestructura durante la
	// validación (p. ej. la consulta de catálogo falló), convertido a
	// resultado en vez de propagarse.
	CodeValidationError = "VALIDATION_ERROR"
)

// Result es el resultado etiquetado de una validación.
// Valid true implica Code y Message vacíos.
type Result struct {
	Valid   bool
	Code    string
	Message string
}

// OK resultado válido.
func OK() Result {
	return Result{Valid: true}
}

// Fail resultado inválido con código y mensaje.
func Fail(code, message string) Result {
	return Result{Valid: false, Code: code, Message: message}
}
