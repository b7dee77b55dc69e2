package status

import (
	"context"
	"fmt"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
	"github.com/jhoicas/cartera-api/internal/domain/workflow"
)

// TransitionValidator aplica las reglas del flujo de seguimiento: grafo de
// transiciones, estados terminales, habilitación por tenant, pertenencia de
// motivos y obligatoriedad de observaciones. Todas las operaciones son puras
// dado el catálogo; devuelven Result etiquetado y nunca error por violaciones
// de negocio. Un fallo de infraestructura durante una validación se convierte
// en CodeValidationError.
type TransitionValidator struct {
	wf          workflow.Workflow
	companyRepo repository.CompanyRepository
	statusRepo  repository.StatusTypeRepository
}

// NewTransitionValidator construye el validador con el flujo inyectado.
func NewTransitionValidator(
	wf workflow.Workflow,
	companyRepo repository.CompanyRepository,
	statusRepo repository.StatusTypeRepository,
) *TransitionValidator {
	return &TransitionValidator{wf: wf, companyRepo: companyRepo, statusRepo: statusRepo}
}

// StatusUpdateInput entrada de ValidateStatusUpdate.
// CurrentStatusID vacío significa que el registro de periodo aún no existe:
// el estado origen se asume PENDING.
type StatusUpdateInput struct {
	CompanyID       string
	CurrentStatusID string
	NewStatusID     string
	ReasonID        *string
	Remarks         string
}

// ValidateStatusTransition valida la transición fromCode→toCode para la
// administradora indicada. Orden de chequeos: terminal duro, habilitación por
// tenant, adyacencia del grafo, guarda ordinal.
func (v *TransitionValidator) ValidateStatusTransition(ctx context.Context, fromCode, toCode, companyID string) Result {
	if v.wf.IsHardTerminal(fromCode) {
		return Fail(CodeTerminalStatus, fmt.Sprintf("el estado %q es terminal y no admite transiciones", fromCode))
	}
	if v.wf.IsHardTerminal(toCode) {
		return Fail(CodeTerminalStatus, fmt.Sprintf("el estado %q es terminal y solo se asigna por novedad", toCode))
	}
	if v.wf.IsGated(toCode) {
		allowed, err := v.IsVisitedStatusAllowed(ctx, companyID)
		if err != nil {
			return Fail(CodeValidationError, "no se pudo resolver la administradora: "+err.Error())
		}
		if !allowed {
			return Fail(CodeVisitedNotAllowed, fmt.Sprintf("el estado %q no está habilitado para esta administradora", toCode))
		}
	}
	if !v.wf.HasEdge(fromCode, toCode) {
		return Fail(CodeInvalidTransition, fmt.Sprintf("transición no permitida: %s → %s", fromCode, toCode))
	}
	// Guarda ordinal: inalcanzable con el grafo por defecto (la adyacencia ya
	// bloquea retrocesos) pero protege grafos variante con aristas laterales.
	if v.wf.IsBackward(fromCode, toCode) {
		return Fail(CodeBackwardTransition, fmt.Sprintf("transición hacia atrás: %s → %s", fromCode, toCode))
	}
	return OK()
}

// IsVisitedStatusAllowed informa si la administradora tiene habilitada la
// gestión presencial (código de empresa en el conjunto configurado).
func (v *TransitionValidator) IsVisitedStatusAllowed(ctx context.Context, companyID string) (bool, error) {
	company, err := v.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return false, err
	}
	if company == nil {
		return false, nil
	}
	return v.wf.CompanyUnlocksGated(company.Code), nil
}

// ValidateReasonForStatus verifica que el motivo exista y pertenezca al estado destino.
func (v *TransitionValidator) ValidateReasonForStatus(ctx context.Context, statusID, reasonID string) Result {
	st, err := v.statusRepo.GetByID(ctx, statusID)
	if err != nil {
		return Fail(CodeValidationError, "consulta de estado: "+err.Error())
	}
	if st == nil {
		return Fail(CodeStatusNotFound, "estado no encontrado: "+statusID)
	}
	reason, err := v.statusRepo.GetReasonByID(ctx, reasonID)
	if err != nil {
		return Fail(CodeValidationError, "consulta de motivo: "+err.Error())
	}
	if reason == nil {
		return Fail(CodeReasonNotFound, "motivo no encontrado: "+reasonID)
	}
	if reason.StatusTypeID != st.ID {
		return Fail(CodeInvalidReasonForStatus, fmt.Sprintf("el motivo %q no pertenece al estado %q", reason.Name, st.Code))
	}
	return OK()
}

// ValidateRemarksRequired exige observaciones cuando algún motivo del estado
// destino las requiere.
func (v *TransitionValidator) ValidateRemarksRequired(ctx context.Context, statusID, remarks string) Result {
	st, err := v.statusRepo.GetByID(ctx, statusID)
	if err != nil {
		return Fail(CodeValidationError, "consulta de estado: "+err.Error())
	}
	if st == nil {
		return Fail(CodeStatusNotFound, "estado no encontrado: "+statusID)
	}
	reasons, err := v.statusRepo.ListReasonsByStatus(ctx, st.ID)
	if err != nil {
		return Fail(CodeValidationError, "consulta de motivos: "+err.Error())
	}
	for _, r := range reasons {
		if r.RequiresRemarks {
			if remarks == "" {
				return Fail(CodeRemarksRequired, fmt.Sprintf("el estado %q requiere observaciones", st.Code))
			}
			break
		}
	}
	return OK()
}

// IsTerminalStatus informa si el estado pertenece al conjunto terminal duro.
// DONE es terminal del flujo únicamente por su fila vacía en el grafo.
func (v *TransitionValidator) IsTerminalStatus(ctx context.Context, statusID string) (bool, error) {
	st, err := v.statusRepo.GetByID(ctx, statusID)
	if err != nil {
		return false, err
	}
	if st == nil {
		return false, nil
	}
	return v.wf.IsHardTerminal(st.Code), nil
}

// ValidateStatusUpdate ejecuta la cadena completa de validación de una
// actualización: resolución de estados, transición, motivo (si se envió) y
// observaciones. Corta en el primer fallo, en ese orden.
func (v *TransitionValidator) ValidateStatusUpdate(ctx context.Context, in StatusUpdateInput) Result {
	fromCode := entity.StatusPending
	if in.CurrentStatusID != "" {
		current, err := v.statusRepo.GetByID(ctx, in.CurrentStatusID)
		if err != nil {
			return Fail(CodeValidationError, "consulta de estado actual: "+err.Error())
		}
		if current == nil {
			return Fail(CodeStatusNotFound, "estado actual no encontrado: "+in.CurrentStatusID)
		}
		fromCode = current.Code
	}

	target, err := v.statusRepo.GetByID(ctx, in.NewStatusID)
	if err != nil {
		return Fail(CodeValidationError, "consulta de estado destino: "+err.Error())
	}
	if target == nil {
		return Fail(CodeStatusNotFound, "estado destino no encontrado: "+in.NewStatusID)
	}

	if res := v.ValidateStatusTransition(ctx, fromCode, target.Code, in.CompanyID); !res.Valid {
		return res
	}
	if in.ReasonID != nil && *in.ReasonID != "" {
		if res := v.ValidateReasonForStatus(ctx, target.ID, *in.ReasonID); !res.Valid {
			return res
		}
	}
	return v.ValidateRemarksRequired(ctx, target.ID, in.Remarks)
}
