package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// Recurso y acción de la capacidad requerida para la actualización masiva.
const (
	ResourceClientStatus = "client_status"
	ActionBulkUpdate     = "bulk_update"
)

// DefaultBulkLimit máximo de entradas por llamada masiva.
const DefaultBulkLimit = 100

// Caller identidad del usuario que ejecuta la llamada.
type Caller struct {
	UserID    string
	CompanyID string
}

// BulkUpdater coordina la aplicación de muchas actualizaciones de estado
// independientes en una sola llamada. Compuertas de llamada completa:
// capacidad (authz) y territorio. Cada entrada se procesa de forma aislada
// dentro de su propia transacción (leer → mutar → evento); el fallo de una
// entrada nunca detiene a las demás y el reporte conserva el orden de entrada.
type BulkUpdater struct {
	txRunner    TxRunner
	validator   *TransitionValidator
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	territory   TerritoryProvider
	authz       AuthorizationProvider
	limit       int
}

// NewBulkUpdater construye el coordinador. limit <= 0 usa DefaultBulkLimit.
func NewBulkUpdater(
	txRunner TxRunner,
	validator *TransitionValidator,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	territory TerritoryProvider,
	authz AuthorizationProvider,
	limit int,
) *BulkUpdater {
	if limit <= 0 {
		limit = DefaultBulkLimit
	}
	return &BulkUpdater{
		txRunner:    txRunner,
		validator:   validator,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		territory:   territory,
		authz:       authz,
		limit:       limit,
	}
}

// ruleViolation transporta un Result de validación a través del rollback de la
// transacción sin perder el código de negocio.
type ruleViolation struct {
	res Result
}

func (e *ruleViolation) Error() string {
	return e.res.Code + ": " + e.res.Message
}

// Execute aplica las actualizaciones. Precondiciones de llamada completa:
// hasta limit entradas, capacidad bulk_update sobre client_status y alcance de
// territorio distinto de none (con none, todas las entradas fallan sin tocar
// almacenamiento). Devuelve error de Go solo por precondiciones o fallos de
// infraestructura previos al bucle; los fallos por entrada van en el reporte.
func (u *BulkUpdater) Execute(ctx context.Context, caller Caller, updates []dto.BulkStatusUpdateEntry) (*dto.BulkUpdateReport, error) {
	if len(updates) == 0 || len(updates) > u.limit {
		return nil, domain.ErrInvalidInput
	}

	allowed, err := u.authz.HasPermission(ctx, caller.UserID, caller.CompanyID, ResourceClientStatus, ActionBulkUpdate)
	if err != nil {
		return nil, fmt.Errorf("verificación de permisos: %w", err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	scope, err := u.territory.BranchScope(ctx, caller.UserID, caller.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("resolución de territorio: %w", err)
	}

	report := &dto.BulkUpdateReport{Results: make([]dto.BulkUpdateResult, 0, len(updates))}

	if scope.Kind == entity.ScopeNone {
		msg := "FORBIDDEN: usuario sin sucursales asignadas"
		for _, e := range updates {
			m := msg
			report.Results = append(report.Results, dto.BulkUpdateResult{ClientID: e.ClientID, Success: false, Error: &m})
			report.Failed++
		}
		return report, nil
	}

	for _, e := range updates {
		if err := u.applyOne(ctx, caller, scope, e); err != nil {
			m := err.Error()
			report.Results = append(report.Results, dto.BulkUpdateResult{ClientID: e.ClientID, Success: false, Error: &m})
			report.Failed++
			continue
		}
		report.Results = append(report.Results, dto.BulkUpdateResult{ClientID: e.ClientID, Success: true})
		report.Successful++
	}
	return report, nil
}

// applyOne procesa una entrada: afiliado, territorio, administradora vía
// producto y, dentro de una transacción, lectura con bloqueo, validación,
// mutación (o creación diferida) y evento de bitácora.
func (u *BulkUpdater) applyOne(ctx context.Context, caller Caller, scope entity.BranchScope, e dto.BulkStatusUpdateEntry) error {
	key := entity.PeriodKey{Type: e.PeriodType, Year: e.PeriodYear, Month: e.PeriodMonth, Quarter: e.PeriodQuarter}
	if err := key.Validate(); err != nil {
		return err
	}

	client, err := u.clientRepo.GetByID(ctx, e.ClientID)
	if err != nil {
		return fmt.Errorf("consulta de afiliado: %w", err)
	}
	if client == nil || client.IsDeleted() {
		return errors.New("NOT_FOUND: afiliado no existe")
	}
	if !scope.Allows(client.BranchID) {
		return errors.New("FORBIDDEN: sucursal fuera del territorio asignado")
	}

	product, err := u.productRepo.GetByID(ctx, client.ProductID)
	if err != nil {
		return fmt.Errorf("consulta de producto: %w", err)
	}
	if product == nil {
		return errors.New("NOT_FOUND: producto del afiliado no existe")
	}
	companyID := product.CompanyID

	now := time.Now()
	return u.txRunner.Run(ctx, func(
		statusRepo repository.PeriodStatusRepository,
		eventRepo repository.StatusEventRepository,
	) error {
		current, err := statusRepo.GetByClientAndPeriodForUpdate(ctx, e.ClientID, key)
		if err != nil {
			return fmt.Errorf("consulta de estado de periodo: %w", err)
		}

		currentID := ""
		if current != nil {
			currentID = current.StatusTypeID
		}
		res := u.validator.ValidateStatusUpdate(ctx, StatusUpdateInput{
			CompanyID:       companyID,
			CurrentStatusID: currentID,
			NewStatusID:     e.StatusID,
			ReasonID:        e.ReasonID,
			Remarks:         e.Remarks,
		})
		if !res.Valid {
			return &ruleViolation{res: res}
		}

		terminal, err := u.validator.IsTerminalStatus(ctx, e.StatusID)
		if err != nil {
			return fmt.Errorf("consulta de estado destino: %w", err)
		}

		var target *entity.ClientPeriodStatus
		if current != nil {
			current.StatusTypeID = e.StatusID
			current.ReasonID = e.ReasonID
			current.Remarks = e.Remarks
			current.HasPayment = e.HasPayment
			current.PaymentAmount = e.PaymentAmount
			current.UpdateCount++
			current.IsTerminal = terminal
			current.UpdatedBy = caller.UserID
			current.UpdatedAt = now
			if err := statusRepo.Update(ctx, current); err != nil {
				return fmt.Errorf("actualización de estado: %w", err)
			}
			target = current
		} else {
			// Creación diferida: el periodo no fue inicializado para este
			// afiliado; la primera actualización cuenta como mutación 1.
			target = &entity.ClientPeriodStatus{
				ID:            uuid.New().String(),
				ClientID:      e.ClientID,
				PeriodType:    key.Type,
				PeriodYear:    key.Year,
				PeriodMonth:   key.Month,
				PeriodQuarter: key.Quarter,
				StatusTypeID:  e.StatusID,
				ReasonID:      e.ReasonID,
				Remarks:       e.Remarks,
				HasPayment:    e.HasPayment,
				PaymentAmount: e.PaymentAmount,
				UpdateCount:   1,
				IsTerminal:    terminal,
				UpdatedBy:     caller.UserID,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := statusRepo.Create(ctx, target); err != nil {
				return fmt.Errorf("creación de estado: %w", err)
			}
		}

		event := &entity.StatusEvent{
			ID:                   uuid.New().String(),
			ClientPeriodStatusID: target.ID,
			StatusTypeID:         e.StatusID,
			ReasonID:             e.ReasonID,
			Remarks:              e.Remarks,
			HasPayment:           e.HasPayment,
			PaymentAmount:        e.PaymentAmount,
			CreatedBy:            caller.UserID,
			CreatedAt:            now,
		}
		if err := eventRepo.Create(ctx, event); err != nil {
			return fmt.Errorf("registro de evento: %w", err)
		}
		return nil
	})
}
