package period

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Initializer siembra un registro de estado PENDING por afiliado elegible al
// abrir un nuevo periodo de reporte. La escritura pasa por el BatchWriter para
// aislar fallos por registro; los afiliados que ya tienen registro para la
// llave exacta se omiten, nunca se duplican.
type Initializer struct {
	clientRepo     repository.ClientRepository
	statusTypeRepo repository.StatusTypeRepository
	periodRepo     repository.PeriodStatusRepository
	writer         *BatchWriter
}

// NewInitializer construye el inicializador de periodos.
func NewInitializer(
	clientRepo repository.ClientRepository,
	statusTypeRepo repository.StatusTypeRepository,
	periodRepo repository.PeriodStatusRepository,
	writer *BatchWriter,
) *Initializer {
	return &Initializer{
		clientRepo:     clientRepo,
		statusTypeRepo: statusTypeRepo,
		periodRepo:     periodRepo,
		writer:         writer,
	}
}

// GetClientsForInitialization devuelve los afiliados elegibles: activos, sin
// borrado lógico, con producto de la administradora. Con excludeTerminal se
// descartan los afiliados cuyo estado de periodo más reciente es terminal.
func (ini *Initializer) GetClientsForInitialization(ctx context.Context, companyID string, excludeTerminal bool) ([]*entity.Client, error) {
	return ini.clientRepo.ListEligibleForInitialization(ctx, companyID, excludeTerminal)
}

// InitializePeriod siembra el periodo para la administradora. Un fallo de
// precondición (tipo PENDING ausente o consultas previas al lote) degrada la
// llamada completa a un único fallo con ClientID "system". Los errores del
// escritor se mapean de vuelta al afiliado por índice.
func (ini *Initializer) InitializePeriod(ctx context.Context, companyID string, key entity.PeriodKey) *dto.InitializationResult {
	if err := key.Validate(); err != nil {
		return systemFailure("llave de periodo inválida: " + err.Error())
	}

	pending, err := ini.statusTypeRepo.GetByCode(ctx, entity.StatusPending)
	if err != nil {
		return systemFailure("consulta del estado PENDING: " + err.Error())
	}
	if pending == nil {
		return systemFailure("el catálogo no contiene el estado PENDING")
	}

	eligible, err := ini.GetClientsForInitialization(ctx, companyID, true)
	if err != nil {
		return systemFailure("consulta de afiliados elegibles: " + err.Error())
	}

	existingIDs, err := ini.periodRepo.ListClientIDsForPeriod(ctx, companyID, key)
	if err != nil {
		return systemFailure("consulta de registros existentes: " + err.Error())
	}
	existing := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	now := time.Now()
	toCreate := make([]*entity.ClientPeriodStatus, 0, len(eligible))
	clientIDs := make([]string, 0, len(eligible))
	for _, client := range eligible {
		if existing[client.ID] {
			continue
		}
		toCreate = append(toCreate, &entity.ClientPeriodStatus{
			ID:            uuid.New().String(),
			ClientID:      client.ID,
			PeriodType:    key.Type,
			PeriodYear:    key.Year,
			PeriodMonth:   key.Month,
			PeriodQuarter: key.Quarter,
			StatusTypeID:  pending.ID,
			HasPayment:    false,
			PaymentAmount: decimal.Zero,
			UpdateCount:   0,
			IsTerminal:    false,
			UpdatedBy:     "system",
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		clientIDs = append(clientIDs, client.ID)
	}

	batch := ini.writer.Write(ctx, toCreate)

	result := &dto.InitializationResult{
		Success:     batch.Success,
		Initialized: batch.Processed,
		Skipped:     len(eligible) - len(toCreate),
		Failed:      batch.Failed,
	}
	for _, be := range batch.Errors {
		result.Errors = append(result.Errors, dto.InitializationError{
			ClientID: clientIDs[be.Index],
			Error:    be.Error,
		})
	}
	return result
}

// IsPeriodInitialized informa si algún afiliado de la administradora ya tiene
// registro para la llave de periodo exacta.
func (ini *Initializer) IsPeriodInitialized(ctx context.Context, companyID string, key entity.PeriodKey) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, err
	}
	return ini.periodRepo.ExistsForCompanyAndPeriod(ctx, companyID, key)
}

func systemFailure(msg string) *dto.InitializationResult {
	return &dto.InitializationResult{
		Success: false,
		Failed:  1,
		Errors:  []dto.InitializationError{{ClientID: "system", Error: msg}},
	}
}
