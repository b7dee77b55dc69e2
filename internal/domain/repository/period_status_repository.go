package repository

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// PeriodStatusRepository define el puerto de persistencia para ClientPeriodStatus.
// La unicidad (client_id, period_type, period_year, period_month|period_quarter)
// la garantiza el constraint de la tabla.
type PeriodStatusRepository interface {
	Create(ctx context.Context, status *entity.ClientPeriodStatus) error
	Update(ctx context.Context, status *entity.ClientPeriodStatus) error
	GetByClientAndPeriod(ctx context.Context, clientID string, key entity.PeriodKey) (*entity.ClientPeriodStatus, error)
	// GetByClientAndPeriodForUpdate bloquea la fila (SELECT FOR UPDATE) dentro
	// de la transacción en curso; nil si no existe.
	GetByClientAndPeriodForUpdate(ctx context.Context, clientID string, key entity.PeriodKey) (*entity.ClientPeriodStatus, error)
	// ListClientIDsForPeriod devuelve los IDs de afiliados de la administradora
	// que ya tienen registro para la llave de periodo exacta.
	ListClientIDsForPeriod(ctx context.Context, companyID string, key entity.PeriodKey) ([]string, error)
	// ExistsForCompanyAndPeriod informa si algún afiliado de la administradora
	// tiene registro para la llave de periodo exacta.
	ExistsForCompanyAndPeriod(ctx context.Context, companyID string, key entity.PeriodKey) (bool, error)
}

// StatusEventRepository define el puerto de la bitácora append-only de mutaciones.
type StatusEventRepository interface {
	Create(ctx context.Context, event *entity.StatusEvent) error
	ListByPeriodStatus(ctx context.Context, clientPeriodStatusID string) ([]*entity.StatusEvent, error)
}
