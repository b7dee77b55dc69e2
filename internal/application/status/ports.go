package status

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El coordinador masivo abre una transacción
// por registro: leer estado → mutar → anexar evento es atómico por entrada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		statusRepo repository.PeriodStatusRepository,
		eventRepo repository.StatusEventRepository,
	) error) error
}

// TerritoryProvider resuelve el alcance de sucursales de un usuario.
type TerritoryProvider interface {
	BranchScope(ctx context.Context, userID, companyID string) (entity.BranchScope, error)
}

// AuthorizationProvider verifica capacidades del usuario sobre un recurso.
type AuthorizationProvider interface {
	HasPermission(ctx context.Context, userID, companyID, resource, action string) (bool, error)
}
