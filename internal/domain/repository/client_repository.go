package repository

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para afiliados.
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Client, error)
	// ListEligibleForInitialization devuelve los afiliados activos (sin borrado
	// lógico) cuyos productos pertenecen a la administradora. Con
	// excludeTerminal, descarta los afiliados cuyo estado de periodo más
	// reciente es terminal.
	ListEligibleForInitialization(ctx context.Context, companyID string, excludeTerminal bool) ([]*entity.Client, error)
}
