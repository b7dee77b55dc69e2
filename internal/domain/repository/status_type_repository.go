package repository

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// StatusTypeRepository define el puerto de consulta del catálogo de estados y motivos.
type StatusTypeRepository interface {
	GetByID(ctx context.Context, id string) (*entity.StatusType, error)
	GetByCode(ctx context.Context, code string) (*entity.StatusType, error)
	List(ctx context.Context) ([]*entity.StatusType, error)
	GetReasonByID(ctx context.Context, reasonID string) (*entity.StatusReason, error)
	ListReasonsByStatus(ctx context.Context, statusTypeID string) ([]*entity.StatusReason, error)
}
