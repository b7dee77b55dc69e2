package usecase

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// CatalogUseCase expone el catálogo de estados y motivos para las pantallas
// de captura (solo lectura).
type CatalogUseCase struct {
	repo repository.StatusTypeRepository
}

// NewCatalogUseCase construye el caso de uso de catálogo.
func NewCatalogUseCase(repo repository.StatusTypeRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// ListStatuses devuelve todos los estados del catálogo.
func (uc *CatalogUseCase) ListStatuses(ctx context.Context) ([]dto.StatusTypeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StatusTypeResponse, 0, len(list))
	for _, st := range list {
		items = append(items, dto.StatusTypeResponse{ID: st.ID, Code: st.Code, Name: st.Name})
	}
	return items, nil
}

// ListReasons devuelve los motivos de un estado; nil cuando el estado no existe.
func (uc *CatalogUseCase) ListReasons(ctx context.Context, statusID string) ([]dto.StatusReasonResponse, error) {
	st, err := uc.repo.GetByID(ctx, statusID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, nil
	}
	reasons, err := uc.repo.ListReasonsByStatus(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StatusReasonResponse, 0, len(reasons))
	for _, r := range reasons {
		items = append(items, dto.StatusReasonResponse{
			ID:              r.ID,
			StatusTypeID:    r.StatusTypeID,
			Name:            r.Name,
			RequiresRemarks: r.RequiresRemarks,
		})
	}
	return items, nil
}
