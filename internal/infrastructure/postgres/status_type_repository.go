package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

var _ repository.StatusTypeRepository = (*StatusTypeRepo)(nil)

// StatusTypeRepo implementación del catálogo de estados y motivos sobre PostgreSQL.
type StatusTypeRepo struct {
	q Querier
}

// NewStatusTypeRepository construye el adaptador.
func NewStatusTypeRepository(q Querier) *StatusTypeRepo {
	return &StatusTypeRepo{q: q}
}

// GetByID obtiene un estado por ID.
func (r *StatusTypeRepo) GetByID(ctx context.Context, id string) (*entity.StatusType, error) {
	query := `
		SELECT id, code, name, created_at, updated_at
		FROM status_types WHERE id = $1`
	var st entity.StatusType
	err := r.q.QueryRow(ctx, query, id).Scan(&st.ID, &st.Code, &st.Name, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status type: %w", err)
	}
	return &st, nil
}

// GetByCode obtiene un estado por código.
func (r *StatusTypeRepo) GetByCode(ctx context.Context, code string) (*entity.StatusType, error) {
	query := `
		SELECT id, code, name, created_at, updated_at
		FROM status_types WHERE code = $1`
	var st entity.StatusType
	err := r.q.QueryRow(ctx, query, code).Scan(&st.ID, &st.Code, &st.Name, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status type by code: %w", err)
	}
	return &st, nil
}

// List devuelve todos los estados del catálogo.
func (r *StatusTypeRepo) List(ctx context.Context) ([]*entity.StatusType, error) {
	query := `
		SELECT id, code, name, created_at, updated_at
		FROM status_types ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list status types: %w", err)
	}
	defer rows.Close()
	var list []*entity.StatusType
	for rows.Next() {
		var st entity.StatusType
		if err := rows.Scan(&st.ID, &st.Code, &st.Name, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan status type: %w", err)
		}
		list = append(list, &st)
	}
	return list, rows.Err()
}

// GetReasonByID obtiene un motivo por ID.
func (r *StatusTypeRepo) GetReasonByID(ctx context.Context, reasonID string) (*entity.StatusReason, error) {
	query := `
		SELECT id, status_type_id, name, requires_remarks, created_at, updated_at
		FROM status_reasons WHERE id = $1`
	var sr entity.StatusReason
	err := r.q.QueryRow(ctx, query, reasonID).Scan(
		&sr.ID, &sr.StatusTypeID, &sr.Name, &sr.RequiresRemarks, &sr.CreatedAt, &sr.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status reason: %w", err)
	}
	return &sr, nil
}

// ListReasonsByStatus devuelve los motivos del estado.
func (r *StatusTypeRepo) ListReasonsByStatus(ctx context.Context, statusTypeID string) ([]*entity.StatusReason, error) {
	query := `
		SELECT id, status_type_id, name, requires_remarks, created_at, updated_at
		FROM status_reasons WHERE status_type_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, statusTypeID)
	if err != nil {
		return nil, fmt.Errorf("list status reasons: %w", err)
	}
	defer rows.Close()
	var list []*entity.StatusReason
	for rows.Next() {
		var sr entity.StatusReason
		if err := rows.Scan(&sr.ID, &sr.StatusTypeID, &sr.Name, &sr.RequiresRemarks, &sr.CreatedAt, &sr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan status reason: %w", err)
		}
		list = append(list, &sr)
	}
	return list, rows.Err()
}
