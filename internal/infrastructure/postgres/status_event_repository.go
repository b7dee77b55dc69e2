package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

var _ repository.StatusEventRepository = (*StatusEventRepo)(nil)

// StatusEventRepo bitácora append-only de mutaciones sobre PostgreSQL.
type StatusEventRepo struct {
	q Querier
}

// NewStatusEventRepository construye el adaptador.
func NewStatusEventRepository(q Querier) *StatusEventRepo {
	return &StatusEventRepo{q: q}
}

// Create anexa un evento. Los eventos nunca se actualizan ni se borran.
func (r *StatusEventRepo) Create(ctx context.Context, e *entity.StatusEvent) error {
	query := `
		INSERT INTO status_events (id, client_period_status_id, status_type_id, reason_id,
			remarks, has_payment, payment_amount, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.ClientPeriodStatusID, e.StatusTypeID, e.ReasonID,
		e.Remarks, e.HasPayment, e.PaymentAmount, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert status event: %w", err)
	}
	return nil
}

// ListByPeriodStatus devuelve la bitácora de un estado de periodo, más antiguo primero.
func (r *StatusEventRepo) ListByPeriodStatus(ctx context.Context, clientPeriodStatusID string) ([]*entity.StatusEvent, error) {
	query := `
		SELECT id, client_period_status_id, status_type_id, reason_id,
		       remarks, has_payment, payment_amount, created_by, created_at
		FROM status_events WHERE client_period_status_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, clientPeriodStatusID)
	if err != nil {
		return nil, fmt.Errorf("list status events: %w", err)
	}
	defer rows.Close()
	var list []*entity.StatusEvent
	for rows.Next() {
		var e entity.StatusEvent
		if err := rows.Scan(&e.ID, &e.ClientPeriodStatusID, &e.StatusTypeID, &e.ReasonID,
			&e.Remarks, &e.HasPayment, &e.PaymentAmount, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan status event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
