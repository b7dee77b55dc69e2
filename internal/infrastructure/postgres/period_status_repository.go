package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cartera-api/internal/domain"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

var _ repository.PeriodStatusRepository = (*PeriodStatusRepo)(nil)

// PeriodStatusRepo implementación de PeriodStatusRepository (usable con pool o tx).
// La unicidad por llave de periodo la garantiza el constraint
// (client_id, period_type, period_year, period_month, period_quarter).
type PeriodStatusRepo struct {
	q Querier
}

// NewPeriodStatusRepository construye el adaptador.
func NewPeriodStatusRepository(q Querier) *PeriodStatusRepo {
	return &PeriodStatusRepo{q: q}
}

const periodStatusColumns = `id, client_id, period_type, period_year, period_month, period_quarter,
		status_type_id, reason_id, remarks, has_payment, payment_amount,
		update_count, is_terminal, updated_by, created_at, updated_at`

// Create persiste un nuevo estado de periodo. Devuelve domain.ErrDuplicate si
// el afiliado ya tiene registro para la llave exacta.
func (r *PeriodStatusRepo) Create(ctx context.Context, s *entity.ClientPeriodStatus) error {
	query := `
		INSERT INTO client_period_statuses (` + periodStatusColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.ClientID, s.PeriodType, s.PeriodYear, s.PeriodMonth, s.PeriodQuarter,
		s.StatusTypeID, s.ReasonID, s.Remarks, s.HasPayment, s.PaymentAmount,
		s.UpdateCount, s.IsTerminal, s.UpdatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert period status: %w", err)
	}
	return nil
}

// Update actualiza un estado de periodo existente.
func (r *PeriodStatusRepo) Update(ctx context.Context, s *entity.ClientPeriodStatus) error {
	query := `
		UPDATE client_period_statuses
		SET status_type_id = $2, reason_id = $3, remarks = $4, has_payment = $5,
		    payment_amount = $6, update_count = $7, is_terminal = $8,
		    updated_by = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		s.ID, s.StatusTypeID, s.ReasonID, s.Remarks, s.HasPayment,
		s.PaymentAmount, s.UpdateCount, s.IsTerminal, s.UpdatedBy, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update period status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByClientAndPeriod obtiene el estado del afiliado para la llave exacta; nil si no existe.
func (r *PeriodStatusRepo) GetByClientAndPeriod(ctx context.Context, clientID string, key entity.PeriodKey) (*entity.ClientPeriodStatus, error) {
	return r.getByClientAndPeriod(ctx, clientID, key, false)
}

// GetByClientAndPeriodForUpdate igual que GetByClientAndPeriod pero bloquea la
// fila (SELECT FOR UPDATE) dentro de la transacción en curso.
func (r *PeriodStatusRepo) GetByClientAndPeriodForUpdate(ctx context.Context, clientID string, key entity.PeriodKey) (*entity.ClientPeriodStatus, error) {
	return r.getByClientAndPeriod(ctx, clientID, key, true)
}

func (r *PeriodStatusRepo) getByClientAndPeriod(ctx context.Context, clientID string, key entity.PeriodKey, forUpdate bool) (*entity.ClientPeriodStatus, error) {
	query := `
		SELECT ` + periodStatusColumns + `
		FROM client_period_statuses
		WHERE client_id = $1 AND period_type = $2 AND period_year = $3
		  AND period_month IS NOT DISTINCT FROM $4
		  AND period_quarter IS NOT DISTINCT FROM $5`
	if forUpdate {
		query += `
		FOR UPDATE`
	}
	var s entity.ClientPeriodStatus
	err := r.q.QueryRow(ctx, query, clientID, key.Type, key.Year, key.Month, key.Quarter).Scan(
		&s.ID, &s.ClientID, &s.PeriodType, &s.PeriodYear, &s.PeriodMonth, &s.PeriodQuarter,
		&s.StatusTypeID, &s.ReasonID, &s.Remarks, &s.HasPayment, &s.PaymentAmount,
		&s.UpdateCount, &s.IsTerminal, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get period status: %w", err)
	}
	return &s, nil
}

// ListClientIDsForPeriod devuelve los IDs de afiliados de la administradora con
// registro para la llave exacta.
func (r *PeriodStatusRepo) ListClientIDsForPeriod(ctx context.Context, companyID string, key entity.PeriodKey) ([]string, error) {
	query := `
		SELECT s.client_id
		FROM client_period_statuses s
		JOIN clients c ON c.id = s.client_id
		JOIN products p ON p.id = c.product_id
		WHERE p.company_id = $1 AND s.period_type = $2 AND s.period_year = $3
		  AND s.period_month IS NOT DISTINCT FROM $4
		  AND s.period_quarter IS NOT DISTINCT FROM $5`
	rows, err := r.q.Query(ctx, query, companyID, key.Type, key.Year, key.Month, key.Quarter)
	if err != nil {
		return nil, fmt.Errorf("list client ids for period: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan client id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ExistsForCompanyAndPeriod informa si la llave de periodo ya tiene registros
// para la administradora (respuesta O(1) vía EXISTS).
func (r *PeriodStatusRepo) ExistsForCompanyAndPeriod(ctx context.Context, companyID string, key entity.PeriodKey) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM client_period_statuses s
			JOIN clients c ON c.id = s.client_id
			JOIN products p ON p.id = c.product_id
			WHERE p.company_id = $1 AND s.period_type = $2 AND s.period_year = $3
			  AND s.period_month IS NOT DISTINCT FROM $4
			  AND s.period_quarter IS NOT DISTINCT FROM $5
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, companyID, key.Type, key.Year, key.Month, key.Quarter).Scan(&exists); err != nil {
		return false, fmt.Errorf("check period initialized: %w", err)
	}
	return exists, nil
}
