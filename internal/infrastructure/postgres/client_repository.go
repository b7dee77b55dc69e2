package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `c.id, c.branch_id, c.product_id, c.name, c.deleted_at, c.created_at, c.updated_at`

// GetByID obtiene un afiliado por ID (incluye borrados lógicos; el caller decide).
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients c WHERE c.id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// ListByCompany lista afiliados activos de la administradora con paginación.
func (r *ClientRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients c
		JOIN products p ON p.id = c.product_id
		WHERE p.company_id = $1 AND c.deleted_at IS NULL
		ORDER BY c.name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListEligibleForInitialization devuelve los afiliados elegibles para la
// siembra de un periodo: activos, sin borrado lógico, con producto de la
// administradora. Con excludeTerminal se descartan los afiliados cuyo estado
// de periodo más reciente es terminal (el filtro se aplica en la consulta).
func (r *ClientRepo) ListEligibleForInitialization(ctx context.Context, companyID string, excludeTerminal bool) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients c
		JOIN products p ON p.id = c.product_id
		WHERE p.company_id = $1 AND c.deleted_at IS NULL`
	if excludeTerminal {
		query += `
		AND c.id NOT IN (
			SELECT t.client_id FROM (
				SELECT DISTINCT ON (client_id) client_id, is_terminal
				FROM client_period_statuses
				ORDER BY client_id, updated_at DESC
			) t WHERE t.is_terminal
		)`
	}
	query += `
		ORDER BY c.id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list eligible clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan eligible client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// rowScanner cubre pgx.Row y pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(&c.ID, &c.BranchID, &c.ProductID, &c.Name, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
