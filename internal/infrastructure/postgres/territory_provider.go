package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cartera-api/internal/application/status"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

var _ status.TerritoryProvider = (*TerritoryProvider)(nil)

// TerritoryProvider resuelve el alcance de sucursales de un usuario desde
// users.territory_scope y la tabla de asignación user_branches.
type TerritoryProvider struct {
	q Querier
}

// NewTerritoryProvider construye el proveedor.
func NewTerritoryProvider(q Querier) *TerritoryProvider {
	return &TerritoryProvider{q: q}
}

// BranchScope devuelve el alcance del usuario dentro de la administradora.
// Usuario inexistente o sin alcance declarado resuelve a none.
func (p *TerritoryProvider) BranchScope(ctx context.Context, userID, companyID string) (entity.BranchScope, error) {
	var scope string
	err := p.q.QueryRow(ctx,
		`SELECT territory_scope FROM users WHERE id = $1 AND company_id = $2`,
		userID, companyID,
	).Scan(&scope)
	if err != nil {
		if isNoRows(err) {
			return entity.BranchScope{Kind: entity.ScopeNone}, nil
		}
		return entity.BranchScope{}, fmt.Errorf("get territory scope: %w", err)
	}

	switch scope {
	case entity.ScopeAll:
		return entity.BranchScope{Kind: entity.ScopeAll}, nil
	case entity.ScopeTerritory:
		rows, err := p.q.Query(ctx,
			`SELECT branch_id FROM user_branches WHERE user_id = $1`, userID)
		if err != nil {
			return entity.BranchScope{}, fmt.Errorf("list user branches: %w", err)
		}
		defer rows.Close()
		var ids []string
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return entity.BranchScope{}, fmt.Errorf("scan branch id: %w", err)
			}
			ids = append(ids, id)
		}
		if err := rows.Err(); err != nil {
			return entity.BranchScope{}, err
		}
		if len(ids) == 0 {
			// Alcance territorial sin sucursales asignadas equivale a none.
			return entity.BranchScope{Kind: entity.ScopeNone}, nil
		}
		return entity.BranchScope{Kind: entity.ScopeTerritory, BranchIDs: ids}, nil
	default:
		return entity.BranchScope{Kind: entity.ScopeNone}, nil
	}
}
