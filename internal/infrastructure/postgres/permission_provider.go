package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cartera-api/internal/application/status"
)

var _ status.AuthorizationProvider = (*PermissionProvider)(nil)

// PermissionProvider verifica capacidades consultando role_permissions por el
// rol del usuario. Respuesta O(1) vía EXISTS e índice.
type PermissionProvider struct {
	q Querier
}

// NewPermissionProvider construye el proveedor.
func NewPermissionProvider(q Querier) *PermissionProvider {
	return &PermissionProvider{q: q}
}

// HasPermission informa si el usuario tiene la capacidad (resource, action)
// dentro de la administradora.
func (p *PermissionProvider) HasPermission(ctx context.Context, userID, companyID, resource, action string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM role_permissions rp
			JOIN users u ON u.role = rp.role
			WHERE u.id = $1
			  AND u.company_id = $2
			  AND rp.resource = $3
			  AND rp.action = $4
		)`
	var allowed bool
	if err := p.q.QueryRow(ctx, query, userID, companyID, resource, action).Scan(&allowed); err != nil {
		return false, fmt.Errorf("check permission %s:%s: %w", resource, action, err)
	}
	return allowed, nil
}
