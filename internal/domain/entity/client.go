package entity

import "time"

// Client representa un afiliado/pensionado en seguimiento de cartera.
// DeletedAt distinto de nil marca borrado lógico: el afiliado deja de ser
// elegible para inicialización de periodos y para actualizaciones masivas.
type Client struct {
	ID        string
	BranchID  string
	ProductID string
	Name      string
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDeleted informa si el afiliado está marcado con borrado lógico.
func (c *Client) IsDeleted() bool {
	return c.DeletedAt != nil
}
