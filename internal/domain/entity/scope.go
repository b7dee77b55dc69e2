package entity

// Tipos de alcance de territorio de un usuario.
const (
	ScopeAll       = "all"       // puede actuar sobre cualquier sucursal
	ScopeTerritory = "territory" // limitado a BranchIDs
	ScopeNone      = "none"      // sin sucursales asignadas
)

// BranchScope es el conjunto de sucursales sobre las que un usuario puede actuar.
type BranchScope struct {
	Kind      string // ver constantes Scope*
	BranchIDs []string
}

// Allows informa si el alcance cubre la sucursal indicada.
func (s BranchScope) Allows(branchID string) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeTerritory:
		for _, id := range s.BranchIDs {
			if id == branchID {
				return true
			}
		}
	}
	return false
}
