package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleGestor     = "gestor"
)

// User representa un usuario de la administradora (gestor de cobranza, supervisor o admin).
// TerritoryScope define su alcance de sucursales (ver constantes Scope*); con
// "territory", las sucursales concretas viven en la tabla de asignación.
type User struct {
	ID             string
	CompanyID      string
	Email          string
	PasswordHash   string
	Name           string
	Role           string // ver constantes Role*
	Status         string // active, inactive
	TerritoryScope string // ver constantes Scope*
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
