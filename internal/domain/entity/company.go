package entity

import "time"

// Company representa una administradora/tenant del sistema (multi-tenant).
// Code identifica la administradora y activa variantes de reglas del flujo:
// p. ej. el código configurado como "gestión presencial" habilita el estado VISITED.
type Company struct {
	ID        string
	Name      string
	Code      string // código corto del tenant (ej: "GPV", "FPN")
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Branch representa una sucursal/oficina regional de una administradora.
// Los alcances de territorio de los gestores se expresan como conjuntos de sucursales.
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product representa un producto pensional (plan) de una administradora.
// Un afiliado pertenece a la administradora a través de su producto.
type Product struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
