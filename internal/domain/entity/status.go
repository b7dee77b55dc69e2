package entity

import "time"

// Códigos de estado del flujo de seguimiento mensual/trimestral.
const (
	StatusPending  = "PENDING"
	StatusToFollow = "TO_FOLLOW"
	StatusCalled   = "CALLED"
	StatusVisited  = "VISITED" // habilitado solo para tenants con gestión presencial
	StatusUpdated  = "UPDATED"
	StatusDone     = "DONE"
)

// Códigos de estado terminal duro: se asignan fuera del flujo (novedades)
// y no admiten ninguna transición posterior.
const (
	StatusDeceased  = "Deceased"
	StatusFullyPaid = "Fully-Paid"
)

// StatusType representa un estado del catálogo de seguimiento.
type StatusType struct {
	ID        string
	Code      string // ver constantes Status*
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusReason representa un motivo asociado a un estado.
// Un motivo solo es válido bajo su estado dueño; RequiresRemarks obliga
// a capturar observaciones al aplicar cualquier motivo de ese estado.
type StatusReason struct {
	ID              string
	StatusTypeID    string
	Name            string
	RequiresRemarks bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
