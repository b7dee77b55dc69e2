package workflow

import "github.com/jhoicas/cartera-api/internal/domain/entity"

// Workflow es la configuración inmutable del flujo de seguimiento: grafo de
// transiciones permitidas, secuencia ordinal, estados terminales duros y
// estados condicionados por tenant. Se construye una vez y se inyecta en el
// validador, lo que permite variantes por administradora sin tocar el código.
type Workflow struct {
	edges             map[string]map[string]bool
	ordinals          map[string]int
	hardTerminal      map[string]bool
	gated             map[string]bool
	gatedCompanyCodes map[string]bool
}

// Config parámetros para construir un Workflow.
type Config struct {
	// Edges: para cada estado origen, el conjunto de estados destino permitidos.
	Edges map[string][]string
	// Sequence: orden canónico de los estados del flujo; define los ordinales.
	Sequence []string
	// HardTerminalCodes: estados asignados fuera del flujo, sin salida posible.
	HardTerminalCodes []string
	// GatedStatuses: estados alcanzables solo para tenants habilitados.
	GatedStatuses []string
	// GatedCompanyCodes: códigos de empresa que desbloquean los estados condicionados.
	GatedCompanyCodes []string
}

// New construye un Workflow a partir de la configuración.
func New(cfg Config) Workflow {
	wf := Workflow{
		edges:             make(map[string]map[string]bool, len(cfg.Edges)),
		ordinals:          make(map[string]int, len(cfg.Sequence)),
		hardTerminal:      make(map[string]bool, len(cfg.HardTerminalCodes)),
		gated:             make(map[string]bool, len(cfg.GatedStatuses)),
		gatedCompanyCodes: make(map[string]bool, len(cfg.GatedCompanyCodes)),
	}
	for from, tos := range cfg.Edges {
		set := make(map[string]bool, len(tos))
		for _, to := range tos {
			set[to] = true
		}
		wf.edges[from] = set
	}
	for i, code := range cfg.Sequence {
		wf.ordinals[code] = i
	}
	for _, code := range cfg.HardTerminalCodes {
		wf.hardTerminal[code] = true
	}
	for _, code := range cfg.GatedStatuses {
		wf.gated[code] = true
	}
	for _, code := range cfg.GatedCompanyCodes {
		wf.gatedCompanyCodes[code] = true
	}
	return wf
}

// Default devuelve el flujo estándar de seguimiento de cartera.
// visitedCompanyCodes son los códigos de administradora con gestión presencial
// (habilitan VISITED).
func Default(visitedCompanyCodes ...string) Workflow {
	return New(Config{
		Edges: map[string][]string{
			entity.StatusPending:  {entity.StatusToFollow},
			entity.StatusToFollow: {entity.StatusCalled},
			entity.StatusCalled:   {entity.StatusVisited, entity.StatusUpdated},
			entity.StatusVisited:  {entity.StatusUpdated},
			entity.StatusUpdated:  {entity.StatusDone},
			entity.StatusDone:     {},
		},
		Sequence: []string{
			entity.StatusPending,
			entity.StatusToFollow,
			entity.StatusCalled,
			entity.StatusVisited,
			entity.StatusUpdated,
			entity.StatusDone,
		},
		HardTerminalCodes: []string{entity.StatusDeceased, entity.StatusFullyPaid},
		GatedStatuses:     []string{entity.StatusVisited},
		GatedCompanyCodes: visitedCompanyCodes,
	})
}

// HasEdge informa si la transición from→to está en el grafo.
func (w Workflow) HasEdge(from, to string) bool {
	return w.edges[from][to]
}

// IsHardTerminal informa si el código pertenece al conjunto terminal duro.
func (w Workflow) IsHardTerminal(code string) bool {
	return w.hardTerminal[code]
}

// IsGated informa si el estado está condicionado por tenant.
func (w Workflow) IsGated(code string) bool {
	return w.gated[code]
}

// CompanyUnlocksGated informa si el código de empresa desbloquea los estados condicionados.
func (w Workflow) CompanyUnlocksGated(companyCode string) bool {
	return w.gatedCompanyCodes[companyCode]
}

// Ordinal devuelve la posición del estado en la secuencia canónica.
// ok es false para códigos fuera de la secuencia (p. ej. terminales duros).
func (w Workflow) Ordinal(code string) (int, bool) {
	n, ok := w.ordinals[code]
	return n, ok
}

// IsBackward informa si to precede a from en la secuencia canónica.
// Con el grafo por defecto la adyacencia ya bloquea todo retroceso; la guarda
// ordinal protege grafos variante que agreguen aristas laterales.
func (w Workflow) IsBackward(from, to string) bool {
	fromOrd, okFrom := w.ordinals[from]
	toOrd, okTo := w.ordinals[to]
	if !okFrom || !okTo {
		return false
	}
	return toOrd < fromOrd
}
