package status_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos del paquete. Los IDs del catálogo de test
// siguen la convención "st-<CODE>" y "rz-<nombre>" para que los asserts sean
// legibles.
// ──────────────────────────────────────────────────────────────────────────────

func statusID(code string) string { return "st-" + code }

// fakeCatalog implementa repository.StatusTypeRepository sobre mapas.
type fakeCatalog struct {
	byID    map[string]*entity.StatusType
	reasons map[string]*entity.StatusReason
	failAll bool // simula fallo de infraestructura en toda consulta
}

func newFakeCatalog() *fakeCatalog {
	c := &fakeCatalog{
		byID:    make(map[string]*entity.StatusType),
		reasons: make(map[string]*entity.StatusReason),
	}
	for _, code := range []string{
		entity.StatusPending, entity.StatusToFollow, entity.StatusCalled,
		entity.StatusVisited, entity.StatusUpdated, entity.StatusDone,
		entity.StatusDeceased, entity.StatusFullyPaid,
	} {
		c.byID[statusID(code)] = &entity.StatusType{ID: statusID(code), Code: code, Name: code}
	}
	return c
}

func (c *fakeCatalog) addReason(id, statusCode, name string, requiresRemarks bool) {
	c.reasons[id] = &entity.StatusReason{
		ID:              id,
		StatusTypeID:    statusID(statusCode),
		Name:            name,
		RequiresRemarks: requiresRemarks,
	}
}

func (c *fakeCatalog) GetByID(_ context.Context, id string) (*entity.StatusType, error) {
	if c.failAll {
		return nil, errors.New("catálogo no disponible")
	}
	return c.byID[id], nil
}

func (c *fakeCatalog) GetByCode(_ context.Context, code string) (*entity.StatusType, error) {
	if c.failAll {
		return nil, errors.New("catálogo no disponible")
	}
	return c.byID[statusID(code)], nil
}

func (c *fakeCatalog) List(_ context.Context) ([]*entity.StatusType, error) {
	if c.failAll {
		return nil, errors.New("catálogo no disponible")
	}
	out := make([]*entity.StatusType, 0, len(c.byID))
	for _, st := range c.byID {
		out = append(out, st)
	}
	return out, nil
}

func (c *fakeCatalog) GetReasonByID(_ context.Context, reasonID string) (*entity.StatusReason, error) {
	if c.failAll {
		return nil, errors.New("catálogo no disponible")
	}
	return c.reasons[reasonID], nil
}

func (c *fakeCatalog) ListReasonsByStatus(_ context.Context, statusTypeID string) ([]*entity.StatusReason, error) {
	if c.failAll {
		return nil, errors.New("catálogo no disponible")
	}
	var out []*entity.StatusReason
	for _, r := range c.reasons {
		if r.StatusTypeID == statusTypeID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeCompanies implementa repository.CompanyRepository sobre un mapa por ID.
type fakeCompanies struct {
	byID map[string]*entity.Company
}

func newFakeCompanies(companies ...*entity.Company) *fakeCompanies {
	f := &fakeCompanies{byID: make(map[string]*entity.Company)}
	for _, c := range companies {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCompanies) Create(_ context.Context, c *entity.Company) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return f.byID[id], nil
}

func (f *fakeCompanies) GetByCode(_ context.Context, code string) (*entity.Company, error) {
	for _, c := range f.byID {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanies) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

// fakeClients implementa repository.ClientRepository.
type fakeClients struct {
	byID map[string]*entity.Client
}

func newFakeClients(clients ...*entity.Client) *fakeClients {
	f := &fakeClients{byID: make(map[string]*entity.Client)}
	for _, c := range clients {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return f.byID[id], nil
}

func (f *fakeClients) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.Client, error) {
	return nil, nil
}

func (f *fakeClients) ListEligibleForInitialization(_ context.Context, _ string, _ bool) ([]*entity.Client, error) {
	return nil, nil
}

// fakeProducts implementa repository.ProductRepository.
type fakeProducts struct {
	byID map[string]*entity.Product
}

func newFakeProducts(products ...*entity.Product) *fakeProducts {
	f := &fakeProducts{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.byID[id], nil
}

// fakeTerritory devuelve siempre el alcance configurado.
type fakeTerritory struct {
	scope entity.BranchScope
	err   error
}

func (f *fakeTerritory) BranchScope(_ context.Context, _, _ string) (entity.BranchScope, error) {
	return f.scope, f.err
}

// fakeAuthz devuelve siempre la decisión configurada.
type fakeAuthz struct {
	allowed bool
	err     error
}

func (f *fakeAuthz) HasPermission(_ context.Context, _, _, _, _ string) (bool, error) {
	return f.allowed, f.err
}

// fakePeriodStore implementa repository.PeriodStatusRepository en memoria,
// indexando por (clientID, llave de periodo).
type fakePeriodStore struct {
	rows       map[string]*entity.ClientPeriodStatus
	failCreate map[string]error // por clientID
}

func newFakePeriodStore() *fakePeriodStore {
	return &fakePeriodStore{
		rows:       make(map[string]*entity.ClientPeriodStatus),
		failCreate: make(map[string]error),
	}
}

func storeKey(clientID string, key entity.PeriodKey) string {
	return fmt.Sprintf("%s|%s", clientID, key.String())
}

func (f *fakePeriodStore) Create(_ context.Context, s *entity.ClientPeriodStatus) error {
	if err := f.failCreate[s.ClientID]; err != nil {
		return err
	}
	k := storeKey(s.ClientID, s.Key())
	if _, ok := f.rows[k]; ok {
		return errors.New("registro duplicado")
	}
	cp := *s
	f.rows[k] = &cp
	return nil
}

func (f *fakePeriodStore) Update(_ context.Context, s *entity.ClientPeriodStatus) error {
	k := storeKey(s.ClientID, s.Key())
	if _, ok := f.rows[k]; !ok {
		return errors.New("registro no encontrado")
	}
	cp := *s
	f.rows[k] = &cp
	return nil
}

func (f *fakePeriodStore) GetByClientAndPeriod(_ context.Context, clientID string, key entity.PeriodKey) (*entity.ClientPeriodStatus, error) {
	row, ok := f.rows[storeKey(clientID, key)]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakePeriodStore) GetByClientAndPeriodForUpdate(ctx context.Context, clientID string, key entity.PeriodKey) (*entity.ClientPeriodStatus, error) {
	return f.GetByClientAndPeriod(ctx, clientID, key)
}

func (f *fakePeriodStore) ListClientIDsForPeriod(_ context.Context, _ string, key entity.PeriodKey) ([]string, error) {
	var ids []string
	for _, row := range f.rows {
		if row.Key().String() == key.String() {
			ids = append(ids, row.ClientID)
		}
	}
	return ids, nil
}

func (f *fakePeriodStore) ExistsForCompanyAndPeriod(ctx context.Context, companyID string, key entity.PeriodKey) (bool, error) {
	ids, err := f.ListClientIDsForPeriod(ctx, companyID, key)
	return len(ids) > 0, err
}

// fakeEventStore implementa repository.StatusEventRepository acumulando en un slice.
type fakeEventStore struct {
	events []*entity.StatusEvent
}

func (f *fakeEventStore) Create(_ context.Context, e *entity.StatusEvent) error {
	cp := *e
	f.events = append(f.events, &cp)
	return nil
}

func (f *fakeEventStore) ListByPeriodStatus(_ context.Context, id string) ([]*entity.StatusEvent, error) {
	var out []*entity.StatusEvent
	for _, e := range f.events {
		if e.ClientPeriodStatusID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta la función directamente contra los stores en memoria.
// No simula rollback: los tests de violaciones de reglas cortan antes de escribir.
type fakeTxRunner struct {
	store  *fakePeriodStore
	events *fakeEventStore
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	statusRepo repository.PeriodStatusRepository,
	eventRepo repository.StatusEventRepository,
) error) error {
	return fn(f.store, f.events)
}

// monthKey llave mensual de conveniencia.
func monthKey(year, month int) entity.PeriodKey {
	m := month
	return entity.PeriodKey{Type: entity.PeriodMonthly, Year: year, Month: &m}
}

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
