package period_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos que usan el escritor por lotes y el
// inicializador de periodos.
// ──────────────────────────────────────────────────────────────────────────────

// fakePeriodRepo implementa repository.PeriodStatusRepository. failFor permite
// simular el fallo de inserción de afiliados concretos.
type fakePeriodRepo struct {
	rows    map[string]*entity.ClientPeriodStatus
	failFor map[string]error // por clientID
	created []string         // clientIDs en orden de inserción exitosa
}

func newFakePeriodRepo() *fakePeriodRepo {
	return &fakePeriodRepo{
		rows:    make(map[string]*entity.ClientPeriodStatus),
		failFor: make(map[string]error),
	}
}

func rowKey(clientID string, key entity.PeriodKey) string {
	return fmt.Sprintf("%s|%s", clientID, key.String())
}

func (f *fakePeriodRepo) Create(_ context.Context, s *entity.ClientPeriodStatus) error {
	if err := f.failFor[s.ClientID]; err != nil {
		return err
	}
	k := rowKey(s.ClientID, s.Key())
	if _, ok := f.rows[k]; ok {
		return errors.New("registro duplicado")
	}
	cp := *s
	f.rows[k] = &cp
	f.created = append(f.created, s.ClientID)
	return nil
}

func (f *fakePeriodRepo) Update(_ context.Context, s *entity.ClientPeriodStatus) error {
	k := rowKey(s.ClientID, s.Key())
	if _, ok := f.rows[k]; !ok {
		return errors.New("registro no encontrado")
	}
	cp := *s
	f.rows[k] = &cp
	return nil
}

func (f *fakePeriodRepo) GetByClientAndPeriod(_ context.Context, clientID string, key entity.PeriodKey) (*entity.ClientPeriodStatus, error) {
	row, ok := f.rows[rowKey(clientID, key)]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakePeriodRepo) GetByClientAndPeriodForUpdate(ctx context.Context, clientID string, key entity.PeriodKey) (*entity.ClientPeriodStatus, error) {
	return f.GetByClientAndPeriod(ctx, clientID, key)
}

func (f *fakePeriodRepo) ListClientIDsForPeriod(_ context.Context, _ string, key entity.PeriodKey) ([]string, error) {
	var ids []string
	for _, row := range f.rows {
		if row.Key().String() == key.String() {
			ids = append(ids, row.ClientID)
		}
	}
	return ids, nil
}

func (f *fakePeriodRepo) ExistsForCompanyAndPeriod(ctx context.Context, companyID string, key entity.PeriodKey) (bool, error) {
	ids, err := f.ListClientIDsForPeriod(ctx, companyID, key)
	return len(ids) > 0, err
}

// fakeClientRepo implementa repository.ClientRepository devolviendo una lista fija.
type fakeClientRepo struct {
	eligible []*entity.Client
	err      error
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	for _, c := range f.eligible {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.Client, error) {
	return f.eligible, nil
}

func (f *fakeClientRepo) ListEligibleForInitialization(_ context.Context, _ string, _ bool) ([]*entity.Client, error) {
	return f.eligible, f.err
}

// fakeStatusTypes implementa repository.StatusTypeRepository con el catálogo mínimo.
type fakeStatusTypes struct {
	byCode map[string]*entity.StatusType
	err    error
}

func newFakeStatusTypes(codes ...string) *fakeStatusTypes {
	f := &fakeStatusTypes{byCode: make(map[string]*entity.StatusType)}
	for _, code := range codes {
		f.byCode[code] = &entity.StatusType{ID: "st-" + code, Code: code, Name: code}
	}
	return f
}

func (f *fakeStatusTypes) GetByID(_ context.Context, id string) (*entity.StatusType, error) {
	for _, st := range f.byCode {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, nil
}

func (f *fakeStatusTypes) GetByCode(_ context.Context, code string) (*entity.StatusType, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCode[code], nil
}

func (f *fakeStatusTypes) List(_ context.Context) ([]*entity.StatusType, error) {
	return nil, nil
}

func (f *fakeStatusTypes) GetReasonByID(_ context.Context, _ string) (*entity.StatusReason, error) {
	return nil, nil
}

func (f *fakeStatusTypes) ListReasonsByStatus(_ context.Context, _ string) ([]*entity.StatusReason, error) {
	return nil, nil
}

// monthKey llave mensual de conveniencia.
func monthKey(year, month int) entity.PeriodKey {
	m := month
	return entity.PeriodKey{Type: entity.PeriodMonthly, Year: year, Month: &m}
}

// clientsNamed genera n afiliados con IDs secuenciales cl-000..cl-<n-1>.
func clientsNamed(n int) []*entity.Client {
	out := make([]*entity.Client, n)
	for i := range out {
		out[i] = &entity.Client{
			ID:        fmt.Sprintf("cl-%03d", i),
			BranchID:  "br-1",
			ProductID: "prod-1",
			Name:      fmt.Sprintf("Afiliado %03d", i),
		}
	}
	return out
}
