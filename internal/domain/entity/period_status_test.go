package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

func intPtr(n int) *int { return &n }

func TestPeriodKeyValidate(t *testing.T) {
	cases := []struct {
		name    string
		key     entity.PeriodKey
		wantErr bool
	}{
		{"mensual válido", entity.PeriodKey{Type: entity.PeriodMonthly, Year: 2026, Month: intPtr(8)}, false},
		{"trimestral válido", entity.PeriodKey{Type: entity.PeriodQuarterly, Year: 2026, Quarter: intPtr(3)}, false},
		{"mensual sin mes", entity.PeriodKey{Type: entity.PeriodMonthly, Year: 2026}, true},
		{"mensual con mes 0", entity.PeriodKey{Type: entity.PeriodMonthly, Year: 2026, Month: intPtr(0)}, true},
		{"mensual con mes 13", entity.PeriodKey{Type: entity.PeriodMonthly, Year: 2026, Month: intPtr(13)}, true},
		{"mensual con trimestre", entity.PeriodKey{Type: entity.PeriodMonthly, Year: 2026, Month: intPtr(8), Quarter: intPtr(3)}, true},
		{"trimestral sin trimestre", entity.PeriodKey{Type: entity.PeriodQuarterly, Year: 2026}, true},
		{"trimestral con trimestre 5", entity.PeriodKey{Type: entity.PeriodQuarterly, Year: 2026, Quarter: intPtr(5)}, true},
		{"trimestral con mes", entity.PeriodKey{Type: entity.PeriodQuarterly, Year: 2026, Quarter: intPtr(2), Month: intPtr(4)}, true},
		{"tipo desconocido", entity.PeriodKey{Type: "weekly", Year: 2026}, true},
		{"año fuera de rango", entity.PeriodKey{Type: entity.PeriodMonthly, Year: 1999, Month: intPtr(1)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.key.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPeriodKeyString(t *testing.T) {
	assert.Equal(t, "monthly 2026-08",
		entity.PeriodKey{Type: entity.PeriodMonthly, Year: 2026, Month: intPtr(8)}.String())
	assert.Equal(t, "quarterly 2026-Q3",
		entity.PeriodKey{Type: entity.PeriodQuarterly, Year: 2026, Quarter: intPtr(3)}.String())
}
