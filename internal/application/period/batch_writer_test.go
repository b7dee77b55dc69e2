package period_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cartera-api/internal/application/period"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

func recordsNamed(n int, key entity.PeriodKey) []*entity.ClientPeriodStatus {
	out := make([]*entity.ClientPeriodStatus, n)
	for i := range out {
		out[i] = &entity.ClientPeriodStatus{
			ID:          fmt.Sprintf("ps-%03d", i),
			ClientID:    fmt.Sprintf("cl-%03d", i),
			PeriodType:  key.Type,
			PeriodYear:  key.Year,
			PeriodMonth: key.Month,
		}
	}
	return out
}

func TestBatchWriter_TodoExitoso(t *testing.T) {
	repo := newFakePeriodRepo()
	writer := period.NewBatchWriter(repo, 100)

	// 250 registros → 3 lotes (100, 100, 50).
	res := writer.Write(context.Background(), recordsNamed(250, monthKey(2026, 7)))

	assert.True(t, res.Success)
	assert.Equal(t, 250, res.Processed)
	assert.Equal(t, 0, res.Failed)
	assert.Empty(t, res.Errors)
	assert.Len(t, repo.created, 250)
}

func TestBatchWriter_FalloNoDetieneElResto(t *testing.T) {
	repo := newFakePeriodRepo()
	// Fallan un registro del primer lote y uno del último.
	repo.failFor["cl-007"] = errors.New("violación de constraint")
	repo.failFor["cl-233"] = errors.New("conexión perdida")
	writer := period.NewBatchWriter(repo, 100)

	res := writer.Write(context.Background(), recordsNamed(250, monthKey(2026, 7)))

	assert.False(t, res.Success)
	assert.Equal(t, 248, res.Processed)
	assert.Equal(t, 2, res.Failed)
	assert.Equal(t, 250, res.Processed+res.Failed, "Processed + Failed siempre cubre la entrada completa")

	// Los errores conservan el índice original dentro del slice de entrada,
	// no el índice relativo al lote.
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 7, res.Errors[0].Index)
	assert.Contains(t, res.Errors[0].Error, "constraint")
	assert.Equal(t, 233, res.Errors[1].Index)
}

func TestBatchWriter_EntradaVacia(t *testing.T) {
	writer := period.NewBatchWriter(newFakePeriodRepo(), 100)

	res := writer.Write(context.Background(), nil)

	assert.True(t, res.Success, "sin registros no hay fallos")
	assert.Equal(t, 0, res.Processed)
	assert.Equal(t, 0, res.Failed)
}

func TestBatchWriter_TamanoDeLoteNoPositivoUsaElDefault(t *testing.T) {
	repo := newFakePeriodRepo()
	writer := period.NewBatchWriter(repo, 0)

	res := writer.Write(context.Background(), recordsNamed(period.DefaultChunkSize+1, monthKey(2026, 7)))

	assert.Equal(t, period.DefaultChunkSize+1, res.Processed)
}
