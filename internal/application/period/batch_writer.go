package period

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// DefaultChunkSize tamaño fijo de los lotes de inserción.
const DefaultChunkSize = 100

// BatchWriter primitiva de inserción masiva con aislamiento de fallos por
// registro. Divide la entrada en lotes de tamaño fijo y dentro de cada lote
// inserta registro por registro: el fallo de uno se captura con su índice
// original y el procesamiento continúa con el siguiente registro y el
// siguiente lote, sin aborto temprano. Los lotes acotan el tamaño de la
// carga, no la concurrencia: la ejecución es estrictamente secuencial.
// Reservado para la siembra de periodos.
type BatchWriter struct {
	repo      repository.PeriodStatusRepository
	chunkSize int
}

// NewBatchWriter construye el escritor. chunkSize <= 0 usa DefaultChunkSize.
func NewBatchWriter(repo repository.PeriodStatusRepository, chunkSize int) *BatchWriter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &BatchWriter{repo: repo, chunkSize: chunkSize}
}

// Write inserta los registros. Siempre cumple Processed + Failed == len(records)
// y Success == (Failed == 0).
func (w *BatchWriter) Write(ctx context.Context, records []*entity.ClientPeriodStatus) dto.BatchResult {
	result := dto.BatchResult{}
	for start := 0; start < len(records); start += w.chunkSize {
		end := start + w.chunkSize
		if end > len(records) {
			end = len(records)
		}
		for i, record := range records[start:end] {
			if err := w.repo.Create(ctx, record); err != nil {
				result.Failed++
				result.Errors = append(result.Errors, dto.BatchError{Index: start + i, Error: err.Error()})
				continue
			}
			result.Processed++
		}
	}
	result.Success = result.Failed == 0
	return result
}
