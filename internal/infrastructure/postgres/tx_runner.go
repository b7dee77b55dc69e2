package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/cartera-api/internal/application/status"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// Asegura que TxRunner implementa status.TxRunner.
var _ status.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El coordinador masivo abre una transacción por registro: la lectura con
// bloqueo, la mutación del estado y el evento de bitácora comparten tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	statusRepo repository.PeriodStatusRepository,
	eventRepo repository.StatusEventRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	statusRepo := NewPeriodStatusRepository(tx)
	eventRepo := NewStatusEventRepository(tx)

	if err := fn(statusRepo, eventRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
