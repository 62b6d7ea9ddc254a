package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/auth"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/repository"
)

var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL sobre una sola conexión del pool.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunWorker inicia una transacción, ejecuta fn con el repositorio de trabajadores atado a la tx
// y hace Commit. El Rollback diferido libera la conexión en cualquier salida (error, panic o
// después del Commit, donde no tiene efecto).
func (r *TxRunner) RunWorker(ctx context.Context, fn func(workerRepo repository.WorkerRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewWorkerRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
