package auth

import (
	"context"

	"github.com/jhoicas/ventaspro-admin-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio de
// trabajadores atado a esa tx. Si fn devuelve error la transacción se revierte.
type TxRunner interface {
	RunWorker(ctx context.Context, fn func(workerRepo repository.WorkerRepository) error) error
}
