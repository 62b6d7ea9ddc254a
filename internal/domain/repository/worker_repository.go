package repository

import (
	"context"

	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
)

// WorkerRepository define el puerto de persistencia para Worker (DIP).
type WorkerRepository interface {
	// Register llama a sp_registrar_trabajador y devuelve el id de persona generado.
	Register(ctx context.Context, worker *entity.Worker) (int64, error)
	// FindByEmail devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.Worker, error)
	Count(ctx context.Context) (int64, error)
}
