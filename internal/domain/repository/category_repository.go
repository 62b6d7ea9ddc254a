package repository

import (
	"context"

	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los métodos de lectura devuelven (nil, nil) si no hay registro; Update y Delete
// devuelven false si el id no existe.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
