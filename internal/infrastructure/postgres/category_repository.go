package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre la tabla categorias.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta la categoría y asigna el ID generado.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO categorias (nombre_categoria) VALUES ($1) RETURNING id`,
		category.Name,
	).Scan(&category.ID)
	if err != nil {
		return translate("insert categoria", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return r.getOne(ctx, "get categoria", `SELECT id, nombre_categoria FROM categorias WHERE id = $1`, id)
}

// GetByName obtiene una categoría por nombre exacto.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.getOne(ctx, "get categoria by nombre", `SELECT id, nombre_categoria FROM categorias WHERE nombre_categoria = $1`, name)
}

func (r *CategoryRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, query, arg).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// List lista todas las categorías.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre_categoria FROM categorias ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update renombra la categoría. Devuelve false si el ID no existe.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categorias SET nombre_categoria = $2 WHERE id = $1`,
		category.ID, category.Name,
	)
	if err != nil {
		return false, translate("update categoria", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina la categoría. Devuelve false si el ID no existe.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return false, translate("delete categoria", err)
	}
	return cmd.RowsAffected() > 0, nil
}
