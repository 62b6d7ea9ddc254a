package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Llamadas a procedimientos almacenados. El último parámetro es INOUT y vuelve como fila.
const (
	spRegistrarProducto  = `CALL sp_registrar_producto($1, $2, $3, $4, $5, $6, $7, $8, NULL::INTEGER)`
	spCargarProductos    = `CALL sp_cargar_productos($1, $2, $3, $4, $5, $6, $7, NULL::BOOLEAN)`
	spActualizarProducto = `CALL sp_actualizar_producto($1, $2, $3, $4, $5, $6, $7, $8, $9, NULL::BOOLEAN)`
)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create registra el producto vía sp_registrar_producto y asigna el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	err := r.q.QueryRow(ctx, spRegistrarProducto,
		product.Name, product.Description, product.Price, product.StockQuantity,
		product.Status, product.CategoryID, product.WarehouseID, product.Image,
	).Scan(&product.ID)
	if err != nil {
		return translate("sp_registrar_producto", err)
	}
	return nil
}

// LoadRow inserta una fila de la carga masiva. El procedimiento hace INSERT ... ON CONFLICT
// DO NOTHING sobre (nombre, categoría, almacén), así que la comprobación y la inserción son
// atómicas aunque muchas filas lleguen a la vez.
func (r *ProductRepo) LoadRow(ctx context.Context, row *entity.ImportRow) (bool, error) {
	var duplicate bool
	err := r.q.QueryRow(ctx, spCargarProductos,
		row.Name, row.Description, row.Price, row.StockQuantity,
		row.Status, row.CategoryID, row.WarehouseID,
	).Scan(&duplicate)
	if err != nil {
		return false, translate("sp_cargar_productos", err)
	}
	return duplicate, nil
}

// Update aplica los campos no nulos del patch. Devuelve false si el producto no existe.
func (r *ProductRepo) Update(ctx context.Context, id int64, patch entity.ProductPatch) (bool, error) {
	var updated bool
	err := r.q.QueryRow(ctx, spActualizarProducto,
		id, patch.Name, patch.Description, patch.Price, patch.StockQuantity,
		patch.Status, patch.CategoryID, patch.WarehouseID, patch.Image,
	).Scan(&updated)
	if err != nil {
		return false, translate("sp_actualizar_producto", err)
	}
	return updated, nil
}

// GetByID obtiene el producto completo (incluida la imagen).
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, nombre_producto, descripcion, precio, cantidad_stock, estado, id_categoria, id_almacen, imagen_producto
		FROM productos WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity, &p.Status,
		&p.CategoryID, &p.WarehouseID, &p.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ExistsByNameCategoryWarehouse indica si ya existe el trío (nombre, categoría, almacén).
func (r *ProductRepo) ExistsByNameCategoryWarehouse(ctx context.Context, name string, categoryID, warehouseID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM productos WHERE nombre_producto = $1 AND id_categoria = $2 AND id_almacen = $3)`,
		name, categoryID, warehouseID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists producto: %w", err)
	}
	return exists, nil
}

// ListSummaries lista los productos con el nombre de su categoría.
func (r *ProductRepo) ListSummaries(ctx context.Context) ([]*entity.ProductSummary, error) {
	query := `
		SELECT p.id, p.nombre_producto, c.nombre_categoria, p.precio, p.estado
		FROM productos p
		JOIN categorias c ON p.id_categoria = c.id
		ORDER BY p.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ProductSummary, 0)
	for rows.Next() {
		var s entity.ProductSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.CategoryName, &s.Price, &s.Status); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
