package repository

import (
	"context"

	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create llama a sp_registrar_producto y asigna el ID generado.
	Create(ctx context.Context, product *entity.Product) error
	// LoadRow llama a sp_cargar_productos: inserta la fila salvo que el trío
	// (nombre, categoría, almacén) ya exista, en cuyo caso devuelve duplicate=true.
	LoadRow(ctx context.Context, row *entity.ImportRow) (duplicate bool, err error)
	// Update aplica solo los campos no nulos vía sp_actualizar_producto; false si el id no existe.
	Update(ctx context.Context, id int64, patch entity.ProductPatch) (bool, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	ExistsByNameCategoryWarehouse(ctx context.Context, name string, categoryID, warehouseID int64) (bool, error)
	ListSummaries(ctx context.Context) ([]*entity.ProductSummary, error)
}
