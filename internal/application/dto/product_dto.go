package dto

import "github.com/shopspring/decimal"

// CreateProductRequest campos de formulario (multipart) para registrar un producto.
// Los valores numéricos llegan como texto y se convierten en el caso de uso.
type CreateProductRequest struct {
	Name          string `json:"nombre_producto" form:"nombre_producto" validate:"required"`
	Description   string `json:"descripcion" form:"descripcion" validate:"required"`
	Price         string `json:"precio" form:"precio" validate:"required"`
	StockQuantity string `json:"cantidad_stock" form:"cantidad_stock" validate:"required"`
	Status        string `json:"estado" form:"estado"`
	CategoryID    string `json:"id_categoria" form:"id_categoria" validate:"required"`
	WarehouseID   string `json:"id_almacen" form:"id_almacen" validate:"required"`
}

// UpdateProductRequest campos opcionales para editar un producto (nil = sin cambio).
type UpdateProductRequest struct {
	Name          *string `json:"nombre_producto" form:"nombre_producto"`
	Description   *string `json:"descripcion" form:"descripcion"`
	Price         *string `json:"precio" form:"precio"`
	StockQuantity *string `json:"cantidad_stock" form:"cantidad_stock"`
	Status        *string `json:"estado" form:"estado"`
	CategoryID    *string `json:"id_categoria" form:"id_categoria"`
	WarehouseID   *string `json:"id_almacen" form:"id_almacen"`
}

// ProductImage imagen adjunta (JPEG o PNG) ya leída en memoria.
type ProductImage struct {
	ContentType string
	Data        []byte
}

// ProductResponse salida de un producto. La imagen viaja en base64.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"nombre_producto"`
	Description   *string         `json:"descripcion"`
	Price         decimal.Decimal `json:"precio"`
	StockQuantity int             `json:"cantidad_stock"`
	Status        string          `json:"estado"`
	CategoryID    int64           `json:"id_categoria"`
	WarehouseID   int64           `json:"id_almacen"`
	Image         *string         `json:"imagen_producto"`
}

// ProductEnvelope producto con mensaje (crear y editar).
type ProductEnvelope struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"producto"`
}

// ProductSummaryResponse fila del listado de productos.
type ProductSummaryResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"nombre_producto"`
	Category string          `json:"categoria"`
	Price    decimal.Decimal `json:"precio"`
	Status   string          `json:"estado"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Products []ProductSummaryResponse `json:"productos"`
}
