package entity

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Estados de producto.
const (
	ProductStatusActive   = "activo"
	ProductStatusInactive = "inactivo"
)

// Límites de la tabla productos (nombre_producto VARCHAR(150), precio NUMERIC(12,2)).
const (
	ProductNameMaxLen = 150
	ProductPriceScale = 2
)

// ProductPriceLimit primer valor que ya no cabe en NUMERIC(12,2).
var ProductPriceLimit = decimal.New(1, 10)

// ValidProductStatus indica si s es un estado de producto conocido.
func ValidProductStatus(s string) bool {
	return s == ProductStatusActive || s == ProductStatusInactive
}

// ValidProductName indica si el nombre (ya recortado) no está vacío y cabe en la columna.
func ValidProductName(name string) bool {
	return name != "" && utf8.RuneCountInString(name) <= ProductNameMaxLen
}

// ValidProductPrice indica si el precio es positivo, tiene a lo sumo dos decimales y cabe en la columna.
func ValidProductPrice(p decimal.Decimal) bool {
	return p.IsPositive() && p.LessThan(ProductPriceLimit) && p.Equal(p.Round(ProductPriceScale))
}

// Product representa un producto de un almacén. La combinación (Name, CategoryID, WarehouseID)
// es única en la tabla productos.
type Product struct {
	ID            int64
	Name          string
	Description   *string
	Price         decimal.Decimal
	StockQuantity int
	Status        string
	CategoryID    int64
	WarehouseID   int64
	Image         []byte // nil si el producto no tiene imagen
}

// ProductSummary es la proyección del listado: une el nombre de la categoría.
type ProductSummary struct {
	ID           int64
	Name         string
	CategoryName string
	Price        decimal.Decimal
	Status       string
}

// ProductPatch campos opcionales para una actualización parcial (nil = sin cambio).
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	StockQuantity *int
	Status        *string
	CategoryID    *int64
	WarehouseID   *int64
	Image         []byte
}
