package dto

import "github.com/shopspring/decimal"

// Estados del resultado de una carga masiva.
const (
	ImportStatusAllDuplicates = "todos_duplicados"
	ImportStatusPartial       = "parcial"
	ImportStatusSuccess       = "exito"
)

// ImportDuplicate fila del CSV que ya existía (mismo nombre, categoría y almacén).
type ImportDuplicate struct {
	Row           int             `json:"fila"`
	Name          string          `json:"nombre_producto"`
	Description   *string         `json:"descripcion"`
	Price         decimal.Decimal `json:"precio"`
	StockQuantity int             `json:"cantidad_stock"`
	Status        string          `json:"estado"`
	CategoryID    int64           `json:"id_categoria"`
	WarehouseID   int64           `json:"id_almacen"`
}

// ImportResultResponse resumen de la carga masiva.
type ImportResultResponse struct {
	Message    string            `json:"message"`
	Status     string            `json:"estado"`
	Total      int               `json:"total"`
	Registered int               `json:"registrados"`
	Duplicates []ImportDuplicate `json:"duplicados,omitempty"`
}
