package entity

import "github.com/shopspring/decimal"

// ImportRow es una fila del CSV de carga masiva ya convertida a tipos.
// No se persiste como tal: se registra como producto o se reporta como duplicada.
type ImportRow struct {
	Row           int // posición entre las filas de datos (la primera tras la cabecera es 1)
	Name          string
	Description   *string
	Price         decimal.Decimal
	StockQuantity int
	Status        string
	CategoryID    int64
	WarehouseID   int64
}
