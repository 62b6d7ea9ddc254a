package importer

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Columns columnas obligatorias de la cabecera del CSV.
var Columns = []string{
	"nombre_producto", "descripcion", "precio", "cantidad_stock",
	"estado", "id_categoria", "id_almacen",
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvRecord fila tal como viene en el archivo; la conversión de tipos se hace aparte
// para poder informar qué filas están mal.
type csvRecord struct {
	Name          string `csv:"nombre_producto"`
	Description   string `csv:"descripcion"`
	Price         string `csv:"precio"`
	StockQuantity string `csv:"cantidad_stock"`
	Status        string `csv:"estado"`
	CategoryID    string `csv:"id_categoria"`
	WarehouseID   string `csv:"id_almacen"`
}

func (r *csvRecord) blank() bool {
	return strings.TrimSpace(r.Name+r.Description+r.Price+r.StockQuantity+r.Status+r.CategoryID+r.WarehouseID) == ""
}

// ParseRows decodifica el CSV y convierte cada fila. Si alguna fila no se puede convertir
// devuelve un ErrValidation con todas las filas afectadas y ninguna fila.
func ParseRows(data []byte) ([]*entity.ImportRow, error) {
	data, err := normalizeEncoding(data)
	if err != nil {
		return nil, domain.WrapError(domain.ErrValidation, "No se pudo leer el archivo CSV", err)
	}
	if err := checkHeader(data); err != nil {
		return nil, err
	}

	var records []*csvRecord
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, domain.Validation("El archivo CSV no contiene productos")
		}
		return nil, domain.WrapError(domain.ErrValidation, "El archivo CSV está mal formado", err)
	}

	rows := make([]*entity.ImportRow, 0, len(records))
	var bad []string
	n := 0
	for _, rec := range records {
		if rec.blank() {
			continue
		}
		n++
		row, err := convert(n, rec)
		if err != nil {
			bad = append(bad, fmt.Sprintf("fila %d: %v", n, err))
			continue
		}
		rows = append(rows, row)
	}
	if len(bad) > 0 {
		return nil, domain.WrapError(domain.ErrValidation,
			"El archivo contiene filas con datos inválidos: "+strings.Join(bad, "; "),
			errors.New("filas inválidas"))
	}
	if len(rows) == 0 {
		return nil, domain.Validation("El archivo CSV no contiene productos")
	}
	return rows, nil
}

// normalizeEncoding quita el BOM de UTF-8 y, si el contenido no es UTF-8 válido,
// lo interpreta como Windows-1252 (lo que exporta Excel por defecto).
func normalizeEncoding(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func checkHeader(data []byte) error {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	header := strings.TrimSpace(string(line))
	if header == "" {
		return domain.Validation("El archivo CSV está vacío")
	}
	present := make(map[string]bool)
	for _, col := range strings.Split(header, ",") {
		present[strings.Trim(strings.TrimSpace(col), `"`)] = true
	}
	var missing []string
	for _, col := range Columns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return domain.Validation("Faltan columnas en la cabecera del CSV: " + strings.Join(missing, ", "))
	}
	return nil
}

func convert(n int, rec *csvRecord) (*entity.ImportRow, error) {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return nil, errors.New("nombre_producto vacío")
	}
	if !entity.ValidProductName(name) {
		return nil, fmt.Errorf("nombre_producto supera %d caracteres", entity.ProductNameMaxLen)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(rec.Price))
	if err != nil || !entity.ValidProductPrice(price) {
		return nil, fmt.Errorf("precio inválido %q", rec.Price)
	}
	status := strings.TrimSpace(rec.Status)
	if status == "" {
		status = entity.ProductStatusActive
	}
	if !entity.ValidProductStatus(status) {
		return nil, fmt.Errorf("estado inválido %q (activo o inactivo)", rec.Status)
	}
	stock, err := strconv.Atoi(strings.TrimSpace(rec.StockQuantity))
	if err != nil || stock < 0 {
		return nil, fmt.Errorf("cantidad_stock inválida %q", rec.StockQuantity)
	}
	categoryID, err := parseID(rec.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("id_categoria inválido %q", rec.CategoryID)
	}
	warehouseID, err := parseID(rec.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("id_almacen inválido %q", rec.WarehouseID)
	}

	row := &entity.ImportRow{
		Row:           n,
		Name:          name,
		Price:         price,
		StockQuantity: stock,
		Status:        status,
		CategoryID:    categoryID,
		WarehouseID:   warehouseID,
	}
	if d := strings.TrimSpace(rec.Description); d != "" {
		row.Description = &d
	}
	return row, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id no positivo")
	}
	return id, nil
}
