package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/ventaspro-admin-api/internal/application/dto"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Mensajes de productos.
const (
	MsgProductCreated        = "Producto registrado exitosamente"
	MsgProductExists         = "El producto ya existe en la categoría y almacén seleccionados"
	MsgProductFieldsRequired = "Todos los campos son obligatorios"
	MsgProductNotFound       = "Producto no encontrado"
	MsgProductBadReference   = "La categoría o el almacén seleccionados no existen"
	MsgProductStatus         = "El estado debe ser activo o inactivo"
	MsgProductNameTooLong    = "El nombre del producto no puede superar 150 caracteres"
	MsgProductPrice          = "El precio debe ser mayor que cero, con hasta dos decimales y menor que 10000000000"
	MsgImageType             = "Tipo de archivo no permitido. Solo se aceptan imágenes JPEG y PNG."
)

// ProductReportRenderer genera el reporte de productos (PDF).
type ProductReportRenderer interface {
	RenderProductReport(ctx context.Context, products []*entity.ProductSummary, generatedAt time.Time) ([]byte, error)
}

// ProductUseCase casos de uso de productos (alta individual, edición, listado, detalle y reporte).
// La carga masiva vive en el paquete importer.
type ProductUseCase struct {
	repo          repository.ProductRepository
	report        ProductReportRenderer
	imageMaxBytes int64
}

// NewProductUseCase construye el caso de uso. imageMaxBytes limita el tamaño de la imagen adjunta.
func NewProductUseCase(repo repository.ProductRepository, report ProductReportRenderer, imageMaxBytes int64) *ProductUseCase {
	return &ProductUseCase{repo: repo, report: report, imageMaxBytes: imageMaxBytes}
}

// Create registra un producto con imagen opcional. Falla con conflicto si el trío
// (nombre, categoría, almacén) ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, img *dto.ProductImage) (*dto.ProductEnvelope, error) {
	if err := dto.Validate(in, MsgProductFieldsRequired); err != nil {
		return nil, err
	}
	image, err := uc.checkImage(img)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:   strings.TrimSpace(in.Name),
		Status: strings.TrimSpace(in.Status),
		Image:  image,
	}
	if product.Name == "" {
		return nil, domain.Validation(MsgProductFieldsRequired)
	}
	if !entity.ValidProductName(product.Name) {
		return nil, domain.Validation(MsgProductNameTooLong)
	}
	if d := strings.TrimSpace(in.Description); d != "" {
		product.Description = &d
	}
	if product.Status == "" {
		product.Status = entity.ProductStatusActive
	}
	if !validStatus(product.Status) {
		return nil, domain.Validation(MsgProductStatus)
	}
	if product.Price, err = parsePrice(in.Price); err != nil {
		return nil, err
	}
	if product.StockQuantity, err = parseStock(in.StockQuantity); err != nil {
		return nil, err
	}
	if product.CategoryID, err = parseRef("id_categoria", in.CategoryID); err != nil {
		return nil, err
	}
	if product.WarehouseID, err = parseRef("id_almacen", in.WarehouseID); err != nil {
		return nil, err
	}

	exists, err := uc.repo.ExistsByNameCategoryWarehouse(ctx, product.Name, product.CategoryID, product.WarehouseID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if exists {
		return nil, domain.Conflict(MsgProductExists)
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, productWriteError(err)
	}
	return &dto.ProductEnvelope{Message: MsgProductCreated, Product: toProductResponse(product)}, nil
}

// Update aplica solo los campos enviados (y la imagen, si viene). Los textos vacíos cuentan
// como no enviados.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest, img *dto.ProductImage) (*dto.ProductEnvelope, error) {
	image, err := uc.checkImage(img)
	if err != nil {
		return nil, err
	}
	patch := entity.ProductPatch{
		Name:        optional(in.Name),
		Description: optional(in.Description),
		Status:      optional(in.Status),
		Image:       image,
	}
	if patch.Name != nil && !entity.ValidProductName(*patch.Name) {
		return nil, domain.Validation(MsgProductNameTooLong)
	}
	if patch.Status != nil && !validStatus(*patch.Status) {
		return nil, domain.Validation(MsgProductStatus)
	}
	if s := optional(in.Price); s != nil {
		price, err := parsePrice(*s)
		if err != nil {
			return nil, err
		}
		patch.Price = &price
	}
	if s := optional(in.StockQuantity); s != nil {
		stock, err := parseStock(*s)
		if err != nil {
			return nil, err
		}
		patch.StockQuantity = &stock
	}
	if s := optional(in.CategoryID); s != nil {
		ref, err := parseRef("id_categoria", *s)
		if err != nil {
			return nil, err
		}
		patch.CategoryID = &ref
	}
	if s := optional(in.WarehouseID); s != nil {
		ref, err := parseRef("id_almacen", *s)
		if err != nil {
			return nil, err
		}
		patch.WarehouseID = &ref
	}

	found, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, productWriteError(err)
	}
	if !found {
		return nil, domain.NotFound(MsgProductNotFound)
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if product == nil {
		return nil, domain.NotFound(MsgProductNotFound)
	}
	return &dto.ProductEnvelope{
		Message: fmt.Sprintf("Producto %q actualizado exitosamente", product.Name),
		Product: toProductResponse(product),
	}, nil
}

// List devuelve la proyección del listado (con el nombre de la categoría).
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListSummaries(ctx)
	if err != nil {
		return nil, domain.Storage(err)
	}
	items := make([]dto.ProductSummaryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.ProductSummaryResponse{
			ID:       s.ID,
			Name:     s.Name,
			Category: s.CategoryName,
			Price:    s.Price,
			Status:   s.Status,
		})
	}
	return &dto.ProductListResponse{Products: items}, nil
}

// GetDetail devuelve el producto completo, con la imagen en base64.
func (uc *ProductUseCase) GetDetail(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if product == nil {
		return nil, domain.NotFound(MsgProductNotFound)
	}
	out := toProductResponse(product)
	return &out, nil
}

// Report genera el PDF con el listado de productos.
func (uc *ProductUseCase) Report(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.ListSummaries(ctx)
	if err != nil {
		return nil, domain.Storage(err)
	}
	pdf, err := uc.report.RenderProductReport(ctx, list, time.Now())
	if err != nil {
		return nil, domain.WrapError(domain.ErrProcessing, "Error al generar el reporte de productos", err)
	}
	return pdf, nil
}

func (uc *ProductUseCase) checkImage(img *dto.ProductImage) ([]byte, error) {
	if img == nil || len(img.Data) == 0 {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(strings.SplitN(img.ContentType, ";", 2)[0])) {
	case "image/jpeg", "image/png":
	default:
		return nil, domain.NewError(domain.ErrUnsupportedFile, MsgImageType)
	}
	if uc.imageMaxBytes > 0 && int64(len(img.Data)) > uc.imageMaxBytes {
		return nil, domain.Validation(fmt.Sprintf("La imagen no puede superar %d MB", uc.imageMaxBytes>>20))
	}
	return img.Data, nil
}

func productWriteError(err error) error {
	var rule *domain.RuleViolation
	switch {
	case errors.Is(err, domain.ErrDuplicateKey):
		return domain.Conflict(MsgProductExists)
	case errors.Is(err, domain.ErrForeignKey):
		return domain.Validation(MsgProductBadReference)
	case errors.As(err, &rule):
		return domain.WrapError(domain.ErrValidation, "los datos ingresados: "+rule.Message, err)
	}
	return domain.Storage(err)
}

func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !entity.ValidProductPrice(price) {
		return decimal.Zero, domain.Validation(MsgProductPrice)
	}
	return price, nil
}

func parseStock(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, domain.Validation("La cantidad en stock debe ser un entero mayor o igual a cero")
	}
	return n, nil
}

func parseRef(field, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.Validation(field + " debe ser un identificador válido")
	}
	return n, nil
}

func validStatus(s string) bool {
	return entity.ValidProductStatus(s)
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Status:        p.Status,
		CategoryID:    p.CategoryID,
		WarehouseID:   p.WarehouseID,
	}
	if len(p.Image) > 0 {
		enc := base64.StdEncoding.EncodeToString(p.Image)
		out.Image = &enc
	}
	return out
}
