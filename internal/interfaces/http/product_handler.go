package http

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/dto"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/importer"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/usecase"
	"github.com/valyala/fasthttp"
)

// Campos multipart.
const (
	FieldCSVFile      = "file"
	FieldProductImage = "imagen_producto"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	importUC *importer.ImportUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, importUC *importer.ImportUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, importUC: importUC}
}

// Import godoc
// @Summary      Carga masiva de productos (CSV)
// @Description  El archivo debe llamarse carga_productos.csv. Las filas duplicadas (nombre, categoría y almacén) se reportan sin registrarse.
// @Tags         producto
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "carga_productos.csv"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/admin/producto/cargar-productos [post]
func (h *ProductHandler) Import(c *fiber.Ctx) error {
	var upload *importer.Upload
	fh, err := c.FormFile(FieldCSVFile)
	if err == nil {
		f, err := fh.Open()
		if err != nil {
			return writeError(c, err)
		}
		defer f.Close()
		upload = &importer.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Size:        fh.Size,
			Body:        f,
		}
	}
	out, err := h.importUC.Import(c.UserContext(), upload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         producto
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/admin/producto/obtener-productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetDetail godoc
// @Summary      Detalle de producto
// @Tags         producto
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/producto/obtener-detalle-producto/{id} [get]
func (h *ProductHandler) GetDetail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	out, err := h.uc.GetDetail(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         producto
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        nombre_producto  formData  string  true   "Nombre"
// @Param        descripcion      formData  string  true   "Descripción"
// @Param        precio           formData  string  true   "Precio"
// @Param        cantidad_stock   formData  int     true   "Stock"
// @Param        estado           formData  string  false  "activo | inactivo"
// @Param        id_categoria     formData  int     true   "Categoría"
// @Param        id_almacen       formData  int     true   "Almacén"
// @Param        imagen_producto  formData  file    false  "Imagen JPEG o PNG (máx. 5 MB)"
// @Success      201  {object}  dto.ProductEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/producto/crear-producto [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	img, err := readImage(c)
	if err != nil {
		return badRequest(c, "INVALID_IMAGE", "no se pudo leer la imagen")
	}
	out, err := h.uc.Create(c.UserContext(), in, img)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar producto
// @Description  Solo se actualizan los campos enviados.
// @Tags         producto
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id               path      int     true   "ID del producto"
// @Param        nombre_producto  formData  string  false  "Nombre"
// @Param        precio           formData  string  false  "Precio"
// @Param        imagen_producto  formData  file    false  "Imagen JPEG o PNG (máx. 5 MB)"
// @Success      200  {object}  dto.ProductEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/producto/editar-producto/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	img, err := readImage(c)
	if err != nil {
		return badRequest(c, "INVALID_IMAGE", "no se pudo leer la imagen")
	}
	out, err := h.uc.Update(c.UserContext(), id, in, img)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de productos
// @Tags         producto
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/producto/reporte-productos [get]
func (h *ProductHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.uc.Report(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-productos.pdf"`)
	return c.Send(pdf)
}

// readImage lee la imagen opcional del formulario. Sin imagen (o sin multipart) devuelve nil.
func readImage(c *fiber.Ctx) (*dto.ProductImage, error) {
	fh, err := c.FormFile(FieldProductImage)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}
		return nil, err
	}
	return openImage(fh)
}

func openImage(fh *multipart.FileHeader) (*dto.ProductImage, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &dto.ProductImage{ContentType: fh.Header.Get(fiber.HeaderContentType), Data: data}, nil
}
