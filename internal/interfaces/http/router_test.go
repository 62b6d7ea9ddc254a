package http_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventaspro-admin-api/internal/application/auth"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/dto"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/importer"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/usecase"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/repository"
	"github.com/jhoicas/ventaspro-admin-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/ventaspro-admin-api/internal/interfaces/http"
	"github.com/jhoicas/ventaspro-admin-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: una base en memoria que cubre categorías, productos y trabajadores
// ──────────────────────────────────────────────────────────────────────────────

const (
	seedEmail    = "admin@ventaspro.pe"
	seedPassword = "secreto123"
	csvFilename  = "carga_productos.csv"
)

type memStore struct {
	mu         sync.Mutex
	categories map[int64]string
	products   map[int64]*entity.Product
	workers    map[string]*entity.Worker
	nextID     int64
}

func newMemStore(t *testing.T) *memStore {
	t.Helper()
	hash, err := password.Hash(seedPassword)
	require.NoError(t, err)
	return &memStore{
		categories: map[int64]string{},
		products:   map[int64]*entity.Product{},
		workers: map[string]*entity.Worker{
			seedEmail: {PersonID: 1, Email: seedEmail, PasswordHash: hash, WarehouseID: 1, RoleID: 1},
		},
		nextID: 100,
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

type memCategoryRepo struct{ *memStore }

func (r memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range r.categories {
		if name == c.Name {
			return domain.ErrDuplicateKey
		}
	}
	c.ID = r.id()
	r.categories[c.ID] = c.Name
	return nil
}

func (r memCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &entity.Category{ID: id, Name: name}, nil
}

func (r memCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, n := range r.categories {
		if n == name {
			return &entity.Category{ID: id, Name: n}, nil
		}
	}
	return nil, nil
}

func (r memCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.categories))
	for id, n := range r.categories {
		out = append(out, &entity.Category{ID: id, Name: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memCategoryRepo) Update(_ context.Context, c *entity.Category) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[c.ID]; !ok {
		return false, nil
	}
	r.categories[c.ID] = c.Name
	return true, nil
}

func (r memCategoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	for _, p := range r.products {
		if p.CategoryID == id {
			return false, fmt.Errorf("delete: %w", domain.ErrForeignKey)
		}
	}
	delete(r.categories, id)
	return true, nil
}

type memProductRepo struct{ *memStore }

// checkRefs exige que la categoría exista y que el almacén sea el 1 (el sembrado).
func (r memProductRepo) checkRefs(categoryID, warehouseID int64) error {
	if _, ok := r.categories[categoryID]; !ok || warehouseID != 1 {
		return domain.ErrForeignKey
	}
	return nil
}

func (r memProductRepo) exists(name string, categoryID, warehouseID int64) bool {
	for _, p := range r.products {
		if p.Name == name && p.CategoryID == categoryID && p.WarehouseID == warehouseID {
			return true
		}
	}
	return false
}

func (r memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkRefs(p.CategoryID, p.WarehouseID); err != nil {
		return err
	}
	if r.exists(p.Name, p.CategoryID, p.WarehouseID) {
		return domain.ErrDuplicateKey
	}
	p.ID = r.id()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r memProductRepo) LoadRow(_ context.Context, row *entity.ImportRow) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkRefs(row.CategoryID, row.WarehouseID); err != nil {
		return false, err
	}
	if r.exists(row.Name, row.CategoryID, row.WarehouseID) {
		return true, nil
	}
	id := r.id()
	r.products[id] = &entity.Product{
		ID: id, Name: row.Name, Description: row.Description, Price: row.Price,
		StockQuantity: row.StockQuantity, Status: row.Status,
		CategoryID: row.CategoryID, WarehouseID: row.WarehouseID,
	}
	return false, nil
}

func (r memProductRepo) Update(_ context.Context, id int64, patch entity.ProductPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return false, nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.StockQuantity != nil {
		p.StockQuantity = *patch.StockQuantity
	}
	if patch.Image != nil {
		p.Image = patch.Image
	}
	return true, nil
}

func (r memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r memProductRepo) ExistsByNameCategoryWarehouse(_ context.Context, name string, categoryID, warehouseID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.exists(name, categoryID, warehouseID), nil
}

func (r memProductRepo) ListSummaries(_ context.Context) ([]*entity.ProductSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.ProductSummary, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, &entity.ProductSummary{
			ID: p.ID, Name: p.Name, CategoryName: r.categories[p.CategoryID], Price: p.Price, Status: p.Status,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memWorkerRepo struct{ *memStore }

func (r memWorkerRepo) Register(_ context.Context, w *entity.Worker) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workers[w.Email]; ok {
		return 0, &domain.RuleViolation{Message: "El email ya está registrado"}
	}
	cp := *w
	cp.PersonID = r.id()
	r.workers[w.Email] = &cp
	return cp.PersonID, nil
}

func (r memWorkerRepo) FindByEmail(_ context.Context, email string) (*entity.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[email]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r memWorkerRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.workers)), nil
}

// memTx ejecuta fn directamente sobre la base en memoria.
type memTx struct{ *memStore }

func (t memTx) RunWorker(_ context.Context, fn func(repository.WorkerRepository) error) error {
	return fn(memWorkerRepo{t.memStore})
}

type fakeReport struct{}

func (fakeReport) RenderProductReport(_ context.Context, _ []*entity.ProductSummary, _ time.Time) ([]byte, error) {
	return []byte("%PDF-1.7 fake"), nil
}

var _ auth.TxRunner = memTx{}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildApp arma la API completa sobre la base en memoria y un almacén local temporal.
func buildApp(t *testing.T) (*fiber.App, *memStore) {
	t.Helper()
	db := newMemStore(t)
	uploads, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	products := memProductRepo{db}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		WorkerUC: auth.NewWorkerUseCase(memTx{db}, memWorkerRepo{db}, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		CategoryUC: usecase.NewCategoryUseCase(memCategoryRepo{db}),
		ProductUC:  usecase.NewProductUseCase(products, fakeReport{}, 1<<20),
		ImportUC: importer.NewImportUseCase(uploads, products, importer.Config{
			ExpectedFilename: csvFilename, MaxConcurrency: 2,
		}, nil),
		JWTSecret: testJWTSecret,
	})
	return app, db
}

func jsonRequest(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type filePart struct {
	field, filename, contentType string
	data                         []byte
}

func multipartRequest(t *testing.T, app *fiber.App, method, target, token string, fields map[string]string, files ...filePart) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// login obtiene un Bearer token del trabajador sembrado.
func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := jsonRequest(t, app, http.MethodPost, "/api/admin/login-trabajador", "",
		dto.LoginRequest{Email: seedEmail, Password: seedPassword})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.TokenResponse](t, resp)
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

func createCategory(t *testing.T, app *fiber.App, token, name string) int64 {
	t.Helper()
	resp := jsonRequest(t, app, http.MethodPost, "/api/admin/categoria/registrar-categoria", token,
		dto.CategoryRequest{Name: name})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[dto.CategoryEnvelope](t, resp).Category.ID
}

func productFields(categoryID int64) map[string]string {
	return map[string]string{
		"nombre_producto": "Arroz Costeño 5kg",
		"descripcion":     "Arroz extra",
		"precio":          "24.90",
		"cantidad_stock":  "40",
		"estado":          "activo",
		"id_categoria":    fmt.Sprint(categoryID),
		"id_almacen":      "1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login y registro
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesIncorrectasDevuelve401(t *testing.T) {
	app, _ := buildApp(t)
	resp := jsonRequest(t, app, http.MethodPost, "/api/admin/login-trabajador", "",
		dto.LoginRequest{Email: seedEmail, Password: "otra-clave"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, auth.MsgBadCredentials, decode[dto.ErrorResponse](t, resp).Message)
}

func TestLogin_UsuarioInexistenteDevuelve404(t *testing.T) {
	app, _ := buildApp(t)
	resp := jsonRequest(t, app, http.MethodPost, "/api/admin/login-trabajador", "",
		dto.LoginRequest{Email: "nadie@ventaspro.pe", Password: "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRegistrarTrabajador_RequiereToken(t *testing.T) {
	app, _ := buildApp(t)
	resp := jsonRequest(t, app, http.MethodPost, "/api/admin/register-trabajador", "", dto.RegisterWorkerRequest{})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegistrarTrabajador_DevuelveTokenYPermiteLogin(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)

	in := dto.RegisterWorkerRequest{
		Name: "Luis", PaternalSurname: "Quispe", MaternalSurname: "Mamani",
		DocumentType: "DNI", DocumentNumber: "45678912", Country: "Perú",
		Department: "Cusco", Province: "Cusco", District: "Wanchaq",
		Phone: "987654321", Address: "Av. Sol 123", Email: "luis@ventaspro.pe",
		Password: "clave-segura", WarehouseID: 1, RoleID: 2,
	}
	resp := jsonRequest(t, app, http.MethodPost, "/api/admin/register-trabajador", token, in)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, decode[dto.TokenResponse](t, resp).Token)

	resp = jsonRequest(t, app, http.MethodPost, "/api/admin/login-trabajador", "",
		dto.LoginRequest{Email: in.Email, Password: in.Password})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Segundo registro con el mismo email: la regla de la base lo rechaza.
	resp = jsonRequest(t, app, http.MethodPost, "/api/admin/register-trabajador", token, in)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, resp).Message, "El email ya está registrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategorias_CicloCompleto(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)

	id := createCategory(t, app, token, "Abarrotes")

	resp := jsonRequest(t, app, http.MethodGet, "/api/admin/categoria/obtener-categoria", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.CategoryListResponse](t, resp)
	require.Len(t, list.Categories, 1)
	assert.Equal(t, "Abarrotes", list.Categories[0].Name)

	resp = jsonRequest(t, app, http.MethodPut, fmt.Sprintf("/api/admin/categoria/actualizar-categoria/%d", id), token,
		dto.CategoryRequest{Name: "Abarrotes y granos"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, usecase.MsgCategoryUpdated, decode[dto.CategoryEnvelope](t, resp).Message)

	resp = jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/api/admin/categoria/obtener-categoria/%d", id), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Abarrotes y granos", decode[dto.CategoryEnvelope](t, resp).Category.Name)

	resp = jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/categoria/eliminar-categoria/%d", id), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, usecase.MsgCategoryDeleted, decode[dto.MessageResponse](t, resp).Message)

	resp = jsonRequest(t, app, http.MethodGet, fmt.Sprintf("/api/admin/categoria/obtener-categoria/%d", id), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCategorias_DuplicadaDevuelve400(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)
	createCategory(t, app, token, "Bebidas")

	resp := jsonRequest(t, app, http.MethodPost, "/api/admin/categoria/registrar-categoria", token,
		dto.CategoryRequest{Name: "  Bebidas "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "CONFLICT", body.Code)
	assert.Equal(t, usecase.MsgCategoryExists, body.Message)
}

func TestCategorias_IDInvalidoDevuelve400(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)

	resp := jsonRequest(t, app, http.MethodGet, "/api/admin/categoria/obtener-categoria/abc", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCategorias_ConProductosNoSeElimina(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)
	id := createCategory(t, app, token, "Lácteos")

	resp := multipartRequest(t, app, http.MethodPost, "/api/admin/producto/crear-producto", token, productFields(id))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = jsonRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/categoria/eliminar-categoria/%d", id), token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, usecase.MsgCategoryHasProducts, decode[dto.ErrorResponse](t, resp).Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CrearConImagenYObtenerDetalle(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)
	catID := createCategory(t, app, token, "Abarrotes")

	png := []byte("\x89PNG\r\n\x1a\nfake")
	resp := multipartRequest(t, app, http.MethodPost, "/api/admin/producto/crear-producto", token, productFields(catID),
		filePart{field: apphttp.FieldProductImage, filename: "arroz.png", contentType: "image/png", data: png})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductEnvelope](t, resp)
	assert.Equal(t, usecase.MsgProductCreated, created.Message)

	resp = jsonRequest(t, app, http.MethodGet,
		fmt.Sprintf("/api/admin/producto/obtener-detalle-producto/%d", created.Product.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	detail := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Arroz Costeño 5kg", detail.Name)
	assert.Equal(t, "24.9", detail.Price.String())
	require.NotNil(t, detail.Image)
	assert.Equal(t, base64.StdEncoding.EncodeToString(png), *detail.Image)
}

func TestProductos_ImagenNoPermitidaDevuelve400(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)
	catID := createCategory(t, app, token, "Abarrotes")

	resp := multipartRequest(t, app, http.MethodPost, "/api/admin/producto/crear-producto", token, productFields(catID),
		filePart{field: apphttp.FieldProductImage, filename: "arroz.gif", contentType: "image/gif", data: []byte("GIF89a")})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "UNSUPPORTED_FILE", body.Code)
	assert.Equal(t, usecase.MsgImageType, body.Message)
}

func TestProductos_DuplicadoDevuelve400(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)
	catID := createCategory(t, app, token, "Abarrotes")

	resp := multipartRequest(t, app, http.MethodPost, "/api/admin/producto/crear-producto", token, productFields(catID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = multipartRequest(t, app, http.MethodPost, "/api/admin/producto/crear-producto", token, productFields(catID))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, usecase.MsgProductExists, decode[dto.ErrorResponse](t, resp).Message)
}

func TestProductos_EditarSoloCamposEnviados(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)
	catID := createCategory(t, app, token, "Abarrotes")

	resp := multipartRequest(t, app, http.MethodPost, "/api/admin/producto/crear-producto", token, productFields(catID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := decode[dto.ProductEnvelope](t, resp).Product.ID

	resp = multipartRequest(t, app, http.MethodPut, fmt.Sprintf("/api/admin/producto/editar-producto/%d", id), token,
		map[string]string{"precio": "26.50"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[dto.ProductEnvelope](t, resp)
	assert.Equal(t, "26.5", updated.Product.Price.String())
	assert.Equal(t, 40, updated.Product.StockQuantity)
	assert.Contains(t, updated.Message, "Arroz Costeño 5kg")

	resp = multipartRequest(t, app, http.MethodPut, "/api/admin/producto/editar-producto/9999", token,
		map[string]string{"precio": "1"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProductos_ListadoYReporte(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)
	catID := createCategory(t, app, token, "Abarrotes")
	resp := multipartRequest(t, app, http.MethodPost, "/api/admin/producto/crear-producto", token, productFields(catID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = jsonRequest(t, app, http.MethodGet, "/api/admin/producto/obtener-productos", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.ProductListResponse](t, resp)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "Abarrotes", list.Products[0].Category)

	resp = jsonRequest(t, app, http.MethodGet, "/api/admin/producto/reporte-productos", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "reporte-productos.pdf")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga masiva
// ──────────────────────────────────────────────────────────────────────────────

func csvFile(categoryID int64, names ...string) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(importer.Columns, ",") + "\n")
	for _, n := range names {
		fmt.Fprintf(&b, "%s,Desc,10.50,5,activo,%d,1\n", n, categoryID)
	}
	return []byte(b.String())
}

func TestCargaMasiva_ExitoYLuegoTodosDuplicados(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)
	catID := createCategory(t, app, token, "Abarrotes")
	data := csvFile(catID, "Azúcar rubia", "Fideos")

	resp := multipartRequest(t, app, http.MethodPost, "/api/admin/producto/cargar-productos", token, nil,
		filePart{field: apphttp.FieldCSVFile, filename: csvFilename, contentType: "text/csv", data: data})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	first := decode[dto.ImportResultResponse](t, resp)
	assert.Equal(t, dto.ImportStatusSuccess, first.Status)
	assert.Equal(t, importer.MsgSuccess, first.Message)
	assert.Equal(t, 2, first.Registered)

	resp = multipartRequest(t, app, http.MethodPost, "/api/admin/producto/cargar-productos", token, nil,
		filePart{field: apphttp.FieldCSVFile, filename: csvFilename, contentType: "text/csv", data: data})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	second := decode[dto.ImportResultResponse](t, resp)
	assert.Equal(t, dto.ImportStatusAllDuplicates, second.Status)
	assert.Equal(t, importer.MsgAllDuplicates, second.Message)
	require.Len(t, second.Duplicates, 2)
	assert.Equal(t, "Azúcar rubia", second.Duplicates[0].Name)
}

func TestCargaMasiva_NombreIncorrectoDevuelve400(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)

	resp := multipartRequest(t, app, http.MethodPost, "/api/admin/producto/cargar-productos", token, nil,
		filePart{field: apphttp.FieldCSVFile, filename: "productos.csv", contentType: "text/csv", data: csvFile(1, "X")})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNSUPPORTED_FILE", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCargaMasiva_SinArchivoDevuelve400(t *testing.T) {
	app, _ := buildApp(t)
	token := login(t, app)

	resp := multipartRequest(t, app, http.MethodPost, "/api/admin/producto/cargar-productos", token,
		map[string]string{"otro": "campo"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRutasProtegidas_SinTokenDevuelven401(t *testing.T) {
	app, _ := buildApp(t)
	for _, target := range []string{
		"/api/admin/categoria/obtener-categoria",
		"/api/admin/producto/obtener-productos",
		"/api/admin/producto/obtener-detalle-producto/1",
		"/api/admin/producto/reporte-productos",
	} {
		resp := jsonRequest(t, app, http.MethodGet, target, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, target)
	}
}
