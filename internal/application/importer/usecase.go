// Package importer implementa la carga masiva de productos desde un archivo CSV.
package importer

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/ventaspro-admin-api/internal/application/dto"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain"
	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventaspro-admin-api/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Mensajes del resultado de la carga.
const (
	MsgAllDuplicates = "Los datos son correcto. Pero todos los productos en el archivo fueron identificados como duplicados y no se registro en la base de datos."
	MsgPartial       = "Los datos son correcto. Algunos productos fueron identificados como duplicados y no se registro en la base de datos."
	MsgSuccess       = "Archivo subido y datos procesados con éxito"

	msgNoFile          = "No se ha subido ningún archivo"
	msgProcessingFile  = "Error al procesar el archivo."
	msgProcessingData  = "Error al procesar los datos."
	stagingPrefix      = "imports/"
	defaultConcurrency = 8
)

// Config parámetros de la carga masiva.
type Config struct {
	ExpectedFilename string // nombre exacto que debe tener el archivo
	MaxConcurrency   int    // llamadas simultáneas a LoadRow
}

// Upload archivo recibido.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImportUseCase concilia un CSV de productos contra la base: registra las filas nuevas y
// reporta las duplicadas sin fallar la carga completa.
type ImportUseCase struct {
	store  UploadStore
	loader RowLoader
	cfg    Config
	log    *logger.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(store UploadStore, loader RowLoader, cfg Config, log *logger.Logger) *ImportUseCase {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = defaultConcurrency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ImportUseCase{store: store, loader: loader, cfg: cfg, log: log}
}

// Import valida el nombre del archivo, lo guarda temporalmente, lo lee y registra cada fila.
// El archivo temporal se elimina siempre al terminar, haya error o no.
// Las filas ya registradas antes de un error de persistencia no se revierten.
func (uc *ImportUseCase) Import(ctx context.Context, up *Upload) (res *dto.ImportResultResponse, err error) {
	if up == nil || up.Body == nil {
		return nil, domain.Validation(msgNoFile)
	}
	if err := uc.checkFilename(up.Filename); err != nil {
		return nil, err
	}

	key := stagingPrefix + uuid.NewString() + "-" + uc.cfg.ExpectedFilename
	if err := uc.store.Save(ctx, key, up.Body, up.Size, up.ContentType); err != nil {
		return nil, domain.WrapError(domain.ErrProcessing, msgProcessingFile, err)
	}
	defer func() {
		// La limpieza no depende de que la petición siga viva.
		rmErr := uc.store.Remove(context.WithoutCancel(ctx), key)
		if rmErr == nil {
			return
		}
		if err == nil {
			res, err = nil, domain.WrapError(domain.ErrProcessing, msgProcessingData, rmErr)
			return
		}
		uc.log.Warn().Err(rmErr).Str("key", key).Msg("no se pudo eliminar el archivo temporal")
	}()

	data, err := uc.read(ctx, key)
	if err != nil {
		return nil, domain.WrapError(domain.ErrProcessing, msgProcessingFile, err)
	}
	rows, err := ParseRows(data)
	if err != nil {
		return nil, err
	}

	duplicates, err := uc.reconcile(ctx, rows)
	if err != nil {
		return nil, domain.WrapError(domain.ErrProcessing, msgProcessingData, err)
	}

	res = summarize(rows, duplicates)
	uc.log.Info().
		Int("total", res.Total).
		Int("registrados", res.Registered).
		Int("duplicados", len(res.Duplicates)).
		Msg("carga masiva de productos")
	return res, nil
}

func (uc *ImportUseCase) checkFilename(name string) error {
	if name != uc.cfg.ExpectedFilename || !strings.EqualFold(path.Ext(name), ".csv") {
		return domain.NewError(domain.ErrUnsupportedFile,
			fmt.Sprintf("Solo se permite subir el archivo %s", uc.cfg.ExpectedFilename))
	}
	return nil
}

func (uc *ImportUseCase) read(ctx context.Context, key string) ([]byte, error) {
	rc, err := uc.store.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// reconcile envía las filas con un máximo de MaxConcurrency llamadas en curso. El primer
// error cancela las que faltan. El resultado queda indexado como rows.
func (uc *ImportUseCase) reconcile(ctx context.Context, rows []*entity.ImportRow) ([]bool, error) {
	duplicates := make([]bool, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.MaxConcurrency)
	for i, row := range rows {
		if gctx.Err() != nil {
			break
		}
		i, row := i, row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dup, err := uc.loader.LoadRow(gctx, row)
			if err != nil {
				return fmt.Errorf("fila %d: %w", row.Row, err)
			}
			duplicates[i] = dup
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return duplicates, nil
}

func summarize(rows []*entity.ImportRow, duplicates []bool) *dto.ImportResultResponse {
	res := &dto.ImportResultResponse{Total: len(rows)}
	for i, dup := range duplicates {
		if !dup {
			continue
		}
		r := rows[i]
		res.Duplicates = append(res.Duplicates, dto.ImportDuplicate{
			Row:           r.Row,
			Name:          r.Name,
			Description:   r.Description,
			Price:         r.Price,
			StockQuantity: r.StockQuantity,
			Status:        r.Status,
			CategoryID:    r.CategoryID,
			WarehouseID:   r.WarehouseID,
		})
	}
	res.Registered = res.Total - len(res.Duplicates)

	switch {
	case len(res.Duplicates) == res.Total:
		res.Status, res.Message = dto.ImportStatusAllDuplicates, MsgAllDuplicates
	case len(res.Duplicates) > 0:
		res.Status, res.Message = dto.ImportStatusPartial, MsgPartial
	default:
		res.Status, res.Message = dto.ImportStatusSuccess, MsgSuccess
	}
	return res
}
