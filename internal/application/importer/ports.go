package importer

import (
	"context"
	"io"

	"github.com/jhoicas/ventaspro-admin-api/internal/domain/entity"
)

// UploadStore almacén temporal de los archivos subidos (disco local o MinIO).
type UploadStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}

// RowLoader registra una fila de la carga masiva. La implementación debe comprobar e insertar
// de forma atómica e indicar con duplicate=true que el producto ya existía.
type RowLoader interface {
	LoadRow(ctx context.Context, row *entity.ImportRow) (duplicate bool, err error)
}
