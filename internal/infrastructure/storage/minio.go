package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig datos de conexión al bucket.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioStore guarda los archivos subidos como objetos de un bucket MinIO/S3.
type MinioStore struct {
	mc     *minio.Client
	bucket string
}

// NewMinioStore crea el cliente y asegura que el bucket exista.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cliente minio: %w", err)
	}
	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: verificar bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: crear bucket %s: %w", cfg.Bucket, err)
		}
	}
	return &MinioStore{mc: mc, bucket: cfg.Bucket}, nil
}

// Save sube el contenido como objeto. size -1 si se desconoce.
func (s *MinioStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.mc.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("storage: subir %s: %w", key, err)
	}
	return nil
}

// Open devuelve un lector del objeto.
func (s *MinioStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.mc.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", key, err)
	}
	return obj, nil
}

// Remove elimina el objeto.
func (s *MinioStore) Remove(ctx context.Context, key string) error {
	if err := s.mc.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: eliminar %s: %w", key, err)
	}
	return nil
}
