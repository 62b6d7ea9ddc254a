// Package storage guarda temporalmente los archivos subidos (CSV de carga masiva)
// en disco local o en un bucket MinIO.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidKey se devuelve si la clave intenta salir del directorio raíz.
var ErrInvalidKey = errors.New("storage: clave inválida")

// LocalStore guarda los archivos bajo Dir (por defecto Uploads, servido en /uploads).
type LocalStore struct {
	dir string
}

// NewLocalStore construye el store y crea el directorio si no existe.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.dir, clean), nil
}

// Save escribe el contenido de r en la clave indicada.
func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader, _ int64, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("storage: crear directorio: %w", err)
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("storage: crear %s: %w", key, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(p)
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	return f.Close()
}

// Open abre el archivo guardado bajo key.
func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("storage: abrir %s: %w", key, err)
	}
	return f, nil
}

// Remove elimina el archivo. Eliminar una clave inexistente no es error.
func (s *LocalStore) Remove(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: eliminar %s: %w", key, err)
	}
	return nil
}
