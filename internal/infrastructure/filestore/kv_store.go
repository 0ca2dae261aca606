// Package filestore implementa los puertos de persistencia sobre archivos locales:
// un archivo JSON por clave y un diario de movimientos en formato JSON Lines.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/girochef/girochef-api/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

// KVStore guarda cada clave en <dir>/<clave>.json. La escritura es atómica (archivo temporal + rename).
type KVStore struct {
	dir string
	mu  sync.Mutex
}

// NewKVStore crea el directorio si no existe.
func NewKVStore(dir string) (*KVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	return &KVStore{dir: dir}, nil
}

func (s *KVStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("clave inválida: %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get lee el archivo de la clave. found=false si no existe.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("leer %s: %w", p, err)
	}
	return b, true, nil
}

// Set reemplaza el archivo de la clave.
func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("renombrar %s: %w", key, err)
	}
	return nil
}
