package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pet-registry/internal/ports/files"
)

// Store escribe los archivos subidos bajo un directorio raíz (default
// "./media"); las referencias quedan relativas a esa raíz, p.ej.
// "images/<uuid>.jpg".
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		root = "media"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Store{root: root}, nil
}

// Root es el directorio servido bajo /media.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	name = filepath.ToSlash(filepath.Clean(name))
	if name == "" || strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	dst := filepath.Join(s.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return name, nil
}

var _ files.Store = (*Store)(nil)
