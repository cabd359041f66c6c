package files

import (
	"context"
	"io"
)

// Store guarda archivos subidos y devuelve la referencia (path relativo,
// p.ej. "images/<uuid>.jpg") con la que se persiste en el registro.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
