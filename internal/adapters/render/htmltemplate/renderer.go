package htmltemplate

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"pet-registry/internal/ports/render"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer implementa el colaborador de presentación con html/template.
// Cada página se parsea junto al layout base en su propio set, así
// todas pueden definir su bloque "content" sin pisarse.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	entries, err := fs.ReadDir(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "base.html" {
			continue
		}

		t, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[strings.TrimSuffix(name, ".html")] = t
	}

	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data map[string]any) error {
	t, ok := r.pages[page]
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return fmt.Errorf("unknown page %q", page)
	}

	// Render a buffer primero: un template roto no debe dejar media
	// página escrita.
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

var _ render.Renderer = (*Renderer)(nil)
