package render

import "net/http"

// Renderer es el colaborador de presentación: recibe un contexto de
// página y produce la respuesta. La aplicación no conoce templates.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data map[string]any) error
}
