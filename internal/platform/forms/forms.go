package forms

import (
	"fmt"
	"net/url"
	"strings"
)

// Errors acumula mensajes de validación por campo.
// Un form es válido solo cuando el mapa queda vacío.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e Errors) Ok() bool {
	return len(e) == 0
}

// Trimmed devuelve el valor del campo sin espacios alrededor.
func Trimmed(v url.Values, key string) string {
	return strings.TrimSpace(v.Get(key))
}

// Required agrega error si el valor está vacío.
func Required(e Errors, field, value string) {
	if value == "" {
		e.Add(field, "This field is required.")
	}
}

// MaxLen agrega error si el valor supera max caracteres.
func MaxLen(e Errors, field, value string, max int) {
	if len([]rune(value)) > max {
		e.Add(field, fmt.Sprintf("Ensure this value has at most %d characters.", max))
	}
}

// Email hace una validación superficial de forma (local@dominio.tld).
func Email(e Errors, field, value string) {
	if value == "" {
		return
	}
	at := strings.Index(value, "@")
	dot := strings.LastIndex(value, ".")
	if at < 1 || dot < at+2 || dot == len(value)-1 || strings.ContainsAny(value, " \t") {
		e.Add(field, "Enter a valid email address.")
	}
}

// Choice agrega error si el valor no pertenece al conjunto permitido.
func Choice(e Errors, field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", value))
}
