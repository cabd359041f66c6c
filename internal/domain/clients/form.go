package clients

import (
	"net/url"

	"pet-registry/internal/platform/forms"
)

const maxFieldLength = 50

// Form son los valores saneados del formulario de cliente.
// Se usa tanto para crear como para editar (update de registro completo).
type Form struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
	City        string
	State       string
}

// ParseForm valida todos los campos en una sola pasada. Cualquier
// violación rechaza el submit completo; no hay guardado parcial.
func ParseForm(v url.Values) (Form, forms.Errors) {
	e := forms.Errors{}

	f := Form{
		FirstName:   forms.Trimmed(v, "first_name"),
		LastName:    forms.Trimmed(v, "last_name"),
		Email:       forms.Trimmed(v, "email"),
		PhoneNumber: forms.Trimmed(v, "phone_number"),
		Address:     forms.Trimmed(v, "address"),
		City:        forms.Trimmed(v, "city"),
		State:       forms.Trimmed(v, "state"),
	}

	check := func(field, value string) {
		forms.Required(e, field, value)
		forms.MaxLen(e, field, value, maxFieldLength)
	}

	check("first_name", f.FirstName)
	check("last_name", f.LastName)
	check("email", f.Email)
	forms.Email(e, "email", f.Email)
	check("phone_number", f.PhoneNumber)
	check("address", f.Address)
	check("city", f.City)
	check("state", f.State)

	return f, e
}
