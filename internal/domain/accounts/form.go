package accounts

import (
	"net/url"
	"strings"

	"pet-registry/internal/platform/forms"
)

const maxUsernameLength = 150

// RegisterForm son los valores ya saneados del formulario de registro.
type RegisterForm struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Confirm   string
}

// ParseRegisterForm valida el alta de usuario en un solo paso y
// devuelve los errores por campo. La unicidad del username la resuelve
// el service contra el repositorio.
func ParseRegisterForm(v url.Values) (RegisterForm, forms.Errors) {
	e := forms.Errors{}

	f := RegisterForm{
		Username:  forms.Trimmed(v, "username"),
		FirstName: forms.Trimmed(v, "first_name"),
		LastName:  forms.Trimmed(v, "last_name"),
		Email:     forms.Trimmed(v, "email"),
		// Las contraseñas se toman tal cual, sin trim.
		Password: v.Get("password1"),
		Confirm:  v.Get("password2"),
	}

	forms.Required(e, "username", f.Username)
	forms.MaxLen(e, "username", f.Username, maxUsernameLength)
	if f.Username != "" && !validUsername(f.Username) {
		e.Add("username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}

	forms.Required(e, "first_name", f.FirstName)
	forms.MaxLen(e, "first_name", f.FirstName, 50)
	forms.Required(e, "last_name", f.LastName)
	forms.MaxLen(e, "last_name", f.LastName, 50)
	forms.Required(e, "email", f.Email)
	forms.Email(e, "email", f.Email)

	forms.Required(e, "password1", f.Password)
	if f.Password != "" {
		for _, msg := range ValidatePassword(f.Password, f.Username, f.FirstName, f.LastName, f.Email) {
			e.Add("password1", msg)
		}
	}

	forms.Required(e, "password2", f.Confirm)
	if f.Password != "" && f.Confirm != "" && f.Password != f.Confirm {
		e.Add("password2", "The two password fields didn't match.")
	}

	return f, e
}

// DeleteForm es la confirmación por contraseña que exigen los borrados.
type DeleteForm struct {
	Password string
	Confirm  string
}

func ParseDeleteForm(v url.Values) (DeleteForm, forms.Errors) {
	e := forms.Errors{}

	f := DeleteForm{
		Password: v.Get("password"),
		Confirm:  v.Get("confirm_password"),
	}

	forms.Required(e, "password", f.Password)
	forms.Required(e, "confirm_password", f.Confirm)

	return f, e
}

func validUsername(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("@.+-_", r):
		default:
			return false
		}
	}
	return true
}
