package pets

import (
	"net/url"
	"time"

	"pet-registry/internal/platform/forms"
)

const maxFieldLength = 50

// Form son los valores del formulario de mascota. El dueño nunca forma
// parte del field set: se asigna server-side al crear y no se edita.
type Form struct {
	Name     string
	Birthday string // YYYY-MM-DD, tal como llegó (para re-render)
	Sex      string
	Species  string
	Breed    string
	Color    string

	// ParsedBirthday queda seteado cuando Birthday validó bien.
	ParsedBirthday time.Time
}

// ParseForm valida todos los campos en una sola pasada.
func ParseForm(v url.Values) (Form, forms.Errors) {
	e := forms.Errors{}

	f := Form{
		Name:     forms.Trimmed(v, "name"),
		Birthday: forms.Trimmed(v, "birthday"),
		Sex:      forms.Trimmed(v, "sex"),
		Species:  forms.Trimmed(v, "species"),
		Breed:    forms.Trimmed(v, "breed"),
		Color:    forms.Trimmed(v, "color"),
	}

	forms.Required(e, "name", f.Name)
	forms.MaxLen(e, "name", f.Name, maxFieldLength)

	forms.Required(e, "birthday", f.Birthday)
	if f.Birthday != "" {
		t, err := time.Parse("2006-01-02", f.Birthday)
		if err != nil {
			e.Add("birthday", "Enter a valid date in YYYY-MM-DD format.")
		} else {
			f.ParsedBirthday = t
		}
	}

	// Sexo vacío cae al default Unknown.
	if f.Sex == "" {
		f.Sex = SexUnknown
	}
	forms.Choice(e, "sex", f.Sex, SexChoices)

	forms.Required(e, "species", f.Species)
	forms.Choice(e, "species", f.Species, SpeciesChoices)

	forms.Required(e, "breed", f.Breed)
	forms.Choice(e, "breed", f.Breed, BreedChoices)

	forms.Required(e, "color", f.Color)
	forms.MaxLen(e, "color", f.Color, maxFieldLength)

	return f, e
}

// FormFromPet precarga el formulario de edición.
func FormFromPet(p Pet) Form {
	return Form{
		Name:           p.Name,
		Birthday:       p.Birthday.Format("2006-01-02"),
		Sex:            p.Sex,
		Species:        p.Species,
		Breed:          p.Breed,
		Color:          p.Color,
		ParsedBirthday: p.Birthday,
	}
}
