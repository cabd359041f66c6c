package pets

import "time"

// Sex define el sexo de la mascota. Se almacena el valor visible.
type Sex = string

const (
	SexMale    Sex = "Male"
	SexFemale  Sex = "Female"
	SexUnknown Sex = "Unknown"
)

// SexChoices en orden de presentación.
var SexChoices = []string{SexMale, SexFemale, SexUnknown}

// SpeciesChoices define las especies soportadas.
var SpeciesChoices = []string{"Dog", "Cat", "Other"}

// BreedChoices es el set fijo de razas del formulario.
var BreedChoices = []string{
	"Labrador Retriever",
	"German Shepherd",
	"Golden Retriever",
	"Mixed Breed",
	"Other",
}

// Pet representa el registro de una mascota.
type Pet struct {
	ID       string
	Name     string
	Birthday time.Time
	Sex      Sex    // Male, Female, Unknown (default Unknown)
	Species  string // según SpeciesChoices
	Breed    string // según BreedChoices
	Color    string

	// OwnerID referencia al cliente dueño. El storage admite mascotas
	// sin dueño, aunque los handlers siempre lo asignan al crear.
	OwnerID string

	// ImagePath es la referencia de la imagen subida (p.ej.
	// "images/<uuid>.jpg"). Vacío = sin imagen.
	ImagePath string

	CreatedAt time.Time
	UpdatedAt time.Time
}
