package clients

import "time"

// Client representa la ficha de un dueño registrado.
// Todos los campos de texto son obligatorios a nivel validación
// (no a nivel storage) y están acotados a 50 caracteres.
type Client struct {
	ID          string
	FirstName   string
	LastName    string
	Address     string
	City        string
	State       string
	Email       string
	PhoneNumber string

	// CreatedAt se fija una sola vez al crear; nunca se actualiza.
	CreatedAt time.Time
}
