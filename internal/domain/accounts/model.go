package accounts

import "time"

// GroupEmployee es el grupo fijo al que entra todo usuario registrado.
// Nota de negocio: pertenecer a Employee EXCLUYE de crear/borrar
// clientes; esos permisos se asignan por fuera del registro.
const GroupEmployee = "Employee"

// Permisos sobre registros de clientes.
const (
	PermCreateClients = "clients.create"
	PermDeleteClients = "clients.delete"
)

// User representa una cuenta del staff.
type User struct {
	ID           string
	Username     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string

	Groups      []string
	Permissions []string

	CreatedAt time.Time
}

func (u User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g == name {
			return true
		}
	}
	return false
}

func (u User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Session es el estado compartido entre requests. Vive detrás de
// SessionStore; acá solo se mantiene la referencia transitoria.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
