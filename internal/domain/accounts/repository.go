package accounts

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Update(ctx context.Context, u User) error
}

// SessionStore es el colaborador de sesiones, a propósito angosto:
// buscar por token, guardar, invalidar. Nada más.
type SessionStore interface {
	FindByToken(ctx context.Context, token string) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, token string) error
}
