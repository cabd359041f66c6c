package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

const DefaultSessionTTL = 24 * time.Hour

type Service struct {
	repo     Repository
	sessions SessionStore
	ttl      time.Duration
	now      func() time.Time
}

func NewService(repo Repository, sessions SessionStore, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		repo:     repo,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Register crea la cuenta (ya validada por el form), la mete al grupo
// Employee y no otorga permisos: esos se asignan por fuera.
func (s *Service) Register(ctx context.Context, f RegisterForm) (User, error) {
	if f.Username == "" || f.Password == "" {
		return User{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByUsername(ctx, f.Username); err == nil {
		return User{}, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := HashPassword(f.Password)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     f.Username,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Email:        f.Email,
		PasswordHash: hash,
		Groups:       []string{GroupEmployee},
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate no distingue "usuario desconocido" de "contraseña mala":
// el caller recibe ErrInvalidCredentials en ambos casos.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if !CheckPassword(u.PasswordHash, password) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) StartSession(ctx context.Context, userID string) (Session, error) {
	if userID == "" {
		return Session{}, ErrInvalidInput
	}

	now := s.now()
	sess := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// EndSession es idempotente: un token inexistente no es error.
func (s *Service) EndSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// UserFromSession resuelve el usuario de una sesión vigente.
func (s *Service) UserFromSession(ctx context.Context, token string) (User, error) {
	sess, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return User{}, ErrNotFound
	}
	if sess.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, sess.Token)
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, sess.UserID)
}

// ConfirmDelete implementa el protocolo de confirmación de borrado:
// ambas contraseñas iguales Y la contraseña autentica al usuario
// actualmente logueado (no al dueño del registro).
func (s *Service) ConfirmDelete(u User, f DeleteForm) bool {
	if f.Password == "" || f.Password != f.Confirm {
		return false
	}
	return CheckPassword(u.PasswordHash, f.Password)
}
