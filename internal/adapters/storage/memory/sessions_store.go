package memory

import (
	"context"
	"sync"

	"pet-registry/internal/domain/accounts"
)

type sessionStore struct {
	mu      sync.RWMutex
	byToken map[string]accounts.Session
}

func NewSessionStore() accounts.SessionStore {
	return &sessionStore{
		byToken: make(map[string]accounts.Session),
	}
}

func (s *sessionStore) FindByToken(ctx context.Context, token string) (accounts.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byToken[token]
	if !ok {
		return accounts.Session{}, accounts.ErrNotFound
	}
	return sess, nil
}

func (s *sessionStore) Save(ctx context.Context, sess accounts.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byToken[sess.Token] = sess
	return nil
}

// Delete es idempotente: borrar un token inexistente no es error.
func (s *sessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byToken, token)
	return nil
}
