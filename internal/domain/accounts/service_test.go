package accounts

import (
	"context"
	"errors"
	"testing"
	"time"
)

// Repos de prueba en memoria, suficientes para el servicio.

type fakeUserRepo struct {
	byID       map[string]User
	byUsername map[string]User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]User{}, byUsername: map[string]User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return ErrUsernameTaken
	}
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return nil
}

type fakeSessionStore struct {
	byToken map[string]Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{byToken: map[string]Session{}}
}

func (s *fakeSessionStore) FindByToken(_ context.Context, token string) (Session, error) {
	sess, ok := s.byToken[token]
	if !ok {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *fakeSessionStore) Save(_ context.Context, sess Session) error {
	s.byToken[sess.Token] = sess
	return nil
}

func (s *fakeSessionStore) Delete(_ context.Context, token string) error {
	delete(s.byToken, token)
	return nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeSessionStore) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	svc := NewService(repo, sessions, DefaultSessionTTL)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo, sessions
}

func TestRegister_AssignsEmployeeGroupAndNoPermissions(t *testing.T) {
	svc, _, _ := newTestService()

	u, err := svc.Register(context.Background(), RegisterForm{
		Username:  "frodo",
		FirstName: "Frodo",
		LastName:  "Baggins",
		Email:     "frodo@shire.example",
		Password:  "Tr0ub4dor&3",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if !u.InGroup(GroupEmployee) {
		t.Fatalf("expected new user in %q group, got %v", GroupEmployee, u.Groups)
	}
	if len(u.Permissions) != 0 {
		t.Fatalf("expected no permissions at registration, got %v", u.Permissions)
	}
	if u.PasswordHash == "Tr0ub4dor&3" {
		t.Fatalf("password stored in plaintext")
	}
	if !CheckPassword(u.PasswordHash, "Tr0ub4dor&3") {
		t.Fatalf("stored hash does not verify the password")
	}
	if u.CreatedAt != svc.now() {
		t.Fatalf("CreatedAt = %v, want %v", u.CreatedAt, svc.now())
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	f := RegisterForm{Username: "frodo", Password: "Tr0ub4dor&3"}
	if _, err := svc.Register(ctx, f); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	if _, err := svc.Register(ctx, f); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterForm{Username: "frodo", Password: "Tr0ub4dor&3"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	u, err := svc.Authenticate(ctx, "frodo", "Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if u.Username != "frodo" {
		t.Fatalf("authenticated as %q", u.Username)
	}

	// Usuario desconocido y contraseña mala devuelven el mismo error.
	if _, err := svc.Authenticate(ctx, "frodo", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bad password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody", "Tr0ub4dor&3"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterForm{Username: "frodo", Password: "Tr0ub4dor&3"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	sess, err := svc.StartSession(ctx, u.ID)
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}
	if sess.Token == "" {
		t.Fatalf("empty session token")
	}
	if got := sess.ExpiresAt.Sub(sess.CreatedAt); got != DefaultSessionTTL {
		t.Fatalf("session ttl = %v, want %v", got, DefaultSessionTTL)
	}

	got, err := svc.UserFromSession(ctx, sess.Token)
	if err != nil {
		t.Fatalf("UserFromSession error: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("resolved wrong user: %q", got.ID)
	}

	if err := svc.EndSession(ctx, sess.Token); err != nil {
		t.Fatalf("EndSession error: %v", err)
	}
	// Idempotente.
	if err := svc.EndSession(ctx, sess.Token); err != nil {
		t.Fatalf("second EndSession error: %v", err)
	}
	if _, err := svc.UserFromSession(ctx, sess.Token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after logout, got %v", err)
	}
}

func TestUserFromSession_Expired(t *testing.T) {
	svc, _, sessions := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterForm{Username: "frodo", Password: "Tr0ub4dor&3"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	sess, err := svc.StartSession(ctx, u.ID)
	if err != nil {
		t.Fatalf("StartSession error: %v", err)
	}

	// Avanzamos el reloj más allá del TTL.
	svc.now = func() time.Time {
		return sess.ExpiresAt.Add(time.Minute)
	}
	if _, err := svc.UserFromSession(ctx, sess.Token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for expired session, got %v", err)
	}
	if _, ok := sessions.byToken[sess.Token]; ok {
		t.Fatalf("expired session not purged from store")
	}
}

func TestConfirmDelete(t *testing.T) {
	hash, err := HashPassword("Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	u := User{PasswordHash: hash}
	svc, _, _ := newTestService()

	cases := []struct {
		name string
		form DeleteForm
		want bool
	}{
		{"matching and correct", DeleteForm{Password: "Tr0ub4dor&3", Confirm: "Tr0ub4dor&3"}, true},
		{"mismatched confirmation", DeleteForm{Password: "Tr0ub4dor&3", Confirm: "other"}, false},
		{"matching but wrong", DeleteForm{Password: "wrong", Confirm: "wrong"}, false},
		{"empty", DeleteForm{}, false},
	}

	for _, tc := range cases {
		if got := svc.ConfirmDelete(u, tc.form); got != tc.want {
			t.Errorf("%s: ConfirmDelete = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRequireClientWrite(t *testing.T) {
	admin := User{Permissions: []string{PermCreateClients, PermDeleteClients}}
	employee := User{Groups: []string{GroupEmployee}, Permissions: []string{PermCreateClients}}

	if d := RequireClientWrite(admin, true, PermCreateClients); !d.Allowed {
		t.Fatalf("admin denied: %s", d.Reason)
	}
	if d := RequireClientWrite(admin, false, PermCreateClients); d.Allowed {
		t.Fatalf("anonymous request allowed")
	}
	if d := RequireClientWrite(User{}, true, PermCreateClients); d.Allowed {
		t.Fatalf("user without permission allowed")
	}
	// El grupo Employee queda excluido aunque tenga el permiso.
	if d := RequireClientWrite(employee, true, PermCreateClients); d.Allowed {
		t.Fatalf("employee allowed despite exclusion rule")
	}
}
