package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"pet-registry/internal/domain/accounts"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u accounts.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, username, first_name, last_name, email,
			password_hash, groups, permissions, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		u.ID,
		u.Username,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
		joinList(u.Groups),
		joinList(u.Permissions),
		u.CreatedAt,
	)
	if isUniqueViolation(err) {
		return accounts.ErrUsernameTaken
	}
	return err
}

// isUniqueViolation detecta el choque con users_username_key por el
// código SQLSTATE, no por el texto del error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (accounts.User, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (accounts.User, error) {
	return r.getBy(ctx, `WHERE username = $1`, username)
}

func (r *UsersRepo) Update(ctx context.Context, u accounts.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			username = $2,
			first_name = $3,
			last_name = $4,
			email = $5,
			password_hash = $6,
			groups = $7,
			permissions = $8
		WHERE id = $1
	`,
		u.ID,
		u.Username,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
		joinList(u.Groups),
		joinList(u.Permissions),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return accounts.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) getBy(ctx context.Context, where string, arg any) (accounts.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, username, first_name, last_name, email,
			password_hash, groups, permissions, created_at
		FROM users
	`+where, arg)

	var u accounts.User
	var groups, perms string
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&groups,
		&perms,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.User{}, accounts.ErrNotFound
		}
		return accounts.User{}, err
	}

	u.Groups = splitList(groups)
	u.Permissions = splitList(perms)
	return u, nil
}

// Grupos y permisos se guardan como lista separada por comas: los
// nombres nunca llevan coma y el set es chico.
func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
