package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-registry/internal/domain/clients"
)

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (
			id, first_name, last_name,
			address, city, state,
			email, phone_number, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		c.ID,
		c.FirstName,
		c.LastName,
		c.Address,
		c.City,
		c.State,
		c.Email,
		c.PhoneNumber,
		c.CreatedAt,
	)
	return err
}

// Update reemplaza el registro completo; created_at nunca se toca.
func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET
			first_name = $2,
			last_name = $3,
			address = $4,
			city = $5,
			state = $6,
			email = $7,
			phone_number = $8
		WHERE id = $1
	`,
		c.ID,
		c.FirstName,
		c.LastName,
		c.Address,
		c.City,
		c.State,
		c.Email,
		c.PhoneNumber,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return nil
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, first_name, last_name,
			address, city, state,
			email, phone_number, created_at
		FROM clients
		WHERE id = $1
	`, id)

	var c clients.Client
	if err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Address,
		&c.City,
		&c.State,
		&c.Email,
		&c.PhoneNumber,
		&c.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return clients.Client{}, clients.ErrNotFound
		}
		return clients.Client{}, err
	}

	return c, nil
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, first_name, last_name,
			address, city, state,
			email, phone_number, created_at
		FROM clients
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		var c clients.Client
		if err := rows.Scan(
			&c.ID,
			&c.FirstName,
			&c.LastName,
			&c.Address,
			&c.City,
			&c.State,
			&c.Email,
			&c.PhoneNumber,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

// Delete elimina el cliente; las mascotas caen por el FK
// ON DELETE CASCADE del esquema.
func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return nil
}
