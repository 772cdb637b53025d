package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Directory is the fixed-membership lookup table consulted during
// authentication. It is read-only from the client core's perspective.
type Directory interface {
	FindByPhone(ctx context.Context, phone string) (Identity, error)
}

// PostgresDirectory reads registered identities from PostgreSQL.
type PostgresDirectory struct {
	db *pgxpool.Pool
}

// NewPostgresDirectory builds a Postgres-backed identity directory.
func NewPostgresDirectory(db *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

// FindByPhone fetches a registered identity by phone number.
func (d *PostgresDirectory) FindByPhone(ctx context.Context, phone string) (Identity, error) {
	row := d.db.QueryRow(ctx, `SELECT phone, name, role, email, address, city
        FROM identities WHERE phone = $1`, phone)
	var (
		id   Identity
		role string
	)
	if err := row.Scan(&id.Phone, &id.Name, &role, &id.Email, &id.Address, &id.City); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Identity{}, ErrNotRegistered
		}
		return Identity{}, err
	}
	id.Role = Role(role)
	return id, nil
}
