package pgstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const adminColumns = `id, email, password_hash, is_active, last_login_at`

const getAdminByEmail = `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`

func (q *Queries) GetAdminByEmail(ctx context.Context, db DBTX, email string) (Admin, error) {
	rows, err := db.Query(ctx, getAdminByEmail, email)
	if err != nil {
		return Admin{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Admin])
}

const getAdminByID = `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

func (q *Queries) GetAdminByID(ctx context.Context, db DBTX, id uuid.UUID) (Admin, error) {
	rows, err := db.Query(ctx, getAdminByID, id)
	if err != nil {
		return Admin{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Admin])
}

const createAdmin = `INSERT INTO admins (id, email, password_hash, is_active) VALUES ($1, $2, $3, $4)`

type CreateAdminParams struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
}

func (q *Queries) CreateAdmin(ctx context.Context, db DBTX, arg CreateAdminParams) error {
	_, err := db.Exec(ctx, createAdmin, arg.ID, arg.Email, arg.PasswordHash, arg.IsActive)
	return err
}

const updateAdminLastLogin = `UPDATE admins SET last_login_at = $2 WHERE id = $1`

func (q *Queries) UpdateAdminLastLogin(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, updateAdminLastLogin, id, at)
	return err
}
