package db

import (
	"context"
	_ "embed"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the desired state of the database. cmd/migrate hands the same
// file to atlas; tests apply it directly.
//
//go:embed schema.sql
var Schema string

func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, Schema)
	return err
}
