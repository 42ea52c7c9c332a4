//go:build e2e || integration

package dbtest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"course-booking/internal/infra/db"
	"course-booking/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // wait.ForSQL opens through database/sql
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgImage    = "postgres:17"
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

// Postgres is a throwaway server. Each suite carves its own database out of it
// so suites in different packages can share one container.
type Postgres struct {
	container testcontainers.Container
	host      string
	port      string
}

// StartPostgres boots a durability-off server on tmpfs. Serializable retries
// are the slow path under test, not fsync.
func StartPostgres(ctx context.Context, name string) (*Postgres, error) {
	req := testcontainers.ContainerRequest{
		Image:        pgImage,
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "shared_buffers=256MB",
			"-c", "max_connections=200",
			"-c", "log_statement=none",
			// predicate locks per transaction; the concurrency suites hold many
			"-c", "max_pred_locks_per_transaction=256",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return dsn(host, port.Port(), "postgres")
		}).WithStartupTimeout(90 * time.Second),
		Labels: map[string]string{"purpose": name},
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", pgImage, err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		return nil, err
	}
	mapped, err := c.MappedPort(ctx, pgPort)
	if err != nil {
		return nil, err
	}
	return &Postgres{container: c, host: host, port: mapped.Port()}, nil
}

func (p *Postgres) Terminate(ctx context.Context) error {
	return p.container.Terminate(ctx)
}

// CreateDatabase makes a uniquely named database and returns its config.
// CREATE DATABASE races on the template lock when suites start together, so
// it is retried a few times.
func (p *Postgres) CreateDatabase(ctx context.Context) (config.DBConfig, error) {
	name := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	admin, err := pgxpool.New(ctx, dsn(p.host, p.port, "postgres"))
	if err != nil {
		return config.DBConfig{}, err
	}
	defer admin.Close()

	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("retrying CREATE DATABASE", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	if err != nil {
		return config.DBConfig{}, fmt.Errorf("create database %s: %w", name, err)
	}

	return config.DBConfig{
		Host:     p.host,
		Port:     p.port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		MaxConns: 20,
	}, nil
}

func (p *Postgres) DropDatabase(ctx context.Context, name string) error {
	admin, err := pgxpool.New(ctx, dsn(p.host, p.port, "postgres"))
	if err != nil {
		return err
	}
	defer admin.Close()
	_, err = admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
	return err
}

// OpenWithSchema connects and applies schema.sql, the same file atlas
// migrates from.
func OpenWithSchema(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	pool, closePool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := db.ApplySchema(ctx, pool); err != nil {
		closePool()
		return nil, nil, fmt.Errorf("apply schema: %w", err)
	}
	return pool, closePool, nil
}

func dsn(host, port, database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, host, port, database)
}
