//go:build e2e || integration

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"course-booking/internal/domain/course"
	"course-booking/internal/infra/converter"
	"course-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestAdmin(t *testing.T, db DBLike, email, plain string) uuid.UUID {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	adminID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO admins (id, email, password_hash, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (email) DO NOTHING",
		adminID, strings.ToLower(email), hash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM admins WHERE email = $1", strings.ToLower(email)).Scan(&adminID)
	}
	return adminID
}

// CreateTestCourse stores c as is, keeping its id and schedule ids.
func CreateTestCourse(t *testing.T, db DBLike, c *course.Course) uuid.UUID {
	t.Helper()

	params, err := converter.CourseToCreateParams(c)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		`INSERT INTO courses (id, title, description, category, is_active, schedules, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		params.ID, params.Title, params.Description, params.Category, params.IsActive,
		params.Schedules, params.CreatedAt, params.UpdatedAt)
	require.NoError(t, err)
	return c.ID()
}

func CountBookings(t *testing.T, db DBLike, courseID uuid.UUID, scheduleID string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE course_id = $1 AND schedule_id = $2", courseID, scheduleID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
