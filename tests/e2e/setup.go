//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"course-booking/cmd/bootstrap"
	"course-booking/cmd/bootstrap/components"
	"course-booking/internal/pkg/config"
	"course-booking/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// 1テストプロセスにつきコンテナは1つ。DBはスイートごとに作る
var (
	pgOnce sync.Once
	pg     *dbtest.Postgres
	pgErr  error
)

func sharedPostgres(t *testing.T) *dbtest.Postgres {
	t.Helper()
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		pg, pgErr = dbtest.StartPostgres(ctx, "e2e-tests")
	})
	require.NoError(t, pgErr, "PostgreSQLコンテナの起動に失敗")
	return pg
}

// newDatabase creates a fresh database with the schema applied and drops it
// when t finishes.
func newDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	server := sharedPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbCfg, err := server.CreateDatabase(ctx)
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	pool, closePool, err := dbtest.OpenWithSchema(ctx, dbCfg)
	require.NoError(t, err, "スキーマの適用に失敗")

	// Cleanup は LIFO なので pool を閉じてから DROP する
	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer dropCancel()
		if err := server.DropDatabase(dropCtx, dbCfg.DBName); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbCfg.DBName, "error", err.Error())
		}
	})
	t.Cleanup(closePool)

	return pool, dbCfg
}

// startApp wires the production fx graph minus config and the pool, which the
// suite owns. Redis and AMQP stay unset so prefill and events are no-ops.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.ClockModule,
		bootstrap.JWTModule,
		bootstrap.RedisModule,
		bootstrap.EventsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

// SharedSuite gives every e2e suite its own database behind a fully wired
// router. Subtests start from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbCfg := newDatabase(t)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg

	s.DB = pool
	s.Config = cfg
	s.Router = startApp(t, pool, cfg)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "テーブルのリセットに失敗")
}
