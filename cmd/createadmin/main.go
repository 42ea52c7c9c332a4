package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"course-booking/internal/infra/db"
	"course-booking/internal/infra/pgstore"
	"course-booking/internal/infra/uow"
	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/config"
	"course-booking/internal/pkg/jwt"
	"course-booking/internal/usecase/commands"
)

// createadmin provisions an administrator account. The password is read from
// ADMIN_PASSWORD.
func main() {
	email := flag.String("email", "", "admin email address")
	flag.Parse()

	password := os.Getenv("ADMIN_PASSWORD")
	if *email == "" || password == "" {
		slog.Error("-email と ADMIN_PASSWORD は必須です")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		slog.Error("データベース接続に失敗しました", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	clk := clock.NewRealClock(cfg.App.Location())
	u := uow.NewPostgresUoW(pool, pgstore.New(), clk, cfg.Tx)
	auth := commands.NewAuthCommands(u, jwt.NewService(cfg.JWT.Secret, time.Hour, clk))

	id, err := auth.CreateAdmin(ctx, *email, password)
	if err != nil {
		slog.Error("管理者の作成に失敗しました", "email", *email, "error", err)
		os.Exit(1)
	}
	slog.Info("管理者を作成しました", "id", id.String(), "email", *email)
}
