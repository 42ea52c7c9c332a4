package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"course-booking/internal/handler/middleware"
	"course-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate applies internal/infra/db/schema.sql declaratively with the atlas CLI.
func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned statements without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	client, err := atlasexec.NewClient(".", cfg.Atlas.Bin)
	if err != nil {
		logger.Error("atlas クライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          cfg.Atlas.SchemaFile,
		DevURL:      cfg.Atlas.DevURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("スキーマの適用に失敗しました", "error", err)
		os.Exit(1)
	}

	if *dryRun {
		for _, stmt := range res.Changes.Pending {
			logger.Info("pending", "statement", stmt)
		}
		return
	}
	logger.Info("スキーマを適用しました", "applied", len(res.Changes.Applied))
}
