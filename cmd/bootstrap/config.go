package bootstrap

import (
	"log/slog"
	"time"

	"course-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// ShutdownTimeout bounds fx's OnStop hooks: HTTP drain, then the broker and
// redis connections, then the pool.
const ShutdownTimeout = 15 * time.Second

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

func logConfig(cfg config.Config) {
	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"app_timezone", cfg.App.TimeZone,
		"tx_max_retries", cfg.Tx.MaxRetries,
		"redis_enabled", cfg.Redis.Addr != "",
		"amqp_enabled", cfg.AMQP.URL != "")
}
