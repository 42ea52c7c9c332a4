package bootstrap

import (
	"context"
	"log/slog"

	"course-booking/internal/infra/events"
	"course-booking/internal/pkg/config"
	"course-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher degrades to the no-op publisher when the broker is unset
// or unreachable.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set, booking events disabled")
		return events.NopPublisher{}
	}

	pub, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		slog.Warn("amqp connection failed, booking events disabled", "error", err.Error())
		return events.NopPublisher{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
