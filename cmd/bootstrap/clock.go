package bootstrap

import (
	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		func(cfg config.Config) clock.Clock {
			return clock.NewRealClock(cfg.App.Location())
		},
	),
)
