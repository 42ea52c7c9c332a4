package components

import (
	"course-booking/internal/handler"
	"course-booking/internal/handler/api"
	"course-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCourseHandler,
		api.NewBookingHandler,
		api.NewStatisticsHandler,
		api.NewCategoryHandler,
		api.NewPrefillHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
