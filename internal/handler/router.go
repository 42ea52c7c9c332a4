package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"course-booking/internal/handler/api"
	"course-booking/internal/handler/middleware"
	"course-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Course     *api.CourseHandler
	Booking    *api.BookingHandler
	Statistics *api.StatisticsHandler
	Category   *api.CategoryHandler
	Prefill    *api.PrefillHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	course *api.CourseHandler,
	booking *api.BookingHandler,
	statistics *api.StatisticsHandler,
	category *api.CategoryHandler,
	prefill *api.PrefillHandler,
) Handlers {
	return Handlers{
		Auth:       auth,
		Course:     course,
		Booking:    booking,
		Statistics: statistics,
		Category:   category,
		Prefill:    prefill,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/courses", Handler: h.Course.ListActive},
			{Method: http.MethodGet, Path: "/courses/:id", Handler: h.Course.Get},
			{Method: http.MethodGet, Path: "/courses/:id/schedules/:scheduleId/booked", Handler: h.Booking.HasExisting},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Submit},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListOwn},
			{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Booking.CancelOwn},
			{Method: http.MethodGet, Path: "/categories", Handler: h.Category.List},
			{Method: http.MethodGet, Path: "/prefill/:clientId", Handler: h.Prefill.Get},
			{Method: http.MethodPut, Path: "/prefill/:clientId", Handler: h.Prefill.Put},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/courses", Handler: h.Course.ListAll},
				{Method: http.MethodPost, Path: "/courses", Handler: h.Course.Create},
				{Method: http.MethodPut, Path: "/courses/:id", Handler: h.Course.Update},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.AdminList},
				{Method: http.MethodGet, Path: "/bookings/search", Handler: h.Booking.AdminSearch},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.AdminCancel},
				{Method: http.MethodGet, Path: "/schedules", Handler: h.Booking.AdminSchedules},
				{Method: http.MethodGet, Path: "/statistics", Handler: h.Statistics.Bookings},
				{Method: http.MethodGet, Path: "/cancel-logs", Handler: h.Statistics.CancelLogs},
				{Method: http.MethodGet, Path: "/cancel-logs/statistics", Handler: h.Statistics.Cancels},
				{Method: http.MethodPost, Path: "/categories", Handler: h.Category.Create},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
