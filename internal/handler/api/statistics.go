package api

import (
	"net/http"
	"time"

	reqdto "course-booking/internal/handler/dto/request"
	resdto "course-booking/internal/handler/dto/response"
	"course-booking/internal/handler/httperr"
	"course-booking/internal/pkg/config"
	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	stats      queries.StatisticsQueries
	cancelLogs queries.CancelLogQueries
	loc        *time.Location
}

func NewStatisticsHandler(stats queries.StatisticsQueries, cancelLogs queries.CancelLogQueries, cfg config.Config) *StatisticsHandler {
	return &StatisticsHandler{stats: stats, cancelLogs: cancelLogs, loc: cfg.App.Location()}
}

// @Summary Booking statistics
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} stats.BookingStatistics
// @Failure 503 {object} httperr.Response
// @Router /admin/statistics [get]
func (h *StatisticsHandler) Bookings(c *gin.Context) {
	s, err := h.stats.BookingStatistics(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary Cancel statistics
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} stats.CancelStats
// @Failure 503 {object} httperr.Response
// @Router /admin/cancel-logs/statistics [get]
func (h *StatisticsHandler) Cancels(c *gin.Context) {
	s, err := h.stats.CancelStatistics(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary Cancel logs by date range
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD, inclusive"
// @Success 200 {array} resdto.CancelLogResponse
// @Router /admin/cancel-logs [get]
func (h *StatisticsHandler) CancelLogs(c *gin.Context) {
	var q reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	from, to, err := q.Bounds(h.loc)
	if err != nil {
		msg := "Invalid date"
		if errs.Is(err, reqdto.ErrInvertedRange) {
			msg = "from must be on or before to"
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return
	}
	rms, err := h.cancelLogs.ListCancelLogs(c.Request.Context(), from, to)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromCancelLogRMs(rms)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
