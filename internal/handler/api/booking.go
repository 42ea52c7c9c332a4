package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	reqdto "course-booking/internal/handler/dto/request"
	resdto "course-booking/internal/handler/dto/response"
	"course-booking/internal/handler/httperr"
	"course-booking/internal/handler/middleware"
	"course-booking/internal/pkg/clock"
	"course-booking/internal/pkg/config"
	"course-booking/internal/usecase/commands"
	"course-booking/internal/usecase/queries"
	"course-booking/internal/usecase/readmodel"
	"course-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookings commands.BookingCommands
	cancels  commands.CancelCommands
	prefill  commands.PrefillCommands
	q        queries.BookingQueries
	clock    clock.Clock
	loc      *time.Location
}

func NewBookingHandler(
	bookings commands.BookingCommands,
	cancels commands.CancelCommands,
	prefill commands.PrefillCommands,
	q queries.BookingQueries,
	clk clock.Clock,
	cfg config.Config,
) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		cancels:  cancels,
		prefill:  prefill,
		q:        q,
		clock:    clk,
		loc:      cfg.App.Location(),
	}
}

// @Summary Submit booking
// @Description Admits the applicant into a schedule, or rejects with a specific conflict
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ctx := c.Request.Context()
	result, err := h.bookings.SubmitBooking(ctx, commands.SubmitBookingRequest{
		CourseID:      req.CourseID,
		ScheduleID:    req.ScheduleID,
		CompanyName:   req.CompanyName,
		FullName:      req.FullName,
		NeedsPCRental: req.NeedsPCRental,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	if clientID := c.GetHeader(middleware.ClientIDHeader); clientID != "" {
		p := shared.Prefill{CompanyName: req.CompanyName, FullName: req.FullName}
		if perr := h.prefill.Remember(ctx, clientID, p); perr != nil {
			slog.WarnContext(ctx, "failed to remember applicant", "client_id", clientID, "error", perr.Error())
		}
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: result.BookingID})
}

// @Summary Advisory duplicate check
// @Description Answers false when the check itself fails
// @Tags bookings
// @Produce json
// @Param id path string true "Course ID"
// @Param scheduleId path string true "Schedule ID"
// @Param companyName query string true "Company"
// @Param fullName query string true "Full name"
// @Success 200 {object} resdto.ExistingBookingResponse
// @Router /courses/{id}/schedules/{scheduleId}/booked [get]
func (h *BookingHandler) HasExisting(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, resdto.ExistingBookingResponse{Booked: false})
		return
	}
	var q reqdto.ApplicantQuery
	_ = c.ShouldBindQuery(&q)
	booked := h.q.HasExistingBooking(c.Request.Context(), courseID, c.Param("scheduleId"), q.CompanyName, q.FullName)
	c.JSON(http.StatusOK, resdto.ExistingBookingResponse{Booked: booked})
}

// @Summary Own bookings
// @Tags bookings
// @Produce json
// @Param companyName query string true "Company"
// @Param fullName query string true "Full name"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
	var q reqdto.ApplicantQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	rms, err := h.q.ListBookingsByApplicant(c.Request.Context(), q.CompanyName, q.FullName)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondBookings(c, rms)
}

// @Summary Cancel own booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Applicant and reason"
// @Success 200 {object} resdto.CancelResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelOwn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	var req reqdto.CancelBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.cancels.CancelOwnBooking(c.Request.Context(), commands.SelfCancelRequest{
		BookingID:   id,
		CompanyName: req.CompanyName,
		FullName:    req.FullName,
		Reason:      req.Reason,
		Client:      reqdto.ClientInfo(c.Request.UserAgent(), req.TimeZone, h.clock.Now()),
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelResponse{BookingID: result.BookingID, AuditWritten: result.AuditWritten})
}

// @Summary Admin cancel
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.AdminCancelRequest false "Reason"
// @Success 200 {object} resdto.CancelResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) AdminCancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	var req reqdto.AdminCancelRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
			return
		}
	}

	result, err := h.cancels.AdminCancelBooking(c.Request.Context(), commands.AdminCancelRequest{
		BookingID: id,
		Reason:    req.Reason,
		Client:    reqdto.ClientInfo(c.Request.UserAgent(), req.TimeZone, h.clock.Now()),
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelResponse{BookingID: result.BookingID, AuditWritten: result.AuditWritten})
}

// @Summary List bookings with dashboard filters
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param courseId query string false "Course"
// @Param scheduleId query string false "Schedule"
// @Param companyName query string false "Company substring"
// @Param needsPcRental query bool false "Rental flag"
// @Param dateFrom query string false "YYYY-MM-DD"
// @Param dateTo query string false "YYYY-MM-DD, inclusive"
// @Success 200 {array} resdto.BookingResponse
// @Router /admin/bookings [get]
func (h *BookingHandler) AdminList(c *gin.Context) {
	var q reqdto.BookingFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	f, err := q.ToFilter(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}
	rms, err := h.q.FilterBookings(c.Request.Context(), f)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondBookings(c, rms)
}

// @Summary Partial-match search grouped by applicant
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param company query string false "Company part"
// @Param name query string false "Name part"
// @Success 200 {array} stats.ApplicantGroup
// @Router /admin/bookings/search [get]
func (h *BookingHandler) AdminSearch(c *gin.Context) {
	var q reqdto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	if strings.TrimSpace(q.Company) == "" && strings.TrimSpace(q.Name) == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errEmptySearch, "company or name is required", nil)
		return
	}
	groups, err := h.q.SearchBookings(c.Request.Context(), q.Company, q.Name)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// @Summary Bookings grouped by schedule
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} stats.ScheduleGroup
// @Router /admin/schedules [get]
func (h *BookingHandler) AdminSchedules(c *gin.Context) {
	groups, err := h.q.ScheduleGroups(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *BookingHandler) respondBookings(c *gin.Context, rms []readmodel.BookingRM) {
	res, err := resdto.FromBookingRMs(rms)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
