package api

import (
	"net/http"

	"course-booking/internal/handler/httperr"
	"course-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps usecase sentinels to statuses. Unknown errors
// become 500; the cause is kept on the gin context for the request log.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrDuplicateBooking):
		httperr.AbortWithError(c, http.StatusConflict, err, "already booked for this schedule", nil)
	case errs.Is(err, errs.ErrCapacityExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "this schedule is full, choose another", nil)
	case errs.Is(err, errs.ErrRentalQuotaExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "no rental PCs left, please bring your own", nil)
	case errs.Is(err, errs.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "the schedule is busy, please retry", nil)
	case errs.Is(err, errs.ErrCourseNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "course not found", nil)
	case errs.Is(err, errs.ErrScheduleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "schedule not found", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "booking not found", nil)
	case errs.Is(err, errs.ErrBookingNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "booking does not belong to this applicant", nil)
	case errs.Is(err, errs.ErrCancelReasonRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "cancel reason is required", nil)
	case errs.Is(err, errs.ErrInvalidApplicant):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "company name and full name are required", nil)
	case errs.Is(err, errs.ErrInvalidCourse):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "invalid course", gin.H{"reason": err.Error()})
	case errs.Is(err, errs.ErrInvalidCategory), errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "validation failed", nil)
	case errs.Is(err, errs.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "invalid email or password", nil)
	case errs.Is(err, errs.ErrAdminInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "account is inactive", nil)
	case errs.Is(err, errs.ErrAdminExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "admin already exists", nil)
	case errs.Is(err, errs.ErrPrefillNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "nothing remembered for this client", nil)
	case errs.Is(err, errs.ErrStatisticsUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "statistics unavailable, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

var (
	errNotAuthenticated = errs.New("admin not authenticated")
	errEmptySearch      = errs.New("empty search")
)
