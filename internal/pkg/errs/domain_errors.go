package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Course errors
	ErrCourseNotFound   = errors.New("course not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidCourse    = errors.New("invalid course")

	// Booking admission errors
	ErrDuplicateBooking    = errors.New("duplicate booking")
	ErrCapacityExceeded    = errors.New("capacity exceeded")
	ErrRentalQuotaExceeded = errors.New("pc rental quota exceeded")
	ErrInvalidApplicant    = errors.New("invalid applicant")
	ErrBookingConflict     = errors.New("booking transaction conflict")

	// Cancellation errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingNotOwned      = errors.New("booking belongs to another applicant")
	ErrCancelReasonRequired = errors.New("cancel reason required")

	// Category errors
	ErrInvalidCategory = errors.New("invalid category")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminInactive      = errors.New("admin account is inactive")
	ErrAdminExists        = errors.New("admin already exists")

	// Prefill errors
	ErrPrefillNotFound = errors.New("prefill not found")

	// Aggregation errors
	ErrStatisticsUnavailable = errors.New("statistics unavailable")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
