package course

import "errors"

const (
	MaxTitleLength       = 255
	DefaultSessionLength = 2 * 60 // minutes
)

var (
	ErrEmptyTitle          = errors.New("course title cannot be empty")
	ErrTitleTooLong        = errors.New("course title exceeds maximum length")
	ErrNoSchedules         = errors.New("course must have at least one schedule")
	ErrInvalidCapacity     = errors.New("schedule capacity must be at least 1")
	ErrInvalidRentalSlots  = errors.New("schedule pc rental slots cannot be negative")
	ErrMissingDateTime     = errors.New("schedule start time is required")
	ErrEndBeforeStart      = errors.New("schedule end time must be after start time")
	ErrDuplicateScheduleID = errors.New("schedule ids must be unique within a course")
)
