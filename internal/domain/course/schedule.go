package course

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Schedule is one concrete session of a course. It only exists embedded in
// its course; there is no standalone schedule record.
type Schedule struct {
	id            string
	dateTime      time.Time
	endTime       *time.Time
	capacity      int
	pcRentalSlots int
}

type ScheduleInput struct {
	ID            string
	DateTime      time.Time
	EndTime       *time.Time
	Capacity      int
	PCRentalSlots int
}

func NewSchedule(in ScheduleInput, now time.Time) (Schedule, error) {
	if in.DateTime.IsZero() {
		return Schedule{}, ErrMissingDateTime
	}
	if in.EndTime != nil && !in.EndTime.After(in.DateTime) {
		return Schedule{}, ErrEndBeforeStart
	}
	if in.Capacity < 1 {
		return Schedule{}, ErrInvalidCapacity
	}
	if in.PCRentalSlots < 0 {
		return Schedule{}, ErrInvalidRentalSlots
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = NewScheduleID(now)
	}

	return Schedule{
		id:            id,
		dateTime:      in.DateTime,
		endTime:       in.EndTime,
		capacity:      in.Capacity,
		pcRentalSlots: in.PCRentalSlots,
	}, nil
}

// ReconstructSchedule rebuilds a stored schedule without validation.
func ReconstructSchedule(in ScheduleInput) Schedule {
	return Schedule{
		id:            in.ID,
		dateTime:      in.DateTime,
		endTime:       in.EndTime,
		capacity:      in.Capacity,
		pcRentalSlots: in.PCRentalSlots,
	}
}

// NewScheduleID returns unix millis followed by six random base36 characters.
func NewScheduleID(now time.Time) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + string(suffix)
}

func (s Schedule) ID() string          { return s.id }
func (s Schedule) DateTime() time.Time { return s.dateTime }
func (s Schedule) EndTime() *time.Time { return s.endTime }
func (s Schedule) Capacity() int       { return s.capacity }
func (s Schedule) PCRentalSlots() int  { return s.pcRentalSlots }

// End falls back to the default session length when no end time was stored.
func (s Schedule) End() time.Time {
	if s.endTime != nil {
		return *s.endTime
	}
	return s.dateTime.Add(DefaultSessionLength * time.Minute)
}

func (s Schedule) Input() ScheduleInput {
	return ScheduleInput{
		ID:            s.id,
		DateTime:      s.dateTime,
		EndTime:       s.endTime,
		Capacity:      s.capacity,
		PCRentalSlots: s.pcRentalSlots,
	}
}
