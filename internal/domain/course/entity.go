package course

import (
	"strings"
	"time"

	"course-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

type Course struct {
	id          uuid.UUID
	title       string
	description string
	category    *string
	isActive    bool
	schedules   []Schedule
	createdAt   time.Time
	updatedAt   time.Time
}

type Input struct {
	Title       string
	Description string
	Category    *string
	IsActive    *bool
	Schedules   []ScheduleInput
}

// Patch carries optional fields; nil means "keep the stored value".
// A non-nil Schedules replaces the whole list.
type Patch struct {
	Title       *string
	Description *string
	Category    *string
	IsActive    *bool
	Schedules   *[]ScheduleInput
}

func NewCourse(in Input, now time.Time) (*Course, error) {
	title, err := validateTitle(in.Title)
	if err != nil {
		return nil, err
	}

	schedules, err := buildSchedules(in.Schedules, now)
	if err != nil {
		return nil, err
	}

	return &Course{
		id:          uuid.New(),
		title:       title,
		description: strings.TrimSpace(in.Description),
		category:    patch.TrimmedString(in.Category),
		isActive:    patch.Coalesce(in.IsActive, true),
		schedules:   schedules,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	title, description string,
	category *string,
	isActive bool,
	schedules []Schedule,
	createdAt, updatedAt time.Time,
) *Course {
	return &Course{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		isActive:    isActive,
		schedules:   schedules,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Apply merges p into the course. updatedAt is stamped even for an empty patch.
func (c *Course) Apply(p Patch, now time.Time) error {
	title := c.title
	if p.Title != nil {
		t, err := validateTitle(*p.Title)
		if err != nil {
			return err
		}
		title = t
	}

	schedules := c.schedules
	if p.Schedules != nil {
		s, err := buildSchedules(*p.Schedules, now)
		if err != nil {
			return err
		}
		schedules = s
	}

	c.title = title
	c.schedules = schedules
	c.description = strings.TrimSpace(patch.Coalesce(p.Description, c.description))
	if p.Category != nil {
		c.category = patch.TrimmedString(p.Category)
	}
	c.isActive = patch.Coalesce(p.IsActive, c.isActive)
	c.updatedAt = now
	return nil
}

func (c *Course) ID() uuid.UUID         { return c.id }
func (c *Course) Title() string         { return c.title }
func (c *Course) Description() string   { return c.description }
func (c *Course) Category() *string     { return c.category }
func (c *Course) IsActive() bool        { return c.isActive }
func (c *Course) Schedules() []Schedule { return c.schedules }
func (c *Course) CreatedAt() time.Time  { return c.createdAt }
func (c *Course) UpdatedAt() time.Time  { return c.updatedAt }

func (c *Course) Schedule(id string) (Schedule, bool) {
	for _, s := range c.schedules {
		if s.id == id {
			return s, true
		}
	}
	return Schedule{}, false
}

func validateTitle(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptyTitle
	}
	if len([]rune(t)) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return t, nil
}

func buildSchedules(inputs []ScheduleInput, now time.Time) ([]Schedule, error) {
	if len(inputs) == 0 {
		return nil, ErrNoSchedules
	}

	seen := make(map[string]struct{}, len(inputs))
	out := make([]Schedule, 0, len(inputs))
	for _, in := range inputs {
		s, err := NewSchedule(in, now)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[s.id]; dup {
			return nil, ErrDuplicateScheduleID
		}
		seen[s.id] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}
