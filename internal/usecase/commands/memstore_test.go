//go:build unit

package commands_test

import (
	"context"
	"sync"

	"course-booking/internal/domain/admin"
	"course-booking/internal/domain/booking"
	"course-booking/internal/domain/cancellog"
	"course-booking/internal/domain/category"
	"course-booking/internal/domain/course"
	"course-booking/internal/infra"
	"course-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore is an in-memory UnitOfWork. Transactions hold one lock for their
// whole body, which gives serializable isolation without conflicts.
type memStore struct {
	mu         sync.Mutex
	courses    map[uuid.UUID]*course.Course
	bookings   map[uuid.UUID]*booking.Booking
	cancelLogs []*cancellog.CancelLog
	categories []*category.Category
	admins     map[string]*admin.Admin

	failCancelLog bool
	txErr         error
	serialCalls   int
}

func newMemStore() *memStore {
	return &memStore{
		courses:  make(map[uuid.UUID]*course.Course),
		bookings: make(map[uuid.UUID]*booking.Booking),
		admins:   make(map[string]*admin.Admin),
	}
}

func (m *memStore) addCourse(c *course.Course) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courses[c.ID()] = c
}

func (m *memStore) addBooking(b *booking.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[b.ID()] = b
}

func (m *memStore) bookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

func (m *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return m.run(ctx, fn)
}

func (m *memStore) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.mu.Lock()
	m.serialCalls++
	txErr := m.txErr
	m.mu.Unlock()
	if txErr != nil {
		return txErr
	}
	return m.run(ctx, fn)
}

func (m *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return m.run(ctx, fn)
}

func (m *memStore) CommandReads() shared.CommandReads {
	return &memTx{store: m, locked: false}
}

// run applies fn to a staged copy of the bookings and keeps it only on success.
func (m *memStore) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := make(map[uuid.UUID]*booking.Booking, len(m.bookings))
	for k, v := range m.bookings {
		staged[k] = v
	}
	committed := m.bookings
	m.bookings = staged

	if err := fn(ctx, &memTx{store: m, locked: true}); err != nil {
		m.bookings = committed
		return err
	}
	return nil
}

type memTx struct {
	store  *memStore
	locked bool
}

func (t *memTx) Bookings() shared.BookingRepository     { return t }
func (t *memTx) Courses() shared.CourseRepository       { return memCourses{t} }
func (t *memTx) CancelLogs() shared.CancelLogRepository { return memCancelLogs{t} }
func (t *memTx) Categories() shared.CategoryRepository  { return memCategories{t} }
func (t *memTx) Admins() shared.AdminRepository         { return memAdmins{t} }
func (t *memTx) Reads() shared.CommandReads             { return t }

func (t *memTx) lock() func() {
	if t.locked {
		return func() {}
	}
	t.store.mu.Lock()
	return t.store.mu.Unlock
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func (t *memTx) ListBySchedule(_ context.Context, courseID uuid.UUID, scheduleID string) ([]booking.Seat, error) {
	defer t.lock()()
	var seats []booking.Seat
	for _, b := range t.store.bookings {
		if b.CourseID() == courseID && b.ScheduleID() == scheduleID {
			seats = append(seats, booking.Seat{
				CompanyName:   b.Applicant().CompanyName(),
				FullName:      b.Applicant().FullName(),
				NeedsPCRental: b.NeedsPCRental(),
			})
		}
	}
	return seats, nil
}

func (t *memTx) Create(_ context.Context, b *booking.Booking) error {
	defer t.lock()()
	for _, existing := range t.store.bookings {
		if existing.CourseID() == b.CourseID() && existing.ScheduleID() == b.ScheduleID() &&
			existing.Applicant().Key() == b.Applicant().Key() {
			return infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)
		}
	}
	t.store.bookings[b.ID()] = b
	return nil
}

func (t *memTx) Delete(_ context.Context, id uuid.UUID) error {
	defer t.lock()()
	if _, ok := t.store.bookings[id]; !ok {
		return notFound()
	}
	delete(t.store.bookings, id)
	return nil
}

func (t *memTx) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	defer t.lock()()
	b, ok := t.store.bookings[id]
	if !ok {
		return nil, notFound()
	}
	return b, nil
}

func (t *memTx) CourseByID(_ context.Context, id uuid.UUID) (*course.Course, error) {
	defer t.lock()()
	c, ok := t.store.courses[id]
	if !ok {
		return nil, notFound()
	}
	return c, nil
}

func (t *memTx) AdminByEmail(_ context.Context, email string) (*admin.Admin, error) {
	defer t.lock()()
	a, ok := t.store.admins[email]
	if !ok {
		return nil, notFound()
	}
	return a, nil
}

type memCourses struct{ *memTx }

func (r memCourses) Create(_ context.Context, c *course.Course) error {
	defer r.lock()()
	r.store.courses[c.ID()] = c
	return nil
}

func (r memCourses) Update(_ context.Context, c *course.Course) error {
	defer r.lock()()
	if _, ok := r.store.courses[c.ID()]; !ok {
		return notFound()
	}
	r.store.courses[c.ID()] = c
	return nil
}

type memCancelLogs struct{ *memTx }

func (r memCancelLogs) Create(_ context.Context, l *cancellog.CancelLog) error {
	defer r.lock()()
	if r.store.failCancelLog {
		return infra.WrapRepoErr("insert cancel log", nil, infra.KindDBFailure)
	}
	r.store.cancelLogs = append(r.store.cancelLogs, l)
	return nil
}

type memCategories struct{ *memTx }

func (r memCategories) Create(_ context.Context, c *category.Category) error {
	defer r.lock()()
	r.store.categories = append(r.store.categories, c)
	return nil
}

type memAdmins struct{ *memTx }

func (r memAdmins) Create(_ context.Context, a *admin.Admin) error {
	defer r.lock()()
	if _, ok := r.store.admins[a.Email()]; ok {
		return infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)
	}
	r.store.admins[a.Email()] = a
	return nil
}

func (r memAdmins) TouchLastLogin(context.Context, uuid.UUID) error {
	return nil
}

// recordingPublisher captures published topics.
type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return p.err
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.topics...)
}
