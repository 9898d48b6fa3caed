package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	bookingStorage "github.com/seminarhub/hall-booking-service/internal/infra/storage/booking"
	"github.com/seminarhub/hall-booking-service/pkg/ptr"
	"github.com/seminarhub/hall-booking-service/pkg/types"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateFields(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockConflictChecker struct {
	mock.Mock
}

func (m *MockConflictChecker) HasConflict(ctx context.Context, hallID int64, date time.Time, startTime, endTime types.TimeString, excludeBookingID *int64) (bool, error) {
	args := m.Called(ctx, hallID, date, startTime, endTime, excludeBookingID)
	return args.Bool(0), args.Error(1)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *MockBookingRepository, checker *MockConflictChecker) *UseCase {
	uc := NewUseCase(repo, checker, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:        5,
		HallID:    7,
		FacultyID: 42,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
		Purpose:   "Семинар по распределенным системам",
		Status:    domain.StatusPending,
	}
}

func faculty() domain.Requester {
	return domain.Requester{UserID: 42, Role: domain.RoleFaculty}
}

func admin() domain.Requester {
	return domain.Requester{UserID: 1, Role: domain.RoleAdmin}
}

func TestUpdateBooking_OwnerMovesTime(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := new(MockConflictChecker)
	uc := newTestUseCase(repo, checker)

	booking := existingBooking()
	repo.On("GetByID", mock.Anything, int64(5)).Return(booking, nil)

	// Новый интервал объединяется с существующей датой, проверка
	// исключает само бронирование
	checker.On("HasConflict", mock.Anything, int64(7), booking.Date,
		types.TimeString("14:00"), types.TimeString("16:00"), ptr.Ptr(int64(5))).
		Return(false, nil)

	updated := existingBooking()
	updated.StartTime = "14:00"
	updated.EndTime = "16:00"
	repo.On("UpdateFields", mock.Anything, int64(5), mock.Anything).Return(updated, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		Requester: faculty(),
		BookingID: 5,
		StartTime: ptr.Ptr(types.TimeString("14:00")),
		EndTime:   ptr.Ptr(types.TimeString("16:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)

	checker.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpdateBooking_PurposeOnlySkipsConflictCheck(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := new(MockConflictChecker)
	uc := newTestUseCase(repo, checker)

	repo.On("GetByID", mock.Anything, int64(5)).Return(existingBooking(), nil)

	updated := existingBooking()
	updated.Purpose = "Защита курсовых проектов"
	repo.On("UpdateFields", mock.Anything, int64(5), mock.Anything).Return(updated, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Requester: faculty(),
		BookingID: 5,
		Purpose:   ptr.Ptr("Защита курсовых проектов"),
	})
	require.NoError(t, err)

	checker.AssertNotCalled(t, "HasConflict",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBooking_SlotConflict(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := new(MockConflictChecker)
	uc := newTestUseCase(repo, checker)

	booking := existingBooking()
	repo.On("GetByID", mock.Anything, int64(5)).Return(booking, nil)
	checker.On("HasConflict", mock.Anything, int64(7), booking.Date,
		types.TimeString("14:00"), types.TimeString("16:00"), ptr.Ptr(int64(5))).
		Return(true, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Requester: faculty(),
		BookingID: 5,
		StartTime: ptr.Ptr(types.TimeString("14:00")),
		EndTime:   ptr.Ptr(types.TimeString("16:00")),
	})
	assert.ErrorIs(t, err, ErrSlotConflict)

	repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBooking_MergedTimeRangeInvalid(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := new(MockConflictChecker)
	uc := newTestUseCase(repo, checker)

	repo.On("GetByID", mock.Anything, int64(5)).Return(existingBooking(), nil)

	// Новое начало позже существующего конца 12:00
	_, err := uc.Execute(context.Background(), &Request{
		Requester: faculty(),
		BookingID: 5,
		StartTime: ptr.Ptr(types.TimeString("13:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestUpdateBooking_NotOwner(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := new(MockConflictChecker)
	uc := newTestUseCase(repo, checker)

	repo.On("GetByID", mock.Anything, int64(5)).Return(existingBooking(), nil)

	_, err := uc.Execute(context.Background(), &Request{
		Requester: domain.Requester{UserID: 99, Role: domain.RoleFaculty},
		BookingID: 5,
		Purpose:   ptr.Ptr("Попытка изменить чужое бронирование"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateBooking_FacultyCannotEditApproved(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := new(MockConflictChecker)
	uc := newTestUseCase(repo, checker)

	booking := existingBooking()
	booking.Status = domain.StatusApproved
	repo.On("GetByID", mock.Anything, int64(5)).Return(booking, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Requester: faculty(),
		BookingID: 5,
		Purpose:   ptr.Ptr("Обновление цели после подтверждения"),
	})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestUpdateBooking_AdminEditsApproved(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := new(MockConflictChecker)
	uc := newTestUseCase(repo, checker)

	booking := existingBooking()
	booking.Status = domain.StatusApproved
	repo.On("GetByID", mock.Anything, int64(5)).Return(booking, nil)

	updated := existingBooking()
	updated.Status = domain.StatusApproved
	updated.Purpose = "Перенос по решению администрации"
	repo.On("UpdateFields", mock.Anything, int64(5), mock.Anything).Return(updated, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Requester: admin(),
		BookingID: 5,
		Purpose:   ptr.Ptr("Перенос по решению администрации"),
	})
	assert.NoError(t, err)
}

func TestUpdateBooking_PurposeLengthCountedInRunes(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := new(MockConflictChecker)
	uc := newTestUseCase(repo, checker)

	// 4 символа кириллицы занимают 8 байт, но минимум в 5 символов не набран
	_, err := uc.Execute(context.Background(), &Request{
		Requester: faculty(),
		BookingID: 5,
		Purpose:   ptr.Ptr("Тест"),
	})
	assert.ErrorIs(t, err, ErrInvalidPurpose)

	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateBooking_EmptyPatch(t *testing.T) {
	uc := newTestUseCase(new(MockBookingRepository), new(MockConflictChecker))

	_, err := uc.Execute(context.Background(), &Request{
		Requester: faculty(),
		BookingID: 5,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBooking_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := new(MockConflictChecker)
	uc := newTestUseCase(repo, checker)

	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, bookingStorage.ErrBookingNotFound)

	_, err := uc.Execute(context.Background(), &Request{
		Requester: faculty(),
		BookingID: 5,
		Purpose:   ptr.Ptr("Обновление несуществующего бронирования"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
