package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	hallStorage "github.com/seminarhub/hall-booking-service/internal/infra/storage/hall"
	"github.com/seminarhub/hall-booking-service/internal/integrations/userdirectory"
	"github.com/seminarhub/hall-booking-service/pkg/types"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockHallRepository struct {
	mock.Mock
}

func (m *MockHallRepository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hall), args.Error(1)
}

type MockConflictChecker struct {
	mock.Mock
}

func (m *MockConflictChecker) HasConflict(ctx context.Context, hallID int64, date time.Time, startTime, endTime types.TimeString, excludeBookingID *int64) (bool, error) {
	args := m.Called(ctx, hallID, date, startTime, endTime, excludeBookingID)
	return args.Bool(0), args.Error(1)
}

type MockUserDirectoryClient struct {
	mock.Mock
}

func (m *MockUserDirectoryClient) GetUser(ctx context.Context, userID int64) (*userdirectory.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userdirectory.User), args.Error(1)
}

// fakeTxManager выполняет fn без настоящей транзакции
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

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
}

func bookingDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(
	bookingRepo *MockBookingRepository,
	hallRepo *MockHallRepository,
	checker *MockConflictChecker,
	userClient *MockUserDirectoryClient,
) *UseCase {
	uc := NewUseCase(bookingRepo, hallRepo, checker, userClient, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: fixedNow()}
	return uc
}

func validRequest() *Request {
	return &Request{
		Requester: domain.Requester{UserID: 42, Role: domain.RoleFaculty},
		HallID:    7,
		Date:      bookingDate(),
		StartTime: "10:00",
		EndTime:   "12:00",
		Purpose:   "Семинар по распределенным системам",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	hallRepo := new(MockHallRepository)
	checker := new(MockConflictChecker)
	userClient := new(MockUserDirectoryClient)
	uc := newTestUseCase(bookingRepo, hallRepo, checker, userClient)

	hallRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Hall{ID: 7, Name: "Большой зал"}, nil)
	userClient.On("GetUser", mock.Anything, int64(42)).
		Return(&userdirectory.User{ID: 42, FullName: "Иванова А. П."}, nil)
	checker.On("HasConflict", mock.Anything, int64(7), bookingDate(),
		types.TimeString("10:00"), types.TimeString("12:00"), (*int64)(nil)).
		Return(false, nil)
	bookingRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.HallID == 7 &&
			b.FacultyID == 42 &&
			b.Status == domain.StatusPending &&
			b.HallName == "Большой зал" &&
			b.FacultyName == "Иванова А. П."
	})).Return(&domain.Booking{
		ID:          101,
		HallID:      7,
		FacultyID:   42,
		Date:        bookingDate(),
		StartTime:   "10:00",
		EndTime:     "12:00",
		Status:      domain.StatusPending,
		HallName:    "Большой зал",
		FacultyName: "Иванова А. П.",
	}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Большой зал", resp.HallName)

	bookingRepo.AssertExpectations(t)
	checker.AssertExpectations(t)
}

func TestCreateBooking_SlotConflict(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	hallRepo := new(MockHallRepository)
	checker := new(MockConflictChecker)
	userClient := new(MockUserDirectoryClient)
	uc := newTestUseCase(bookingRepo, hallRepo, checker, userClient)

	hallRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Hall{ID: 7, Name: "Большой зал"}, nil)
	userClient.On("GetUser", mock.Anything, int64(42)).
		Return(&userdirectory.User{ID: 42, FullName: "Иванова А. П."}, nil)
	checker.On("HasConflict", mock.Anything, int64(7), bookingDate(),
		types.TimeString("10:00"), types.TimeString("12:00"), (*int64)(nil)).
		Return(true, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)

	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_InvalidTimeRange(t *testing.T) {
	uc := newTestUseCase(new(MockBookingRepository), new(MockHallRepository),
		new(MockConflictChecker), new(MockUserDirectoryClient))

	req := validRequest()
	req.StartTime = "12:00"
	req.EndTime = "12:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBooking_EndBeforeStart(t *testing.T) {
	uc := newTestUseCase(new(MockBookingRepository), new(MockHallRepository),
		new(MockConflictChecker), new(MockUserDirectoryClient))

	req := validRequest()
	req.StartTime = "14:00"
	req.EndTime = "13:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBooking_PurposeTooShort(t *testing.T) {
	uc := newTestUseCase(new(MockBookingRepository), new(MockHallRepository),
		new(MockConflictChecker), new(MockUserDirectoryClient))

	req := validRequest()
	req.Purpose = "Тест"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPurpose)
}

func TestCreateBooking_PurposeLengthCountedInRunes(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	hallRepo := new(MockHallRepository)
	checker := new(MockConflictChecker)
	userClient := new(MockUserDirectoryClient)
	uc := newTestUseCase(bookingRepo, hallRepo, checker, userClient)

	hallRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Hall{ID: 7, Name: "Большой зал"}, nil)
	userClient.On("GetUser", mock.Anything, int64(42)).
		Return(&userdirectory.User{ID: 42, FullName: "Иванова А. П."}, nil)
	checker.On("HasConflict", mock.Anything, int64(7), bookingDate(),
		types.TimeString("10:00"), types.TimeString("12:00"), (*int64)(nil)).
		Return(false, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: 101, Status: domain.StatusPending}, nil)

	// 480 символов кириллицы занимают больше 500 байт,
	// но лимит в 500 символов не превышен
	req := validRequest()
	req.Purpose = strings.Repeat("семинар ", 60)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBooking_DateInPast(t *testing.T) {
	uc := newTestUseCase(new(MockBookingRepository), new(MockHallRepository),
		new(MockConflictChecker), new(MockUserDirectoryClient))

	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBooking_SameDayAllowed(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	hallRepo := new(MockHallRepository)
	checker := new(MockConflictChecker)
	userClient := new(MockUserDirectoryClient)
	uc := newTestUseCase(bookingRepo, hallRepo, checker, userClient)

	sameDay := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	hallRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Hall{ID: 7, Name: "Большой зал"}, nil)
	userClient.On("GetUser", mock.Anything, int64(42)).
		Return(&userdirectory.User{ID: 42, FullName: "Иванова А. П."}, nil)
	checker.On("HasConflict", mock.Anything, int64(7), sameDay,
		types.TimeString("10:00"), types.TimeString("12:00"), (*int64)(nil)).
		Return(false, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: 102, Date: sameDay, Status: domain.StatusPending}, nil)

	req := validRequest()
	req.Date = sameDay

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBooking_SameDayZonedDateAllowed(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	hallRepo := new(MockHallRepository)
	checker := new(MockConflictChecker)
	userClient := new(MockUserDirectoryClient)
	uc := newTestUseCase(bookingRepo, hallRepo, checker, userClient)

	// Та же календарная дата, что и серверное "сегодня", но со смещением
	// зоны; сравнение дней идет в зоне серверного времени
	sameDay := time.Date(2026, 9, 1, 0, 0, 0, 0, time.FixedZone("UTC+14", 14*3600))

	hallRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Hall{ID: 7, Name: "Большой зал"}, nil)
	userClient.On("GetUser", mock.Anything, int64(42)).
		Return(&userdirectory.User{ID: 42, FullName: "Иванова А. П."}, nil)
	checker.On("HasConflict", mock.Anything, int64(7), sameDay,
		types.TimeString("10:00"), types.TimeString("12:00"), (*int64)(nil)).
		Return(false, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: 103, Status: domain.StatusPending}, nil)

	req := validRequest()
	req.Date = sameDay

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBooking_HallNotFound(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	hallRepo := new(MockHallRepository)
	checker := new(MockConflictChecker)
	userClient := new(MockUserDirectoryClient)
	uc := newTestUseCase(bookingRepo, hallRepo, checker, userClient)

	hallRepo.On("GetByID", mock.Anything, int64(7)).
		Return(nil, hallStorage.ErrHallNotFound)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestCreateBooking_FacultyNotFound(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	hallRepo := new(MockHallRepository)
	checker := new(MockConflictChecker)
	userClient := new(MockUserDirectoryClient)
	uc := newTestUseCase(bookingRepo, hallRepo, checker, userClient)

	hallRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Hall{ID: 7, Name: "Большой зал"}, nil)
	userClient.On("GetUser", mock.Anything, int64(42)).
		Return(nil, userdirectory.ErrUserNotFound)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFacultyNotFound)
}
