package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	bookingStorage "github.com/seminarhub/hall-booking-service/internal/infra/storage/booking"
	"github.com/seminarhub/hall-booking-service/internal/service/bookings/models"
	"github.com/seminarhub/hall-booking-service/pkg/ptr"
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

func (m *MockBookingRepository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleBooking() *domain.Booking {
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

func faculty(id int64) domain.Requester {
	return domain.Requester{UserID: id, Role: domain.RoleFaculty}
}

func admin() domain.Requester {
	return domain.Requester{UserID: 1, Role: domain.RoleAdmin}
}

func TestGetByID_Owner(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(5)).Return(sampleBooking(), nil)

	resp, err := svc.GetByID(context.Background(), 5, faculty(42))
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "2026-09-15", resp.Date)
}

func TestGetByID_ForeignBookingDenied(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(5)).Return(sampleBooking(), nil)

	_, err := svc.GetByID(context.Background(), 5, faculty(99))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_AdminSeesAny(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(5)).Return(sampleBooking(), nil)

	_, err := svc.GetByID(context.Background(), 5, admin())
	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, bookingStorage.ErrBookingNotFound)

	_, err := svc.GetByID(context.Background(), 5, admin())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_FacultyScopedToOwnBookings(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	// Преподаватель запрашивает чужие бронирования, фильтр сужается до его ID
	repo.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.FacultyID != nil && *f.FacultyID == 42
	})).Return([]*domain.Booking{sampleBooking()}, nil)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Requester: faculty(42),
		FacultyID: ptr.Ptr(int64(99)),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	repo.AssertExpectations(t)
}

func TestList_AdminFiltersFreely(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.FacultyID != nil && *f.FacultyID == 99
	})).Return([]*domain.Booking{}, nil)

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Requester: admin(),
		FacultyID: ptr.Ptr(int64(99)),
	})
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestList_InvalidStatus(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Requester: admin(),
		Status:    ptr.Ptr("pending"), // статусы чувствительны к регистру
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_AdminApproves(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("UpdateStatus", mock.Anything, int64(5), domain.StatusApproved).Return(nil)

	approved := sampleBooking()
	approved.Status = domain.StatusApproved
	repo.On("GetByID", mock.Anything, int64(5)).Return(approved, nil)

	resp, err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		Requester: admin(),
		Status:    "Approved",
	})
	require.NoError(t, err)
	assert.Equal(t, "Approved", resp.Status)
}

func TestUpdateStatus_FacultyDenied(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		Requester: faculty(42),
		Status:    "Approved",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
		Requester: admin(),
		Status:    "Cancelled",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_OwnerDeletesApproved(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	// Удаление владельцем разрешено в любом статусе
	booking := sampleBooking()
	booking.Status = domain.StatusApproved
	repo.On("GetByID", mock.Anything, int64(5)).Return(booking, nil)
	repo.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := svc.Delete(context.Background(), 5, faculty(42))
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestDelete_ForeignBookingDenied(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(5)).Return(sampleBooking(), nil)

	err := svc.Delete(context.Background(), 5, faculty(99))
	assert.ErrorIs(t, err, ErrAccessDenied)

	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, bookingStorage.ErrBookingNotFound)

	err := svc.Delete(context.Background(), 5, admin())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
