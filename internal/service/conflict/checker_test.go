package conflict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	"github.com/seminarhub/hall-booking-service/pkg/ptr"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetActiveByHallAndDate(ctx context.Context, hallID int64, date time.Time, excludeID *int64) ([]*domain.Booking, error) {
	args := m.Called(ctx, hallID, date, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func TestChecker_HasConflict_Overlap(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := NewChecker(repo, nopLogger{})

	existing := []*domain.Booking{
		{ID: 1, HallID: 7, StartTime: "10:00", EndTime: "12:00", Status: domain.StatusApproved},
	}
	repo.On("GetActiveByHallAndDate", mock.Anything, int64(7), testDate(), (*int64)(nil)).
		Return(existing, nil)

	got, err := checker.HasConflict(context.Background(), 7, testDate(), "11:00", "13:00", nil)
	require.NoError(t, err)
	assert.True(t, got)

	repo.AssertExpectations(t)
}

func TestChecker_HasConflict_TouchingIntervals(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := NewChecker(repo, nopLogger{})

	existing := []*domain.Booking{
		{ID: 1, HallID: 7, StartTime: "10:00", EndTime: "12:00", Status: domain.StatusApproved},
	}
	repo.On("GetActiveByHallAndDate", mock.Anything, int64(7), testDate(), (*int64)(nil)).
		Return(existing, nil)

	// Конец существующего совпадает с началом нового, конфликта нет
	got, err := checker.HasConflict(context.Background(), 7, testDate(), "12:00", "14:00", nil)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestChecker_HasConflict_PendingBlocks(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := NewChecker(repo, nopLogger{})

	existing := []*domain.Booking{
		{ID: 2, HallID: 7, StartTime: "09:00", EndTime: "10:30", Status: domain.StatusPending},
	}
	repo.On("GetActiveByHallAndDate", mock.Anything, int64(7), testDate(), (*int64)(nil)).
		Return(existing, nil)

	// Pending-бронирование удерживает слот так же, как Approved
	got, err := checker.HasConflict(context.Background(), 7, testDate(), "10:00", "11:00", nil)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestChecker_HasConflict_RejectedIgnored(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := NewChecker(repo, nopLogger{})

	// Отклоненное бронирование может попасть в выборку, но слот не удерживает
	existing := []*domain.Booking{
		{ID: 3, HallID: 7, StartTime: "10:00", EndTime: "12:00", Status: domain.StatusRejected},
	}
	repo.On("GetActiveByHallAndDate", mock.Anything, int64(7), testDate(), (*int64)(nil)).
		Return(existing, nil)

	got, err := checker.HasConflict(context.Background(), 7, testDate(), "10:00", "12:00", nil)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestChecker_HasConflict_ExcludeSelf(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := NewChecker(repo, nopLogger{})

	excludeID := ptr.Ptr(int64(5))
	repo.On("GetActiveByHallAndDate", mock.Anything, int64(7), testDate(), excludeID).
		Return([]*domain.Booking{}, nil)

	got, err := checker.HasConflict(context.Background(), 7, testDate(), "10:00", "12:00", excludeID)
	require.NoError(t, err)
	assert.False(t, got)

	repo.AssertExpectations(t)
}

func TestChecker_HasConflict_RepositoryError(t *testing.T) {
	repo := new(MockBookingRepository)
	checker := NewChecker(repo, nopLogger{})

	repo.On("GetActiveByHallAndDate", mock.Anything, int64(7), testDate(), (*int64)(nil)).
		Return(nil, errors.New("connection refused"))

	_, err := checker.HasConflict(context.Background(), 7, testDate(), "10:00", "12:00", nil)
	assert.ErrorIs(t, err, ErrInternal)
}
