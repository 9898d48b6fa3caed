package halls

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	hallStorage "github.com/seminarhub/hall-booking-service/internal/infra/storage/hall"
	"github.com/seminarhub/hall-booking-service/internal/service/halls/models"
	"github.com/seminarhub/hall-booking-service/pkg/ptr"
)

type MockHallRepository struct {
	mock.Mock
}

func (m *MockHallRepository) Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	args := m.Called(ctx, hall)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hall), args.Error(1)
}

func (m *MockHallRepository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hall), args.Error(1)
}

func (m *MockHallRepository) List(ctx context.Context) ([]*domain.Hall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Hall), args.Error(1)
}

func (m *MockHallRepository) Update(ctx context.Context, id int64, patch domain.HallPatch) (*domain.Hall, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hall), args.Error(1)
}

func (m *MockHallRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func admin() domain.Requester {
	return domain.Requester{UserID: 1, Role: domain.RoleAdmin}
}

func faculty() domain.Requester {
	return domain.Requester{UserID: 42, Role: domain.RoleFaculty}
}

func TestCreate_Success(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("Create", mock.Anything, mock.MatchedBy(func(h *domain.Hall) bool {
		return h.Name == "Большой зал" && h.Capacity == 120
	})).Return(&domain.Hall{ID: 1, Name: "Большой зал", Capacity: 120}, nil)

	resp, err := svc.Create(context.Background(), &models.CreateHallRequest{
		Requester: admin(),
		Name:      "Большой зал",
		Capacity:  120,
		Equipment: []string{"projector", "whiteboard"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	repo.AssertExpectations(t)
}

func TestCreate_FacultyDenied(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateHallRequest{
		Requester: faculty(),
		Name:      "Большой зал",
		Capacity:  120,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, hallStorage.ErrHallAlreadyExists)

	_, err := svc.Create(context.Background(), &models.CreateHallRequest{
		Requester: admin(),
		Name:      "Большой зал",
		Capacity:  120,
	})
	assert.ErrorIs(t, err, ErrHallAlreadyExists)
}

func TestCreate_InvalidCapacity(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateHallRequest{
		Requester: admin(),
		Name:      "Большой зал",
		Capacity:  0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_NameTooShort(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateHallRequest{
		Requester: admin(),
		Name:      " a ",
		Capacity:  50,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_NameLengthCountedInRunes(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	// 120 символов кириллицы занимают 240 байт, но лимит в 120 символов не превышен
	name := strings.Repeat("з", 120)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Hall{ID: 1, Name: name, Capacity: 50}, nil)

	_, err := svc.Create(context.Background(), &models.CreateHallRequest{
		Requester: admin(),
		Name:      name,
		Capacity:  50,
	})
	assert.NoError(t, err)
}

func TestUpdate_Success(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p domain.HallPatch) bool {
		return p.Capacity != nil && *p.Capacity == 150
	})).Return(&domain.Hall{ID: 1, Name: "Большой зал", Capacity: 150}, nil)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateHallRequest{
		Requester: admin(),
		Capacity:  ptr.Ptr(150),
	})
	require.NoError(t, err)
	assert.Equal(t, 150, resp.Capacity)
}

func TestUpdate_EmptyPatch(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateHallRequest{
		Requester: admin(),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("Update", mock.Anything, int64(1), mock.Anything).Return(nil, hallStorage.ErrHallNotFound)

	_, err := svc.Update(context.Background(), 1, &models.UpdateHallRequest{
		Requester: admin(),
		Capacity:  ptr.Ptr(150),
	})
	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestDelete_FacultyDenied(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 1, faculty())
	assert.ErrorIs(t, err, ErrAccessDenied)

	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_Success(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := svc.Delete(context.Background(), 1, admin())
	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockHallRepository)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, hallStorage.ErrHallNotFound)

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrHallNotFound)
}
