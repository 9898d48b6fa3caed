package halls

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	hallRepo "github.com/seminarhub/hall-booking-service/internal/infra/storage/hall"
	"github.com/seminarhub/hall-booking-service/internal/service/halls/models"
)

// Service сервис для работы с залами
type Service struct {
	hallRepo HallRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса залов
func NewService(hallRepo HallRepository, logger Logger) *Service {
	return &Service{
		hallRepo: hallRepo,
		logger:   logger,
	}
}

// Create создает новый зал
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.CreateHallRequest) (*models.HallResponse, error) {
	s.logger.Info("Create: creating hall name=%q by user=%d", req.Name, req.Requester.UserID)

	if !req.Requester.IsAdmin() {
		s.logger.Warn("Create: access denied for user=%d role=%s", req.Requester.UserID, req.Requester.Role)
		return nil, ErrAccessDenied
	}

	if err := validateName(req.Name); err != nil {
		s.logger.Warn("Create: invalid hall name=%q: %v", req.Name, err)
		return nil, err
	}
	if err := validateCapacity(req.Capacity); err != nil {
		s.logger.Warn("Create: invalid capacity=%d for hall name=%q: %v", req.Capacity, req.Name, err)
		return nil, err
	}

	hall := &domain.Hall{
		Name:      strings.TrimSpace(req.Name),
		Capacity:  req.Capacity,
		Equipment: req.Equipment,
		ImageURL:  req.ImageURL,
	}

	created, err := s.hallRepo.Create(ctx, hall)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallAlreadyExists) {
			s.logger.Warn("Create: hall name=%q already exists", req.Name)
			return nil, ErrHallAlreadyExists
		}
		s.logger.Error("Create: repository error for hall name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created hall id=%d name=%q", created.ID, created.Name)
	return models.FromDomainHall(created), nil
}

// GetByID получает зал по ID
// Доступно всем аутентифицированным пользователям
func (s *Service) GetByID(ctx context.Context, id int64) (*models.HallResponse, error) {
	s.logger.Info("GetByID: fetching hall id=%d", id)

	hall, err := s.hallRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			s.logger.Warn("GetByID: hall id=%d not found", id)
			return nil, ErrHallNotFound
		}
		s.logger.Error("GetByID: repository error for hall id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHall(hall), nil
}

// List получает список всех залов, отсортированный по имени
func (s *Service) List(ctx context.Context) (*models.HallListResponse, error) {
	s.logger.Info("List: fetching halls")

	halls, err := s.hallRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d halls", len(halls))
	return models.FromDomainHallList(halls), nil
}

// Update частично обновляет зал
// Доступно только администраторам. Имена залов в бронированиях остаются
// снимками на момент создания и при переименовании не меняются.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateHallRequest) (*models.HallResponse, error) {
	s.logger.Info("Update: updating hall id=%d by user=%d", id, req.Requester.UserID)

	if !req.Requester.IsAdmin() {
		s.logger.Warn("Update: access denied for user=%d role=%s", req.Requester.UserID, req.Requester.Role)
		return nil, ErrAccessDenied
	}

	patch := req.ToDomainPatch()
	if patch.IsEmpty() {
		s.logger.Warn("Update: empty patch for hall id=%d", id)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			s.logger.Warn("Update: invalid hall name=%q: %v", *patch.Name, err)
			return nil, err
		}
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if patch.Capacity != nil {
		if err := validateCapacity(*patch.Capacity); err != nil {
			s.logger.Warn("Update: invalid capacity=%d for hall id=%d: %v", *patch.Capacity, id, err)
			return nil, err
		}
	}

	updated, err := s.hallRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, hallRepo.ErrHallNotFound):
			s.logger.Warn("Update: hall id=%d not found", id)
			return nil, ErrHallNotFound
		case errors.Is(err, hallRepo.ErrHallAlreadyExists):
			s.logger.Warn("Update: hall name already taken for hall id=%d", id)
			return nil, ErrHallAlreadyExists
		default:
			s.logger.Error("Update: repository error for hall id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated hall id=%d", id)
	return models.FromDomainHall(updated), nil
}

// Delete удаляет зал
// Доступно только администраторам
func (s *Service) Delete(ctx context.Context, id int64, requester domain.Requester) error {
	s.logger.Info("Delete: deleting hall id=%d by user=%d", id, requester.UserID)

	if !requester.IsAdmin() {
		s.logger.Warn("Delete: access denied for user=%d role=%s", requester.UserID, requester.Role)
		return ErrAccessDenied
	}

	if err := s.hallRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			s.logger.Warn("Delete: hall id=%d not found", id)
			return ErrHallNotFound
		}
		s.logger.Error("Delete: repository error for hall id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted hall id=%d", id)
	return nil
}

// Валидация

// Длина имени считается в символах, а не в байтах.
func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	length := utf8.RuneCountInString(trimmed)
	if length < domain.MinHallNameLength || length > domain.MaxHallNameLength {
		return fmt.Errorf("%w: hall name length must be between %d and %d characters",
			ErrInvalidInput, domain.MinHallNameLength, domain.MaxHallNameLength)
	}
	return nil
}

func validateCapacity(capacity int) error {
	if capacity < domain.MinHallCapacity || capacity > domain.MaxHallCapacity {
		return fmt.Errorf("%w: hall capacity must be between %d and %d",
			ErrInvalidInput, domain.MinHallCapacity, domain.MaxHallCapacity)
	}
	return nil
}
