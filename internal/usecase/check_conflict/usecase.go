package check_conflict

import (
	"context"
	"fmt"

	"github.com/seminarhub/hall-booking-service/internal/domain"
)

// UseCase use case публичной проверки конфликта.
// Ответ носит справочный характер: между проверкой и последующим
// созданием бронирования слот может занять кто-то другой, гарантию
// дает только транзакционная проверка при создании.
type UseCase struct {
	checker ConflictChecker
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(checker ConflictChecker, logger Logger) *UseCase {
	return &UseCase{
		checker: checker,
		logger:  logger,
	}
}

// Execute выполняет проверку конфликта для произвольного интервала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflict: hall=%d, date=%s, time=%s-%s",
		req.HallID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	hasConflict, err := uc.checker.HasConflict(
		ctx, req.HallID, req.Date, req.StartTime, req.EndTime, req.ExcludeBookingID)
	if err != nil {
		uc.logger.Error("CheckConflict: conflict check failed: %v", err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}

	return &Response{HasConflict: hasConflict}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	startMin, err := req.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endMin, err := req.EndTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if endMin <= startMin {
		return ErrInvalidTimeRange
	}

	return nil
}
