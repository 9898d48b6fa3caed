package conflict

import (
	"context"
	"fmt"
	"time"

	"github.com/seminarhub/hall-booking-service/internal/domain"
	"github.com/seminarhub/hall-booking-service/pkg/types"
)

// Checker единственная реализация проверки конфликтов бронирований.
// Все точки входа (создание, обновление, публичная проверка) обязаны
// вызывать её, а не повторять логику пересечения интервалов у себя.
type Checker struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewChecker создает новый экземпляр чекера конфликтов
func NewChecker(bookingRepo BookingRepository, logger Logger) *Checker {
	return &Checker{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// HasConflict проверяет, пересекается ли интервал [startTime, endTime)
// с каким-либо не-отклоненным бронированием зала на этот календарный день.
//
// Граничные случаи:
//   - бронирования, которые только касаются (конец одного == начало другого),
//     НЕ конфликтуют;
//   - отклоненные бронирования слот освобождают и не учитываются;
//   - excludeBookingID исключает запись из проверки, чтобы при обновлении
//     бронирование не конфликтовало само с собой.
//
// Вызывающая сторона гарантирует endTime > startTime. Метод не имеет
// побочных эффектов; ошибка хранилища пробрасывается наверх без ретраев.
func (c *Checker) HasConflict(
	ctx context.Context,
	hallID int64,
	date time.Time,
	startTime types.TimeString,
	endTime types.TimeString,
	excludeBookingID *int64,
) (bool, error) {
	bookings, err := c.bookingRepo.GetActiveByHallAndDate(ctx, hallID, date, excludeBookingID)
	if err != nil {
		c.logger.Error("HasConflict: failed to get bookings for hall=%d date=%s: %v",
			hallID, date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: HasConflict - repository error: %v", ErrInternal, err)
	}

	for _, booking := range bookings {
		// Репозиторий уже отсекает отклоненные, но статус проверяем и здесь:
		// чекер не должен зависеть от деталей фильтрации выборки
		if !booking.BlocksSlot() {
			continue
		}

		if domain.Overlaps(booking.StartTime, booking.EndTime, startTime, endTime) {
			c.logger.Info("HasConflict: hall=%d date=%s slot %s-%s overlaps booking id=%d (%s-%s)",
				hallID, date.Format(domain.DateFormat), startTime, endTime,
				booking.ID, booking.StartTime, booking.EndTime)
			return true, nil
		}
	}

	return false, nil
}
