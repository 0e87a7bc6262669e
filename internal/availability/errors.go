package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/reservasalas/BookingService/internal/domain"
	"github.com/reservasalas/BookingService/pkg/types"
)

var (
	// ErrInfrastructureConflict возвращается, когда инфраструктура уже забронирована на этот слот
	ErrInfrastructureConflict = errors.New("availability: infrastructure already booked for this slot")

	// ErrInfrastructureNotFound возвращается, когда инфраструктура не найдена в каталоге
	ErrInfrastructureNotFound = errors.New("availability: infrastructure not found")

	// ErrEquipmentUnavailable возвращается, когда у оборудования не хватает свободных единиц на слот
	ErrEquipmentUnavailable = errors.New("availability: equipment has no remaining units for this slot")

	// ErrEquipmentNotFound возвращается, когда оборудование не найдено в каталоге
	ErrEquipmentNotFound = errors.New("availability: equipment not found")

	// ErrLeadTimeTooShort возвращается, когда бронирование на сегодня нарушает минимальное время до начала слота
	ErrLeadTimeTooShort = errors.New("availability: same-day booking requires more notice")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("availability: internal error")
)

// LeadTimeError детализирует нарушение правила минимального времени до начала слота
// Разворачивается в ErrLeadTimeTooShort для errors.Is
type LeadTimeError struct {
	Date           time.Time
	StartTime      types.TimeString
	MinimumMinutes int
}

// Error реализует интерфейс error
func (e *LeadTimeError) Error() string {
	return fmt.Sprintf("%v: booking for %s at %s requires at least %d minutes of notice",
		ErrLeadTimeTooShort, e.Date.Format(domain.DateFormat), e.StartTime, e.MinimumMinutes)
}

// Unwrap возвращает сентинельную ошибку
func (e *LeadTimeError) Unwrap() error {
	return ErrLeadTimeTooShort
}
