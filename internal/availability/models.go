package availability

import (
	"time"

	"github.com/reservasalas/BookingService/pkg/types"
)

// CheckRequest параметры проверки слота перед записью бронирования
type CheckRequest struct {
	Date      time.Time        // Дата бронирования (нормализуется сервисом)
	StartTime types.TimeString // Время начала слота
	// InfrastructureID опциональная инфраструктура (комната занимается целиком)
	InfrastructureID *int64
	// EquipmentIDs запрошенное оборудование; повторы означают несколько единиц
	EquipmentIDs []int64
	// ExcludeBookingID исключает бронирование из проверки конфликтов
	// (при обновлении бронирование не должно конфликтовать само с собой)
	ExcludeBookingID *int64
}
