package update_booking

import (
	"time"

	"github.com/reservasalas/BookingService/pkg/types"
)

// Request модель запроса на обновление бронирования
// Nil-поля сохраняют текущие значения
type Request struct {
	ID               int64             // ID обновляемого бронирования
	InfrastructureID *int64            // Новая инфраструктура (nil - без изменений)
	EquipmentIDs     []int64           // Новый список оборудования (nil - без изменений, пустой - очистить)
	RequesterName    *string           // Новое имя заявителя
	Date             *string           // Новая дата, допускается суффикс времени
	StartTime        *types.TimeString // Новое время начала слота
	Description      *string           // Новое описание
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID               int64            // ID бронирования
	InfrastructureID *int64           // ID инфраструктуры
	EquipmentIDs     []int64          // ID оборудования
	RequesterName    string           // Имя заявителя
	BookingDate      time.Time        // Нормализованная дата бронирования
	StartTime        types.TimeString // Время начала
	Description      string           // Описание

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
