package create_booking

import (
	"time"

	"github.com/reservasalas/BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	InfrastructureID *int64           // ID инфраструктуры (опционально)
	EquipmentIDs     []int64          // ID оборудования, одна позиция на единицу (повторы допустимы)
	RequesterName    string           // Имя заявителя
	Date             string           // Дата бронирования, допускается суффикс времени ("2025-10-15T14:30:00Z")
	StartTime        types.TimeString // Время начала слота (например, "10:00")
	Description      string           // Описание бронирования
	IsAdmin          bool             // Администратор обходит политику минимального времени
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64            // ID созданного бронирования
	InfrastructureID *int64           // ID инфраструктуры
	EquipmentIDs     []int64          // ID оборудования
	RequesterName    string           // Имя заявителя
	BookingDate      time.Time        // Нормализованная дата бронирования
	StartTime        types.TimeString // Время начала
	Description      string           // Описание

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
