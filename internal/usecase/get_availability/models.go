package get_availability

import (
	"time"

	"github.com/reservasalas/BookingService/pkg/types"
)

// Request модель запроса на получение свободных ресурсов слота
type Request struct {
	Date      string           // Дата, допускается суффикс времени ("2025-10-15T14:30:00Z")
	StartTime types.TimeString // Время начала слота (например, "10:00")
	IsAdmin   bool             // Администратор видит ресурсы, скрытые правилами ограничений
}

// Response модель ответа со свободными ресурсами
type Response struct {
	Date      time.Time        // Нормализованная дата слота
	StartTime types.TimeString // Время начала слота

	FreeInfrastructure []InfrastructureItem // Свободная инфраструктура
	FreeEquipment      []EquipmentItem      // Оборудование с доступными единицами
}

// InfrastructureItem свободная инфраструктура в слоте
type InfrastructureItem struct {
	ID          int64  // ID инфраструктуры
	Name        string // Название
	Description string // Описание
}

// EquipmentItem оборудование с остатком в слоте
type EquipmentItem struct {
	ID             int64  // ID оборудования
	Name           string // Название
	Description    string // Описание
	Quantity       int    // Всего единиц
	AvailableUnits int    // Свободно единиц в слоте
}
