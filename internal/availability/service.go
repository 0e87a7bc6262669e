package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reservasalas/BookingService/internal/domain"
	catalogRepo "github.com/reservasalas/BookingService/internal/infra/storage/catalog"
	"github.com/reservasalas/BookingService/pkg/types"
)

// Service сервис доступности ресурсов: вычисляет свободные ресурсы на слот,
// проверяет предлагаемые бронирования на конфликты и применяет правило
// минимального времени до начала слота
type Service struct {
	bookingRepo    BookingRepository
	catalogRepo    CatalogRepository
	rules          []domain.RestrictionRule
	location       *time.Location
	minLeadMinutes int
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает сервис доступности
// location - референсная зона для нормализации дат и правил "сегодня"
// minLeadMinutes - минимальное время до начала слота при бронировании на сегодня
func NewService(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	location *time.Location,
	minLeadMinutes int,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		catalogRepo:    catalogRepo,
		rules:          domain.DefaultRestrictionRules,
		location:       location,
		minLeadMinutes: minLeadMinutes,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Location возвращает референсную временную зону сервиса
func (s *Service) Location() *time.Location {
	return s.location
}

// ComputeAvailability вычисляет свободные ресурсы на указанную дату и время слота
// Без побочных эффектов: результат целиком выводится из текущего состояния
// каталога и бронирований
func (s *Service) ComputeAvailability(ctx context.Context, date time.Time, startTime types.TimeString, isAdmin bool) (*domain.Availability, error) {
	day := domain.NormalizeDate(date, s.location)

	bookings, err := s.bookingRepo.GetBySlot(ctx, day, startTime, nil)
	if err != nil {
		s.logger.Error("ComputeAvailability: failed to get bookings for %s %s: %v",
			day.Format(domain.DateFormat), startTime, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// Занятая инфраструктура и потребление оборудования на этот слот
	bookedInfra := make(map[int64]bool)
	usedUnits := make(map[int64]int)
	for _, booking := range bookings {
		if booking.InfrastructureID != nil {
			bookedInfra[*booking.InfrastructureID] = true
		}
		for _, equipID := range booking.EquipmentIDs {
			usedUnits[equipID]++
		}
	}

	allInfra, err := s.catalogRepo.ListInfrastructure(ctx)
	if err != nil {
		s.logger.Error("ComputeAvailability: failed to list infrastructure: %v", err)
		return nil, fmt.Errorf("%w: failed to list infrastructure: %v", ErrInternal, err)
	}

	freeInfra := make([]domain.Infrastructure, 0, len(allInfra))
	for _, infra := range allInfra {
		if bookedInfra[infra.ID] {
			continue
		}
		if s.isRestricted(infra.Name, day, startTime, isAdmin) {
			continue
		}
		freeInfra = append(freeInfra, *infra)
	}

	allEquipment, err := s.catalogRepo.ListEquipment(ctx)
	if err != nil {
		s.logger.Error("ComputeAvailability: failed to list equipment: %v", err)
		return nil, fmt.Errorf("%w: failed to list equipment: %v", ErrInternal, err)
	}

	// Полностью исчерпанное оборудование не попадает в ответ
	freeEquipment := make([]domain.AvailableEquipment, 0, len(allEquipment))
	for _, equip := range allEquipment {
		used := usedUnits[equip.ID]
		available := equip.Quantity - used
		if available <= 0 {
			continue
		}
		freeEquipment = append(freeEquipment, domain.AvailableEquipment{
			Equipment:      *equip,
			AvailableUnits: available,
			UsedUnits:      used,
		})
	}

	s.logger.Info("ComputeAvailability: date=%s time=%s admin=%t: %d/%d infrastructure free, %d equipment types available",
		day.Format(domain.DateFormat), startTime, isAdmin, len(freeInfra), len(allInfra), len(freeEquipment))

	return &domain.Availability{
		StartTime:          startTime,
		FreeInfrastructure: freeInfra,
		FreeEquipment:      freeEquipment,
	}, nil
}

// CheckSlot проверяет, что предлагаемое бронирование не конфликтует с существующими
// Успех тихий (nil); конфликт возвращается доменной ошибкой
// Проверка не атомарна относительно последующей записи: вызывающая сторона
// оборачивает CheckSlot и запись в одну транзакцию
func (s *Service) CheckSlot(ctx context.Context, req CheckRequest) error {
	day := domain.NormalizeDate(req.Date, s.location)

	bookings, err := s.bookingRepo.GetBySlot(ctx, day, req.StartTime, req.ExcludeBookingID)
	if err != nil {
		s.logger.Error("CheckSlot: failed to get bookings for %s %s: %v",
			day.Format(domain.DateFormat), req.StartTime, err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// Инфраструктура занимается целиком: один слот - одно бронирование
	if req.InfrastructureID != nil {
		if _, err := s.catalogRepo.GetInfrastructureByID(ctx, *req.InfrastructureID); err != nil {
			if errors.Is(err, catalogRepo.ErrInfrastructureNotFound) {
				return fmt.Errorf("%w: id=%d", ErrInfrastructureNotFound, *req.InfrastructureID)
			}
			return fmt.Errorf("%w: failed to get infrastructure: %v", ErrInternal, err)
		}

		for _, booking := range bookings {
			if booking.UsesInfrastructure(*req.InfrastructureID) {
				s.logger.Warn("CheckSlot: infrastructure id=%d already booked for %s %s by booking id=%d",
					*req.InfrastructureID, day.Format(domain.DateFormat), req.StartTime, booking.ID)
				return fmt.Errorf("%w: infrastructure id=%d", ErrInfrastructureConflict, *req.InfrastructureID)
			}
		}
	}

	// Потребление оборудования существующими бронированиями слота
	usedUnits := make(map[int64]int)
	for _, booking := range bookings {
		for _, equipID := range booking.EquipmentIDs {
			usedUnits[equipID]++
		}
	}

	// Повторы в самом запросе тоже расходуют ёмкость:
	// два одинаковых ID в одном бронировании занимают две единицы
	requested := make(map[int64]int)
	order := make([]int64, 0, len(req.EquipmentIDs))
	for _, equipID := range req.EquipmentIDs {
		if requested[equipID] == 0 {
			order = append(order, equipID)
		}
		requested[equipID]++
	}

	for _, equipID := range order {
		equip, err := s.catalogRepo.GetEquipmentByID(ctx, equipID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrEquipmentNotFound) {
				s.logger.Warn("CheckSlot: equipment id=%d not found", equipID)
				return fmt.Errorf("%w: id=%d", ErrEquipmentNotFound, equipID)
			}
			s.logger.Error("CheckSlot: failed to get equipment id=%d: %v", equipID, err)
			return fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
		}

		if usedUnits[equipID]+requested[equipID] > equip.Quantity {
			s.logger.Warn("CheckSlot: equipment %q exhausted for %s %s: used=%d requested=%d quantity=%d",
				equip.Name, day.Format(domain.DateFormat), req.StartTime, usedUnits[equipID], requested[equipID], equip.Quantity)
			return fmt.Errorf("%w: %s", ErrEquipmentUnavailable, equip.Name)
		}
	}

	return nil
}

// EnforceLeadTime применяет правило минимального времени до начала слота
// Действует только для бронирований на сегодня и только для непривилегированных
// вызывающих. Слоты в прошлом дают отрицательную разницу и отклоняются той же
// проверкой.
func (s *Service) EnforceLeadTime(date time.Time, startTime types.TimeString, isAdmin bool) error {
	if isAdmin {
		return nil
	}

	now := s.timeProvider.Now().In(s.location)
	day := domain.NormalizeDate(date, s.location)

	if !domain.SameDay(day, now, s.location) {
		return nil
	}

	slotInstant, err := startTime.At(day)
	if err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	diff := slotInstant.Sub(now).Minutes()
	if diff < float64(s.minLeadMinutes) {
		s.logger.Warn("EnforceLeadTime: rejected same-day booking for %s %s: %.0f minutes of notice, minimum %d",
			day.Format(domain.DateFormat), startTime, diff, s.minLeadMinutes)
		return &LeadTimeError{
			Date:           day,
			StartTime:      startTime,
			MinimumMinutes: s.minLeadMinutes,
		}
	}

	return nil
}

// isRestricted проверяет инфраструктуру по таблице правил ограничений
func (s *Service) isRestricted(name string, date time.Time, startTime types.TimeString, isAdmin bool) bool {
	for _, rule := range s.rules {
		if rule.AppliesTo(date, startTime, isAdmin) && rule.Restricts(name) {
			return true
		}
	}
	return false
}
