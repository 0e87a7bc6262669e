package create_booking

import (
	"context"
	"fmt"

	"github.com/reservasalas/BookingService/internal/availability"
	"github.com/reservasalas/BookingService/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	checker     AvailabilityChecker
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	checker AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		checker:     checker,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и запись идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: requester=%s, date=%s, time=%s, admin=%t",
		req.RequesterName, req.Date, req.StartTime, req.IsAdmin)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату до календарного дня в опорном часовом поясе
	bookingDate, err := domain.ParseDate(req.Date, uc.checker.Location())
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	// 3. Политика минимального времени до слота (админ проходит без проверки)
	if err := uc.checker.EnforceLeadTime(bookingDate, req.StartTime, req.IsAdmin); err != nil {
		uc.logger.Warn("CreateBooking: lead time check failed for date=%s time=%s: %v",
			req.Date, req.StartTime, err)
		return nil, err
	}

	var result *domain.Booking

	// 4. Проверка конфликтов и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Проверяем слот: занятость инфраструктуры и остаток оборудования
		checkReq := availability.CheckRequest{
			Date:             bookingDate,
			StartTime:        req.StartTime,
			InfrastructureID: req.InfrastructureID,
			EquipmentIDs:     req.EquipmentIDs,
		}
		if err := uc.checker.CheckSlot(txCtx, checkReq); err != nil {
			uc.logger.Warn("CreateBooking: slot check failed for date=%s time=%s: %v",
				req.Date, req.StartTime, err)
			return err
		}

		// 4.2. Сохраняем бронирование
		booking := &domain.Booking{
			InfrastructureID: req.InfrastructureID,
			EquipmentIDs:     req.EquipmentIDs,
			RequesterName:    req.RequesterName,
			BookingDate:      bookingDate,
			StartTime:        req.StartTime,
			Description:      req.Description,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:               result.ID,
		InfrastructureID: result.InfrastructureID,
		EquipmentIDs:     result.EquipmentIDs,
		RequesterName:    result.RequesterName,
		BookingDate:      result.BookingDate,
		StartTime:        result.StartTime,
		Description:      result.Description,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}
