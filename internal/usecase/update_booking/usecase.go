package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/reservasalas/BookingService/internal/availability"
	"github.com/reservasalas/BookingService/internal/domain"
	bookingRepo "github.com/reservasalas/BookingService/internal/infra/storage/booking"
)

// UseCase use case для обновления бронирования
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

// Execute выполняет use case обновления бронирования
// Проверка конфликтов запускается только при изменении даты, времени,
// инфраструктуры или списка оборудования. Само бронирование исключается
// из выборки, чтобы не конфликтовать с собой. Обновление описания или
// имени заявителя проходит без проверки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: updating booking id=%d", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Чтение, проверка и запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем текущее бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.ID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: repository error for booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Сливаем новые значения с текущими
		merged := *booking
		slotChanged := false

		if req.Date != nil {
			newDate, err := domain.ParseDate(*req.Date, uc.checker.Location())
			if err != nil {
				uc.logger.Warn("UpdateBooking: invalid date=%s: %v", *req.Date, err)
				return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
			}
			if !newDate.Equal(booking.BookingDate) {
				slotChanged = true
			}
			merged.BookingDate = newDate
		}

		if req.StartTime != nil {
			if *req.StartTime != booking.StartTime {
				slotChanged = true
			}
			merged.StartTime = *req.StartTime
		}

		if req.InfrastructureID != nil {
			if infrastructureChanged(booking.InfrastructureID, req.InfrastructureID) {
				slotChanged = true
			}
			merged.InfrastructureID = req.InfrastructureID
		}

		if req.EquipmentIDs != nil {
			if equipmentChanged(booking.EquipmentIDs, req.EquipmentIDs) {
				slotChanged = true
			}
			merged.EquipmentIDs = req.EquipmentIDs
		}

		if req.RequesterName != nil {
			merged.RequesterName = *req.RequesterName
		}
		if req.Description != nil {
			merged.Description = *req.Description
		}

		// 2.3. Проверяем слот только если поменялись дата, время или ресурсы
		if slotChanged {
			checkReq := availability.CheckRequest{
				Date:             merged.BookingDate,
				StartTime:        merged.StartTime,
				InfrastructureID: merged.InfrastructureID,
				EquipmentIDs:     merged.EquipmentIDs,
				ExcludeBookingID: &merged.ID,
			}
			if err := uc.checker.CheckSlot(txCtx, checkReq); err != nil {
				uc.logger.Warn("UpdateBooking: slot check failed for booking id=%d: %v", req.ID, err)
				return err
			}
		} else {
			uc.logger.Info("UpdateBooking: slot unchanged for booking id=%d, skipping conflict check", req.ID)
		}

		// 2.4. Сохраняем обновленное бронирование
		if err := uc.bookingRepo.Update(txCtx, &merged); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = &merged
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

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
