package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reservasalas/BookingService/internal/domain"
	bookingRepo "github.com/reservasalas/BookingService/internal/infra/storage/booking"
	"github.com/reservasalas/BookingService/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований
// Создание и обновление идут через usecase-слой: там живут проверки
// конфликтов и политика минимального времени до слота
type Service struct {
	bookingRepo BookingRepository
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		location:    location,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// List получает все бронирования, отсортированные от новых к старым
// Если указана дата, возвращает бронирования этого дня,
// отсортированные по времени начала слота
func (s *Service) List(ctx context.Context, date *string) (*models.BookingListResponse, error) {
	if date != nil {
		return s.listByDate(ctx, *date)
	}

	s.logger.Info("List: fetching all bookings")

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование
// Занятые им инфраструктура и оборудование сразу становятся доступными
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// listByDate получает бронирования на календарный день
// Дата нормализуется до полуночи в опорном часовом поясе сервиса
func (s *Service) listByDate(ctx context.Context, date string) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for date=%s", date)

	day, err := domain.ParseDate(date, s.location)
	if err != nil {
		s.logger.Warn("List: invalid date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, day)
	if err != nil {
		s.logger.Error("List: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings for date=%s", len(bookings), date)
	return models.FromDomainBookingList(bookings), nil
}
