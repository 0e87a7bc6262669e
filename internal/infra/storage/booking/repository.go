package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/reservasalas/BookingService/internal/domain"
	"github.com/reservasalas/BookingService/pkg/dbmetrics"
	"github.com/reservasalas/BookingService/pkg/psqlbuilder"
	"github.com/reservasalas/BookingService/pkg/types"
)

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"infrastructure_id",
	"requester_name",
	"booking_date",
	"start_time",
	"description",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
// Список оборудования хранится в дочерней таблице booking_equipment:
// одна строка на одну запрошенную единицу, повторы допустимы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование вместе со строками оборудования
// Если в контексте передана активная транзакция (через context.Value), использует её -
// создание через usecase всегда идет в транзакции, чтобы проверка доступности
// и запись были атомарны
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"infrastructure_id",
			"requester_name",
			"booking_date",
			"start_time",
			"description",
		).
		Values(
			booking.InfrastructureID,
			booking.RequesterName,
			booking.BookingDate,
			booking.StartTime,
			booking.Description,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if err := r.insertEquipment(ctx, executor, booking.ID, booking.EquipmentIDs); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе со списком оборудования
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.InfrastructureID,
		&booking.RequesterName,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Description,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if err := r.loadEquipment(ctx, executor, []*domain.Booking{&booking}); err != nil {
		return nil, err
	}

	return &booking, nil
}

// GetAll получает все бронирования (сначала новые)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("booking_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, query, args)
}

// GetByDate получает все бронирования на нормализованную дату,
// отсортированные по времени начала слота (ASC)
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, query, args)
}

// GetBySlot получает все бронирования на нормализованную дату и время слота
// excludeID исключает бронирование из выборки (обновляемое бронирование
// не должно конфликтовать само с собой)
// Внутри транзакции добавляется FOR UPDATE: строки слота блокируются
// до записи нового бронирования
func (r *Repository) GetBySlot(ctx context.Context, date time.Time, startTime types.TimeString, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		OrderBy("id ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, executor, query, args)
}

// Update перезаписывает бронирование и его список оборудования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("infrastructure_id", booking.InfrastructureID).
		Set("requester_name", booking.RequesterName).
		Set("booking_date", booking.BookingDate).
		Set("start_time", booking.StartTime).
		Set("description", booking.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	// Список оборудования заменяется целиком
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("booking_equipment").
		Where(squirrel.Eq{"booking_id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build delete equipment query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Update - delete equipment rows: %v", ErrExecQuery, err)
	}

	return r.insertEquipment(ctx, executor, booking.ID, booking.EquipmentIDs)
}

// Delete удаляет бронирование; строки оборудования каскадно удаляются БД
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// HasByInfrastructure возвращает true, если есть хоть одно бронирование инфраструктуры
// Используется для запрета удаления ресурса из каталога
func (r *Repository) HasByInfrastructure(ctx context.Context, infrastructureID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var exists bool
	err := executor.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM bookings WHERE infrastructure_id = $1)",
		infrastructureID,
	).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("%w: HasByInfrastructure - scan result: %v", ErrScanRow, err)
	}

	return exists, nil
}

// HasByEquipment возвращает true, если оборудование занято хоть одним бронированием
func (r *Repository) HasByEquipment(ctx context.Context, equipmentID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var exists bool
	err := executor.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM booking_equipment WHERE equipment_id = $1)",
		equipmentID,
	).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("%w: HasByEquipment - scan result: %v", ErrScanRow, err)
	}

	return exists, nil
}

// insertEquipment вставляет строки оборудования бронирования (одна строка на единицу)
func (r *Repository) insertEquipment(ctx context.Context, executor DBExecutor, bookingID int64, equipmentIDs []int64) error {
	if len(equipmentIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("booking_equipment").
		Columns("booking_id", "equipment_id")

	for _, equipmentID := range equipmentIDs {
		insertBuilder = insertBuilder.Values(bookingID, equipmentID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertEquipment - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertEquipment - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// queryBookings выполняет запрос и загружает оборудование для найденных бронирований
func (r *Repository) queryBookings(ctx context.Context, executor DBExecutor, query string, args []interface{}) ([]*domain.Booking, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: queryBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadEquipment(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.InfrastructureID,
			&booking.RequesterName,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.Description,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// loadEquipment загружает списки оборудования для бронирований одним запросом
// Порядок строк сохраняется (ORDER BY id) - список оборудования упорядочен
// так, как его запросил пользователь
func (r *Repository) loadEquipment(ctx context.Context, executor DBExecutor, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]int64, len(bookings))
	byID := make(map[int64]*domain.Booking, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
		byID[booking.ID] = booking
		booking.EquipmentIDs = make([]int64, 0)
	}

	query, args, err := psqlbuilder.Select("booking_id", "equipment_id").
		From("booking_equipment").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("booking_id ASC, id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadEquipment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID, equipmentID int64
		if err := rows.Scan(&bookingID, &equipmentID); err != nil {
			return fmt.Errorf("%w: loadEquipment - scan row: %v", ErrScanRow, err)
		}
		if booking, ok := byID[bookingID]; ok {
			booking.EquipmentIDs = append(booking.EquipmentIDs, equipmentID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadEquipment - rows error: %v", ErrScanRow, err)
	}

	return nil
}
