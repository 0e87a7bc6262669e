package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/reservasalas/BookingService/internal/domain"
	"github.com/reservasalas/BookingService/pkg/dbmetrics"
	"github.com/reservasalas/BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const uniqueViolation = pq.ErrorCode("23505")

// Repository репозиторий каталога ресурсов (инфраструктура + оборудование)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// --- Инфраструктура ---

// CreateInfrastructure создает новую инфраструктуру
func (r *Repository) CreateInfrastructure(ctx context.Context, infra *domain.Infrastructure) (*domain.Infrastructure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("infrastructure").
		Columns("name", "description").
		Values(infra.Name, infra.Description).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateInfrastructure - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&infra.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: name=%q", ErrNameTaken, infra.Name)
		}
		return nil, fmt.Errorf("%w: CreateInfrastructure - execute insert: %v", ErrExecQuery, err)
	}

	return infra, nil
}

// GetInfrastructureByID получает инфраструктуру по ID
func (r *Repository) GetInfrastructureByID(ctx context.Context, id int64) (*domain.Infrastructure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description").
		From("infrastructure").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetInfrastructureByID - build select query: %v", ErrBuildQuery, err)
	}

	var infra domain.Infrastructure
	err = executor.QueryRowContext(ctx, query, args...).Scan(&infra.ID, &infra.Name, &infra.Description)

	if err == sql.ErrNoRows {
		return nil, ErrInfrastructureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetInfrastructureByID - scan infrastructure: %v", ErrScanRow, err)
	}

	return &infra, nil
}

// ListInfrastructure получает всю инфраструктуру каталога
// Флаг HasBookings выставляется по наличию ссылающихся бронирований
func (r *Repository) ListInfrastructure(ctx context.Context) ([]*domain.Infrastructure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"i.id",
		"i.name",
		"i.description",
		"EXISTS(SELECT 1 FROM bookings b WHERE b.infrastructure_id = i.id) AS has_bookings",
	).
		From("infrastructure i").
		OrderBy("i.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListInfrastructure - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInfrastructure - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.Infrastructure, 0)
	for rows.Next() {
		var infra domain.Infrastructure
		if err := rows.Scan(&infra.ID, &infra.Name, &infra.Description, &infra.HasBookings); err != nil {
			return nil, fmt.Errorf("%w: ListInfrastructure - scan row: %v", ErrScanRow, err)
		}
		items = append(items, &infra)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInfrastructure - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// UpdateInfrastructure обновляет имя и описание инфраструктуры
func (r *Repository) UpdateInfrastructure(ctx context.Context, infra *domain.Infrastructure) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("infrastructure").
		Set("name", infra.Name).
		Set("description", infra.Description).
		Where(squirrel.Eq{"id": infra.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateInfrastructure - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: name=%q", ErrNameTaken, infra.Name)
		}
		return fmt.Errorf("%w: UpdateInfrastructure - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateInfrastructure - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInfrastructureNotFound
	}

	return nil
}

// DeleteInfrastructure удаляет инфраструктуру
// Ссылочную целостность (запрет удаления при наличии бронирований) проверяет сервисный слой
func (r *Repository) DeleteInfrastructure(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("infrastructure").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteInfrastructure - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteInfrastructure - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteInfrastructure - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrInfrastructureNotFound
	}

	return nil
}

// --- Оборудование ---

// CreateEquipment создает новое оборудование
func (r *Repository) CreateEquipment(ctx context.Context, equip *domain.Equipment) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("equipment").
		Columns("name", "description", "quantity").
		Values(equip.Name, equip.Description, equip.Quantity).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateEquipment - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&equip.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: name=%q", ErrNameTaken, equip.Name)
		}
		return nil, fmt.Errorf("%w: CreateEquipment - execute insert: %v", ErrExecQuery, err)
	}

	return equip, nil
}

// GetEquipmentByID получает оборудование по ID
func (r *Repository) GetEquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "quantity").
		From("equipment").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipmentByID - build select query: %v", ErrBuildQuery, err)
	}

	var equip domain.Equipment
	err = executor.QueryRowContext(ctx, query, args...).Scan(&equip.ID, &equip.Name, &equip.Description, &equip.Quantity)

	if err == sql.ErrNoRows {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipmentByID - scan equipment: %v", ErrScanRow, err)
	}

	return &equip, nil
}

// ListEquipment получает всё оборудование каталога
func (r *Repository) ListEquipment(ctx context.Context) ([]*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"e.id",
		"e.name",
		"e.description",
		"e.quantity",
		"EXISTS(SELECT 1 FROM booking_equipment be WHERE be.equipment_id = e.id) AS has_bookings",
	).
		From("equipment e").
		OrderBy("e.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.Equipment, 0)
	for rows.Next() {
		var equip domain.Equipment
		if err := rows.Scan(&equip.ID, &equip.Name, &equip.Description, &equip.Quantity, &equip.HasBookings); err != nil {
			return nil, fmt.Errorf("%w: ListEquipment - scan row: %v", ErrScanRow, err)
		}
		items = append(items, &equip)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEquipment - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// UpdateEquipment обновляет имя, описание и количество оборудования
func (r *Repository) UpdateEquipment(ctx context.Context, equip *domain.Equipment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("equipment").
		Set("name", equip.Name).
		Set("description", equip.Description).
		Set("quantity", equip.Quantity).
		Where(squirrel.Eq{"id": equip.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateEquipment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: name=%q", ErrNameTaken, equip.Name)
		}
		return fmt.Errorf("%w: UpdateEquipment - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateEquipment - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

// DeleteEquipment удаляет оборудование
func (r *Repository) DeleteEquipment(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("equipment").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteEquipment - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteEquipment - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteEquipment - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

// isUniqueViolation проверяет, что ошибка - нарушение unique constraint PostgreSQL
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
