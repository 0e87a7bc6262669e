package catalog

import "errors"

var (
	// ErrInfrastructureNotFound возвращается, когда инфраструктура не найдена
	ErrInfrastructureNotFound = errors.New("infrastructure not found")

	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrNameTaken возвращается, когда имя ресурса уже занято
	ErrNameTaken = errors.New("resource name already taken")

	// ErrInfrastructureInUse возвращается при попытке удалить инфраструктуру,
	// на которую ссылаются бронирования
	ErrInfrastructureInUse = errors.New("infrastructure has bookings")

	// ErrEquipmentInUse возвращается при попытке удалить оборудование,
	// на которое ссылаются бронирования
	ErrEquipmentInUse = errors.New("equipment has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
