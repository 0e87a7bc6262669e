package catalog

import "errors"

var (
	// ErrInfrastructureNotFound возвращается, когда инфраструктура не найдена
	ErrInfrastructureNotFound = errors.New("catalog.repository: infrastructure not found")

	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("catalog.repository: equipment not found")

	// ErrNameTaken возвращается при нарушении уникальности имени ресурса
	ErrNameTaken = errors.New("catalog.repository: resource name already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
