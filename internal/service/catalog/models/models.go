package models

import "github.com/reservasalas/BookingService/internal/domain"

// Request модели

// CreateInfrastructureRequest запрос на создание инфраструктуры
type CreateInfrastructureRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateInfrastructureRequest запрос на обновление инфраструктуры
// Nil-поля не изменяются
type UpdateInfrastructureRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateEquipmentRequest запрос на создание оборудования
type CreateEquipmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// UpdateEquipmentRequest запрос на обновление оборудования
// Nil-поля не изменяются
type UpdateEquipmentRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
}

// Response модели

// InfrastructureResponse ответ с данными инфраструктуры
type InfrastructureResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HasBookings bool   `json:"hasBookings"`
}

// InfrastructureListResponse ответ со списком инфраструктуры
type InfrastructureListResponse struct {
	Infrastructure []InfrastructureResponse `json:"infrastructure"`
}

// EquipmentResponse ответ с данными оборудования
type EquipmentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	HasBookings bool   `json:"hasBookings"`
}

// EquipmentListResponse ответ со списком оборудования
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
}

// Методы конвертации

// FromDomainInfrastructure конвертирует domain модель в DTO
func FromDomainInfrastructure(i *domain.Infrastructure) *InfrastructureResponse {
	if i == nil {
		return nil
	}

	return &InfrastructureResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		HasBookings: i.HasBookings,
	}
}

// FromDomainInfrastructureList конвертирует список domain моделей в DTO
func FromDomainInfrastructureList(items []*domain.Infrastructure) *InfrastructureListResponse {
	resp := &InfrastructureListResponse{
		Infrastructure: make([]InfrastructureResponse, 0, len(items)),
	}

	for _, item := range items {
		if itemResp := FromDomainInfrastructure(item); itemResp != nil {
			resp.Infrastructure = append(resp.Infrastructure, *itemResp)
		}
	}

	return resp
}

// FromDomainEquipment конвертирует domain модель в DTO
func FromDomainEquipment(e *domain.Equipment) *EquipmentResponse {
	if e == nil {
		return nil
	}

	return &EquipmentResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Quantity:    e.Quantity,
		HasBookings: e.HasBookings,
	}
}

// FromDomainEquipmentList конвертирует список domain моделей в DTO
func FromDomainEquipmentList(items []*domain.Equipment) *EquipmentListResponse {
	resp := &EquipmentListResponse{
		Equipment: make([]EquipmentResponse, 0, len(items)),
	}

	for _, item := range items {
		if itemResp := FromDomainEquipment(item); itemResp != nil {
			resp.Equipment = append(resp.Equipment, *itemResp)
		}
	}

	return resp
}
