package models

import (
	"time"

	"github.com/seminarhub/hall-booking-service/internal/domain"
)

// Request модели

// CreateHallRequest запрос на создание зала
type CreateHallRequest struct {
	Requester domain.Requester `json:"-"`
	Name      string           `json:"name"`
	Capacity  int              `json:"capacity"`
	Equipment []string         `json:"equipment,omitempty"`
	ImageURL  *string          `json:"imageUrl,omitempty"`
}

// UpdateHallRequest запрос на частичное обновление зала
type UpdateHallRequest struct {
	Requester domain.Requester `json:"-"`
	Name      *string          `json:"name,omitempty"`
	Capacity  *int             `json:"capacity,omitempty"`
	Equipment *[]string        `json:"equipment,omitempty"`
	ImageURL  *string          `json:"imageUrl,omitempty"`
}

// ToDomainPatch конвертирует request в domain патч
func (r *UpdateHallRequest) ToDomainPatch() domain.HallPatch {
	return domain.HallPatch{
		Name:      r.Name,
		Capacity:  r.Capacity,
		Equipment: r.Equipment,
		ImageURL:  r.ImageURL,
	}
}

// Response модели

// HallResponse ответ с данными зала
type HallResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Equipment []string  `json:"equipment"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HallListResponse ответ со списком залов
type HallListResponse struct {
	Halls []HallResponse `json:"halls"`
}

// Методы конвертации

// FromDomainHall конвертирует domain модель в DTO
func FromDomainHall(h *domain.Hall) *HallResponse {
	if h == nil {
		return nil
	}

	equipment := h.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	return &HallResponse{
		ID:        h.ID,
		Name:      h.Name,
		Capacity:  h.Capacity,
		Equipment: equipment,
		ImageURL:  h.ImageURL,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// FromDomainHallList конвертирует список domain моделей в DTO
func FromDomainHallList(halls []*domain.Hall) *HallListResponse {
	if halls == nil {
		return &HallListResponse{
			Halls: []HallResponse{},
		}
	}

	resp := &HallListResponse{
		Halls: make([]HallResponse, len(halls)),
	}

	for i, hall := range halls {
		if hallResp := FromDomainHall(hall); hallResp != nil {
			resp.Halls[i] = *hallResp
		}
	}

	return resp
}
