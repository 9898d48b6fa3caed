package domain

import "time"

// Hall represents a seminar hall available for booking
type Hall struct {
	ID        int64
	Name      string // Unique across halls
	Capacity  int
	Equipment []string // Projector, whiteboard, video conferencing, ...
	ImageURL  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HallPatch частичное обновление полей зала
type HallPatch struct {
	Name      *string
	Capacity  *int
	Equipment *[]string
	ImageURL  *string
}

// IsEmpty возвращает true, если патч не содержит ни одного поля
func (p *HallPatch) IsEmpty() bool {
	return p.Name == nil && p.Capacity == nil && p.Equipment == nil && p.ImageURL == nil
}
