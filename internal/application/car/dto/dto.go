package dto

import (
	"time"

	"github.com/camber-app/camber/internal/domain/car"
)

type CarDTO struct {
	ID        uint      `json:"id"`
	OwnerID   uint      `json:"owner_id"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Trim      string    `json:"trim,omitempty"`
	Nickname  string    `json:"nickname,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCarDTO(c *car.Car) *CarDTO {
	if c == nil {
		return nil
	}
	return &CarDTO{
		ID:        c.ID(),
		OwnerID:   c.OwnerID(),
		Make:      c.Make(),
		Model:     c.Model(),
		Year:      c.Year(),
		Trim:      c.Trim(),
		Nickname:  c.Nickname(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToCarDTOs(cars []*car.Car) []*CarDTO {
	dtos := make([]*CarDTO, 0, len(cars))
	for _, c := range cars {
		dtos = append(dtos, ToCarDTO(c))
	}
	return dtos
}
