package dto

import (
	"time"

	"github.com/camber-app/camber/internal/domain/buildlist"
)

type BuildListDTO struct {
	ID              uint                `json:"id"`
	CarID           uint                `json:"car_id"`
	OwnerID         uint                `json:"owner_id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	DescriptionHTML string              `json:"description_html"`
	Visibility      string              `json:"visibility"`
	Items           []*BuildListItemDTO `json:"items,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type BuildListItemDTO struct {
	ID      uint      `json:"id"`
	PartID  uint      `json:"part_id"`
	Note    string    `json:"note,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

func ToBuildListDTO(b *buildlist.BuildList) *BuildListDTO {
	if b == nil {
		return nil
	}
	return &BuildListDTO{
		ID:              b.ID(),
		CarID:           b.CarID(),
		OwnerID:         b.OwnerID(),
		Name:            b.Name(),
		Description:     b.Description(),
		DescriptionHTML: b.DescriptionHTML(),
		Visibility:      string(b.Visibility()),
		Items:           ToBuildListItemDTOs(b.Items()),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func ToBuildListDTOs(lists []*buildlist.BuildList) []*BuildListDTO {
	dtos := make([]*BuildListDTO, 0, len(lists))
	for _, b := range lists {
		dtos = append(dtos, ToBuildListDTO(b))
	}
	return dtos
}

func ToBuildListItemDTO(i *buildlist.Item) *BuildListItemDTO {
	if i == nil {
		return nil
	}
	return &BuildListItemDTO{
		ID:      i.ID(),
		PartID:  i.PartID(),
		Note:    i.Note(),
		AddedAt: i.AddedAt(),
	}
}

func ToBuildListItemDTOs(items []*buildlist.Item) []*BuildListItemDTO {
	if len(items) == 0 {
		return nil
	}
	dtos := make([]*BuildListItemDTO, 0, len(items))
	for _, i := range items {
		dtos = append(dtos, ToBuildListItemDTO(i))
	}
	return dtos
}
