package dto

import (
	"time"

	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/domain/part"
)

type PartDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand,omitempty"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	CreatedBy   uint      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Votes *VoteSummaryDTO `json:"votes,omitempty"`
}

type VoteSummaryDTO struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
	Score     int64 `json:"score"`
}

func ToPartDTO(p *part.Part) *PartDTO {
	if p == nil {
		return nil
	}
	return &PartDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Brand:       p.Brand(),
		Category:    string(p.Category()),
		Description: p.Description(),
		PriceCents:  p.PriceCents(),
		CreatedBy:   p.CreatedBy(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ToPartDTOs(parts []*part.Part) []*PartDTO {
	dtos := make([]*PartDTO, 0, len(parts))
	for _, p := range parts {
		dtos = append(dtos, ToPartDTO(p))
	}
	return dtos
}

func ToVoteSummaryDTO(s *moderation.VoteSummary) *VoteSummaryDTO {
	if s == nil {
		return nil
	}
	return &VoteSummaryDTO{
		Upvotes:   s.Upvotes,
		Downvotes: s.Downvotes,
		Score:     s.Score(),
	}
}
