package dto

import (
	"time"

	"github.com/camber-app/camber/internal/domain/subscription"
)

type PlanDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	PriceCents      int64     `json:"price_cents"`
	MaxCars         int       `json:"max_cars"`
	MaxBuildLists   int       `json:"max_build_lists"`
	MaxItemsPerList int       `json:"max_items_per_list"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SubscriptionDTO struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"user_id"`
	Plan       *PlanDTO   `json:"plan,omitempty"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	CanceledAt *time.Time `json:"canceled_at,omitempty"`
}

func ToPlanDTO(p *subscription.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:              p.ID(),
		Name:            p.Name(),
		Slug:            p.Slug(),
		PriceCents:      p.PriceCents(),
		MaxCars:         p.MaxCars(),
		MaxBuildLists:   p.MaxBuildLists(),
		MaxItemsPerList: p.MaxItemsPerList(),
		Active:          p.Active(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

func ToPlanDTOs(plans []*subscription.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, ToPlanDTO(p))
	}
	return dtos
}

func ToSubscriptionDTO(s *subscription.Subscription, plan *subscription.Plan) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:         s.ID(),
		UserID:     s.UserID(),
		Plan:       ToPlanDTO(plan),
		Status:     string(s.Status()),
		StartedAt:  s.StartedAt(),
		CanceledAt: s.CanceledAt(),
	}
}
