package subscription

import (
	"fmt"
	"strings"
	"time"
)

// Plan is a subscription tier with usage limits. Limits of zero mean
// unlimited.
type Plan struct {
	id              uint
	name            string
	slug            string
	priceCents      int64
	maxCars         int
	maxBuildLists   int
	maxItemsPerList int
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPlan(name, slug string, priceCents int64, maxCars, maxBuildLists, maxItemsPerList int) (*Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if maxCars < 0 || maxBuildLists < 0 || maxItemsPerList < 0 {
		return nil, fmt.Errorf("limits cannot be negative")
	}

	now := time.Now()
	return &Plan{
		name:            name,
		slug:            slug,
		priceCents:      priceCents,
		maxCars:         maxCars,
		maxBuildLists:   maxBuildLists,
		maxItemsPerList: maxItemsPerList,
		active:          true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence without validation.
func ReconstructPlan(
	id uint,
	name, slug string,
	priceCents int64,
	maxCars, maxBuildLists, maxItemsPerList int,
	active bool,
	createdAt, updatedAt time.Time,
) *Plan {
	return &Plan{
		id:              id,
		name:            name,
		slug:            slug,
		priceCents:      priceCents,
		maxCars:         maxCars,
		maxBuildLists:   maxBuildLists,
		maxItemsPerList: maxItemsPerList,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) Slug() string         { return p.slug }
func (p *Plan) PriceCents() int64    { return p.priceCents }
func (p *Plan) MaxCars() int         { return p.maxCars }
func (p *Plan) MaxBuildLists() int   { return p.maxBuildLists }
func (p *Plan) MaxItemsPerList() int { return p.maxItemsPerList }
func (p *Plan) Active() bool         { return p.active }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID already set")
	}
	p.id = id
	return nil
}

func (p *Plan) Update(name string, priceCents int64, maxCars, maxBuildLists, maxItemsPerList int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if priceCents < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if maxCars < 0 || maxBuildLists < 0 || maxItemsPerList < 0 {
		return fmt.Errorf("limits cannot be negative")
	}

	p.name = name
	p.priceCents = priceCents
	p.maxCars = maxCars
	p.maxBuildLists = maxBuildLists
	p.maxItemsPerList = maxItemsPerList
	p.updatedAt = time.Now()
	return nil
}

func (p *Plan) Activate() {
	p.active = true
	p.updatedAt = time.Now()
}

func (p *Plan) Deactivate() {
	p.active = false
	p.updatedAt = time.Now()
}

// AllowsCars reports whether the plan permits owning count cars.
func (p *Plan) AllowsCars(count int64) bool {
	return p.maxCars == 0 || count < int64(p.maxCars)
}

// AllowsBuildLists reports whether the plan permits owning count build lists.
func (p *Plan) AllowsBuildLists(count int64) bool {
	return p.maxBuildLists == 0 || count < int64(p.maxBuildLists)
}

// AllowsItems reports whether the plan permits a list of count items.
func (p *Plan) AllowsItems(count int64) bool {
	return p.maxItemsPerList == 0 || count < int64(p.maxItemsPerList)
}
