package part

import (
	"fmt"
	"strings"
	"time"
)

// Category buckets catalog parts by area of the car.
type Category string

const (
	CategoryEngine     Category = "engine"
	CategorySuspension Category = "suspension"
	CategoryBrakes     Category = "brakes"
	CategoryExhaust    Category = "exhaust"
	CategoryWheels     Category = "wheels"
	CategoryExterior   Category = "exterior"
	CategoryInterior   Category = "interior"
	CategoryElectrical Category = "electrical"
	CategoryDrivetrain Category = "drivetrain"
	CategoryOther      Category = "other"
)

var validCategories = map[Category]struct{}{
	CategoryEngine:     {},
	CategorySuspension: {},
	CategoryBrakes:     {},
	CategoryExhaust:    {},
	CategoryWheels:     {},
	CategoryExterior:   {},
	CategoryInterior:   {},
	CategoryElectrical: {},
	CategoryDrivetrain: {},
	CategoryOther:      {},
}

func (c Category) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

// Part is a catalog entry shared by all build lists. Prices are stored
// in cents to avoid float rounding.
type Part struct {
	id          uint
	name        string
	brand       string
	category    Category
	description string
	priceCents  int64
	createdBy   uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPart(name, brand string, category Category, description string, priceCents int64, createdBy uint) (*Part, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	brand = strings.TrimSpace(brand)
	if len(brand) > 100 {
		return nil, fmt.Errorf("brand exceeds maximum length of 100 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	return &Part{
		name:        name,
		brand:       brand,
		category:    category,
		description: description,
		priceCents:  priceCents,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructPart rebuilds a part from persistence without validation.
func ReconstructPart(
	id uint,
	name, brand string,
	category Category,
	description string,
	priceCents int64,
	createdBy uint,
	createdAt, updatedAt time.Time,
) *Part {
	return &Part{
		id:          id,
		name:        name,
		brand:       brand,
		category:    category,
		description: description,
		priceCents:  priceCents,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Part) ID() uint             { return p.id }
func (p *Part) Name() string         { return p.name }
func (p *Part) Brand() string        { return p.brand }
func (p *Part) Category() Category   { return p.category }
func (p *Part) Description() string  { return p.description }
func (p *Part) PriceCents() int64    { return p.priceCents }
func (p *Part) CreatedBy() uint      { return p.createdBy }
func (p *Part) CreatedAt() time.Time { return p.createdAt }
func (p *Part) UpdatedAt() time.Time { return p.updatedAt }

func (p *Part) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("part ID already set")
	}
	p.id = id
	return nil
}

func (p *Part) Update(name, brand string, category Category, description string, priceCents int64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	brand = strings.TrimSpace(brand)
	if len(brand) > 100 {
		return fmt.Errorf("brand exceeds maximum length of 100 characters")
	}
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %s", category)
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if priceCents < 0 {
		return fmt.Errorf("price cannot be negative")
	}

	p.name = name
	p.brand = brand
	p.category = category
	p.description = description
	p.priceCents = priceCents
	p.updatedAt = time.Now()
	return nil
}
