package car

import (
	"fmt"
	"strings"
	"time"
)

// Car is a user-owned vehicle that build lists attach to.
type Car struct {
	id        uint
	ownerID   uint
	make_     string
	model     string
	year      int
	trim      string
	nickname  string
	createdAt time.Time
	updatedAt time.Time
}

func NewCar(ownerID uint, make_, model string, year int, trim, nickname string) (*Car, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	make_ = strings.TrimSpace(make_)
	model = strings.TrimSpace(model)
	if make_ == "" {
		return nil, fmt.Errorf("make is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if len(nickname) > 100 {
		return nil, fmt.Errorf("nickname exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &Car{
		ownerID:   ownerID,
		make_:     make_,
		model:     model,
		year:      year,
		trim:      strings.TrimSpace(trim),
		nickname:  strings.TrimSpace(nickname),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCar rebuilds a car from persistence without validation.
func ReconstructCar(id, ownerID uint, make_, model string, year int, trim, nickname string, createdAt, updatedAt time.Time) *Car {
	return &Car{
		id:        id,
		ownerID:   ownerID,
		make_:     make_,
		model:     model,
		year:      year,
		trim:      trim,
		nickname:  nickname,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Car) ID() uint             { return c.id }
func (c *Car) OwnerID() uint        { return c.ownerID }
func (c *Car) Make() string         { return c.make_ }
func (c *Car) Model() string        { return c.model }
func (c *Car) Year() int            { return c.year }
func (c *Car) Trim() string         { return c.trim }
func (c *Car) Nickname() string     { return c.nickname }
func (c *Car) CreatedAt() time.Time { return c.createdAt }
func (c *Car) UpdatedAt() time.Time { return c.updatedAt }

func (c *Car) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("car ID already set")
	}
	c.id = id
	return nil
}

// Update changes the mutable fields, validating each.
func (c *Car) Update(make_, model string, year int, trim, nickname string) error {
	make_ = strings.TrimSpace(make_)
	model = strings.TrimSpace(model)
	if make_ == "" {
		return fmt.Errorf("make is required")
	}
	if model == "" {
		return fmt.Errorf("model is required")
	}
	if err := validateYear(year); err != nil {
		return err
	}
	if len(nickname) > 100 {
		return fmt.Errorf("nickname exceeds maximum length of 100 characters")
	}

	c.make_ = make_
	c.model = model
	c.year = year
	c.trim = strings.TrimSpace(trim)
	c.nickname = strings.TrimSpace(nickname)
	c.updatedAt = time.Now()
	return nil
}

func validateYear(year int) error {
	if year < 1900 || year > time.Now().Year()+1 {
		return fmt.Errorf("year must be between 1900 and %d", time.Now().Year()+1)
	}
	return nil
}
