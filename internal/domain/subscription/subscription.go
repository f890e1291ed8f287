package subscription

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a subscription.
type Status string

const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
)

// Subscription binds a user to a plan. A user holds at most one active
// subscription; users without one fall back to the free plan.
type Subscription struct {
	id         uint
	userID     uint
	planID     uint
	status     Status
	startedAt  time.Time
	canceledAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewSubscription(userID, planID uint) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	now := time.Now()
	return &Subscription{
		userID:    userID,
		planID:    planID,
		status:    StatusActive,
		startedAt: now,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence without validation.
func ReconstructSubscription(
	id, userID, planID uint,
	status Status,
	startedAt time.Time,
	canceledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Subscription {
	return &Subscription{
		id:         id,
		userID:     userID,
		planID:     planID,
		status:     status,
		startedAt:  startedAt,
		canceledAt: canceledAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *Subscription) ID() uint               { return s.id }
func (s *Subscription) UserID() uint           { return s.userID }
func (s *Subscription) PlanID() uint           { return s.planID }
func (s *Subscription) Status() Status         { return s.status }
func (s *Subscription) StartedAt() time.Time   { return s.startedAt }
func (s *Subscription) CanceledAt() *time.Time { return s.canceledAt }
func (s *Subscription) CreatedAt() time.Time   { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time   { return s.updatedAt }

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID already set")
	}
	s.id = id
	return nil
}

func (s *Subscription) IsActive() bool {
	return s.status == StatusActive
}

// Cancel ends the subscription. The user reverts to the free plan.
func (s *Subscription) Cancel() error {
	if s.status != StatusActive {
		return fmt.Errorf("subscription is not active")
	}
	now := time.Now()
	s.status = StatusCanceled
	s.canceledAt = &now
	s.updatedAt = now
	return nil
}
