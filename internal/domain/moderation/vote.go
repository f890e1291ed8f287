package moderation

import (
	"fmt"
	"time"
)

// TargetType names the kind of content a vote or report points at.
type TargetType string

const (
	TargetPart      TargetType = "part"
	TargetBuildList TargetType = "build_list"
)

func (t TargetType) IsValid() bool {
	return t == TargetPart || t == TargetBuildList
}

// Vote is one user's up or down vote on a part or build list. A user
// holds at most one vote per target; casting the same value again
// removes it, casting the opposite value flips it.
type Vote struct {
	id         uint
	userID     uint
	targetType TargetType
	targetID   uint
	value      int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewVote(userID uint, targetType TargetType, targetID uint, value int) (*Vote, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !targetType.IsValid() {
		return nil, fmt.Errorf("invalid target type: %s", targetType)
	}
	if targetID == 0 {
		return nil, fmt.Errorf("target ID is required")
	}
	if value != 1 && value != -1 {
		return nil, fmt.Errorf("vote value must be 1 or -1")
	}

	now := time.Now()
	return &Vote{
		userID:     userID,
		targetType: targetType,
		targetID:   targetID,
		value:      value,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructVote rebuilds a vote from persistence without validation.
func ReconstructVote(id, userID uint, targetType TargetType, targetID uint, value int, createdAt, updatedAt time.Time) *Vote {
	return &Vote{
		id:         id,
		userID:     userID,
		targetType: targetType,
		targetID:   targetID,
		value:      value,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (v *Vote) ID() uint               { return v.id }
func (v *Vote) UserID() uint           { return v.userID }
func (v *Vote) TargetType() TargetType { return v.targetType }
func (v *Vote) TargetID() uint         { return v.targetID }
func (v *Vote) Value() int             { return v.value }
func (v *Vote) CreatedAt() time.Time   { return v.createdAt }
func (v *Vote) UpdatedAt() time.Time   { return v.updatedAt }

func (v *Vote) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("vote ID already set")
	}
	v.id = id
	return nil
}

// Flip reverses the vote direction.
func (v *Vote) Flip() {
	v.value = -v.value
	v.updatedAt = time.Now()
}

// VoteSummary aggregates vote counts for one target.
type VoteSummary struct {
	TargetType TargetType
	TargetID   uint
	Upvotes    int64
	Downvotes  int64
}

// Score is upvotes minus downvotes.
func (s VoteSummary) Score() int64 {
	return s.Upvotes - s.Downvotes
}
