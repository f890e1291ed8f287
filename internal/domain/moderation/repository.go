package moderation

import (
	"context"
	"time"
)

// VoteRepository defines persistence operations for votes.
type VoteRepository interface {
	Create(ctx context.Context, vote *Vote) error
	GetByUserAndTarget(ctx context.Context, userID uint, targetType TargetType, targetID uint) (*Vote, error)
	Update(ctx context.Context, vote *Vote) error
	Delete(ctx context.Context, id uint) error
	Summary(ctx context.Context, targetType TargetType, targetID uint) (*VoteSummary, error)
}

// ReportRepository defines persistence operations for reports and the
// flagged-content aggregation.
type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	GetByID(ctx context.Context, id uint) (*Report, error)
	Update(ctx context.Context, report *Report) error
	List(ctx context.Context, filter ReportFilter) ([]*Report, int64, error)
	HasOpenReport(ctx context.Context, reporterID uint, targetType TargetType, targetID uint) (bool, error)
	FlaggedTargets(ctx context.Context, query FlaggedQuery) ([]*FlaggedTarget, error)
}

// FlaggedQuery bounds the flagged-content aggregation. Only open reports
// filed inside Window count; a target is flagged when its report count
// reaches MinOpenReports, or when it has votes and reports reach
// MinReportVoteRatio of the vote total. A non-positive ratio disables
// the ratio criterion.
type FlaggedQuery struct {
	MinOpenReports     int64
	MinReportVoteRatio float64
	Window             time.Duration
	Limit              int
}

// ReportFilter represents filtering and pagination options for report queries.
type ReportFilter struct {
	Page       int
	PageSize   int
	Status     ReportStatus
	TargetType TargetType
	OrderBy    string
	Order      string
}
