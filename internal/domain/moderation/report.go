package moderation

import (
	"fmt"
	"strings"
	"time"
)

// ReportStatus tracks the moderation lifecycle of a report.
type ReportStatus string

const (
	ReportStatusOpen      ReportStatus = "open"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) IsValid() bool {
	return s == ReportStatusOpen || s == ReportStatusResolved || s == ReportStatusDismissed
}

// Report is a user complaint about a part or build list. New reports
// open; an admin resolves or dismisses them.
type Report struct {
	id         uint
	reporterID uint
	targetType TargetType
	targetID   uint
	reason     string
	status     ReportStatus
	resolvedBy uint
	resolvedAt *time.Time
	createdAt  time.Time
}

func NewReport(reporterID uint, targetType TargetType, targetID uint, reason string) (*Report, error) {
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if !targetType.IsValid() {
		return nil, fmt.Errorf("invalid target type: %s", targetType)
	}
	if targetID == 0 {
		return nil, fmt.Errorf("target ID is required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("reason is required")
	}
	if len(reason) > 2000 {
		return nil, fmt.Errorf("reason exceeds maximum length of 2000 characters")
	}

	return &Report{
		reporterID: reporterID,
		targetType: targetType,
		targetID:   targetID,
		reason:     reason,
		status:     ReportStatusOpen,
		createdAt:  time.Now(),
	}, nil
}

// ReconstructReport rebuilds a report from persistence without validation.
func ReconstructReport(
	id, reporterID uint,
	targetType TargetType,
	targetID uint,
	reason string,
	status ReportStatus,
	resolvedBy uint,
	resolvedAt *time.Time,
	createdAt time.Time,
) *Report {
	return &Report{
		id:         id,
		reporterID: reporterID,
		targetType: targetType,
		targetID:   targetID,
		reason:     reason,
		status:     status,
		resolvedBy: resolvedBy,
		resolvedAt: resolvedAt,
		createdAt:  createdAt,
	}
}

func (r *Report) ID() uint               { return r.id }
func (r *Report) ReporterID() uint       { return r.reporterID }
func (r *Report) TargetType() TargetType { return r.targetType }
func (r *Report) TargetID() uint         { return r.targetID }
func (r *Report) Reason() string         { return r.reason }
func (r *Report) Status() ReportStatus   { return r.status }
func (r *Report) ResolvedBy() uint       { return r.resolvedBy }
func (r *Report) ResolvedAt() *time.Time { return r.resolvedAt }
func (r *Report) CreatedAt() time.Time   { return r.createdAt }

func (r *Report) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("report ID already set")
	}
	r.id = id
	return nil
}

// Resolve closes the report as actioned.
func (r *Report) Resolve(adminID uint) error {
	return r.close(ReportStatusResolved, adminID)
}

// Dismiss closes the report without action.
func (r *Report) Dismiss(adminID uint) error {
	return r.close(ReportStatusDismissed, adminID)
}

func (r *Report) close(status ReportStatus, adminID uint) error {
	if r.status != ReportStatusOpen {
		return fmt.Errorf("report already %s", r.status)
	}
	if adminID == 0 {
		return fmt.Errorf("admin ID is required")
	}
	now := time.Now()
	r.status = status
	r.resolvedBy = adminID
	r.resolvedAt = &now
	return nil
}

// FlaggedTarget is one row of the flagged-content view: a target with
// enough open reports or a poor vote ratio to warrant attention.
type FlaggedTarget struct {
	TargetType  TargetType
	TargetID    uint
	OpenReports int64
	Upvotes     int64
	Downvotes   int64
}
