package dto

import (
	"time"

	"github.com/camber-app/camber/internal/domain/moderation"
)

type VoteResultDTO struct {
	TargetType string `json:"target_type"`
	TargetID   uint   `json:"target_id"`
	// Value is the requester's standing vote after the operation:
	// 1, -1, or 0 when the vote was removed.
	Value     int64 `json:"value"`
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
	Score     int64 `json:"score"`
}

type ReportDTO struct {
	ID         uint       `json:"id"`
	ReporterID uint       `json:"reporter_id"`
	TargetType string     `json:"target_type"`
	TargetID   uint       `json:"target_id"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	ResolvedBy uint       `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type FlaggedTargetDTO struct {
	TargetType  string `json:"target_type"`
	TargetID    uint   `json:"target_id"`
	OpenReports int64  `json:"open_reports"`
	Upvotes     int64  `json:"upvotes"`
	Downvotes   int64  `json:"downvotes"`
}

func ToReportDTO(r *moderation.Report) *ReportDTO {
	if r == nil {
		return nil
	}
	return &ReportDTO{
		ID:         r.ID(),
		ReporterID: r.ReporterID(),
		TargetType: string(r.TargetType()),
		TargetID:   r.TargetID(),
		Reason:     r.Reason(),
		Status:     string(r.Status()),
		ResolvedBy: r.ResolvedBy(),
		ResolvedAt: r.ResolvedAt(),
		CreatedAt:  r.CreatedAt(),
	}
}

func ToReportDTOs(reports []*moderation.Report) []*ReportDTO {
	dtos := make([]*ReportDTO, 0, len(reports))
	for _, r := range reports {
		dtos = append(dtos, ToReportDTO(r))
	}
	return dtos
}

func ToFlaggedTargetDTOs(targets []*moderation.FlaggedTarget) []*FlaggedTargetDTO {
	dtos := make([]*FlaggedTargetDTO, 0, len(targets))
	for _, t := range targets {
		dtos = append(dtos, &FlaggedTargetDTO{
			TargetType:  string(t.TargetType),
			TargetID:    t.TargetID,
			OpenReports: t.OpenReports,
			Upvotes:     t.Upvotes,
			Downvotes:   t.Downvotes,
		})
	}
	return dtos
}
