package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/application/moderation/usecases"
	"github.com/camber-app/camber/internal/shared/logger"
	"github.com/camber-app/camber/internal/shared/utils"
)

type ModerationHandler struct {
	castVoteUC       *usecases.CastVoteUseCase
	reportContentUC  *usecases.ReportContentUseCase
	listReportsUC    *usecases.ListReportsUseCase
	resolveReportUC  *usecases.ResolveReportUseCase
	flaggedContentUC *usecases.FlaggedContentUseCase
	logger           logger.Interface
}

func NewModerationHandler(
	castVoteUC *usecases.CastVoteUseCase,
	reportContentUC *usecases.ReportContentUseCase,
	listReportsUC *usecases.ListReportsUseCase,
	resolveReportUC *usecases.ResolveReportUseCase,
	flaggedContentUC *usecases.FlaggedContentUseCase,
) *ModerationHandler {
	return &ModerationHandler{
		castVoteUC:       castVoteUC,
		reportContentUC:  reportContentUC,
		listReportsUC:    listReportsUC,
		resolveReportUC:  resolveReportUC,
		flaggedContentUC: flaggedContentUC,
		logger:           logger.NewLogger(),
	}
}

type CastVoteRequest struct {
	TargetType string `json:"target_type" binding:"required,oneof=part build_list"`
	TargetID   uint   `json:"target_id" binding:"required"`
	Value      int    `json:"value" binding:"required,oneof=1 -1"`
}

type ReportContentRequest struct {
	TargetType string `json:"target_type" binding:"required,oneof=part build_list"`
	TargetID   uint   `json:"target_id" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

type ResolveReportRequest struct {
	Action string `json:"action" binding:"required,oneof=resolve dismiss"`
}

func (h *ModerationHandler) CastVote(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for cast vote", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.castVoteUC.Execute(c.Request.Context(), usecases.CastVoteCommand{
		UserID:     userID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Value:      req.Value,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vote recorded", result)
}

func (h *ModerationHandler) ReportContent(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req ReportContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for report content", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reportContentUC.Execute(c.Request.Context(), usecases.ReportContentCommand{
		ReporterID: userID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Reason:     req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Report submitted")
}

func (h *ModerationHandler) ListReports(c *gin.Context) {
	p := utils.ParsePagination(c)

	query := usecases.ListReportsQuery{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Status:     c.Query("status"),
		TargetType: c.Query("target_type"),
		OrderBy:    c.Query("order_by"),
		Order:      c.Query("order"),
	}

	reports, total, err := h.listReportsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, reports, total, p.Page, p.PageSize)
}

func (h *ModerationHandler) ResolveReport(c *gin.Context) {
	reportID, err := utils.ParseIDParam(c, "id", "report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	adminID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req ResolveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for resolve report", "report_id", reportID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resolveReportUC.Execute(c.Request.Context(), usecases.ResolveReportCommand{
		ReportID: reportID,
		AdminID:  adminID,
		Dismiss:  req.Action == "dismiss",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report "+result.Status, result)
}

func (h *ModerationHandler) FlaggedContent(c *gin.Context) {
	query := usecases.FlaggedContentQuery{}
	if raw := c.Query("min_reports"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			query.MinOpenReports = n
		}
	}
	if raw := c.Query("min_ratio"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil && f > 0 {
			query.MinRatio = f
		}
	}
	if raw := c.Query("window_days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			query.WindowDays = n
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			query.Limit = n
		}
	}

	result, err := h.flaggedContentUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
