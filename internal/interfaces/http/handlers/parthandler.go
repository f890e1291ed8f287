package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/application/part/usecases"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/logger"
	"github.com/camber-app/camber/internal/shared/utils"
)

type PartHandler struct {
	createPartUC *usecases.CreatePartUseCase
	getPartUC    *usecases.GetPartUseCase
	listPartsUC  *usecases.ListPartsUseCase
	updatePartUC *usecases.UpdatePartUseCase
	deletePartUC *usecases.DeletePartUseCase
	logger       logger.Interface
}

func NewPartHandler(
	createPartUC *usecases.CreatePartUseCase,
	getPartUC *usecases.GetPartUseCase,
	listPartsUC *usecases.ListPartsUseCase,
	updatePartUC *usecases.UpdatePartUseCase,
	deletePartUC *usecases.DeletePartUseCase,
) *PartHandler {
	return &PartHandler{
		createPartUC: createPartUC,
		getPartUC:    getPartUC,
		listPartsUC:  listPartsUC,
		updatePartUC: updatePartUC,
		deletePartUC: deletePartUC,
		logger:       logger.NewLogger(),
	}
}

type PartRequest struct {
	Name        string `json:"name" binding:"required"`
	Brand       string `json:"brand"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"omitempty,min=0"`
}

func (h *PartHandler) CreatePart(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req PartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create part", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPartUC.Execute(c.Request.Context(), usecases.CreatePartCommand{
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		CreatedBy:   userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Part created")
}

func (h *PartHandler) GetPart(c *gin.Context) {
	partID, err := utils.ParseIDParam(c, "id", "part")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPartUC.Execute(c.Request.Context(), partID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PartHandler) ListParts(c *gin.Context) {
	p := utils.ParsePagination(c)

	query := usecases.ListPartsQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
		Category: c.Query("category"),
		Search:   c.Query("search"),
		OrderBy:  c.Query("order_by"),
		Order:    c.Query("order"),
	}

	parts, total, err := h.listPartsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, parts, total, p.Page, p.PageSize)
}

func (h *PartHandler) UpdatePart(c *gin.Context) {
	partID, err := utils.ParseIDParam(c, "id", "part")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req PartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update part", "part_id", partID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePartUC.Execute(c.Request.Context(), usecases.UpdatePartCommand{
		PartID:      partID,
		RequesterID: userID,
		Role:        authorization.UserRole(utils.CurrentUserRole(c)),
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Part updated", result)
}

func (h *PartHandler) DeletePart(c *gin.Context) {
	partID, err := utils.ParseIDParam(c, "id", "part")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePartUC.Execute(c.Request.Context(), partID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
