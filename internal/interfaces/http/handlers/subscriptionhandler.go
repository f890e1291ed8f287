package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/application/subscription/usecases"
	"github.com/camber-app/camber/internal/shared/logger"
	"github.com/camber-app/camber/internal/shared/utils"
)

type SubscriptionHandler struct {
	listPlansUC  *usecases.ListPlansUseCase
	createPlanUC *usecases.CreatePlanUseCase
	updatePlanUC *usecases.UpdatePlanUseCase
	subscribeUC  *usecases.SubscribeUseCase
	cancelUC     *usecases.CancelSubscriptionUseCase
	getMySubUC   *usecases.GetMySubscriptionUseCase
	logger       logger.Interface
}

func NewSubscriptionHandler(
	listPlansUC *usecases.ListPlansUseCase,
	createPlanUC *usecases.CreatePlanUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	subscribeUC *usecases.SubscribeUseCase,
	cancelUC *usecases.CancelSubscriptionUseCase,
	getMySubUC *usecases.GetMySubscriptionUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		listPlansUC:  listPlansUC,
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		subscribeUC:  subscribeUC,
		cancelUC:     cancelUC,
		getMySubUC:   getMySubUC,
		logger:       logger.NewLogger(),
	}
}

type CreatePlanRequest struct {
	Name            string `json:"name" binding:"required"`
	Slug            string `json:"slug" binding:"required"`
	PriceCents      int64  `json:"price_cents" binding:"omitempty,min=0"`
	MaxCars         int    `json:"max_cars" binding:"omitempty,min=0"`
	MaxBuildLists   int    `json:"max_build_lists" binding:"omitempty,min=0"`
	MaxItemsPerList int    `json:"max_items_per_list" binding:"omitempty,min=0"`
}

type UpdatePlanRequest struct {
	Name            string `json:"name" binding:"required"`
	PriceCents      int64  `json:"price_cents" binding:"omitempty,min=0"`
	MaxCars         int    `json:"max_cars" binding:"omitempty,min=0"`
	MaxBuildLists   int    `json:"max_build_lists" binding:"omitempty,min=0"`
	MaxItemsPerList int    `json:"max_items_per_list" binding:"omitempty,min=0"`
	Active          *bool  `json:"active"`
}

type SubscribeRequest struct {
	PlanSlug string `json:"plan_slug" binding:"required"`
}

func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	activeOnly := c.Query("include_inactive") != "true"

	result, err := h.listPlansUC.Execute(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:            req.Name,
		Slug:            req.Slug,
		PriceCents:      req.PriceCents,
		MaxCars:         req.MaxCars,
		MaxBuildLists:   req.MaxBuildLists,
		MaxItemsPerList: req.MaxItemsPerList,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created")
}

func (h *SubscriptionHandler) UpdatePlan(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "plan_id", planID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		PlanID:          planID,
		Name:            req.Name,
		PriceCents:      req.PriceCents,
		MaxCars:         req.MaxCars,
		MaxBuildLists:   req.MaxBuildLists,
		MaxItemsPerList: req.MaxItemsPerList,
		Active:          req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated", result)
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for subscribe", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.subscribeUC.Execute(c.Request.Context(), usecases.SubscribeCommand{
		UserID:   userID,
		PlanSlug: req.PlanSlug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscribed")
}

func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.cancelUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription canceled", result)
}

func (h *SubscriptionHandler) GetMySubscription(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getMySubUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
