package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/application/buildlist/usecases"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/logger"
	"github.com/camber-app/camber/internal/shared/utils"
)

type BuildListHandler struct {
	createUC     *usecases.CreateBuildListUseCase
	getUC        *usecases.GetBuildListUseCase
	listUC       *usecases.ListBuildListsUseCase
	updateUC     *usecases.UpdateBuildListUseCase
	deleteUC     *usecases.DeleteBuildListUseCase
	addItemUC    *usecases.AddItemUseCase
	removeItemUC *usecases.RemoveItemUseCase
	logger       logger.Interface
}

func NewBuildListHandler(
	createUC *usecases.CreateBuildListUseCase,
	getUC *usecases.GetBuildListUseCase,
	listUC *usecases.ListBuildListsUseCase,
	updateUC *usecases.UpdateBuildListUseCase,
	deleteUC *usecases.DeleteBuildListUseCase,
	addItemUC *usecases.AddItemUseCase,
	removeItemUC *usecases.RemoveItemUseCase,
) *BuildListHandler {
	return &BuildListHandler{
		createUC:     createUC,
		getUC:        getUC,
		listUC:       listUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		addItemUC:    addItemUC,
		removeItemUC: removeItemUC,
		logger:       logger.NewLogger(),
	}
}

type CreateBuildListRequest struct {
	CarID       uint   `json:"car_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Visibility  string `json:"visibility" binding:"omitempty,oneof=public unlisted"`
}

type UpdateBuildListRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Visibility  string `json:"visibility" binding:"omitempty,oneof=public unlisted"`
}

type AddItemRequest struct {
	PartID uint   `json:"part_id" binding:"required"`
	Note   string `json:"note"`
}

func (h *BuildListHandler) CreateBuildList(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateBuildListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create build list", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateBuildListCommand{
		CarID:       req.CarID,
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Build list created")
}

func (h *BuildListHandler) GetBuildList(c *gin.Context) {
	listID, err := utils.ParseIDParam(c, "id", "build list")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), listID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *BuildListHandler) ListBuildLists(c *gin.Context) {
	p := utils.ParsePagination(c)

	query := usecases.ListBuildListsQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
		OrderBy:  c.Query("order_by"),
		Order:    c.Query("order"),
	}
	if raw := c.Query("owner_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			query.OwnerID = uint(id)
		}
	}
	if raw := c.Query("car_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			query.CarID = uint(id)
		}
	}
	if userID, ok := utils.CurrentUserID(c); ok {
		query.RequesterID = userID
	}

	lists, total, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, lists, total, p.Page, p.PageSize)
}

func (h *BuildListHandler) UpdateBuildList(c *gin.Context) {
	listID, err := utils.ParseIDParam(c, "id", "build list")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req UpdateBuildListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update build list", "build_list_id", listID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateBuildListCommand{
		BuildListID: listID,
		RequesterID: userID,
		Role:        authorization.UserRole(utils.CurrentUserRole(c)),
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Build list updated", result)
}

func (h *BuildListHandler) DeleteBuildList(c *gin.Context) {
	listID, err := utils.ParseIDParam(c, "id", "build list")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteBuildListCommand{
		BuildListID: listID,
		RequesterID: userID,
		Role:        authorization.UserRole(utils.CurrentUserRole(c)),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *BuildListHandler) AddItem(c *gin.Context) {
	listID, err := utils.ParseIDParam(c, "id", "build list")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add item", "build_list_id", listID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addItemUC.Execute(c.Request.Context(), usecases.AddItemCommand{
		BuildListID: listID,
		RequesterID: userID,
		PartID:      req.PartID,
		Note:        req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Item added")
}

func (h *BuildListHandler) RemoveItem(c *gin.Context) {
	listID, err := utils.ParseIDParam(c, "id", "build list")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	itemID, err := utils.ParseIDParam(c, "item_id", "item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.removeItemUC.Execute(c.Request.Context(), usecases.RemoveItemCommand{
		BuildListID: listID,
		ItemID:      itemID,
		RequesterID: userID,
		Role:        authorization.UserRole(utils.CurrentUserRole(c)),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
