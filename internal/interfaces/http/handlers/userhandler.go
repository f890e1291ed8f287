package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/application/user/usecases"
	"github.com/camber-app/camber/internal/shared/logger"
	"github.com/camber-app/camber/internal/shared/utils"
)

type UserHandler struct {
	getProfileUC       *usecases.GetProfileUseCase
	updateProfileUC    *usecases.UpdateProfileUseCase
	listUsersUC        *usecases.ListUsersUseCase
	updateUserStatusUC *usecases.UpdateUserStatusUseCase
	updateUserRoleUC   *usecases.UpdateUserRoleUseCase
	deleteUserUC       *usecases.DeleteUserUseCase
	logger             logger.Interface
}

func NewUserHandler(
	getProfileUC *usecases.GetProfileUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	listUsersUC *usecases.ListUsersUseCase,
	updateUserStatusUC *usecases.UpdateUserStatusUseCase,
	updateUserRoleUC *usecases.UpdateUserRoleUseCase,
	deleteUserUC *usecases.DeleteUserUseCase,
) *UserHandler {
	return &UserHandler{
		getProfileUC:       getProfileUC,
		updateProfileUC:    updateProfileUC,
		listUsersUC:        listUsersUC,
		updateUserStatusUC: updateUserStatusUC,
		updateUserRoleUC:   updateUserRoleUC,
		deleteUserUC:       deleteUserUC,
		logger:             logger.NewLogger(),
	}
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending active suspended"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated", result)
}

// GetUser returns any user by ID. Admin only; profile owners go
// through GetProfile instead.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	requesterID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:      userID,
		RequesterID: requesterID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	query := usecases.ListUsersQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
		Email:    c.Query("email"),
		Status:   c.Query("status"),
		Role:     c.Query("role"),
		OrderBy:  c.Query("order_by"),
		Order:    c.Query("order"),
	}

	users, total, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, users, total, p.Page, p.PageSize)
}

func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user status", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUserStatusUC.Execute(c.Request.Context(), usecases.UpdateUserStatusCommand{
		UserID: userID,
		Status: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User status updated", result)
}

func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user role", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUserRoleUC.Execute(c.Request.Context(), usecases.UpdateUserRoleCommand{
		UserID: userID,
		Role:   req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User role updated", result)
}
