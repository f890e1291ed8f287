package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/application/car/usecases"
	"github.com/camber-app/camber/internal/shared/authorization"
	"github.com/camber-app/camber/internal/shared/logger"
	"github.com/camber-app/camber/internal/shared/utils"
)

type CarHandler struct {
	createCarUC *usecases.CreateCarUseCase
	getCarUC    *usecases.GetCarUseCase
	listCarsUC  *usecases.ListCarsUseCase
	updateCarUC *usecases.UpdateCarUseCase
	deleteCarUC *usecases.DeleteCarUseCase
	logger      logger.Interface
}

func NewCarHandler(
	createCarUC *usecases.CreateCarUseCase,
	getCarUC *usecases.GetCarUseCase,
	listCarsUC *usecases.ListCarsUseCase,
	updateCarUC *usecases.UpdateCarUseCase,
	deleteCarUC *usecases.DeleteCarUseCase,
) *CarHandler {
	return &CarHandler{
		createCarUC: createCarUC,
		getCarUC:    getCarUC,
		listCarsUC:  listCarsUC,
		updateCarUC: updateCarUC,
		deleteCarUC: deleteCarUC,
		logger:      logger.NewLogger(),
	}
}

type CarRequest struct {
	Make     string `json:"make" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	Trim     string `json:"trim"`
	Nickname string `json:"nickname"`
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create car", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCarUC.Execute(c.Request.Context(), usecases.CreateCarCommand{
		OwnerID:  userID,
		Make:     req.Make,
		Model:    req.Model,
		Year:     req.Year,
		Trim:     req.Trim,
		Nickname: req.Nickname,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Car created")
}

func (h *CarHandler) GetCar(c *gin.Context) {
	carID, err := utils.ParseIDParam(c, "id", "car")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCarUC.Execute(c.Request.Context(), carID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CarHandler) ListCars(c *gin.Context) {
	p := utils.ParsePagination(c)

	query := usecases.ListCarsQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
		Make:     c.Query("make"),
		Model:    c.Query("model"),
		OrderBy:  c.Query("order_by"),
		Order:    c.Query("order"),
	}
	if raw := c.Query("owner_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			query.OwnerID = uint(id)
		}
	}
	if raw := c.Query("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			query.Year = year
		}
	}

	cars, total, err := h.listCarsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, cars, total, p.Page, p.PageSize)
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	carID, err := utils.ParseIDParam(c, "id", "car")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update car", "car_id", carID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateCarUC.Execute(c.Request.Context(), usecases.UpdateCarCommand{
		CarID:       carID,
		RequesterID: userID,
		Role:        authorization.UserRole(utils.CurrentUserRole(c)),
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		Trim:        req.Trim,
		Nickname:    req.Nickname,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Car updated", result)
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	carID, err := utils.ParseIDParam(c, "id", "car")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.deleteCarUC.Execute(c.Request.Context(), usecases.DeleteCarCommand{
		CarID:       carID,
		RequesterID: userID,
		Role:        authorization.UserRole(utils.CurrentUserRole(c)),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
