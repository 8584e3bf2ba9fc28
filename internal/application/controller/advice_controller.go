package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecogarden-api/internal/application/middleware"
	"ecogarden-api/internal/domain/apperror"
	"ecogarden-api/internal/domain/entity"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/internal/domain/usecase/advice"
	"ecogarden-api/pkg/msg"
	"ecogarden-api/pkg/util/numberutils"
)

type AdviceController struct {
	api     *echo.Group
	useCase advice.UseCase
}

func NewAdviceController(api *echo.Group, useCase advice.UseCase) *AdviceController {
	return &AdviceController{api: api, useCase: useCase}
}

// InitAdviceRoutes initializes advice routes, writes require the admin role
func (controller *AdviceController) InitAdviceRoutes() {
	admin := middleware.RequireRole(entity.RoleAdmin)

	controller.api.GET("/advice", controller.FindCurrentMonth)
	controller.api.GET("/advice/:month", controller.FindByMonth)
	controller.api.POST("/advice/add", controller.Create, admin)
	controller.api.POST("/advice/update/:id", controller.Update, admin)
	controller.api.POST("/advice/delete/:id", controller.Delete, admin)
}

// FindCurrentMonth godoc
// @Summary Advices of the current month
// @Tags advice
// @Produce json
// @Success 200 {array} model.AdviceResponse
// @Failure 404 {object} model.ErrorResponse "No advice for this month"
// @Router /advice [get]
func (controller *AdviceController) FindCurrentMonth(c echo.Context) error {
	advices, err := controller.useCase.FindCurrentMonth(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewAdviceResponses(advices))
}

// FindByMonth godoc
// @Summary Advices of a month
// @Tags advice
// @Produce json
// @Param month path int true "Month number, 1 to 12"
// @Success 200 {array} model.AdviceResponse
// @Failure 400 {object} model.ErrorResponse "Month out of range"
// @Failure 404 {object} model.ErrorResponse "No advice for this month"
// @Router /advice/{month} [get]
func (controller *AdviceController) FindByMonth(c echo.Context) error {
	month, err := numberutils.ToIntWithError(c.Param("month"))
	if err != nil {
		return apperror.Validation(msg.GetMessage("advice.error.month-range"))
	}

	advices, err := controller.useCase.FindByMonth(c.Request().Context(), month)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewAdviceResponses(advices))
}

// Create godoc
// @Summary Create an advice
// @Tags advice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param advice body model.AdviceRequest true "Advice"
// @Success 201 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse "Invalid data"
// @Failure 401 {object} model.ErrorResponse "Authentication required"
// @Failure 403 {object} model.ErrorResponse "Administrator role required"
// @Router /advice/add [post]
func (controller *AdviceController) Create(c echo.Context) error {
	var request model.AdviceRequest
	if err := c.Bind(&request); err != nil {
		return apperror.Validation(msg.GetMessage("advice.error.invalid"))
	}

	if _, err := controller.useCase.Create(c.Request().Context(), request); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model.MessageResponse{Message: msg.GetMessage("advice.created")})
}

// Update godoc
// @Summary Update an advice
// @Tags advice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advice id"
// @Param advice body model.AdviceRequest true "Advice"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse "Invalid data"
// @Failure 403 {object} model.ErrorResponse "Administrator role required"
// @Failure 404 {object} model.ErrorResponse "Advice not found"
// @Router /advice/update/{id} [post]
func (controller *AdviceController) Update(c echo.Context) error {
	id, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return apperror.NotFound(msg.GetMessage("advice.error.not-found"))
	}

	var request model.AdviceRequest
	if err := c.Bind(&request); err != nil {
		return apperror.Validation(msg.GetMessage("advice.error.invalid"))
	}

	if _, err := controller.useCase.Update(c.Request().Context(), id, request); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg.GetMessage("advice.updated")})
}

// Delete godoc
// @Summary Delete an advice
// @Tags advice
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advice id"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} model.ErrorResponse "Administrator role required"
// @Failure 404 {object} model.ErrorResponse "Advice not found"
// @Router /advice/delete/{id} [post]
func (controller *AdviceController) Delete(c echo.Context) error {
	id, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return apperror.NotFound(msg.GetMessage("advice.error.not-found"))
	}

	if err := controller.useCase.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg.GetMessage("advice.deleted")})
}
