package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecogarden-api/internal/application/middleware"
	"ecogarden-api/internal/domain/apperror"
	"ecogarden-api/internal/domain/entity"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/internal/domain/usecase/user"
	"ecogarden-api/pkg/msg"
	"ecogarden-api/pkg/util/numberutils"
)

type UserController struct {
	api     *echo.Group
	useCase user.UseCase
}

func NewUserController(api *echo.Group, useCase user.UseCase) *UserController {
	return &UserController{api: api, useCase: useCase}
}

// InitUserRoutes initializes user routes
func (controller *UserController) InitUserRoutes() {
	admin := middleware.RequireRole(entity.RoleAdmin)

	controller.api.POST("/user", controller.Create)
	controller.api.PUT("/user/update/:id", controller.Update, admin)
	controller.api.DELETE("/user/delete/:id", controller.Delete, admin)
}

// Create godoc
// @Summary Register a user
// @Tags user
// @Accept json
// @Produce json
// @Param user body model.CreateUserRequest true "User"
// @Success 201 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse "Invalid data, email or pseudo already used"
// @Router /user [post]
func (controller *UserController) Create(c echo.Context) error {
	var request model.CreateUserRequest
	if err := c.Bind(&request); err != nil {
		return apperror.Validation(msg.GetMessage("error.invalid-body"))
	}

	if _, err := controller.useCase.Create(c.Request().Context(), request); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model.MessageResponse{Message: msg.GetMessage("user.created")})
}

// Update godoc
// @Summary Update a user
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Param user body model.UpdateUserRequest true "User"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse "Invalid data, email or pseudo already used"
// @Failure 403 {object} model.ErrorResponse "Administrator role required"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /user/update/{id} [put]
func (controller *UserController) Update(c echo.Context) error {
	id, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return apperror.NotFound(msg.GetMessage("user.error.not-found"))
	}

	var request model.UpdateUserRequest
	if err := c.Bind(&request); err != nil {
		return apperror.Validation(msg.GetMessage("error.invalid-body"))
	}

	if _, err := controller.useCase.Update(c.Request().Context(), id, request); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg.GetMessage("user.updated")})
}

// Delete godoc
// @Summary Delete a user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} model.ErrorResponse "Administrator role required"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /user/delete/{id} [delete]
func (controller *UserController) Delete(c echo.Context) error {
	id, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return apperror.NotFound(msg.GetMessage("user.error.not-found"))
	}

	if err := controller.useCase.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg.GetMessage("user.deleted")})
}
