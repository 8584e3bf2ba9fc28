package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecogarden-api/internal/domain/apperror"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/internal/domain/usecase/auth"
	"ecogarden-api/pkg/msg"
)

type AuthController struct {
	api     *echo.Group
	useCase auth.UseCase
}

func NewAuthController(api *echo.Group, useCase auth.UseCase) *AuthController {
	return &AuthController{api: api, useCase: useCase}
}

// InitAuthRoutes initializes authentication routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/auth/login", controller.Login)
}

// Login godoc
// @Summary Issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} model.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (controller *AuthController) Login(c echo.Context) error {
	var request model.LoginRequest
	if err := c.Bind(&request); err != nil {
		return apperror.Validation(msg.GetMessage("error.invalid-body"))
	}

	response, err := controller.useCase.Login(c.Request().Context(), request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response)
}
