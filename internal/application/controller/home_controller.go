package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecogarden-api/internal/domain/model"
	"ecogarden-api/pkg/msg"
)

type HomeController struct {
	api *echo.Group
}

func NewHomeController(api *echo.Group) *HomeController {
	return &HomeController{api: api}
}

// InitHomeRoutes initializes the welcome route
func (controller *HomeController) InitHomeRoutes() {
	controller.api.GET("/home", controller.Home)
}

// Home godoc
// @Summary Welcome message
// @Tags home
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router /home [get]
func (controller *HomeController) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg.GetMessage("app.welcome")})
}
