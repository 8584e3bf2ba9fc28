package controller

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"ecogarden-api/internal/application/middleware"
	"ecogarden-api/internal/domain/usecase/weather"
)

const (
	headerETag         = "ETag"
	headerCacheControl = "Cache-Control"
	headerIfNoneMatch  = "If-None-Match"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetWeather)
	controller.api.GET("/weather/:city", controller.GetWeather)
}

// GetWeather godoc
// @Summary Current weather of a city
// @Description Weather of the given city, or of the profile city of the authenticated user when no city is given
// @Tags weather
// @Produce json
// @Param city path string false "City name" example(Paris)
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} model.WeatherPayload "Current conditions"
// @Success 304 "Not modified"
// @Failure 401 {object} model.ErrorResponse "Invalid token"
// @Failure 404 {object} model.ErrorResponse "No city found for this user"
// @Failure 500 {object} model.ErrorResponse "Unable to retrieve weather"
// @Router /weather/{city} [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	city := c.Param("city")
	// echo routes on RawPath when it is set, leaving the param escaped
	if c.Request().URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(city); err == nil {
			city = unescaped
		}
	}

	response, err := controller.useCase.GetWeather(c.Request().Context(), strings.TrimSpace(city), middleware.GetPrincipal(c))
	if err != nil {
		return err
	}

	header := c.Response().Header()
	header.Set(headerETag, response.ETag)
	header.Set(headerCacheControl, response.CacheControl)

	if etagMatches(c.Request().Header.Get(headerIfNoneMatch), response.ETag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSON(http.StatusOK, response.Payload)
}

// etagMatches applies the weak comparison of If-None-Match
func etagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
