package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ecogarden-api/internal/domain/apperror"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/pkg/log"
	"ecogarden-api/pkg/msg"
)

// ErrorHandler renders every error as {"error": ..., "details": ...}. Causes of 5xx errors are logged, never returned.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := toErrorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Error(msg.GetMessage("error.internal"),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		log.Error("Failed to write error response", zap.Error(err))
	}
}

func toErrorResponse(err error) (int, model.ErrorResponse) {
	if appErr, ok := apperror.As(err); ok {
		return appErr.Status(), model.ErrorResponse{Error: appErr.Message, Details: appErr.Details}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, model.ErrorResponse{Error: msg.GetMessage("error.internal")}
		}
		message := http.StatusText(httpErr.Code)
		if text, ok := httpErr.Message.(string); ok {
			message = text
		} else if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}
		return httpErr.Code, model.ErrorResponse{Error: message}
	}

	return http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("error.internal")}
}
