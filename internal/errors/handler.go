package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HTTPErrorHandler renders every error returned from a handler or middleware
// as an ErrorResponse.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := ErrorResponse{Success: false, Message: "internal server error", Code: "INTERNAL_ERROR"}

		var he *echo.HTTPError
		var ae *HTTPError
		switch {
		case errors.As(err, &he):
			status = he.Code
			switch m := he.Message.(type) {
			case ErrorResponse:
				body = m
			case string:
				body = ErrorResponse{Message: m, Code: codeForStatus(status)}
			default:
				body = ErrorResponse{Message: http.StatusText(status), Code: codeForStatus(status)}
			}
		case errors.As(err, &ae):
			status = ae.StatusCode
			body = ae.ToErrorResponse()
		default:
			mapped := MapErrorToHTTP(err)
			status = mapped.StatusCode
			body = mapped.ToErrorResponse()
		}
		body.Success = false

		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.Error(err),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Warn("write error response", zap.Error(err))
		}
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		if status >= http.StatusInternalServerError {
			return "INTERNAL_ERROR"
		}
		return fmt.Sprintf("HTTP_%d", status)
	}
}
