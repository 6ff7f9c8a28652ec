package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"site-service/internal/apperr"
	"site-service/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse is the error body for non-validation failures. Validation
// failures additionally carry a per-field Errors map.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// HTTPErrorHandler maps service errors to HTTP responses. Unclassified
// failures are reported generically; the real cause is only logged.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := logger.FromContext(c)

	status := http.StatusInternalServerError
	title := "Internal Server Error"
	message := "An unexpected error occurred"
	var fieldErrors map[string]string

	var appErr *apperr.Error
	var valErrs validator.ValidationErrors
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		status = apperr.HTTPStatus(appErr.Kind)
		title = http.StatusText(status)
		if status < http.StatusInternalServerError {
			message = appErr.Message
		}
	case errors.As(err, &valErrs):
		status = http.StatusBadRequest
		title = "Validation Failed"
		message = "Invalid request parameters"
		fieldErrors = make(map[string]string, len(valErrs))
		for _, fe := range valErrs {
			fieldErrors[fe.Field()] = validationMessage(fe)
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		title = http.StatusText(status)
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	if status >= http.StatusInternalServerError {
		log.Error("Request failed", zap.Int("status", status), zap.Error(err))
	} else {
		log.Warn("Request rejected", zap.Int("status", status), zap.Error(err))
	}

	resp := ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     title,
		Message:   message,
		Path:      c.Request().URL.Path,
		Errors:    fieldErrors,
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, resp)
	}
	if err != nil {
		log.Error("Failed to write error response", zap.Error(err))
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
