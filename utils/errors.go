package utils

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrorEnvelope is the uniform JSON body for mapped errors.
type ErrorEnvelope struct {
	Error     string      `json:"error"`
	Message   string      `json:"message,omitempty"`
	Details   interface{} `json:"details,omitempty"`
	Code      string      `json:"code,omitempty"`
	Timestamp string      `json:"timestamp"`
	Path      string      `json:"path,omitempty"`
}

// AppError is a tagged application error carrying its HTTP status.
type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// MapError inspects an error and writes the uniform envelope: validation
// errors map to 400, missing records to 404, duplicate keys to 409, tagged
// AppErrors to their own status, anything else to 500. Internal details are
// suppressed outside development.
func MapError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	envelope := ErrorEnvelope{
		Error:     "Internal Server Error",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Path(),
	}

	var appErr *AppError
	var validationErrs validator.ValidationErrors
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		envelope.Error = appErr.Message
		envelope.Code = appErr.Code

	case errors.As(err, &validationErrs):
		status = fiber.StatusBadRequest
		envelope.Error = "Validation failed"
		details := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			details[fe.Field()] = fe.Tag()
		}
		envelope.Details = details

	case errors.Is(err, gorm.ErrRecordNotFound):
		status = fiber.StatusNotFound
		envelope.Error = "Record not found"

	case isDuplicateKeyError(err):
		status = fiber.StatusConflict
		envelope.Error = "Duplicate record"

	default:
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			envelope.Error = fiberErr.Message
		} else if os.Getenv("APP_ENV") == "development" {
			envelope.Message = err.Error()
		}
	}

	return c.Status(status).JSON(envelope)
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
