package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned to clients. Each code maps to exactly one HTTP status
// so the transport layer never has to guess.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeDuplicateIdentity = "DUPLICATE_IDENTITY"
	CodeInvalidOperation  = "INVALID_OPERATION"
	CodeInternalError     = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidationError,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewDuplicateIdentityError(message string) *AppError {
	return &AppError{
		Code:    CodeDuplicateIdentity,
		Message: message,
	}
}

func NewInvalidOperationError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidOperation,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternalError,
		Message: "Internal server error",
		Err:     err,
	}
}

// statusByCode is the single source of truth for code -> HTTP status.
var statusByCode = map[string]int{
	CodeValidationError:   fiber.StatusBadRequest,
	CodeUnauthorized:      fiber.StatusUnauthorized,
	CodeForbidden:         fiber.StatusForbidden,
	CodeNotFound:          fiber.StatusNotFound,
	CodeDuplicateIdentity: fiber.StatusConflict,
	CodeInvalidOperation:  fiber.StatusUnprocessableEntity,
	CodeInternalError:     fiber.StatusInternalServerError,
}

// StatusForError returns the HTTP status for err. Unknown errors are
// internal errors.
func StatusForError(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if status, ok := statusByCode[appErr.Code]; ok {
			return status
		}
	}
	return fiber.StatusInternalServerError
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// RespondWithError writes a standardized error response with the status
// derived from the error's code.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	response := ErrorResponse{
		Error: appErr.Message,
		Code:  appErr.Code,
	}
	if appErr.Err != nil && appErr.Code != CodeInternalError {
		response.Details = appErr.Err.Error()
	}

	return c.Status(StatusForError(appErr)).JSON(response)
}
