package errors

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var (
	// ErrUserNotFound is returned when no user document matches.
	ErrUserNotFound = errors.New("user not found")
	// ErrRecipeNotFound is returned when no recipe document matches.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrInvalidID is returned when an identifier is not 24 lowercase hex characters.
	ErrInvalidID = errors.New("id should have 24 hexadecimal characters")
	// ErrWriteNotAcknowledged is returned when the database did not confirm a write.
	ErrWriteNotAcknowledged = errors.New("write not acknowledged by the database")
)

// ErrorResponse is the JSON body emitted for every failed request.
// Error carries diagnostic detail in development mode and is an empty
// object otherwise, so internals never leak to external clients.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   any    `json:"error"`
}

// HTTPError pairs a status code and user-facing message with the underlying cause.
type HTTPError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return http.StatusText(e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// New creates an HTTPError. A zero statusCode means 500 and an empty
// message falls back to the cause's message.
func New(statusCode int, message string, cause error) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message, Cause: cause}
}

// FieldError describes a single violated validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// NewHTTPErrorHandler returns the central echo error handler. Every failed
// request, including unmatched routes, ends up here and produces exactly one
// {message, error} JSON response.
func NewHTTPErrorHandler(verbose bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		statusCode := http.StatusInternalServerError
		message := err.Error()
		var cause error

		var appErr *HTTPError
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			if appErr.StatusCode != 0 {
				statusCode = appErr.StatusCode
			}
			message = appErr.Error()
			cause = appErr.Cause
		case errors.As(err, &echoErr):
			statusCode = echoErr.Code
			if m, ok := echoErr.Message.(string); ok {
				message = m
			}
			cause = echoErr.Internal
		}

		detail := any(struct{}{})
		if verbose && cause != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(cause, &fieldErrs) {
				fields := make([]FieldError, 0, len(fieldErrs))
				for _, fe := range fieldErrs {
					fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
				}
				detail = fields
			} else {
				detail = map[string]string{"detail": cause.Error()}
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(statusCode)
			return
		}
		_ = c.JSON(statusCode, ErrorResponse{Message: message, Error: detail})
	}
}
