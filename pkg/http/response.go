package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes the payload as-is with status 200. Domain results
// are returned unwrapped; consumers read fields like crop_name directly.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// BadRequestResponse writes a 400 with validation error details.
func BadRequestResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusBadRequest, APIResponse{
		Status:  http.StatusBadRequest,
		Message: http.StatusText(http.StatusBadRequest),
		Data:    data,
	})
}

// TooManyRequestsResponse writes a 429 with a detail message.
func TooManyRequestsResponse(c echo.Context, detail string) error {
	return c.JSON(http.StatusTooManyRequests, ErrorDetail{Detail: detail})
}

// InternalErrorResponse writes a 500 with a textual detail message. Failure
// kinds are not distinguished to the caller; detail goes to the server log.
func InternalErrorResponse(c echo.Context, err error) error {
	detail := "internal error"
	if err != nil {
		detail = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, ErrorDetail{Detail: detail})
}
