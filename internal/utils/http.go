package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DetailResponse is the body of every error and of plain acknowledgements
type DetailResponse struct {
	Detail string `json:"detail"`
}

// AttemptsResponse is returned for OTP failures that consumed an attempt
type AttemptsResponse struct {
	Detail   string `json:"detail"`
	Attempts int    `json:"attempts"`
}

// SuccessResponse writes data as the JSON body
func SuccessResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// DetailResponseHandler writes {"detail": detail}
func DetailResponseHandler(c echo.Context, statusCode int, detail string) error {
	return c.JSON(statusCode, DetailResponse{Detail: detail})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return DetailResponseHandler(c, statusCode, errorMessage)
}

// AttemptsErrorResponse sends an error response carrying the OTP attempt count
func AttemptsErrorResponse(c echo.Context, statusCode int, errorMessage string, attempts int) error {
	return c.JSON(statusCode, AttemptsResponse{Detail: errorMessage, Attempts: attempts})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Authentication credentials were not provided."
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "You do not have permission to perform this action."
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Not found."
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// BadGatewayResponse sends a 502 Bad Gateway response
func BadGatewayResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadGateway, errorMessage)
}
