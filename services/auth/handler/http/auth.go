package http

import (
	"errors"
	"net/http"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/internal/utils"
	"github.com/codermehran/Mo/services/auth"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles HTTP requests for OTP login and sessions
type AuthHandler struct {
	authUC  auth.AuthUC
	cookies models.CookieConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC, cookies models.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUC:  authUC,
		cookies: cookies,
	}
}

type sessionResponse struct {
	*models.Session
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Detail  string `json:"detail"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

var authErrors = []struct {
	err    error
	status int
	detail string
}{
	{auth.ErrInvalidPhone, http.StatusBadRequest, "Phone number is required."},
	{auth.ErrInvalidPurpose, http.StatusBadRequest, "Purpose must be LOGIN or RECOVERY."},
	{auth.ErrInvalidCodeFormat, http.StatusBadRequest, "Code must be exactly 6 digits."},
	{auth.ErrRateLimited, http.StatusTooManyRequests, "Rate limit exceeded for OTP requests."},
	{auth.ErrUserNotFound, http.StatusNotFound, "No user is registered with this phone number."},
	{auth.ErrAmbiguousUser, http.StatusBadRequest, "Multiple users share this phone number. Please contact support."},
	{auth.ErrDeliveryFailed, http.StatusBadGateway, "Failed to send OTP."},
	{auth.ErrIPThrottled, http.StatusTooManyRequests, "Too many verification attempts from this IP."},
	{auth.ErrNoPendingOTP, http.StatusNotFound, "No pending OTP found for this phone number."},
	{auth.ErrTooManyAttempts, http.StatusTooManyRequests, "Too many verification attempts."},
	{auth.ErrOTPExpired, http.StatusBadRequest, "OTP code has expired."},
	{auth.ErrInvalidOTP, http.StatusBadRequest, "Invalid OTP code."},
	{auth.ErrRefreshRequired, http.StatusBadRequest, "Refresh token is required."},
	{auth.ErrInvalidRefresh, http.StatusBadRequest, "Invalid or expired refresh token."},
}

func authErrorResponse(c echo.Context, err error) error {
	for _, e := range authErrors {
		if !errors.Is(err, e.err) {
			continue
		}
		if e.status == http.StatusBadGateway {
			logger.Error("OTP delivery failed", logger.ErrorField(err))
		}
		var attemptErr *auth.AttemptError
		if errors.As(err, &attemptErr) {
			return utils.AttemptsErrorResponse(c, e.status, e.detail, attemptErr.Attempts)
		}
		return utils.ErrorResponseHandler(c, e.status, e.detail)
	}

	logger.Error("Unexpected auth error",
		logger.ErrorField(err),
		logger.String("path", c.Path()))
	return utils.InternalServerErrorResponse(c, "")
}

// RequestOTP handles POST /api/auth/request-otp
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP request",
			logger.ErrorField(err),
			logger.String("endpoint", "RequestOTP"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.RequestOTP(c.Request().Context(), &req, c.RealIP())
	if err != nil {
		return authErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp)
}

// VerifyOTP handles POST /api/auth/verify-otp
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP verification",
			logger.ErrorField(err),
			logger.String("endpoint", "VerifyOTP"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	session, err := h.authUC.VerifyOTP(c.Request().Context(), &req, c.RealIP())
	if err != nil {
		return authErrorResponse(c, err)
	}

	h.setSessionCookies(c, session.Tokens)
	return utils.SuccessResponse(c, http.StatusOK, sessionResponse{
		Session: session,
		Access:  session.Tokens.Access,
		Refresh: session.Tokens.Refresh,
	})
}

// RefreshToken handles POST /api/auth/refresh-token
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	pair, err := h.authUC.RefreshSession(c.Request().Context(), h.refreshToken(c))
	if err != nil {
		return authErrorResponse(c, err)
	}

	h.setSessionCookies(c, *pair)
	return utils.SuccessResponse(c, http.StatusOK, refreshResponse{
		Detail:  "token_refreshed",
		Access:  pair.Access,
		Refresh: pair.Refresh,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context(), h.refreshToken(c)); err != nil {
		return authErrorResponse(c, err)
	}

	h.clearSessionCookies(c)
	return c.NoContent(http.StatusNoContent)
}

// refreshToken reads the refresh token from the body, falling back to the cookie
func (h *AuthHandler) refreshToken(c echo.Context) string {
	var req models.RefreshTokenRequest
	if err := c.Bind(&req); err == nil && req.Refresh != "" {
		return req.Refresh
	}
	if cookie, err := c.Cookie(h.cookies.RefreshName); err == nil {
		return cookie.Value
	}
	return ""
}
