package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

func sameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "lax", "":
		return http.SameSiteLaxMode
	}
	return http.SameSiteDefaultMode
}

func (h *AuthHandler) newCookie(name, value string) *http.Cookie {
	mode := sameSite(h.cookies.SameSite)
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     h.cookies.Path,
		Domain:   h.cookies.Domain,
		HttpOnly: true,
		// browsers drop SameSite=None cookies that are not Secure
		Secure:   h.cookies.Secure || mode == http.SameSiteNoneMode,
		SameSite: mode,
	}
}

func (h *AuthHandler) setSessionCookies(c echo.Context, pair models.TokenPair) {
	access := h.newCookie(h.cookies.AccessName, pair.Access)
	access.Expires = pair.AccessExpiresAt
	c.SetCookie(access)

	refresh := h.newCookie(h.cookies.RefreshName, pair.Refresh)
	refresh.Expires = pair.RefreshExpiresAt
	c.SetCookie(refresh)
}

func (h *AuthHandler) clearSessionCookies(c echo.Context) {
	for _, name := range []string{h.cookies.AccessName, h.cookies.RefreshName} {
		cookie := h.newCookie(name, "")
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		c.SetCookie(cookie)
	}
}
