package utils

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "galeria_flash"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string // success, info, warning, danger
	Message  string
}

// SetFlash stores a flash message in a short-lived cookie. It survives
// exactly one redirect; reading it clears it.
func SetFlash(ctx *gin.Context, category, message string) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending flash message, if any, and clears it.
// ctx.Cookie already unescapes the stored value.
func PopFlash(ctx *gin.Context) *Flash {
	raw, err := ctx.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	category, message, found := strings.Cut(raw, "|")
	if !found || message == "" {
		return nil
	}
	return &Flash{Category: category, Message: message}
}
