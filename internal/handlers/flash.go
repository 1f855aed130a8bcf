package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// setFlash stores a one-shot message for the next page load, mirroring the
// usual server-rendered flash pattern.
func setFlash(ctx *gin.Context, message string) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// takeFlash reads and clears the pending flash message, if any.
func takeFlash(ctx *gin.Context) string {
	value, err := ctx.Cookie(flashCookie)

	if err != nil || value == "" {
		return ""
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	message, err := url.QueryUnescape(value)

	if err != nil {
		return ""
	}

	return message
}
