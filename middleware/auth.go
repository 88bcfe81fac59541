package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/bicudoweb/galeria/utils"
)

// AdminRequired gates mutating routes behind the admin session. An
// unauthenticated caller is redirected to the auth form with the original
// destination in the next parameter so it can be resumed after login.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !utils.IsAuthenticated(ctx) {
			ctx.Redirect(http.StatusFound, "/auth?next="+url.QueryEscape(ctx.Request.URL.RequestURI()))
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
