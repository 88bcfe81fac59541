package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bicudoweb/galeria/config"
	"github.com/bicudoweb/galeria/utils"
)

// AuthController implements the access gate endpoints: the password form,
// the secret check that unlocks the admin session, and logout.
type AuthController struct{}

// NewAuthController creates a new AuthController instance.
func NewAuthController() *AuthController {
	return &AuthController{}
}

// Form renders the password prompt. The next parameter carries the
// destination the visitor originally asked for.
func (a *AuthController) Form(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "auth.html", gin.H{
		"next":  safeNext(ctx.Query("next")),
		"flash": utils.PopFlash(ctx),
	})
}

// Authenticate checks the submitted secret against the configured admin
// password. A wrong secret is a normal, retryable outcome: no lockout,
// no attempt counting, just a flash and the form again.
func (a *AuthController) Authenticate(ctx *gin.Context) {
	next := safeNext(ctx.Query("next"))
	if next == "/admin" {
		next = safeNext(ctx.PostForm("next"))
	}

	senha := ctx.PostForm("senha")
	if !utils.CheckAdminSecret(config.Get().AdminPassword, senha) {
		utils.SetFlash(ctx, "danger", "Senha incorreta.")
		ctx.Redirect(http.StatusFound, "/auth?next="+url.QueryEscape(next))
		return
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		utils.Sugar.Errorf("session token issue failed: %v", err)
		ctx.String(http.StatusInternalServerError, "erro interno")
		return
	}
	utils.SetSessionCookie(ctx, token)
	utils.SetFlash(ctx, "success", "Acesso liberado para postar/deletar.")
	ctx.Redirect(http.StatusFound, next)
}

// Logout clears the admin session and goes home.
func (a *AuthController) Logout(ctx *gin.Context) {
	utils.ClearSessionCookie(ctx)
	utils.SetFlash(ctx, "info", "Você saiu da área de gestão.")
	ctx.Redirect(http.StatusFound, "/")
}

// safeNext keeps redirects on-site: only local absolute paths pass, so a
// crafted next parameter cannot bounce the admin to another origin.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/admin"
	}
	return next
}
