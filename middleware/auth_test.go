package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bicudoweb/galeria/utils"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/", AdminRequired())
	admin.GET("/admin", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})
	return r
}

func TestAdminRequiredRedirectsAnonymous(t *testing.T) {
	r := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin?turma=7ano", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	loc := w.Header().Get("Location")
	want := "/auth?next=%2Fadmin%3Fturma%3D7ano"
	if loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
}

func TestAdminRequiredPassesValidSession(t *testing.T) {
	r := newAuthRouter(t)

	token, err := utils.NewSessionToken()
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAdminRequiredRejectsTamperedToken(t *testing.T) {
	r := newAuthRouter(t)

	token, err := utils.NewSessionToken()
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token + "x"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
}
