package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFlashSurvivesExactlyOneRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// First request sets the flash
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/upload", nil)
	SetFlash(ctx, "success", "Imagem enviada com sucesso!")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 flash cookie, got %d", len(cookies))
	}

	// Second request carries the cookie and pops the message
	w2 := httptest.NewRecorder()
	ctx2, _ := gin.CreateTestContext(w2)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookies[0])
	ctx2.Request = req

	flash := PopFlash(ctx2)
	if flash == nil {
		t.Fatal("PopFlash returned nil, want the stored message")
	}
	if flash.Category != "success" || flash.Message != "Imagem enviada com sucesso!" {
		t.Errorf("flash = %+v, want success/Imagem enviada com sucesso!", flash)
	}

	// The pop response must clear the cookie
	cleared := false
	for _, c := range w2.Result().Cookies() {
		if c.Name == "galeria_flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("flash cookie not cleared after PopFlash")
	}
}

func TestPopFlashWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if flash := PopFlash(ctx); flash != nil {
		t.Errorf("PopFlash = %+v, want nil without a cookie", flash)
	}
}
