package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bicudoweb/galeria/models"
	"github.com/bicudoweb/galeria/services"
	"github.com/bicudoweb/galeria/utils"
)

// GalleryController serves the public pages: home with per-turma counts
// and covers, and the per-turma gallery listing.
type GalleryController struct {
	gallery *services.GalleryService
}

// NewGalleryController creates a new GalleryController instance.
func NewGalleryController(gallery *services.GalleryService) *GalleryController {
	return &GalleryController{gallery: gallery}
}

// Home renders the gallery index: image counts and the latest image for
// every turma in the catalog.
func (g *GalleryController) Home(ctx *gin.Context) {
	counts, err := g.gallery.CountsByTurma()
	if err != nil {
		utils.Sugar.Errorf("home counts query failed: %v", err)
		ctx.String(http.StatusInternalServerError, "erro interno")
		return
	}
	latest, err := g.gallery.LatestByTurma()
	if err != nil {
		utils.Sugar.Errorf("home latest query failed: %v", err)
		ctx.String(http.StatusInternalServerError, "erro interno")
		return
	}

	ctx.HTML(http.StatusOK, "home.html", gin.H{
		"turmas":     models.Turmas,
		"turmaOrder": models.TurmaList,
		"counts":     counts,
		"latest":     latest,
		"flash":      utils.PopFlash(ctx),
		"isAdmin":    utils.IsAuthenticated(ctx),
	})
}

// Galeria renders the listing of one turma. An invalid turma goes back
// to the home page with a warning.
func (g *GalleryController) Galeria(ctx *gin.Context) {
	turma := ctx.Param("turma")
	images, err := g.gallery.ListByTurma(turma)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTurma) {
			utils.SetFlash(ctx, "warning", "Galeria inválida.")
			ctx.Redirect(http.StatusFound, "/")
			return
		}
		utils.Sugar.Errorf("galeria listing failed turma=%s: %v", turma, err)
		ctx.String(http.StatusInternalServerError, "erro interno")
		return
	}

	ctx.HTML(http.StatusOK, "galeria.html", gin.H{
		"turmaSlug": turma,
		"turmaNome": models.TurmaName(turma),
		"images":    images,
		"flash":     utils.PopFlash(ctx),
		"isAdmin":   utils.IsAuthenticated(ctx),
	})
}

// Health is a liveness endpoint.
func (g *GalleryController) Health(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"status": "ok"})
}
