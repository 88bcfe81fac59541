package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bicudoweb/galeria/models"
	"github.com/bicudoweb/galeria/services"
	"github.com/bicudoweb/galeria/utils"
)

// AdminController serves the gated management pages and runs the upload
// and delete workflows. Every route here sits behind AdminRequired.
type AdminController struct {
	gallery *services.GalleryService
	uploads *services.UploadService
}

// NewAdminController creates a new AdminController instance.
func NewAdminController(gallery *services.GalleryService, uploads *services.UploadService) *AdminController {
	return &AdminController{gallery: gallery, uploads: uploads}
}

// Listing renders the management listing, optionally filtered by the
// turma query parameter. An unrecognized filter means "no filter".
func (a *AdminController) Listing(ctx *gin.Context) {
	turma := strings.TrimSpace(ctx.Query("turma"))
	images, err := a.gallery.ListAll(turma)
	if err != nil {
		utils.Sugar.Errorf("admin listing failed: %v", err)
		ctx.String(http.StatusInternalServerError, "erro interno")
		return
	}

	ctx.HTML(http.StatusOK, "admin.html", gin.H{
		"images":     images,
		"turmas":     models.Turmas,
		"turmaOrder": models.TurmaList,
		"turmaAtual": turma,
		"flash":      utils.PopFlash(ctx),
	})
}

// UploadForm renders the upload page.
func (a *AdminController) UploadForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "upload.html", gin.H{
		"turmas":     models.Turmas,
		"turmaOrder": models.TurmaList,
		"flash":      utils.PopFlash(ctx),
	})
}

// Upload runs the upload workflow and reports the outcome as a flash.
// Validation failures bounce back to the form; success lands on the
// admin listing filtered to the uploaded turma.
func (a *AdminController) Upload(ctx *gin.Context) {
	caption := ctx.PostForm("caption")
	turma := strings.TrimSpace(ctx.PostForm("turma"))

	file, header, err := ctx.Request.FormFile("image")
	var originalName string
	if err == nil {
		defer file.Close()
		originalName = header.Filename
	}

	var img *models.Image
	if err == nil {
		img, err = a.uploads.Upload(file, originalName, caption, turma)
	} else {
		// No file arrived; run the workflow anyway so turma validation
		// still comes first.
		img, err = a.uploads.Upload(nil, "", caption, turma)
	}

	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTurma):
			utils.SetFlash(ctx, "warning", "Selecione uma galeria válida.")
		case errors.Is(err, services.ErrMissingFile):
			utils.SetFlash(ctx, "warning", "Selecione uma imagem.")
		case errors.Is(err, services.ErrUnsupportedFormat):
			utils.SetFlash(ctx, "warning", "Formato não permitido. Use PNG/JPG/JPEG/GIF/WEBP.")
		default:
			utils.Sugar.Errorf("upload failed: %v", err)
			utils.SetFlash(ctx, "danger", "Falha ao salvar a imagem.")
		}
		ctx.Redirect(http.StatusFound, "/upload")
		return
	}

	utils.SetFlash(ctx, "success", "Imagem enviada com sucesso!")
	ctx.Redirect(http.StatusFound, "/admin?turma="+url.QueryEscape(img.Turma))
}

// Delete runs the delete workflow for one image id.
func (a *AdminController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.SetFlash(ctx, "warning", "Imagem não encontrada.")
		ctx.Redirect(http.StatusFound, "/admin")
		return
	}

	turma, err := a.uploads.Delete(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.SetFlash(ctx, "warning", "Imagem não encontrada.")
			ctx.Redirect(http.StatusFound, "/admin")
			return
		}
		utils.Sugar.Errorf("delete failed id=%d: %v", id, err)
		utils.SetFlash(ctx, "danger", "Falha ao remover a imagem.")
		ctx.Redirect(http.StatusFound, "/admin")
		return
	}

	utils.SetFlash(ctx, "info", "Imagem removida.")
	ctx.Redirect(http.StatusFound, "/admin?turma="+url.QueryEscape(turma))
}
