package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bicudoweb/galeria/models"
	"github.com/bicudoweb/galeria/utils"
)

// cacheKeyPrefix namespaces every gallery cache entry so mutations can
// invalidate them in one sweep.
const cacheKeyPrefix = "cache:gallery:"

const galleryCacheTTL = 10 * time.Minute

// GalleryService answers the read-only gallery queries. All operations
// are side-effect-free; listing order is uploaded_at descending with id
// descending as the deterministic tie-break.
type GalleryService struct {
	db *gorm.DB
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{db: db}
}

// CountsByTurma returns the number of images per catalog turma. Every
// turma appears in the result, empty ones with zero.
func (g *GalleryService) CountsByTurma() (map[string]int64, error) {
	counts := make(map[string]int64, len(models.TurmaList))
	if utils.CacheGetJSON(cacheKeyPrefix+"counts", &counts) && len(counts) == len(models.TurmaList) {
		return counts, nil
	}

	for _, turma := range models.TurmaList {
		counts[turma] = 0
	}

	var rows []struct {
		Turma string
		Cnt   int64
	}
	if err := g.db.Model(&models.Image{}).
		Select("turma, count(id) as cnt").
		Group("turma").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		if _, ok := counts[row.Turma]; ok {
			counts[row.Turma] = row.Cnt
		}
	}

	utils.CacheSetJSON(cacheKeyPrefix+"counts", counts, galleryCacheTTL)
	return counts, nil
}

// LatestByTurma returns the newest image per catalog turma, nil for
// turmas that have none.
func (g *GalleryService) LatestByTurma() (map[string]*models.Image, error) {
	latest := make(map[string]*models.Image, len(models.TurmaList))
	for _, turma := range models.TurmaList {
		var img models.Image
		err := g.db.Where("turma = ?", turma).
			Order("uploaded_at DESC, id DESC").
			First(&img).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				latest[turma] = nil
				continue
			}
			return nil, err
		}
		latest[turma] = &img
	}
	return latest, nil
}

// ListByTurma returns all images of one turma, newest first. Fails with
// ErrInvalidTurma when the turma is not in the catalog.
func (g *GalleryService) ListByTurma(turma string) ([]models.Image, error) {
	if !models.IsValidTurma(turma) {
		return nil, ErrInvalidTurma
	}

	var images []models.Image
	cacheKey := cacheKeyPrefix + "list:" + turma
	if utils.CacheGetJSON(cacheKey, &images) {
		return images, nil
	}

	if err := g.db.Where("turma = ?", turma).
		Order("uploaded_at DESC, id DESC").
		Find(&images).Error; err != nil {
		return nil, err
	}

	utils.CacheSetJSON(cacheKey, images, galleryCacheTTL)
	return images, nil
}

// ListAll returns images across all turmas, newest first. A filter that
// is not in the catalog (including empty) is treated as "no filter";
// administrators should know an invalid filter silently returns
// everything.
func (g *GalleryService) ListAll(turmaFilter string) ([]models.Image, error) {
	query := g.db.Order("uploaded_at DESC, id DESC")
	if models.IsValidTurma(turmaFilter) {
		query = query.Where("turma = ?", turmaFilter)
	}

	var images []models.Image
	if err := query.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// InvalidateGalleryCache drops every cached gallery read. Called by the
// upload and delete workflows.
func InvalidateGalleryCache() {
	utils.InvalidateByPrefix(cacheKeyPrefix)
}
