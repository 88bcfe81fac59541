package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bicudoweb/galeria/models"
)

// newTestDB opens an isolated in-memory store with the gallery schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Image{}, &models.PageView{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// seedImage inserts a record directly, bypassing the upload workflow.
func seedImage(t *testing.T, db *gorm.DB, filename, turma string, uploadedAt time.Time) models.Image {
	t.Helper()
	img := models.Image{
		Filename:     filename,
		OriginalName: filename,
		Turma:        turma,
		UploadedAt:   uploadedAt,
	}
	if err := db.Create(&img).Error; err != nil {
		t.Fatalf("seed image %s: %v", filename, err)
	}
	return img
}
