package utils

import (
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"github.com/bicudoweb/galeria/models"
)

// orphanGracePeriod keeps the sweeper away from blobs that may belong to
// an upload whose record insert has not landed yet.
const orphanGracePeriod = time.Hour

// StartOrphanSweeper launches a background goroutine that periodically
// removes blobs in the upload directory that have no matching image
// record. Blob and record writes are not transactional, so a crash midway
// through an upload can leave a file behind; the sweeper reconciles that.
// Best-effort: failures are logged and retried on the next round.
func StartOrphanSweeper(db *gorm.DB, uploadDir string, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	go func() {
		for {
			// Sleep first to avoid racing the schema init at startup
			time.Sleep(interval)
			if n, err := SweepOrphanBlobs(db, uploadDir, orphanGracePeriod); err != nil {
				Sugar.Warnf("orphan sweep failed: %v", err)
			} else if n > 0 {
				Sugar.Infof("orphan sweep removed %d stale blob(s)", n)
			}
		}
	}()
}

// SweepOrphanBlobs removes files in uploadDir older than minAge that no
// image record references. Returns the number of files removed.
func SweepOrphanBlobs(db *gorm.DB, uploadDir string, minAge time.Duration) (int, error) {
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-minAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		var count int64
		if err := db.Model(&models.Image{}).Where("filename = ?", entry.Name()).Count(&count).Error; err != nil {
			return removed, err
		}
		if count > 0 {
			continue
		}
		if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err != nil {
			Sugar.Warnf("orphan sweep could not remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}
	return removed, nil
}
