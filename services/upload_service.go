package services

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bicudoweb/galeria/models"
	"github.com/bicudoweb/galeria/utils"
)

// allowedExtensions is the fixed allow-list for uploads. The check is
// name-based only; content sniffing is out of scope.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// UploadService runs the admin mutations: it writes blobs to the upload
// directory and records to the database, and keeps the two in step on
// delete. The two writes are not transactional; a crash between blob
// write and record insert leaves an orphan blob that the sweeper in
// utils/cleanup.go reconciles later.
type UploadService struct {
	db        *gorm.DB
	uploadDir string
}

// NewUploadService creates an UploadService storing blobs under uploadDir.
func NewUploadService(db *gorm.DB, uploadDir string) *UploadService {
	return &UploadService{db: db, uploadDir: uploadDir}
}

// Upload validates the input, stores the file bytes under a generated
// name, and creates the image record. Validation failures return one of
// ErrInvalidTurma, ErrMissingFile, ErrUnsupportedFormat before anything
// is written; write failures return a wrapped ErrStorageWrite and never
// leave a record pointing at a missing blob.
func (s *UploadService) Upload(file io.Reader, originalName, caption, turma string) (*models.Image, error) {
	if !models.IsValidTurma(turma) {
		return nil, ErrInvalidTurma
	}
	if file == nil || strings.TrimSpace(originalName) == "" {
		return nil, ErrMissingFile
	}

	ext, ok := extensionOf(SanitizeFilename(originalName))
	if !ok {
		return nil, ErrUnsupportedFormat
	}

	filename := GenerateFilename(ext)
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create upload dir: %v", ErrStorageWrite, err)
	}

	dstPath := filepath.Join(s.uploadDir, filename)
	if err := writeBlob(dstPath, file); err != nil {
		return nil, err
	}

	img := models.Image{
		Filename:     filename,
		OriginalName: originalName,
		Caption:      utils.Sanitize(strings.TrimSpace(caption)),
		Turma:        turma,
		UploadedAt:   time.Now().UTC(),
	}
	if err := s.db.Create(&img).Error; err != nil {
		// The record never existed, so the fresh blob is already an
		// orphan; best-effort removal keeps the directory clean.
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("%w: insert record: %v", ErrStorageWrite, err)
	}

	InvalidateGalleryCache()
	return &img, nil
}

// Delete removes an image record and its blob. Returns the former turma
// of the deleted image so the caller can redirect back to its listing.
// A blob that is already gone is not an error; any other blob removal
// failure aborts before the record is touched.
func (s *UploadService) Delete(id uint) (string, error) {
	var img models.Image
	if err := s.db.First(&img, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: lookup record: %v", ErrStorageWrite, err)
	}

	if err := os.Remove(filepath.Join(s.uploadDir, img.Filename)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: remove blob: %v", ErrStorageWrite, err)
	}

	if err := s.db.Delete(&models.Image{}, img.ID).Error; err != nil {
		return "", fmt.Errorf("%w: delete record: %v", ErrStorageWrite, err)
	}

	InvalidateGalleryCache()
	return img.Turma, nil
}

// BlobPath returns the on-disk path for a stored filename.
func (s *UploadService) BlobPath(filename string) string {
	return filepath.Join(s.uploadDir, filename)
}

// GenerateFilename builds the storage name: a microsecond-resolution UTC
// timestamp plus the validated extension. Collisions are not detected;
// the resolution makes them negligible at a single operator's write rate,
// and the unique index on filename turns one into a write error instead
// of silent corruption.
func GenerateFilename(ext string) string {
	now := time.Now().UTC()
	return fmt.Sprintf("%s%06d.%s", now.Format("20060102150405"), now.Nanosecond()/1000, ext)
}

// SanitizeFilename reduces a client-supplied name to a safe base name:
// path components are dropped and anything outside [A-Za-z0-9._-] becomes
// an underscore. Used only to extract the extension, never persisted.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}

// extensionOf returns the lower-cased extension after the last dot and
// whether it is on the allow-list.
func extensionOf(name string) (string, bool) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return "", false
	}
	ext := strings.ToLower(name[idx+1:])
	return ext, allowedExtensions[ext]
}

// writeBlob streams the payload to dstPath, removing the partial file on
// failure so no blob exists unpaired before its record is written.
func writeBlob(dstPath string, src io.Reader) error {
	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("%w: create blob: %v", ErrStorageWrite, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dstPath)
		return fmt.Errorf("%w: write blob: %v", ErrStorageWrite, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dstPath)
		return fmt.Errorf("%w: close blob: %v", ErrStorageWrite, err)
	}
	return nil
}
