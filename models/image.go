package models

import "time"

// Image is one uploaded gallery photo. Filename is the server-generated
// storage key and maps 1:1 to a file in the upload directory while the
// row exists; OriginalName is the client-supplied name kept for display
// only.
type Image struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"size:255;uniqueIndex;not null" json:"filename"`
	OriginalName string    `gorm:"size:255" json:"original_name"`
	Caption      string    `gorm:"size:200" json:"caption"`
	Turma        string    `gorm:"size:80;index" json:"turma"`
	UploadedAt   time.Time `gorm:"index" json:"uploaded_at"`
}

// TurmaName returns the display name of the image's gallery.
func (i *Image) TurmaName() string {
	return TurmaName(i.Turma)
}
