package services

import (
	"errors"
	"testing"
	"time"

	"github.com/bicudoweb/galeria/models"
)

func TestCountsByTurmaIncludesEmptyTurmas(t *testing.T) {
	db := newTestDB(t)
	svc := NewGalleryService(db)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedImage(t, db, "a.jpg", "7ano", base)
	seedImage(t, db, "b.jpg", "7ano", base.Add(time.Minute))
	seedImage(t, db, "c.png", "1em", base)

	counts, err := svc.CountsByTurma()
	if err != nil {
		t.Fatalf("CountsByTurma: %v", err)
	}

	if len(counts) != len(models.TurmaList) {
		t.Fatalf("expected %d entries, got %d", len(models.TurmaList), len(counts))
	}
	want := map[string]int64{"7ano": 2, "8ano": 0, "9ano": 0, "1em": 1, "2em": 0}
	for turma, cnt := range want {
		if counts[turma] != cnt {
			t.Errorf("counts[%s] = %d, want %d", turma, counts[turma], cnt)
		}
	}
}

func TestLatestByTurma(t *testing.T) {
	db := newTestDB(t)
	svc := NewGalleryService(db)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedImage(t, db, "old.jpg", "7ano", base)
	newest := seedImage(t, db, "new.jpg", "7ano", base.Add(time.Hour))

	latest, err := svc.LatestByTurma()
	if err != nil {
		t.Fatalf("LatestByTurma: %v", err)
	}

	got := latest["7ano"]
	if got == nil {
		t.Fatal("latest[7ano] is nil, want a record")
	}
	if got.Filename != newest.Filename {
		t.Errorf("latest[7ano] = %s, want %s", got.Filename, newest.Filename)
	}
	for _, turma := range []string{"8ano", "9ano", "1em", "2em"} {
		if latest[turma] != nil {
			t.Errorf("latest[%s] = %v, want nil", turma, latest[turma])
		}
	}
}

func TestLatestByTurmaTieBreaksOnID(t *testing.T) {
	db := newTestDB(t)
	svc := NewGalleryService(db)

	when := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedImage(t, db, "first.jpg", "9ano", when)
	second := seedImage(t, db, "second.jpg", "9ano", when)

	latest, err := svc.LatestByTurma()
	if err != nil {
		t.Fatalf("LatestByTurma: %v", err)
	}
	if got := latest["9ano"]; got == nil || got.ID != second.ID {
		t.Errorf("equal timestamps should resolve to the higher id, got %+v", got)
	}
}

func TestListByTurma(t *testing.T) {
	db := newTestDB(t)
	svc := NewGalleryService(db)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedImage(t, db, "a.jpg", "8ano", base)
	seedImage(t, db, "b.jpg", "8ano", base.Add(time.Minute))
	seedImage(t, db, "other.jpg", "7ano", base)

	images, err := svc.ListByTurma("8ano")
	if err != nil {
		t.Fatalf("ListByTurma: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}
	if images[0].Filename != "b.jpg" || images[1].Filename != "a.jpg" {
		t.Errorf("wrong order: %s, %s (want newest first)", images[0].Filename, images[1].Filename)
	}
}

func TestListByTurmaRejectsUnknownTurma(t *testing.T) {
	svc := NewGalleryService(newTestDB(t))

	if _, err := svc.ListByTurma("10ano"); !errors.Is(err, ErrInvalidTurma) {
		t.Errorf("ListByTurma(10ano) error = %v, want ErrInvalidTurma", err)
	}
}

func TestListAllTreatsUnknownFilterAsNoFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewGalleryService(db)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedImage(t, db, "a.jpg", "7ano", base)
	seedImage(t, db, "b.jpg", "2em", base.Add(time.Minute))

	tests := []struct {
		name   string
		filter string
		want   int
	}{
		{"no filter", "", 2},
		{"valid filter", "7ano", 1},
		{"unknown filter returns everything", "10ano", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images, err := svc.ListAll(tt.filter)
			if err != nil {
				t.Fatalf("ListAll(%q): %v", tt.filter, err)
			}
			if len(images) != tt.want {
				t.Errorf("ListAll(%q) returned %d images, want %d", tt.filter, len(images), tt.want)
			}
		})
	}
}
