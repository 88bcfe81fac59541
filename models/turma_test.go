package models

import "testing"

func TestTurmaListMatchesCatalog(t *testing.T) {
	if len(TurmaList) != len(Turmas) {
		t.Fatalf("TurmaList has %d entries, catalog has %d", len(TurmaList), len(Turmas))
	}
	seen := make(map[string]bool, len(TurmaList))
	for _, slug := range TurmaList {
		if !IsValidTurma(slug) {
			t.Errorf("TurmaList entry %q missing from catalog", slug)
		}
		if seen[slug] {
			t.Errorf("TurmaList entry %q duplicated", slug)
		}
		seen[slug] = true
	}
}

func TestIsValidTurma(t *testing.T) {
	for _, slug := range []string{"7ano", "8ano", "9ano", "1em", "2em"} {
		if !IsValidTurma(slug) {
			t.Errorf("IsValidTurma(%q) = false, want true", slug)
		}
	}
	for _, slug := range []string{"", "10ano", "3em", "7ANO", "7ano "} {
		if IsValidTurma(slug) {
			t.Errorf("IsValidTurma(%q) = true, want false", slug)
		}
	}
}

func TestTurmaName(t *testing.T) {
	if got := TurmaName("1em"); got != "1º Ensino Médio" {
		t.Errorf("TurmaName(1em) = %q", got)
	}
	if got := TurmaName("estranha"); got != "estranha" {
		t.Errorf("TurmaName should fall back to the slug, got %q", got)
	}
}
