package models

// Turmas maps each gallery slug to its display name. The catalog is fixed
// at compile time and not editable at runtime; every image belongs to
// exactly one of these galleries.
var Turmas = map[string]string{
	"7ano": "7º Ano",
	"8ano": "8º Ano",
	"9ano": "9º Ano",
	"1em":  "1º Ensino Médio",
	"2em":  "2º Ensino Médio",
}

// TurmaList holds the catalog slugs in presentation order. Iterating the
// map directly would shuffle the home page between requests.
var TurmaList = []string{"7ano", "8ano", "9ano", "1em", "2em"}

// IsValidTurma reports whether slug belongs to the catalog.
func IsValidTurma(slug string) bool {
	_, ok := Turmas[slug]
	return ok
}

// TurmaName returns the display name for a catalog slug, or the slug
// itself when it is unknown.
func TurmaName(slug string) string {
	if name, ok := Turmas[slug]; ok {
		return name
	}
	return slug
}
