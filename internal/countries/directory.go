package countries

import (
	"slices"
	"strings"

	"github.com/selivandex/worldmap-intel/pkg/models"
)

// Directory resolves country codes to subjects
type Directory interface {
	// Lookup finds a subject by alpha-3 code, case-insensitive
	Lookup(code string) (models.CountrySubject, bool)
	// Search returns subjects whose code, name or alias contains query
	Search(query string) []models.CountrySubject
	All() []models.CountrySubject
}

// StaticDirectory is an immutable in-memory Directory
type StaticDirectory struct {
	ordered []models.CountrySubject
	byCode  map[string]int
}

// NewStaticDirectory indexes subjects. Later duplicates of a code are ignored.
func NewStaticDirectory(subjects []models.CountrySubject) *StaticDirectory {
	d := &StaticDirectory{
		ordered: make([]models.CountrySubject, 0, len(subjects)),
		byCode:  make(map[string]int, len(subjects)),
	}

	for _, s := range subjects {
		s.Code = normalize(s.Code)
		if s.Code == "" {
			continue
		}
		if _, dup := d.byCode[s.Code]; dup {
			continue
		}
		d.byCode[s.Code] = len(d.ordered)
		d.ordered = append(d.ordered, detach(s))
	}

	return d
}

// Builtin returns the directory backed by the compiled-in table
func Builtin() *StaticDirectory {
	return NewStaticDirectory(builtin)
}

func (d *StaticDirectory) Lookup(code string) (models.CountrySubject, bool) {
	i, ok := d.byCode[normalize(code)]
	if !ok {
		return models.CountrySubject{}, false
	}
	return detach(d.ordered[i]), true
}

func (d *StaticDirectory) Search(query string) []models.CountrySubject {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []models.CountrySubject
	for _, s := range d.ordered {
		if matchesQuery(s, q) {
			matches = append(matches, detach(s))
		}
	}
	return matches
}

func (d *StaticDirectory) All() []models.CountrySubject {
	out := make([]models.CountrySubject, len(d.ordered))
	for i, s := range d.ordered {
		out[i] = detach(s)
	}
	return out
}

// detach copies the alias slice so callers can't mutate the table
func detach(s models.CountrySubject) models.CountrySubject {
	s.Aliases = slices.Clone(s.Aliases)
	return s
}

// Len returns number of subjects
func (d *StaticDirectory) Len() int {
	return len(d.ordered)
}

func matchesQuery(s models.CountrySubject, q string) bool {
	if strings.Contains(strings.ToLower(s.Code), q) || strings.Contains(strings.ToLower(s.Name), q) {
		return true
	}
	for _, alias := range s.Aliases {
		if strings.Contains(strings.ToLower(alias), q) {
			return true
		}
	}
	return false
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
