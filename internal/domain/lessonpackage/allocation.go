package lessonpackage

import (
	"sort"

	"github.com/google/uuid"
)

// SelectBestPackage picks the single package instance to debit for a booking
// of the requested type. Time-boxed passes are consumed before they expire
// (earliest expiration first); non-expiring passes fall back to oldest
// purchase first. Returns false when no consumable package of the type
// exists. Deterministic over its input, never mutates it.
func SelectBestPackage(t Type, packages []LessonPackage) (uuid.UUID, bool) {
	candidates := make([]LessonPackage, 0, len(packages))
	for _, p := range packages {
		if p.Type == t && p.Consumable() {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return uuid.Nil, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return consumeBefore(candidates[i], candidates[j])
	})
	return candidates[0].ID, true
}

func consumeBefore(a, b LessonPackage) bool {
	switch {
	case a.ExpirationDate != nil && b.ExpirationDate == nil:
		return true
	case a.ExpirationDate == nil && b.ExpirationDate != nil:
		return false
	case a.ExpirationDate != nil && b.ExpirationDate != nil:
		if !a.ExpirationDate.Equal(*b.ExpirationDate) {
			return a.ExpirationDate.Before(*b.ExpirationDate)
		}
	}
	return a.PurchaseDate.Before(b.PurchaseDate)
}
