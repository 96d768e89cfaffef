package lessonpackage

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidPackageType = errors.New("invalid package type")

type Type string

const (
	TypePrivate      Type = "private"
	TypeTwoAthlete   Type = "2_athlete"
	TypeThreeAthlete Type = "3_athlete"
	TypeClassPass    Type = "class_pass"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypePrivate, TypeTwoAthlete, TypeThreeAthlete, TypeClassPass:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidPackageType
	}
	return t, nil
}

// LessonPackage is a read-only record owned by the remote store. The rule
// engine ranks these; debiting happens server-side as part of a committed
// booking.
type LessonPackage struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	Type             Type
	LessonsRemaining int
	PurchaseDate     time.Time
	ExpirationDate   *time.Time
	Expired          bool
}

// Consumable reports whether the package can still cover a lesson.
func (p LessonPackage) Consumable() bool {
	return p.LessonsRemaining > 0 && !p.Expired
}
