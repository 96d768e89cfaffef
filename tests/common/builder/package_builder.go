//go:build unit || e2e

package builder

import (
	"time"

	"lesson-scheduler/internal/domain/lessonpackage"

	"github.com/google/uuid"
)

// PackageBuilder builds consumable private packages by default.
type PackageBuilder struct {
	ClientID         uuid.UUID
	Type             lessonpackage.Type
	LessonsRemaining int
	PurchaseDate     time.Time
	ExpirationDate   *time.Time
	Expired          bool
}

func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		ClientID:         uuid.New(),
		Type:             lessonpackage.TypePrivate,
		LessonsRemaining: 5,
		PurchaseDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *PackageBuilder) WithType(t lessonpackage.Type) *PackageBuilder {
	b.Type = t
	return b
}

func (b *PackageBuilder) WithClientID(id uuid.UUID) *PackageBuilder {
	b.ClientID = id
	return b
}

func (b *PackageBuilder) WithLessonsRemaining(n int) *PackageBuilder {
	b.LessonsRemaining = n
	return b
}

func (b *PackageBuilder) WithPurchaseDate(t time.Time) *PackageBuilder {
	b.PurchaseDate = t
	return b
}

func (b *PackageBuilder) WithExpirationDate(t time.Time) *PackageBuilder {
	b.ExpirationDate = &t
	return b
}

func (b *PackageBuilder) WithExpired(expired bool) *PackageBuilder {
	b.Expired = expired
	return b
}

func (b *PackageBuilder) Build() lessonpackage.LessonPackage {
	return lessonpackage.LessonPackage{
		ID:               uuid.New(),
		ClientID:         b.ClientID,
		Type:             b.Type,
		LessonsRemaining: b.LessonsRemaining,
		PurchaseDate:     b.PurchaseDate,
		ExpirationDate:   b.ExpirationDate,
		Expired:          b.Expired,
	}
}
