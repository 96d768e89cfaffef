package request

import (
	"lesson-scheduler/internal/domain/lessonpackage"
	"lesson-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookLessonRequest struct {
	TrainerID uuid.UUID  `json:"trainer_id" binding:"required"`
	ClientID  uuid.UUID  `json:"client_id" binding:"required"`
	StartTime int64      `json:"start_time" binding:"required"` // epoch seconds
	EndTime   int64      `json:"end_time" binding:"required"`   // epoch seconds
	PackageID *uuid.UUID `json:"package_id"`
	// PackageType drives server-side allocation when package_id is omitted.
	PackageType *string `json:"package_type"`
}

func (r *BookLessonRequest) ToParams() (commands.BookLessonParams, error) {
	params := commands.BookLessonParams{
		TrainerID: r.TrainerID,
		ClientID:  r.ClientID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		PackageID: r.PackageID,
	}

	if r.PackageType != nil {
		packageType, err := lessonpackage.NewType(*r.PackageType)
		if err != nil {
			return commands.BookLessonParams{}, err
		}
		params.PackageType = &packageType
	}

	return params, nil
}
