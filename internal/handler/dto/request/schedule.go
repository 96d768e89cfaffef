package request

import (
	"time"

	"lesson-scheduler/internal/domain/schedule"
	"lesson-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type SaveSlotRequest struct {
	TrainerID          uuid.UUID `json:"trainer_id" binding:"required"`
	Day                string    `json:"day" binding:"required"`
	StartTime          int64     `json:"start_time" binding:"required"`
	EndTime            int64     `json:"end_time" binding:"required"`
	Status             string    `json:"status" binding:"required"`
	ApplyToAllTrainers bool      `json:"apply_to_all_trainers"`
}

func (r *SaveSlotRequest) ToParams() (commands.SaveSingleSlotParams, error) {
	status, err := schedule.NewSlotStatus(r.Status)
	if err != nil {
		return commands.SaveSingleSlotParams{}, err
	}

	day, err := time.Parse(dateLayout, r.Day)
	if err != nil {
		return commands.SaveSingleSlotParams{}, err
	}

	return commands.SaveSingleSlotParams{
		TrainerID:          r.TrainerID,
		Day:                day,
		StartTime:          time.Unix(r.StartTime, 0).UTC(),
		EndTime:            time.Unix(r.EndTime, 0).UTC(),
		Status:             status,
		ApplyToAllTrainers: r.ApplyToAllTrainers,
	}, nil
}

type ApplyRuleRequest struct {
	TrainerID          uuid.UUID `json:"trainer_id" binding:"required"`
	Weekdays           []int     `json:"weekdays" binding:"required,dive,gte=0,lte=6"`
	DailyStartHour     int       `json:"daily_start_hour"`
	DailyEndHour       int       `json:"daily_end_hour"`
	StartDate          string    `json:"start_date" binding:"required"`
	EndDate            *string   `json:"end_date"`
	Ongoing            bool      `json:"ongoing"`
	Status             string    `json:"status" binding:"required"`
	ApplyToAllTrainers bool      `json:"apply_to_all_trainers"`
}

func (r *ApplyRuleRequest) ToParams() (commands.ApplyRecurringRuleParams, error) {
	status, err := schedule.NewSlotStatus(r.Status)
	if err != nil {
		return commands.ApplyRecurringRuleParams{}, err
	}

	startDate, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return commands.ApplyRecurringRuleParams{}, err
	}

	var endDate *time.Time
	if r.EndDate != nil {
		parsed, err := time.Parse(dateLayout, *r.EndDate)
		if err != nil {
			return commands.ApplyRecurringRuleParams{}, err
		}
		endDate = &parsed
	}

	// the wire format is a set: repeated ints collapse instead of replaying
	// as toggles
	weekdays := make([]time.Weekday, 0, len(r.Weekdays))
	seen := make(map[int]struct{}, len(r.Weekdays))
	for _, d := range r.Weekdays {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		weekdays = append(weekdays, time.Weekday(d))
	}

	return commands.ApplyRecurringRuleParams{
		TrainerID:          r.TrainerID,
		Weekdays:           weekdays,
		DailyStartHour:     r.DailyStartHour,
		DailyEndHour:       r.DailyEndHour,
		StartDate:          startDate,
		EndDate:            endDate,
		Ongoing:            r.Ongoing,
		Status:             status,
		ApplyToAllTrainers: r.ApplyToAllTrainers,
	}, nil
}
