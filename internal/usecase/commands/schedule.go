package commands

import (
	"context"
	"encoding/json"
	"time"

	"lesson-scheduler/internal/domain/booking"
	"lesson-scheduler/internal/domain/recurrence"
	"lesson-scheduler/internal/domain/schedule"
	"lesson-scheduler/internal/infra/db"
	"lesson-scheduler/internal/pkg/clock"
	"lesson-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlot             = errs.New("invalid slot")
	ErrInvalidRule             = errs.New("invalid recurrence rule")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ScheduleJobKindExpandRule is consumed by the external scheduling processor.
const ScheduleJobKindExpandRule = "expand_recurring_rule"

type SaveSingleSlotParams struct {
	TrainerID          uuid.UUID
	Day                time.Time
	StartTime          time.Time
	EndTime            time.Time
	Status             schedule.SlotStatus
	ApplyToAllTrainers bool
}

type ApplyRecurringRuleParams struct {
	TrainerID          uuid.UUID
	Weekdays           []time.Weekday
	DailyStartHour     int
	DailyEndHour       int
	StartDate          time.Time
	EndDate            *time.Time
	Ongoing            bool
	Status             schedule.SlotStatus
	ApplyToAllTrainers bool
}

type ScheduleCommands interface {
	SaveSingleSlot(ctx context.Context, params SaveSingleSlotParams) (uuid.UUID, error)
	ApplyRecurringRule(ctx context.Context, params ApplyRecurringRuleParams) (uuid.UUID, error)
}

type scheduleCommandsImpl struct {
	slotRepo SlotRepository
	jobRepo  ScheduleJobRepository
	db       db.DBTX
	clock    clock.Clock
}

func NewScheduleCommands(
	slotRepo SlotRepository,
	jobRepo ScheduleJobRepository,
	dbtx db.DBTX,
	clock clock.Clock,
) ScheduleCommands {
	return &scheduleCommandsImpl{
		slotRepo: slotRepo,
		jobRepo:  jobRepo,
		db:       dbtx,
		clock:    clock,
	}
}

// SaveSingleSlot normalizes the edited slot onto hour boundaries and persists
// it. Raw input is accepted as-is; normalization repairs it rather than
// rejecting.
func (s *scheduleCommandsImpl) SaveSingleSlot(ctx context.Context, params SaveSingleSlotParams) (uuid.UUID, error) {
	if !params.Status.IsValid() {
		return uuid.Nil, ErrInvalidSlot
	}

	draft := schedule.NewSingleSlotDraft(params.Day, params.StartTime.Hour(), params.Status)
	draft.SetStart(params.StartTime)
	draft.SetEnd(params.EndTime)

	if !booking.CanSubmitSingle(draft) {
		return uuid.Nil, ErrInvalidSlot
	}

	record := SlotRecord{
		TrainerID:          params.TrainerID,
		Day:                draft.Day(),
		StartTime:          draft.Start(),
		EndTime:            draft.End(),
		Status:             draft.Status().String(),
		ApplyToAllTrainers: params.ApplyToAllTrainers,
	}

	slotID, err := s.slotRepo.Create(ctx, s.db, record)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return slotID, nil
}

// ApplyRecurringRule validates the weekly pattern and enqueues it for the
// external scheduling processor. Instances are never enumerated here; the
// processor owns expansion. The one-month default end date is filled in at
// this submission moment when the rule is neither ongoing nor explicitly
// bounded.
func (s *scheduleCommandsImpl) ApplyRecurringRule(ctx context.Context, params ApplyRecurringRuleParams) (uuid.UUID, error) {
	b := recurrence.NewBuilder(params.StartDate)
	for _, w := range params.Weekdays {
		b.ToggleWeekday(w)
	}
	b.SetDailyStartHour(params.DailyStartHour)
	b.SetDailyEndHour(params.DailyEndHour)
	b.SetStatus(params.Status)
	b.SetApplyToAllTrainers(params.ApplyToAllTrainers)
	if params.Ongoing {
		b.SetOngoing()
	} else if params.EndDate != nil {
		b.SetEndDate(*params.EndDate)
	}

	rule, err := b.Build()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRule)
	}
	if !booking.CanSubmitRecurring(rule) {
		return uuid.Nil, ErrInvalidRule
	}

	payload, err := json.Marshal(rulePayload(params.TrainerID, rule))
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to encode rule payload")
	}

	jobID, err := s.jobRepo.Enqueue(ctx, s.db, ScheduleJobKindExpandRule, payload, s.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return jobID, nil
}

func rulePayload(trainerID uuid.UUID, rule recurrence.Rule) map[string]any {
	weekdays := make([]int, 0, len(rule.Weekdays()))
	for _, w := range rule.Weekdays() {
		weekdays = append(weekdays, int(w))
	}

	var endDate *string
	if rule.EndDate() != nil {
		s := rule.EndDate().Format(time.DateOnly)
		endDate = &s
	}

	return map[string]any{
		"trainer_id":            trainerID,
		"start_date":            rule.StartDate().Format(time.DateOnly),
		"end_date":              endDate,
		"daily_start_hour":      rule.DailyStartHour(),
		"daily_end_hour":        rule.DailyEndHour(),
		"slot_duration_minutes": rule.SlotDurationMinutes(),
		"weekdays":              weekdays,
		"status":                rule.Status().String(),
		"apply_to_all_trainers": rule.AppliesToAllTrainers(),
	}
}
