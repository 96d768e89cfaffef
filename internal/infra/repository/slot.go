package repository

import (
	"context"

	"lesson-scheduler/internal/infra"
	"lesson-scheduler/internal/infra/db"
	"lesson-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(db db.DBTX) *SlotRepository {
	return &SlotRepository{db: db}
}

const createSlotQuery = `
	INSERT INTO schedule_slots (trainer_id, day, start_time, end_time, status, apply_to_all_trainers)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (trainer_id, start_time) DO UPDATE
	SET end_time = EXCLUDED.end_time,
	    status = EXCLUDED.status,
	    apply_to_all_trainers = EXCLUDED.apply_to_all_trainers
	RETURNING id
`

func (r *SlotRepository) Create(ctx context.Context, tx db.DBTX, slot commands.SlotRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createSlotQuery,
		slot.TrainerID,
		slot.Day,
		slot.StartTime,
		slot.EndTime,
		slot.Status,
		slot.ApplyToAllTrainers,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create slot", err)
	}

	return id, nil
}
