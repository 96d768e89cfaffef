package repository

import (
	"context"
	"time"

	"lesson-scheduler/internal/infra"
	"lesson-scheduler/internal/infra/db"

	"github.com/google/uuid"
)

// ScheduleJobRepository is the outbox for the external scheduling processor.
// Jobs are committed in the same transaction as the change that produced them
// and picked up out of process.
type ScheduleJobRepository struct {
	db db.DBTX
}

func NewScheduleJobRepository(db db.DBTX) *ScheduleJobRepository {
	return &ScheduleJobRepository{db: db}
}

const enqueueJobQuery = `
	INSERT INTO schedule_jobs (kind, payload, run_at)
	VALUES ($1, $2, $3)
	RETURNING id
`

func (r *ScheduleJobRepository) Enqueue(ctx context.Context, tx db.DBTX, kind string, payload []byte, runAt time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, enqueueJobQuery, kind, payload, runAt).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to enqueue schedule job", err)
	}

	return id, nil
}
