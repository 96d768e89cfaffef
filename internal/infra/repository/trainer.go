package repository

import (
	"context"

	"lesson-scheduler/internal/infra"
	"lesson-scheduler/internal/infra/db"
	"lesson-scheduler/internal/usecase/queries"
)

type TrainerReadStore struct {
	db db.DBTX
}

func NewTrainerReadStore(db db.DBTX) *TrainerReadStore {
	return &TrainerReadStore{db: db}
}

const findAllTrainersQuery = `
	SELECT id, display_name, is_active
	FROM trainers
	WHERE is_active = true
	ORDER BY display_name
`

func (r *TrainerReadStore) FindAll(ctx context.Context) ([]*queries.TrainerView, error) {
	rows, err := r.db.Query(ctx, findAllTrainersQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list trainers", err)
	}
	defer rows.Close()

	var views []*queries.TrainerView
	for rows.Next() {
		var view queries.TrainerView
		if err := rows.Scan(&view.ID, &view.DisplayName, &view.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan trainer row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read trainer rows", err)
	}

	return views, nil
}
