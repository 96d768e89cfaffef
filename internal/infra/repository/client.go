package repository

import (
	"context"
	"errors"

	"lesson-scheduler/internal/infra"
	"lesson-scheduler/internal/infra/db"
	"lesson-scheduler/internal/usecase/commands"
	"lesson-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ClientRepository struct {
	db db.DBTX
}

func NewClientRepository(db db.DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

const findClientByIDQuery = `
	SELECT id, full_name
	FROM clients
	WHERE id = $1
`

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ClientSnapshot, error) {
	var snapshot commands.ClientSnapshot
	err := r.db.QueryRow(ctx, findClientByIDQuery, id).Scan(&snapshot.ID, &snapshot.FullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by id", err)
	}

	return &snapshot, nil
}

type ClientReadStore struct {
	db db.DBTX
}

func NewClientReadStore(db db.DBTX) *ClientReadStore {
	return &ClientReadStore{db: db}
}

const findClientsByTrainerQuery = `
	SELECT id, full_name
	FROM clients
	WHERE trainer_id = $1
	ORDER BY full_name
`

func (r *ClientReadStore) FindByTrainerID(ctx context.Context, trainerID uuid.UUID) ([]*queries.ClientView, error) {
	rows, err := r.db.Query(ctx, findClientsByTrainerQuery, trainerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()

	var views []*queries.ClientView
	for rows.Next() {
		var view queries.ClientView
		if err := rows.Scan(&view.ID, &view.FullName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan client row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read client rows", err)
	}

	return views, nil
}
