package queries

import (
	"context"

	"github.com/google/uuid"
)

type ClientQueries interface {
	ListByTrainer(ctx context.Context, trainerID uuid.UUID) ([]*ClientView, error)
}

type ClientReadStore interface {
	FindByTrainerID(ctx context.Context, trainerID uuid.UUID) ([]*ClientView, error)
}

type clientQueriesImpl struct {
	store ClientReadStore
}

func NewClientQueries(store ClientReadStore) ClientQueries {
	return &clientQueriesImpl{store: store}
}

func (q *clientQueriesImpl) ListByTrainer(ctx context.Context, trainerID uuid.UUID) ([]*ClientView, error) {
	return q.store.FindByTrainerID(ctx, trainerID)
}
