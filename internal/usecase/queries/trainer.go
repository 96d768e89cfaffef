package queries

import (
	"context"
)

type TrainerQueries interface {
	List(ctx context.Context) ([]*TrainerView, error)
}

type TrainerReadStore interface {
	FindAll(ctx context.Context) ([]*TrainerView, error)
}

type trainerQueriesImpl struct {
	store TrainerReadStore
}

func NewTrainerQueries(store TrainerReadStore) TrainerQueries {
	return &trainerQueriesImpl{store: store}
}

func (q *trainerQueriesImpl) List(ctx context.Context) ([]*TrainerView, error) {
	return q.store.FindAll(ctx)
}
