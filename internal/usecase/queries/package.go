package queries

import (
	"context"

	"github.com/google/uuid"
)

type PackageQueries interface {
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*PackageView, error)
}

type PackageReadStore interface {
	FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*PackageView, error)
}

type packageQueriesImpl struct {
	store PackageReadStore
}

func NewPackageQueries(store PackageReadStore) PackageQueries {
	return &packageQueriesImpl{store: store}
}

func (q *packageQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*PackageView, error) {
	return q.store.FindByClientID(ctx, clientID)
}
