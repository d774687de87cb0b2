package queries

import (
	"context"
)

type RevenueQueries interface {
	Summary(ctx context.Context) (*RevenueSummary, error)
}

type revenueQueriesImpl struct {
	store RevenueReadStore
}

func NewRevenueQueries(store RevenueReadStore) RevenueQueries {
	return &revenueQueriesImpl{store: store}
}

func (q *revenueQueriesImpl) Summary(ctx context.Context) (*RevenueSummary, error) {
	return q.store.Summary(ctx)
}
