package repository

import (
	"context"

	"seat-reservation/internal/infra"
	"seat-reservation/internal/infra/query"

	"github.com/google/uuid"
)

type EventReadQueries interface {
	EventExists(ctx context.Context, db query.DBTX, id uuid.UUID) (bool, error)
}

type EventRepository struct {
	queries EventReadQueries
	db      query.DBTX
}

func NewEventRepository(queries EventReadQueries, db query.DBTX) *EventRepository {
	return &EventRepository{queries: queries, db: db}
}

func (r *EventRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.EventExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check event", err)
	}
	return ok, nil
}
