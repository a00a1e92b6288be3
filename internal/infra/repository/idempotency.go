package repository

import (
	"context"
	"time"

	"marketplace-orders/internal/infra"
	sqlc "marketplace-orders/internal/infra/sqlc/generated"
	"marketplace-orders/internal/pkg/pgconv"
	"marketplace-orders/internal/usecase/shared"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) error
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, key shared.IdempotencyKey, requestHash string, expiresAt time.Time) (bool, error) {
	params := sqlc.TryInsertIdempotencyKeyParams{
		IdempotencyKey: key.Key,
		Owner:          key.Owner,
		Endpoint:       key.Endpoint,
		RequestHash:    requestHash,
		ExpiresAt:      pgconv.TimeToPgtype(expiresAt),
	}

	n, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, tx sqlc.DBTX, key shared.IdempotencyKey) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, sqlc.GetIdempotencyKeyParams{
		IdempotencyKey: key.Key,
		Owner:          key.Owner,
		Endpoint:       key.Endpoint,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		IdempotencyKey: shared.IdempotencyKey{
			Key:      row.IdempotencyKey,
			Owner:    row.Owner,
			Endpoint: row.Endpoint,
		},
		Status:          shared.IdempotencyStatus(row.Status),
		RequestHash:     row.RequestHash,
		ResultReference: pgconv.StringPtrFromPgtype(row.ResultReference),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx sqlc.DBTX, key shared.IdempotencyKey, requestHash string, now, expiresAt time.Time) (bool, error) {
	params := sqlc.ClaimExpiredIdempotencyKeyParams{
		RequestHash:    requestHash,
		ExpiresAt:      pgconv.TimeToPgtype(expiresAt),
		IdempotencyKey: key.Key,
		Owner:          key.Owner,
		Endpoint:       key.Endpoint,
		Now:            pgconv.TimeToPgtype(now),
	}

	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tx sqlc.DBTX, key shared.IdempotencyKey, resultReference string) error {
	params := sqlc.CompleteIdempotencyKeyParams{
		ResultReference: pgconv.StringPtrToPgtype(&resultReference),
		IdempotencyKey:  key.Key,
		Owner:           key.Owner,
		Endpoint:        key.Endpoint,
	}

	if err := r.queries.CompleteIdempotencyKey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}
