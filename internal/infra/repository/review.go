package repository

import (
	"context"

	"table-booking/internal/domain/review"
	"table-booking/internal/infra"
	"table-booking/internal/infra/pgsql"
	"table-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateReviewParams) error
	UpdateReview(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      pgsql.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db pgsql.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, tx pgsql.DBTX, rev *review.Review) error {
	params := pgsql.CreateReviewParams{
		ID:           rev.ID(),
		UserID:       rev.UserID(),
		RestaurantID: rev.RestaurantID(),
		Stars:        rev.Stars().Value(),
		Message:      pgconv.StringPtrToPgtype(rev.Message().Ptr()),
		CreatedAt:    pgconv.TimeToPgtype(rev.CreatedAt()),
	}
	if err := r.queries.CreateReview(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx pgsql.DBTX, rev *review.Review) error {
	params := pgsql.UpdateReviewParams{
		ID:        rev.ID(),
		Stars:     rev.Stars().Value(),
		Message:   pgconv.StringPtrToPgtype(rev.Message().Ptr()),
		UpdatedAt: pgconv.TimeToPgtype(rev.UpdatedAt()),
	}
	rows, err := r.queries.UpdateReview(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx pgsql.DBTX, reviewID uuid.UUID) error {
	rows, err := r.queries.DeleteReview(ctx, tx, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
