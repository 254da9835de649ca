package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/repository"

	"github.com/lib/pq"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	now := time.Now()
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO reviews (event_id, user_id, rating, comment, is_visible, created_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		rv.EventID, rv.UserID, rv.Rating, rv.Comment, rv.IsVisible, now, now).Scan(&rv.ID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyReviewed
		}
		return fmt.Errorf("insert review: %w", err)
	}
	rv.CreatedOn = now
	rv.UpdatedOn = now
	return nil
}

func (r *reviewRepository) GetByEventAndUser(ctx context.Context, eventID, userID int32) (*domain.Review, error) {
	rv := &domain.Review{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, event_id, user_id, rating, comment, is_visible, created_on, updated_on
		 FROM reviews WHERE event_id = $1 AND user_id = $2`,
		eventID, userID).Scan(&rv.ID, &rv.EventID, &rv.UserID, &rv.Rating, &rv.Comment,
		&rv.IsVisible, &rv.CreatedOn, &rv.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (r *reviewRepository) Exists(ctx context.Context, eventID, userID int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE event_id = $1 AND user_id = $2)`,
		eventID, userID).Scan(&exists)
	return exists, err
}

func (r *reviewRepository) ListByEvent(ctx context.Context, eventID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE event_id = $1 AND is_visible = true`, eventID).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_id, user_id, rating, comment, is_visible, created_on, updated_on
		 FROM reviews WHERE event_id = $1 AND is_visible = true
		 ORDER BY created_on DESC LIMIT $2 OFFSET $3`,
		eventID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.EventID, &rv.UserID, &rv.Rating, &rv.Comment,
			&rv.IsVisible, &rv.CreatedOn, &rv.UpdatedOn); err != nil {
			return nil, 0, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, count, rows.Err()
}
