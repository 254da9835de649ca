package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/repository"
)

type discussionRepository struct {
	db *sql.DB
}

func NewDiscussionRepository(db *sql.DB) repository.DiscussionRepository {
	return &discussionRepository{db: db}
}

func (r *discussionRepository) Create(ctx context.Context, d *domain.Discussion) error {
	now := time.Now()
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO discussions (event_id, user_id, parent_id, content, is_pinned, created_on)
		 VALUES ($1, $2, $3, $4, false, $5) RETURNING id`,
		d.EventID, d.UserID, d.ParentID, d.Content, now).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert discussion: %w", err)
	}
	d.CreatedOn = now
	return nil
}

func (r *discussionRepository) GetByID(ctx context.Context, id int32) (*domain.Discussion, error) {
	d := &domain.Discussion{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, event_id, user_id, parent_id, content, is_pinned, created_on
		 FROM discussions WHERE id = $1`,
		id).Scan(&d.ID, &d.EventID, &d.UserID, &d.ParentID, &d.Content, &d.IsPinned, &d.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDiscussionNotFound
		}
		return nil, err
	}
	return d, nil
}

// ListByEvent returns pinned posts first, then the rest in thread order.
// Replies are interleaved by the caller using ParentID.
func (r *discussionRepository) ListByEvent(ctx context.Context, eventID int32) ([]domain.Discussion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_id, user_id, parent_id, content, is_pinned, created_on
		 FROM discussions WHERE event_id = $1
		 ORDER BY is_pinned DESC, created_on ASC`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list discussions: %w", err)
	}
	defer rows.Close()

	var posts []domain.Discussion
	for rows.Next() {
		var d domain.Discussion
		if err := rows.Scan(&d.ID, &d.EventID, &d.UserID, &d.ParentID, &d.Content, &d.IsPinned, &d.CreatedOn); err != nil {
			return nil, fmt.Errorf("scan discussion: %w", err)
		}
		posts = append(posts, d)
	}
	return posts, rows.Err()
}

func (r *discussionRepository) SetPinned(ctx context.Context, id int32, pinned bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE discussions SET is_pinned = $1 WHERE id = $2 AND parent_id IS NULL`, pinned, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDiscussionNotFound
	}
	return nil
}
