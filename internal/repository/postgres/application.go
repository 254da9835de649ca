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

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.OrganizerApplication) error {
	now := time.Now()
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO organizer_applications (user_id, display_name, description, status, created_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		app.UserID, app.DisplayName, app.Description, app.Status, now, now).Scan(&app.ID)
	if err != nil {
		return fmt.Errorf("insert organizer application: %w", err)
	}
	app.CreatedOn = now
	app.UpdatedOn = now
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id int32) (*domain.OrganizerApplication, error) {
	app := &domain.OrganizerApplication{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, display_name, description, status, reviewed_by, created_on, updated_on
		 FROM organizer_applications WHERE id = $1`,
		id).Scan(&app.ID, &app.UserID, &app.DisplayName, &app.Description, &app.Status,
		&app.ReviewedBy, &app.CreatedOn, &app.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) HasPendingByUser(ctx context.Context, userID int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM organizer_applications WHERE user_id = $1 AND status = $2)`,
		userID, domain.ApplicationStatusPending).Scan(&exists)
	return exists, err
}

func (r *applicationRepository) Decide(ctx context.Context, id int32, status domain.ApplicationStatus, reviewedBy int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE organizer_applications SET status = $1, reviewed_by = $2, updated_on = $3
		 WHERE id = $4 AND status = $5`,
		status, reviewedBy, time.Now(), id, domain.ApplicationStatusPending)
	if err != nil {
		return fmt.Errorf("decide organizer application: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) ListPending(ctx context.Context) ([]domain.OrganizerApplication, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, display_name, description, status, reviewed_by, created_on, updated_on
		 FROM organizer_applications WHERE status = $1 ORDER BY created_on ASC`,
		domain.ApplicationStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.OrganizerApplication
	for rows.Next() {
		var app domain.OrganizerApplication
		if err := rows.Scan(&app.ID, &app.UserID, &app.DisplayName, &app.Description, &app.Status,
			&app.ReviewedBy, &app.CreatedOn, &app.UpdatedOn); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
