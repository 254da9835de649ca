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

const eventColumns = `id, title, description, type, start_time, end_time, location, address, cover_image_url, max_participants, is_paid, price_cents, registration_deadline, requires_approval, status, organizer_id, created_on, updated_on`

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func scanEvent(row interface{ Scan(...interface{}) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Type, &e.StartTime, &e.EndTime,
		&e.Location, &e.Address, &e.CoverImageURL, &e.MaxParticipants, &e.IsPaid, &e.PriceCents,
		&e.RegistrationDeadline, &e.RequiresApproval, &e.Status, &e.OrganizerID,
		&e.CreatedOn, &e.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	now := time.Now()
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO events (title, description, type, start_time, end_time, location, address, cover_image_url, max_participants, is_paid, price_cents, registration_deadline, requires_approval, status, organizer_id, created_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) RETURNING id`,
		e.Title, e.Description, e.Type, e.StartTime, e.EndTime, e.Location, e.Address,
		e.CoverImageURL, e.MaxParticipants, e.IsPaid, e.PriceCents, e.RegistrationDeadline,
		e.RequiresApproval, e.Status, e.OrganizerID, now, now).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	e.CreatedOn = now
	e.UpdatedOn = now
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET title=$1, description=$2, type=$3, start_time=$4, end_time=$5, location=$6, address=$7, max_participants=$8, is_paid=$9, price_cents=$10, registration_deadline=$11, requires_approval=$12, status=$13, updated_on=$14 WHERE id=$15`,
		e.Title, e.Description, e.Type, e.StartTime, e.EndTime, e.Location, e.Address,
		e.MaxParticipants, e.IsPaid, e.PriceCents, e.RegistrationDeadline, e.RequiresApproval,
		e.Status, time.Now(), e.ID)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) UpdateStatus(ctx context.Context, id int32, status domain.EventStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET status = $1, updated_on = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) SetCoverImage(ctx context.Context, id int32, url string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET cover_image_url = $1, updated_on = $2 WHERE id = $3`,
		url, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// Delete removes the event row; registrations, notifications, reviews and
// discussions referencing it cascade at the schema level. Callers must emit
// cancellation notifications first.
func (r *eventRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context, status domain.EventStatus, page, pageSize int32) ([]domain.Event, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + eventColumns + ` FROM events`
	countQuery := `SELECT COUNT(*) FROM events`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		countQuery += ` WHERE status = $1`
		args = append(args, status)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY start_time ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, count, rows.Err()
}

func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID int32, page, pageSize int32) ([]domain.Event, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE organizer_id = $1`, organizerID).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE organizer_id = $1 ORDER BY start_time DESC LIMIT $2 OFFSET $3`,
		organizerID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list events by organizer: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, count, rows.Err()
}

func (r *eventRepository) AddMember(ctx context.Context, m *domain.EventMember) error {
	now := time.Now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_members (event_id, user_id, added_by, created_on)
		 VALUES ($1, $2, $3, $4) ON CONFLICT (event_id, user_id) DO NOTHING`,
		m.EventID, m.UserID, m.AddedBy, now)
	if err != nil {
		return fmt.Errorf("add event member: %w", err)
	}
	m.CreatedOn = now
	return nil
}

func (r *eventRepository) RemoveMember(ctx context.Context, eventID, userID int32) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM event_members WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	return err
}

func (r *eventRepository) ListMembers(ctx context.Context, eventID int32) ([]domain.EventMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT event_id, user_id, added_by, created_on FROM event_members WHERE event_id = $1`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event members: %w", err)
	}
	defer rows.Close()

	var members []domain.EventMember
	for rows.Next() {
		var m domain.EventMember
		if err := rows.Scan(&m.EventID, &m.UserID, &m.AddedBy, &m.CreatedOn); err != nil {
			return nil, fmt.Errorf("scan event member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *eventRepository) IsMember(ctx context.Context, eventID, userID int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM event_members WHERE event_id = $1 AND user_id = $2)`,
		eventID, userID).Scan(&exists)
	return exists, err
}
