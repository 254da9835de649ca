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

const registrationColumns = `id, event_id, user_id, name, email, phone, status, amount_cents, verification_code, checked_in_at, checked_in_by, created_on, updated_on`

type registrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) repository.RegistrationRepository {
	return &registrationRepository{db: db}
}

func statusStrings(statuses []domain.RegistrationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func scanRegistration(row interface{ Scan(...interface{}) error }) (*domain.Registration, error) {
	reg := &domain.Registration{}
	err := row.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Name, &reg.Email, &reg.Phone,
		&reg.Status, &reg.AmountCents, &reg.VerificationCode, &reg.CheckedInAt, &reg.CheckedInBy,
		&reg.CreatedOn, &reg.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// Create locks the event row, counts seat-occupying registrations and
// inserts in one transaction, so concurrent registrations cannot race past
// the capacity limit.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration, occupying []domain.RegistrationStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var maxParticipants sql.NullInt32
	err = tx.QueryRowContext(ctx,
		`SELECT max_participants FROM events WHERE id = $1 FOR UPDATE`,
		reg.EventID).Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if maxParticipants.Valid {
		var occupied int32
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = ANY($2)`,
			reg.EventID, pq.Array(statusStrings(occupying))).Scan(&occupied)
		if err != nil {
			return fmt.Errorf("count registrations: %w", err)
		}
		if occupied >= maxParticipants.Int32 {
			return &domain.CapacityError{Limit: maxParticipants.Int32, Current: occupied}
		}
	}

	now := time.Now()
	err = tx.QueryRowContext(ctx,
		`INSERT INTO registrations (event_id, user_id, name, email, phone, status, amount_cents, verification_code, created_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
		reg.EventID, reg.UserID, reg.Name, reg.Email, reg.Phone, reg.Status, reg.AmountCents,
		reg.VerificationCode, now, now).Scan(&reg.ID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}
	reg.CreatedOn = now
	reg.UpdatedOn = now

	return tx.Commit()
}

func (r *registrationRepository) GetByID(ctx context.Context, id int32) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	reg, err := scanRegistration(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID int32) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE event_id = $1 AND user_id = $2`
	reg, err := scanRegistration(r.db.QueryRowContext(ctx, query, eventID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}

// Approve re-checks capacity under the event row lock with the candidate
// excluded, closing the race between concurrent approvals.
func (r *registrationRepository) Approve(ctx context.Context, regID int32, to domain.RegistrationStatus, code *string, occupying []domain.RegistrationStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var eventID int32
	var maxParticipants sql.NullInt32
	err = tx.QueryRowContext(ctx,
		`SELECT e.id, e.max_participants
		 FROM events e JOIN registrations r ON r.event_id = e.id
		 WHERE r.id = $1 FOR UPDATE OF e`,
		regID).Scan(&eventID, &maxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRegistrationNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if maxParticipants.Valid {
		var occupied int32
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = ANY($2) AND id <> $3`,
			eventID, pq.Array(statusStrings(occupying)), regID).Scan(&occupied)
		if err != nil {
			return fmt.Errorf("count registrations: %w", err)
		}
		if occupied >= maxParticipants.Int32 {
			return &domain.CapacityError{Limit: maxParticipants.Int32, Current: occupied}
		}
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE registrations SET status = $2, verification_code = $3, updated_on = $4
		 WHERE id = $1 AND status = $5`,
		regID, to, code, time.Now(), domain.RegistrationStatusPending)
	if err != nil {
		return fmt.Errorf("approve registration: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotPending
	}

	return tx.Commit()
}

func (r *registrationRepository) Reject(ctx context.Context, regID int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE registrations SET status = $2, updated_on = $3 WHERE id = $1 AND status = $4`,
		regID, domain.RegistrationStatusRejected, time.Now(), domain.RegistrationStatusPending)
	if err != nil {
		return fmt.Errorf("reject registration: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotPending
	}
	return nil
}

func (r *registrationRepository) MarkPaid(ctx context.Context, regID int32, code string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE registrations SET status = $2, verification_code = $3, updated_on = $4
		 WHERE id = $1 AND status = $5`,
		regID, domain.RegistrationStatusPaid, code, time.Now(), domain.RegistrationStatusPaymentPending)
	if err != nil {
		return fmt.Errorf("mark registration paid: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPaymentNotPending
	}
	return nil
}

// CheckInByCode consumes the code and flips the status in a single
// conditional update. Zero rows updated is diagnosed afterwards: a matching
// checked_in row means the code was already used, anything else is invalid.
func (r *registrationRepository) CheckInByCode(ctx context.Context, eventID int32, code string, actorID int32) (*domain.Registration, error) {
	eligible := []domain.RegistrationStatus{domain.RegistrationStatusApproved, domain.RegistrationStatusPaid}
	query := `UPDATE registrations
	          SET status = $1, checked_in_at = $2, checked_in_by = $3, updated_on = $2
	          WHERE event_id = $4 AND verification_code = $5 AND status = ANY($6)
	          RETURNING ` + registrationColumns

	reg, err := scanRegistration(r.db.QueryRowContext(ctx, query,
		domain.RegistrationStatusCheckedIn, time.Now(), actorID, eventID, code,
		pq.Array(statusStrings(eligible))))
	if err == nil {
		return reg, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check in by code: %w", err)
	}

	var status domain.RegistrationStatus
	err = r.db.QueryRowContext(ctx,
		`SELECT status FROM registrations WHERE event_id = $1 AND verification_code = $2`,
		eventID, code).Scan(&status)
	if err != nil {
		return nil, domain.ErrInvalidCode
	}
	if status == domain.RegistrationStatusCheckedIn {
		return nil, domain.ErrCodeAlreadyUsed
	}
	return nil, domain.ErrInvalidCode
}

func (r *registrationRepository) CheckInByID(ctx context.Context, regID int32, actorID int32) (*domain.Registration, error) {
	eligible := []domain.RegistrationStatus{domain.RegistrationStatusApproved, domain.RegistrationStatusPaid}
	query := `UPDATE registrations
	          SET status = $1, checked_in_at = $2, checked_in_by = $3, updated_on = $2
	          WHERE id = $4 AND status = ANY($5)
	          RETURNING ` + registrationColumns

	reg, err := scanRegistration(r.db.QueryRowContext(ctx, query,
		domain.RegistrationStatusCheckedIn, time.Now(), actorID, regID,
		pq.Array(statusStrings(eligible))))
	if err == nil {
		return reg, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check in by id: %w", err)
	}

	var status domain.RegistrationStatus
	err = r.db.QueryRowContext(ctx, `SELECT status FROM registrations WHERE id = $1`, regID).Scan(&status)
	if err != nil {
		return nil, domain.ErrRegistrationNotFound
	}
	if status == domain.RegistrationStatusCheckedIn {
		return nil, domain.ErrCodeAlreadyUsed
	}
	return nil, domain.ErrNotEligibleForCheckIn
}

func (r *registrationRepository) ListByEvent(ctx context.Context, eventID int32, statuses []domain.RegistrationStatus) ([]domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE event_id = $1`
	args := []interface{}{eventID}
	if len(statuses) > 0 {
		query += ` AND status = ANY($2)`
		args = append(args, pq.Array(statusStrings(statuses)))
	}
	query += ` ORDER BY created_on ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list registrations by event: %w", err)
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, *reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Registration, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE user_id = $1
	          ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list registrations by user: %w", err)
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, *reg)
	}
	return regs, count, rows.Err()
}

func (r *registrationRepository) CountByStatuses(ctx context.Context, eventID int32, statuses []domain.RegistrationStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = ANY($2)`,
		eventID, pq.Array(statusStrings(statuses))).Scan(&count)
	return count, err
}

func (r *registrationRepository) HasWithStatus(ctx context.Context, eventID, userID int32, statuses []domain.RegistrationStatus) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM registrations WHERE event_id = $1 AND user_id = $2 AND status = ANY($3))`,
		eventID, userID, pq.Array(statusStrings(statuses))).Scan(&exists)
	return exists, err
}
