package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"lightevent-backend/internal/domain"
)

var regColumns = []string{
	"id", "event_id", "user_id", "name", "email", "phone", "status",
	"amount_cents", "verification_code", "checked_in_at", "checked_in_by",
	"created_on", "updated_on",
}

func TestRegistrationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRegistrationRepository(db)
	ctx := context.Background()

	reg := &domain.Registration{
		EventID: 1,
		UserID:  2,
		Name:    "Alice",
		Email:   "alice@example.com",
		Status:  domain.RegistrationStatusApproved,
	}

	t.Run("Success under capacity", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT max_participants FROM events").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"max_participants"}).AddRow(10))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM registrations").
			WithArgs(int32(1), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery("INSERT INTO registrations").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectCommit()

		err := repo.Create(ctx, reg, domain.SeatStatuses)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), reg.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Event full", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT max_participants FROM events").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"max_participants"}).AddRow(3))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM registrations").
			WithArgs(int32(1), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectRollback()

		err := repo.Create(ctx, reg, domain.SeatStatuses)
		var capErr *domain.CapacityError
		assert.ErrorAs(t, err, &capErr)
		assert.Equal(t, int32(3), capErr.Limit)
		assert.Equal(t, int32(3), capErr.Current)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unlimited capacity skips count", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT max_participants FROM events").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"max_participants"}).AddRow(nil))
		mock.ExpectQuery("INSERT INTO registrations").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
		mock.ExpectCommit()

		err := repo.Create(ctx, reg, domain.SeatStatuses)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate registration", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT max_participants FROM events").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"max_participants"}).AddRow(nil))
		mock.ExpectQuery("INSERT INTO registrations").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.Create(ctx, reg, domain.SeatStatuses)
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Event missing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT max_participants FROM events").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"max_participants"}))
		mock.ExpectRollback()

		err := repo.Create(ctx, reg, domain.SeatStatuses)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRegistrationRepository_Approve(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRegistrationRepository(db)
	ctx := context.Background()
	code := "ABCD1234"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT e.id, e.max_participants").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "max_participants"}).AddRow(1, 10))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM registrations").
			WithArgs(int32(1), sqlmock.AnyArg(), int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
		mock.ExpectExec("UPDATE registrations SET status").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Approve(ctx, 5, domain.RegistrationStatusApproved, &code, domain.SeatStatuses)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Capacity reached at approval time", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT e.id, e.max_participants").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "max_participants"}).AddRow(1, 2))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM registrations").
			WithArgs(int32(1), sqlmock.AnyArg(), int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectRollback()

		err := repo.Approve(ctx, 5, domain.RegistrationStatusApproved, &code, domain.SeatStatuses)
		var capErr *domain.CapacityError
		assert.ErrorAs(t, err, &capErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already decided", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT e.id, e.max_participants").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "max_participants"}).AddRow(1, 10))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM registrations").
			WithArgs(int32(1), sqlmock.AnyArg(), int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
		mock.ExpectExec("UPDATE registrations SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Approve(ctx, 5, domain.RegistrationStatusApproved, &code, domain.SeatStatuses)
		assert.ErrorIs(t, err, domain.ErrRegistrationNotPending)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRegistrationRepository_CheckInByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRegistrationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(regColumns).
			AddRow(7, 1, 2, "Alice", "alice@example.com", "", "checked_in", 0, "ABCD1234", now, 9, now, now)

		mock.ExpectQuery("UPDATE registrations").
			WillReturnRows(rows)

		reg, err := repo.CheckInByCode(ctx, 1, "ABCD1234", 9)
		assert.NoError(t, err)
		assert.Equal(t, domain.RegistrationStatusCheckedIn, reg.Status)
		assert.NotNil(t, reg.CheckedInBy)
		assert.Equal(t, int32(9), *reg.CheckedInBy)
	})

	t.Run("Code already used", func(t *testing.T) {
		mock.ExpectQuery("UPDATE registrations").
			WillReturnRows(sqlmock.NewRows(regColumns))
		mock.ExpectQuery("SELECT status FROM registrations").
			WithArgs(int32(1), "ABCD1234").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("checked_in"))

		_, err := repo.CheckInByCode(ctx, 1, "ABCD1234", 9)
		assert.ErrorIs(t, err, domain.ErrCodeAlreadyUsed)
	})

	t.Run("Unknown code", func(t *testing.T) {
		mock.ExpectQuery("UPDATE registrations").
			WillReturnRows(sqlmock.NewRows(regColumns))
		mock.ExpectQuery("SELECT status FROM registrations").
			WithArgs(int32(1), "XXXXXXXX").
			WillReturnRows(sqlmock.NewRows([]string{"status"}))

		_, err := repo.CheckInByCode(ctx, 1, "XXXXXXXX", 9)
		assert.ErrorIs(t, err, domain.ErrInvalidCode)
	})

	t.Run("Pending registration is not eligible", func(t *testing.T) {
		mock.ExpectQuery("UPDATE registrations").
			WillReturnRows(sqlmock.NewRows(regColumns))
		mock.ExpectQuery("SELECT status FROM registrations").
			WithArgs(int32(1), "ABCD1234").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pending"))

		_, err := repo.CheckInByCode(ctx, 1, "ABCD1234", 9)
		assert.ErrorIs(t, err, domain.ErrInvalidCode)
	})
}

func TestRegistrationRepository_MarkPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRegistrationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE registrations").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkPaid(ctx, 7, "ABCD1234")
		assert.NoError(t, err)
	})

	t.Run("Not awaiting payment", func(t *testing.T) {
		mock.ExpectExec("UPDATE registrations").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkPaid(ctx, 7, "ABCD1234")
		assert.ErrorIs(t, err, domain.ErrPaymentNotPending)
	})
}
