package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending        RegistrationStatus = "pending"
	RegistrationStatusApproved       RegistrationStatus = "approved"
	RegistrationStatusRejected       RegistrationStatus = "rejected"
	RegistrationStatusPaymentPending RegistrationStatus = "payment_pending"
	RegistrationStatusPaid           RegistrationStatus = "paid"
	RegistrationStatusCheckedIn      RegistrationStatus = "checked_in"
	RegistrationStatusCancelled      RegistrationStatus = "cancelled"
)

// SeatStatuses is the set of statuses that occupy a seat against an event's
// max_participants. Used at registration time for events without approval,
// and at approval time (excluding the registration under decision).
var SeatStatuses = []RegistrationStatus{
	RegistrationStatusApproved,
	RegistrationStatusPaymentPending,
	RegistrationStatusPaid,
	RegistrationStatusCheckedIn,
}

// ConfirmedStatuses qualify a participant for check-in and for reviewing.
var ConfirmedStatuses = []RegistrationStatus{
	RegistrationStatusApproved,
	RegistrationStatusPaid,
	RegistrationStatusCheckedIn,
}

// ActiveStatuses receive event-wide broadcasts (updates, cancellation,
// reminders).
var ActiveStatuses = []RegistrationStatus{
	RegistrationStatusPending,
	RegistrationStatusApproved,
	RegistrationStatusPaymentPending,
	RegistrationStatusPaid,
	RegistrationStatusCheckedIn,
}

// NonTerminalStatuses are cancelled (with a notification each) when an event
// is deleted.
var NonTerminalStatuses = []RegistrationStatus{
	RegistrationStatusPending,
	RegistrationStatusApproved,
	RegistrationStatusPaymentPending,
	RegistrationStatusPaid,
}

// OccupyingAtRegistration returns the seat-occupying set checked when a new
// registration is created. For approval-required events a pending
// registration does not yet occupy a seat; capacity is re-checked at
// approval time instead.
func OccupyingAtRegistration(requiresApproval bool) []RegistrationStatus {
	if requiresApproval {
		return ConfirmedStatuses
	}
	return SeatStatuses
}

type Registration struct {
	ID      int32 `json:"id"`
	EventID int32 `json:"event_id"`
	UserID  int32 `json:"user_id"`

	// Participant contact snapshot, captured at registration time.
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Status           RegistrationStatus `json:"status"`
	AmountCents      int32              `json:"amount_cents"`
	VerificationCode *string            `json:"verification_code,omitempty"`
	CheckedInAt      *time.Time         `json:"checked_in_at,omitempty"`
	CheckedInBy      *int32             `json:"checked_in_by,omitempty"`
	CreatedOn        time.Time          `json:"created_on"`
	UpdatedOn        time.Time          `json:"updated_on"`
}

// IsTerminal reports whether no further transitions are allowed.
func (r *Registration) IsTerminal() bool {
	switch r.Status {
	case RegistrationStatusRejected, RegistrationStatusCheckedIn, RegistrationStatusCancelled:
		return true
	}
	return false
}
