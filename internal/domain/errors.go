package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrApplicationNotFound  = errors.New("organizer application not found")
	ErrDiscussionNotFound   = errors.New("discussion not found")
	ErrReviewNotFound       = errors.New("review not found")
)

var (
	ErrAlreadyRegistered      = errors.New("user already registered for this event")
	ErrEventNotOpen           = errors.New("event is not open for registration")
	ErrDeadlinePassed         = errors.New("registration deadline has passed")
	ErrRegistrationNotPending = errors.New("registration is not pending")
	ErrPaymentNotPending      = errors.New("registration is not awaiting payment")
	ErrUnauthorizedActor      = errors.New("actor is not allowed to perform this operation")
)

var (
	ErrInvalidCode           = errors.New("no registration matches this code")
	ErrCodeAlreadyUsed       = errors.New("verification code has already been used")
	ErrNotEligibleForCheckIn = errors.New("registration is not confirmed for check-in")
)

var (
	ErrEventNotEnded            = errors.New("event has not ended yet")
	ErrNoQualifyingRegistration = errors.New("no confirming registration for this event")
	ErrAlreadyReviewed          = errors.New("event already reviewed by this user")
	ErrReplyToReply             = errors.New("replies can only target top-level posts")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrApplicationPending = errors.New("an organizer application is already pending")
	ErrValidation         = errors.New("validation error")
)

// CapacityError reports a registration or approval attempt that would exceed
// an event's max_participants. Current is the seat-occupying count observed
// under the event row lock.
type CapacityError struct {
	Limit   int32
	Current int32
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("event is full (%d/%d participants)", e.Current, e.Limit)
}
