package domain

import "time"

// AppTimeZone is the single display timezone the application assumes.
// Day-window computations (reminder jobs, "ended" display) use it.
var AppTimeZone = time.FixedZone("UTC+8", 8*60*60)

type EventType string

const (
	EventTypeConference EventType = "conference"
	EventTypeWorkshop   EventType = "workshop"
	EventTypeMeetup     EventType = "meetup"
	EventTypeSocial     EventType = "social"
	EventTypeOther      EventType = "other"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeConference, EventTypeWorkshop, EventTypeMeetup, EventTypeSocial, EventTypeOther:
		return true
	}
	return false
}

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"

	// EventStatusEnded is derived from end_time for display, never stored.
	EventStatusEnded EventStatus = "ended"
)

type Event struct {
	ID                   int32       `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Type                 EventType   `json:"type"`
	StartTime            time.Time   `json:"start_time"`
	EndTime              time.Time   `json:"end_time"`
	Location             string      `json:"location"`
	Address              string      `json:"address,omitempty"`
	CoverImageURL        string      `json:"cover_image_url,omitempty"`
	MaxParticipants      *int32      `json:"max_participants,omitempty"`
	IsPaid               bool        `json:"is_paid"`
	PriceCents           int32       `json:"price_cents"`
	RegistrationDeadline *time.Time  `json:"registration_deadline,omitempty"`
	RequiresApproval     bool        `json:"requires_approval"`
	Status               EventStatus `json:"status"`
	OrganizerID          int32       `json:"organizer_id"`
	CreatedOn            time.Time   `json:"created_on"`
	UpdatedOn            time.Time   `json:"updated_on"`
}

// EffectiveDeadline returns the registration cutoff: the explicit deadline
// when set, otherwise the event start time.
func (e *Event) EffectiveDeadline() time.Time {
	if e.RegistrationDeadline != nil {
		return *e.RegistrationDeadline
	}
	return e.StartTime
}

// DisplayStatus maps a published event past its end time to "ended".
func (e *Event) DisplayStatus(now time.Time) EventStatus {
	if e.Status == EventStatusPublished && now.After(e.EndTime) {
		return EventStatusEnded
	}
	return e.Status
}

// HasEnded reports whether the event's end time has passed.
func (e *Event) HasEnded(now time.Time) bool {
	return now.After(e.EndTime)
}
