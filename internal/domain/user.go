package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// CanOrganize reports whether the role may create and manage events.
func (r Role) CanOrganize() bool {
	return r == RoleOrganizer || r == RoleAdmin
}

// CanAdminister reports whether the role may review organizer applications.
func (r Role) CanAdminister() bool {
	return r == RoleAdmin
}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	AvatarURL    string    `json:"avatar_url"`
	Role         Role      `json:"role"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// OrganizerApplication is a user's request to be granted the organizer role,
// reviewed by an administrator.
type OrganizerApplication struct {
	ID          int32             `json:"id"`
	UserID      int32             `json:"user_id"`
	DisplayName string            `json:"display_name"`
	Description string            `json:"description"`
	Status      ApplicationStatus `json:"status"`
	ReviewedBy  *int32            `json:"reviewed_by,omitempty"`
	CreatedOn   time.Time         `json:"created_on"`
	UpdatedOn   time.Time         `json:"updated_on"`
}

// EventMember is a co-organizer: a secondary user granted management rights
// over one event alongside its primary organizer.
type EventMember struct {
	EventID   int32     `json:"event_id"`
	UserID    int32     `json:"user_id"`
	AddedBy   int32     `json:"added_by"`
	CreatedOn time.Time `json:"created_on"`
}
