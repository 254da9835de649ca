package repository

import (
	"context"
	"lightevent-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, userID int32, role domain.Role) error
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int32) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	UpdateStatus(ctx context.Context, id int32, status domain.EventStatus) error
	SetCoverImage(ctx context.Context, id int32, url string) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status domain.EventStatus, page, pageSize int32) ([]domain.Event, int32, error)
	ListByOrganizer(ctx context.Context, organizerID int32, page, pageSize int32) ([]domain.Event, int32, error)

	// Co-organizers
	AddMember(ctx context.Context, m *domain.EventMember) error
	RemoveMember(ctx context.Context, eventID, userID int32) error
	ListMembers(ctx context.Context, eventID int32) ([]domain.EventMember, error)
	IsMember(ctx context.Context, eventID, userID int32) (bool, error)
}

type RegistrationRepository interface {
	// Create inserts the registration after a capacity check over the
	// occupying status set, both inside one transaction with the event row
	// locked. A duplicate (event, user) pair maps to ErrAlreadyRegistered.
	Create(ctx context.Context, reg *domain.Registration, occupying []domain.RegistrationStatus) error
	GetByID(ctx context.Context, id int32) (*domain.Registration, error)
	GetByEventAndUser(ctx context.Context, eventID, userID int32) (*domain.Registration, error)
	// Approve transitions pending → to, re-checking capacity against
	// occupying with the registration itself excluded.
	Approve(ctx context.Context, regID int32, to domain.RegistrationStatus, code *string, occupying []domain.RegistrationStatus) error
	Reject(ctx context.Context, regID int32) error
	MarkPaid(ctx context.Context, regID int32, code string) error
	// CheckInByCode consumes a verification code: one conditional update so
	// two concurrent scans of the same code cannot both succeed.
	CheckInByCode(ctx context.Context, eventID int32, code string, actorID int32) (*domain.Registration, error)
	CheckInByID(ctx context.Context, regID int32, actorID int32) (*domain.Registration, error)
	ListByEvent(ctx context.Context, eventID int32, statuses []domain.RegistrationStatus) ([]domain.Registration, error)
	ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Registration, int32, error)
	CountByStatuses(ctx context.Context, eventID int32, statuses []domain.RegistrationStatus) (int32, error)
	HasWithStatus(ctx context.Context, eventID, userID int32, statuses []domain.RegistrationStatus) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	UnreadCount(ctx context.Context, userID int32) (int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
	MarkAllRead(ctx context.Context, userID int32) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByEventAndUser(ctx context.Context, eventID, userID int32) (*domain.Review, error)
	Exists(ctx context.Context, eventID, userID int32) (bool, error)
	ListByEvent(ctx context.Context, eventID int32, page, pageSize int32) ([]domain.Review, int32, error)
}

type DiscussionRepository interface {
	Create(ctx context.Context, d *domain.Discussion) error
	GetByID(ctx context.Context, id int32) (*domain.Discussion, error)
	ListByEvent(ctx context.Context, eventID int32) ([]domain.Discussion, error)
	SetPinned(ctx context.Context, id int32, pinned bool) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.OrganizerApplication) error
	GetByID(ctx context.Context, id int32) (*domain.OrganizerApplication, error)
	HasPendingByUser(ctx context.Context, userID int32) (bool, error)
	Decide(ctx context.Context, id int32, status domain.ApplicationStatus, reviewedBy int32) error
	ListPending(ctx context.Context) ([]domain.OrganizerApplication, error)
}
