package service

import (
	"context"
	"lightevent-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, email, phone, avatarURL string) error
}

type EventService interface {
	CreateEvent(ctx context.Context, organizerID int32, event *domain.Event) error
	UpdateEvent(ctx context.Context, actorID int32, event *domain.Event) (*domain.Event, error)
	PublishEvent(ctx context.Context, actorID, eventID int32) error
	CancelEvent(ctx context.Context, actorID, eventID int32, reason string) error
	DeleteEvent(ctx context.Context, actorID, eventID int32, reason string) error
	SetCoverImage(ctx context.Context, actorID, eventID int32, url string) error
	GetEvent(ctx context.Context, id int32) (*domain.Event, error)
	ListEvents(ctx context.Context, status domain.EventStatus, page, pageSize int32) ([]domain.Event, int32, error)
	ListMyEvents(ctx context.Context, organizerID int32, page, pageSize int32) ([]domain.Event, int32, error)
	AddMember(ctx context.Context, actorID, eventID, userID int32) error
	RemoveMember(ctx context.Context, actorID, eventID, userID int32) error
	ListMembers(ctx context.Context, eventID int32) ([]domain.EventMember, error)
}

type RegistrationService interface {
	Register(ctx context.Context, eventID, userID int32, name, email, phone string) (*domain.Registration, error)
	Approve(ctx context.Context, actorID, regID int32) (*domain.Registration, error)
	Reject(ctx context.Context, actorID, regID int32) (*domain.Registration, error)
	CheckInByCode(ctx context.Context, actorID, eventID int32, code string) (*domain.Registration, error)
	CheckInByID(ctx context.Context, actorID, regID int32) (*domain.Registration, error)
	SimulatePayment(ctx context.Context, userID, regID int32) (*domain.Registration, error)
	// CancelAllForEvent notifies every holder of a non-terminal registration
	// before the event row (and its dependents) are removed.
	CancelAllForEvent(ctx context.Context, event *domain.Event, reason string) error
	GetRegistration(ctx context.Context, actorID, regID int32) (*domain.Registration, error)
	GetMyRegistrationForEvent(ctx context.Context, userID, eventID int32) (*domain.Registration, error)
	ListEventRegistrations(ctx context.Context, actorID, eventID int32, statuses []domain.RegistrationStatus) ([]domain.Registration, error)
	ListMyRegistrations(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Registration, int32, error)
	CountOccupied(ctx context.Context, eventID int32) (int32, error)
}

// NotificationService is both the emitter used by the other services and the
// recipient-facing query surface. Notify and NotifyMany are fire-and-forget:
// failures are logged and swallowed, never surfaced to the caller of the
// triggering operation.
type NotificationService interface {
	Notify(ctx context.Context, userID int32, title, content string, typ domain.NotificationType, eventID *int32)
	NotifyMany(ctx context.Context, userIDs []int32, title, content string, typ domain.NotificationType, eventID *int32)
	List(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	UnreadCount(ctx context.Context, userID int32) (int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
	MarkAllRead(ctx context.Context, userID int32) error
}

type ReviewService interface {
	CanReview(ctx context.Context, userID, eventID int32) (bool, error)
	SubmitReview(ctx context.Context, userID, eventID, rating int32, comment string) (*domain.Review, error)
	GetMyReview(ctx context.Context, userID, eventID int32) (*domain.Review, error)
	ListEventReviews(ctx context.Context, eventID int32, page, pageSize int32) ([]domain.Review, int32, error)
}

type DiscussionService interface {
	Post(ctx context.Context, userID, eventID int32, content string) (*domain.Discussion, error)
	Reply(ctx context.Context, userID, parentID int32, content string) (*domain.Discussion, error)
	SetPinned(ctx context.Context, actorID, discussionID int32, pinned bool) error
	ListByEvent(ctx context.Context, eventID int32) ([]domain.Discussion, error)
}

type AdminService interface {
	ApplyForOrganizer(ctx context.Context, userID int32, displayName, description string) (*domain.OrganizerApplication, error)
	ApproveApplication(ctx context.Context, adminID, appID int32) error
	RejectApplication(ctx context.Context, adminID, appID int32) error
	ListPendingApplications(ctx context.Context) ([]domain.OrganizerApplication, error)
}

type EmailService interface {
	SendRegistrationDecision(ctx context.Context, email, name, eventTitle string, approved bool, code string) error
	SendEventCancelled(ctx context.Context, email, name, eventTitle, reason string) error
	SendOrganizerDecision(ctx context.Context, email, name string, approved bool) error
}
