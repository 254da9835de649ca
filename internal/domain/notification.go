package domain

import "time"

type NotificationType string

const (
	NotificationRegistrationApproved NotificationType = "registration_approved"
	NotificationRegistrationRejected NotificationType = "registration_rejected"
	NotificationEventReminder        NotificationType = "event_reminder"
	NotificationEventRegistration    NotificationType = "event_registration"
	NotificationOrganizerApplication NotificationType = "organizer_application"
	NotificationOrganizerApproved    NotificationType = "organizer_approved"
	NotificationOrganizerRejected    NotificationType = "organizer_rejected"
	NotificationMemberAdded          NotificationType = "organizer_member_added"
	NotificationMemberRemoved        NotificationType = "organizer_member_removed"
	NotificationDiscussionReply      NotificationType = "discussion_reply"
	NotificationEventReview          NotificationType = "event_review"
	NotificationEventReviewReminder  NotificationType = "event_review_reminder"
	NotificationEventUpdated         NotificationType = "event_updated"
	NotificationEventCancelled       NotificationType = "event_cancelled"
)

type Notification struct {
	ID        int32            `json:"id"`
	UserID    int32            `json:"user_id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Type      NotificationType `json:"type"`
	EventID   *int32           `json:"event_id,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedOn time.Time        `json:"created_on"`
}
