package service

import (
	"context"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/feed"
	"lightevent-backend/internal/logger"
	"lightevent-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
	feed     feed.Publisher
}

func NewNotificationService(noteRepo repository.NotificationRepository, feedPub feed.Publisher) NotificationService {
	if feedPub == nil {
		feedPub = feed.NoopPublisher{}
	}
	return &notificationService{noteRepo: noteRepo, feed: feedPub}
}

// Notify writes one notification record. Failures are logged and swallowed;
// a failed notification must never block or roll back the business
// transition that triggered it.
func (s *notificationService) Notify(ctx context.Context, userID int32, title, content string, typ domain.NotificationType, eventID *int32) {
	note := &domain.Notification{
		UserID:  userID,
		Title:   title,
		Content: content,
		Type:    typ,
		EventID: eventID,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to store notification", "user_id", userID, "type", typ, "error", err)
		return
	}
	if err := s.feed.PublishNotification(ctx, note); err != nil {
		logger.Warn("Failed to publish notification to feed", "user_id", userID, "type", typ, "error", err)
	}
}

func (s *notificationService) NotifyMany(ctx context.Context, userIDs []int32, title, content string, typ domain.NotificationType, eventID *int32) {
	for _, id := range userIDs {
		s.Notify(ctx, id, title, content, typ, eventID)
	}
}

func (s *notificationService) List(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, userID, pageSize, offset)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID int32) (int32, error) {
	return s.noteRepo.UnreadCount(ctx, userID)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, userID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int32) error {
	return s.noteRepo.MarkAllRead(ctx, userID)
}
