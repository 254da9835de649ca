package service

import (
	"context"
	"fmt"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/repository"
)

type discussionService struct {
	discRepo  repository.DiscussionRepository
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	notifier  NotificationService
}

func NewDiscussionService(
	discRepo repository.DiscussionRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	notifier NotificationService,
) DiscussionService {
	return &discussionService{
		discRepo:  discRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

func (s *discussionService) Post(ctx context.Context, userID, eventID int32, content string) (*domain.Discussion, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	d := &domain.Discussion{
		EventID: eventID,
		UserID:  userID,
		Content: content,
	}
	if err := s.discRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *discussionService) Reply(ctx context.Context, userID, parentID int32, content string) (*domain.Discussion, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	parent, err := s.discRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	// Threads stay one level deep.
	if parent.ParentID != nil {
		return nil, domain.ErrReplyToReply
	}

	d := &domain.Discussion{
		EventID:  parent.EventID,
		UserID:   userID,
		ParentID: &parent.ID,
		Content:  content,
	}
	if err := s.discRepo.Create(ctx, d); err != nil {
		return nil, err
	}

	if parent.UserID != userID {
		author := "Someone"
		if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
			author = user.Name
		}
		s.notifier.Notify(ctx, parent.UserID, "New reply",
			fmt.Sprintf("%s replied to your comment", author),
			domain.NotificationDiscussionReply, &parent.EventID)
	}
	return d, nil
}

func (s *discussionService) SetPinned(ctx context.Context, actorID, discussionID int32, pinned bool) error {
	d, err := s.discRepo.GetByID(ctx, discussionID)
	if err != nil {
		return err
	}
	if d.ParentID != nil {
		return fmt.Errorf("%w: only top-level posts can be pinned", domain.ErrValidation)
	}
	event, err := s.eventRepo.GetByID(ctx, d.EventID)
	if err != nil {
		return err
	}
	if ok, err := canManageEvent(ctx, s.eventRepo, event, actorID); err != nil {
		return err
	} else if !ok {
		return domain.ErrUnauthorizedActor
	}
	return s.discRepo.SetPinned(ctx, discussionID, pinned)
}

func (s *discussionService) ListByEvent(ctx context.Context, eventID int32) ([]domain.Discussion, error) {
	return s.discRepo.ListByEvent(ctx, eventID)
}
