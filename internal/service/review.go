package service

import (
	"context"
	"fmt"
	"time"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/logger"
	"lightevent-backend/internal/repository"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	regRepo    repository.RegistrationRepository
	eventRepo  repository.EventRepository
	notifier   NotificationService
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	regRepo repository.RegistrationRepository,
	eventRepo repository.EventRepository,
	notifier NotificationService,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		regRepo:    regRepo,
		eventRepo:  eventRepo,
		notifier:   notifier,
	}
}

// CanReview reports whether the user may still submit a review: the event has
// ended, the user holds a confirmed registration, and no review exists yet.
func (s *reviewService) CanReview(ctx context.Context, userID, eventID int32) (bool, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return false, err
	}
	if !event.HasEnded(time.Now()) {
		return false, nil
	}
	qualified, err := s.regRepo.HasWithStatus(ctx, eventID, userID, domain.ConfirmedStatuses)
	if err != nil {
		return false, err
	}
	if !qualified {
		return false, nil
	}
	exists, err := s.reviewRepo.Exists(ctx, eventID, userID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (s *reviewService) SubmitReview(ctx context.Context, userID, eventID, rating int32, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.HasEnded(time.Now()) {
		return nil, domain.ErrEventNotEnded
	}
	qualified, err := s.regRepo.HasWithStatus(ctx, eventID, userID, domain.ConfirmedStatuses)
	if err != nil {
		return nil, err
	}
	if !qualified {
		return nil, domain.ErrNoQualifyingRegistration
	}

	review := &domain.Review{
		EventID:   eventID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		IsVisible: true,
	}
	// The unique (event, user) index is the real duplicate guard.
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	logger.Info("review submitted", "event_id", eventID, "user_id", userID, "rating", rating)

	s.notifier.Notify(ctx, event.OrganizerID, "New review",
		fmt.Sprintf("%s received a %d-star review", event.Title, rating),
		domain.NotificationEventReview, &event.ID)
	return review, nil
}

func (s *reviewService) GetMyReview(ctx context.Context, userID, eventID int32) (*domain.Review, error) {
	return s.reviewRepo.GetByEventAndUser(ctx, eventID, userID)
}

func (s *reviewService) ListEventReviews(ctx context.Context, eventID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	return s.reviewRepo.ListByEvent(ctx, eventID, page, pageSize)
}
