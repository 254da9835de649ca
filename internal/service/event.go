package service

import (
	"context"
	"fmt"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/logger"
	"lightevent-backend/internal/repository"
)

type eventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	regSvc    RegistrationService
	notifier  NotificationService
}

func NewEventService(
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	regSvc RegistrationService,
	notifier NotificationService,
) EventService {
	return &eventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		regSvc:    regSvc,
		notifier:  notifier,
	}
}

func validateEvent(event *domain.Event) error {
	if event.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !event.Type.Valid() {
		return fmt.Errorf("%w: unknown event type %q", domain.ErrValidation, event.Type)
	}
	if !event.EndTime.After(event.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
	}
	if event.MaxParticipants != nil && *event.MaxParticipants <= 0 {
		return fmt.Errorf("%w: max participants must be positive", domain.ErrValidation)
	}
	if event.RegistrationDeadline != nil && event.RegistrationDeadline.After(event.StartTime) {
		return fmt.Errorf("%w: registration deadline must not be after the start time", domain.ErrValidation)
	}
	if event.IsPaid && event.PriceCents <= 0 {
		return fmt.Errorf("%w: paid events need a positive price", domain.ErrValidation)
	}
	return nil
}

func (s *eventService) CreateEvent(ctx context.Context, organizerID int32, event *domain.Event) error {
	organizer, err := s.userRepo.GetByID(ctx, organizerID)
	if err != nil {
		return err
	}
	if !organizer.Role.CanOrganize() {
		return domain.ErrUnauthorizedActor
	}
	if err := validateEvent(event); err != nil {
		return err
	}

	event.OrganizerID = organizerID
	switch event.Status {
	case "":
		event.Status = domain.EventStatusDraft
	case domain.EventStatusDraft, domain.EventStatusPublished:
	default:
		return fmt.Errorf("%w: new events start as draft or published, not %q", domain.ErrValidation, event.Status)
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return err
	}

	logger.Info("event created", "event_id", event.ID, "organizer_id", organizerID)
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, actorID int32, event *domain.Event) (*domain.Event, error) {
	current, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if ok, err := canManageEvent(ctx, s.eventRepo, current, actorID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUnauthorizedActor
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	// Organizer and status are never writable through an update.
	event.OrganizerID = current.OrganizerID
	event.Status = current.Status
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	logger.Info("event updated", "event_id", event.ID, "actor_id", actorID)

	if current.Status == domain.EventStatusPublished {
		s.broadcastToRegistrants(ctx, event, "Event updated",
			fmt.Sprintf("Details of %s have changed", event.Title),
			domain.NotificationEventUpdated)
	}
	return event, nil
}

func (s *eventService) PublishEvent(ctx context.Context, actorID, eventID int32) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if ok, err := canManageEvent(ctx, s.eventRepo, event, actorID); err != nil {
		return err
	} else if !ok {
		return domain.ErrUnauthorizedActor
	}
	if event.Status != domain.EventStatusDraft {
		return fmt.Errorf("%w: only draft events can be published", domain.ErrValidation)
	}

	if err := s.eventRepo.UpdateStatus(ctx, eventID, domain.EventStatusPublished); err != nil {
		return err
	}
	logger.Info("event published", "event_id", eventID, "actor_id", actorID)
	return nil
}

func (s *eventService) CancelEvent(ctx context.Context, actorID, eventID int32, reason string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if ok, err := canManageEvent(ctx, s.eventRepo, event, actorID); err != nil {
		return err
	} else if !ok {
		return domain.ErrUnauthorizedActor
	}
	if event.Status == domain.EventStatusCancelled {
		return nil
	}

	if err := s.eventRepo.UpdateStatus(ctx, eventID, domain.EventStatusCancelled); err != nil {
		return err
	}
	logger.Info("event cancelled", "event_id", eventID, "actor_id", actorID)

	if err := s.regSvc.CancelAllForEvent(ctx, event, reason); err != nil {
		logger.Error("Failed to notify registrants of cancellation", "event_id", eventID, "error", err)
	}
	return nil
}

// DeleteEvent removes the event and its dependent rows. Registrants holding a
// live registration are notified before the rows go away.
func (s *eventService) DeleteEvent(ctx context.Context, actorID, eventID int32, reason string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OrganizerID != actorID {
		actor, err := s.userRepo.GetByID(ctx, actorID)
		if err != nil {
			return err
		}
		if !actor.Role.CanAdminister() {
			return domain.ErrUnauthorizedActor
		}
	}

	if err := s.regSvc.CancelAllForEvent(ctx, event, reason); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return err
	}

	logger.Info("event deleted", "event_id", eventID, "actor_id", actorID)
	return nil
}

func (s *eventService) SetCoverImage(ctx context.Context, actorID, eventID int32, url string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if ok, err := canManageEvent(ctx, s.eventRepo, event, actorID); err != nil {
		return err
	} else if !ok {
		return domain.ErrUnauthorizedActor
	}
	return s.eventRepo.SetCoverImage(ctx, eventID, url)
}

func (s *eventService) GetEvent(ctx context.Context, id int32) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) ListEvents(ctx context.Context, status domain.EventStatus, page, pageSize int32) ([]domain.Event, int32, error) {
	return s.eventRepo.List(ctx, status, page, pageSize)
}

func (s *eventService) ListMyEvents(ctx context.Context, organizerID int32, page, pageSize int32) ([]domain.Event, int32, error) {
	return s.eventRepo.ListByOrganizer(ctx, organizerID, page, pageSize)
}

func (s *eventService) AddMember(ctx context.Context, actorID, eventID, userID int32) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OrganizerID != actorID {
		return domain.ErrUnauthorizedActor
	}
	if userID == event.OrganizerID {
		return fmt.Errorf("%w: the organizer is already a manager", domain.ErrValidation)
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.eventRepo.AddMember(ctx, &domain.EventMember{
		EventID: eventID,
		UserID:  userID,
		AddedBy: actorID,
	}); err != nil {
		return err
	}

	s.notifier.Notify(ctx, userID, "Added as co-organizer",
		fmt.Sprintf("You can now help manage %s", event.Title),
		domain.NotificationMemberAdded, &event.ID)
	return nil
}

func (s *eventService) RemoveMember(ctx context.Context, actorID, eventID, userID int32) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OrganizerID != actorID {
		return domain.ErrUnauthorizedActor
	}

	if err := s.eventRepo.RemoveMember(ctx, eventID, userID); err != nil {
		return err
	}

	s.notifier.Notify(ctx, userID, "Removed as co-organizer",
		fmt.Sprintf("You no longer manage %s", event.Title),
		domain.NotificationMemberRemoved, &event.ID)
	return nil
}

func (s *eventService) ListMembers(ctx context.Context, eventID int32) ([]domain.EventMember, error) {
	return s.eventRepo.ListMembers(ctx, eventID)
}

// broadcastToRegistrants fans a notification out to every holder of a live
// registration for the event.
func (s *eventService) broadcastToRegistrants(ctx context.Context, event *domain.Event, title, content string, typ domain.NotificationType) {
	regs, err := s.regSvc.ListEventRegistrations(ctx, event.OrganizerID, event.ID, domain.ActiveStatuses)
	if err != nil {
		logger.Error("Failed to list registrants for broadcast", "event_id", event.ID, "error", err)
		return
	}
	ids := make([]int32, 0, len(regs))
	for _, reg := range regs {
		ids = append(ids, reg.UserID)
	}
	s.notifier.NotifyMany(ctx, ids, title, content, typ, &event.ID)
}
