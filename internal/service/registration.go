package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/logger"
	"lightevent-backend/internal/repository"
	"lightevent-backend/internal/security"
)

type registrationService struct {
	regRepo   repository.RegistrationRepository
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	notifier  NotificationService
	emailSvc  EmailService
}

func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	notifier NotificationService,
	emailSvc EmailService,
) RegistrationService {
	return &registrationService{
		regRepo:   regRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		emailSvc:  emailSvc,
	}
}

// canManageEvent reports whether actorID is the event's organizer or one of
// its co-organizers.
func canManageEvent(ctx context.Context, events repository.EventRepository, event *domain.Event, actorID int32) (bool, error) {
	if event.OrganizerID == actorID {
		return true, nil
	}
	return events.IsMember(ctx, event.ID, actorID)
}

// managerIDs returns the organizer plus all co-organizers, for fan-out.
func managerIDs(ctx context.Context, events repository.EventRepository, event *domain.Event) ([]int32, error) {
	ids := []int32{event.OrganizerID}
	members, err := events.ListMembers(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		ids = append(ids, m.UserID)
	}
	return ids, nil
}

func (s *registrationService) Register(ctx context.Context, eventID, userID int32, name, email, phone string) (*domain.Registration, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: participant name and email are required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventStatusPublished {
		return nil, domain.ErrEventNotOpen
	}
	if !time.Now().Before(event.EffectiveDeadline()) {
		return nil, domain.ErrDeadlinePassed
	}

	reg := &domain.Registration{
		EventID: eventID,
		UserID:  userID,
		Name:    name,
		Email:   email,
		Phone:   phone,
	}
	if event.IsPaid {
		// The price snapshot is stored with the row up front, whatever
		// initial status the registration takes.
		reg.AmountCents = event.PriceCents
	}
	switch {
	case event.RequiresApproval:
		reg.Status = domain.RegistrationStatusPending
	case event.IsPaid:
		reg.Status = domain.RegistrationStatusPaymentPending
	default:
		// No further gating applies, so the registration is confirmed and
		// the check-in code is issued immediately.
		code, err := security.NewCheckInCode()
		if err != nil {
			return nil, err
		}
		reg.Status = domain.RegistrationStatusApproved
		reg.VerificationCode = &code
	}

	if err := s.regRepo.Create(ctx, reg, domain.OccupyingAtRegistration(event.RequiresApproval)); err != nil {
		return nil, err
	}

	logger.Info("registration created",
		"registration_id", reg.ID, "event_id", eventID, "user_id", userID, "status", reg.Status)

	if recipients, err := managerIDs(ctx, s.eventRepo, event); err == nil {
		s.notifier.NotifyMany(ctx, recipients,
			"New registration",
			fmt.Sprintf("%s registered for %s", name, event.Title),
			domain.NotificationEventRegistration, &event.ID)
	} else {
		logger.Error("Failed to resolve event managers for notification", "event_id", eventID, "error", err)
	}

	return reg, nil
}

func (s *registrationService) Approve(ctx context.Context, actorID, regID int32) (*domain.Registration, error) {
	reg, err := s.regRepo.GetByID(ctx, regID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return nil, err
	}
	if ok, err := canManageEvent(ctx, s.eventRepo, event, actorID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUnauthorizedActor
	}
	if reg.Status != domain.RegistrationStatusPending {
		return nil, domain.ErrRegistrationNotPending
	}

	to := domain.RegistrationStatusApproved
	var code *string
	if event.IsPaid {
		to = domain.RegistrationStatusPaymentPending
	} else {
		c, err := security.NewCheckInCode()
		if err != nil {
			return nil, err
		}
		code = &c
	}

	// Capacity is re-checked atomically with the candidate excluded, so
	// concurrent approvals cannot over-admit.
	if err := s.regRepo.Approve(ctx, regID, to, code, domain.SeatStatuses); err != nil {
		return nil, err
	}
	reg.Status = to
	reg.VerificationCode = code

	logger.Info("registration approved",
		"registration_id", regID, "event_id", event.ID, "actor_id", actorID, "status", to)

	content := fmt.Sprintf("Your registration for %s has been approved", event.Title)
	if event.IsPaid {
		content = fmt.Sprintf("Your registration for %s has been approved, please complete payment", event.Title)
	}
	s.notifier.Notify(ctx, reg.UserID, "Registration approved", content,
		domain.NotificationRegistrationApproved, &event.ID)
	if code != nil {
		_ = s.emailSvc.SendRegistrationDecision(ctx, reg.Email, reg.Name, event.Title, true, *code)
	}

	return reg, nil
}

func (s *registrationService) Reject(ctx context.Context, actorID, regID int32) (*domain.Registration, error) {
	reg, err := s.regRepo.GetByID(ctx, regID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return nil, err
	}
	if ok, err := canManageEvent(ctx, s.eventRepo, event, actorID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUnauthorizedActor
	}
	if reg.Status != domain.RegistrationStatusPending {
		return nil, domain.ErrRegistrationNotPending
	}

	if err := s.regRepo.Reject(ctx, regID); err != nil {
		return nil, err
	}
	reg.Status = domain.RegistrationStatusRejected

	logger.Info("registration rejected",
		"registration_id", regID, "event_id", event.ID, "actor_id", actorID)

	s.notifier.Notify(ctx, reg.UserID, "Registration rejected",
		fmt.Sprintf("Your registration for %s was rejected", event.Title),
		domain.NotificationRegistrationRejected, &event.ID)
	_ = s.emailSvc.SendRegistrationDecision(ctx, reg.Email, reg.Name, event.Title, false, "")

	return reg, nil
}

func (s *registrationService) CheckInByCode(ctx context.Context, actorID, eventID int32, code string) (*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ok, err := canManageEvent(ctx, s.eventRepo, event, actorID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUnauthorizedActor
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if !security.ValidCheckInCode(code) {
		return nil, domain.ErrInvalidCode
	}

	reg, err := s.regRepo.CheckInByCode(ctx, eventID, code, actorID)
	if err != nil {
		return nil, err
	}

	logger.Info("participant checked in",
		"registration_id", reg.ID, "event_id", eventID, "actor_id", actorID)
	return reg, nil
}

func (s *registrationService) CheckInByID(ctx context.Context, actorID, regID int32) (*domain.Registration, error) {
	reg, err := s.regRepo.GetByID(ctx, regID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return nil, err
	}
	if ok, err := canManageEvent(ctx, s.eventRepo, event, actorID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUnauthorizedActor
	}

	checked, err := s.regRepo.CheckInByID(ctx, regID, actorID)
	if err != nil {
		return nil, err
	}

	logger.Info("participant checked in",
		"registration_id", regID, "event_id", event.ID, "actor_id", actorID)
	return checked, nil
}

// SimulatePayment is a placeholder for the disabled payment integration: it
// moves payment_pending to paid and issues the check-in code.
func (s *registrationService) SimulatePayment(ctx context.Context, userID, regID int32) (*domain.Registration, error) {
	reg, err := s.regRepo.GetByID(ctx, regID)
	if err != nil {
		return nil, err
	}
	if reg.UserID != userID {
		return nil, domain.ErrUnauthorizedActor
	}
	if reg.Status != domain.RegistrationStatusPaymentPending {
		return nil, domain.ErrPaymentNotPending
	}

	code, err := security.NewCheckInCode()
	if err != nil {
		return nil, err
	}
	if err := s.regRepo.MarkPaid(ctx, regID, code); err != nil {
		return nil, err
	}
	reg.Status = domain.RegistrationStatusPaid
	reg.VerificationCode = &code

	logger.Info("payment simulated", "registration_id", regID, "event_id", reg.EventID)
	return reg, nil
}

func (s *registrationService) CancelAllForEvent(ctx context.Context, event *domain.Event, reason string) error {
	regs, err := s.regRepo.ListByEvent(ctx, event.ID, domain.NonTerminalStatuses)
	if err != nil {
		return fmt.Errorf("list registrations for cancellation: %w", err)
	}

	content := fmt.Sprintf("The event %s has been cancelled", event.Title)
	if reason != "" {
		content = fmt.Sprintf("The event %s has been cancelled: %s", event.Title, reason)
	}
	for _, reg := range regs {
		s.notifier.Notify(ctx, reg.UserID, "Event cancelled", content,
			domain.NotificationEventCancelled, &event.ID)
		_ = s.emailSvc.SendEventCancelled(ctx, reg.Email, reg.Name, event.Title, reason)
	}

	logger.Info("cancellation notices sent", "event_id", event.ID, "count", len(regs))
	return nil
}

func (s *registrationService) GetRegistration(ctx context.Context, actorID, regID int32) (*domain.Registration, error) {
	reg, err := s.regRepo.GetByID(ctx, regID)
	if err != nil {
		return nil, err
	}
	if reg.UserID == actorID {
		return reg, nil
	}
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return nil, err
	}
	if ok, err := canManageEvent(ctx, s.eventRepo, event, actorID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUnauthorizedActor
	}
	return reg, nil
}

func (s *registrationService) ListEventRegistrations(ctx context.Context, actorID, eventID int32, statuses []domain.RegistrationStatus) ([]domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ok, err := canManageEvent(ctx, s.eventRepo, event, actorID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrUnauthorizedActor
	}
	return s.regRepo.ListByEvent(ctx, eventID, statuses)
}

func (s *registrationService) ListMyRegistrations(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Registration, int32, error) {
	return s.regRepo.ListByUser(ctx, userID, page, pageSize)
}

func (s *registrationService) GetMyRegistrationForEvent(ctx context.Context, userID, eventID int32) (*domain.Registration, error) {
	return s.regRepo.GetByEventAndUser(ctx, eventID, userID)
}

// CountOccupied reports how many seats are currently held, over the same
// status set the capacity guard counts.
func (s *registrationService) CountOccupied(ctx context.Context, eventID int32) (int32, error) {
	return s.regRepo.CountByStatuses(ctx, eventID, domain.SeatStatuses)
}
