package service

import (
	"context"
	"fmt"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/logger"
	"lightevent-backend/internal/repository"
)

type adminService struct {
	appRepo  repository.ApplicationRepository
	userRepo repository.UserRepository
	notifier NotificationService
	emailSvc EmailService
}

func NewAdminService(
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	notifier NotificationService,
	emailSvc EmailService,
) AdminService {
	return &adminService{
		appRepo:  appRepo,
		userRepo: userRepo,
		notifier: notifier,
		emailSvc: emailSvc,
	}
}

func (s *adminService) ApplyForOrganizer(ctx context.Context, userID int32, displayName, description string) (*domain.OrganizerApplication, error) {
	if displayName == "" {
		return nil, fmt.Errorf("%w: display name is required", domain.ErrValidation)
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role.CanOrganize() {
		return nil, fmt.Errorf("%w: already an organizer", domain.ErrValidation)
	}
	pending, err := s.appRepo.HasPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrApplicationPending
	}

	app := &domain.OrganizerApplication{
		UserID:      userID,
		DisplayName: displayName,
		Description: description,
		Status:      domain.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	logger.Info("organizer application submitted", "application_id", app.ID, "user_id", userID)

	if admins, err := s.userRepo.ListByRole(ctx, domain.RoleAdmin); err == nil {
		ids := make([]int32, 0, len(admins))
		for _, a := range admins {
			ids = append(ids, a.ID)
		}
		s.notifier.NotifyMany(ctx, ids, "New organizer application",
			fmt.Sprintf("%s applied to become an organizer", user.Name),
			domain.NotificationOrganizerApplication, nil)
	} else {
		logger.Error("Failed to list admins for notification", "error", err)
	}

	return app, nil
}

func (s *adminService) ApproveApplication(ctx context.Context, adminID, appID int32) error {
	app, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return err
	}
	if err := s.appRepo.Decide(ctx, appID, domain.ApplicationStatusApproved, adminID); err != nil {
		return err
	}
	if err := s.userRepo.UpdateRole(ctx, app.UserID, domain.RoleOrganizer); err != nil {
		return err
	}

	logger.Info("organizer application approved",
		"application_id", appID, "user_id", app.UserID, "admin_id", adminID)

	s.notifier.Notify(ctx, app.UserID, "Organizer application approved",
		"You can now create and manage events",
		domain.NotificationOrganizerApproved, nil)
	if user, err := s.userRepo.GetByID(ctx, app.UserID); err == nil {
		_ = s.emailSvc.SendOrganizerDecision(ctx, user.Email, user.Name, true)
	}
	return nil
}

func (s *adminService) RejectApplication(ctx context.Context, adminID, appID int32) error {
	app, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return err
	}
	if err := s.appRepo.Decide(ctx, appID, domain.ApplicationStatusRejected, adminID); err != nil {
		return err
	}

	logger.Info("organizer application rejected",
		"application_id", appID, "user_id", app.UserID, "admin_id", adminID)

	s.notifier.Notify(ctx, app.UserID, "Organizer application rejected",
		"Your organizer application was not approved this time",
		domain.NotificationOrganizerRejected, nil)
	if user, err := s.userRepo.GetByID(ctx, app.UserID); err == nil {
		_ = s.emailSvc.SendOrganizerDecision(ctx, user.Email, user.Name, false)
	}
	return nil
}

func (s *adminService) ListPendingApplications(ctx context.Context) ([]domain.OrganizerApplication, error) {
	return s.appRepo.ListPending(ctx)
}
