package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lightevent-backend/internal/domain"
)

func newAdminFixture() (*MockApplicationRepo, *MockUserRepo, *MockNotificationRepo, *MockEmailService, AdminService) {
	appRepo := new(MockApplicationRepo)
	userRepo := new(MockUserRepo)
	noteRepo := new(MockNotificationRepo)
	emailSvc := new(MockEmailService)
	svc := NewAdminService(appRepo, userRepo, NewNotificationService(noteRepo, nil), emailSvc)
	return appRepo, userRepo, noteRepo, emailSvc, svc
}

func TestAdminService_ApplyForOrganizer(t *testing.T) {
	ctx := context.Background()

	t.Run("Admins are notified of a new application", func(t *testing.T) {
		appRepo, userRepo, noteRepo, _, svc := newAdminFixture()

		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2, Name: "Alice", Role: domain.RoleUser}, nil)
		appRepo.On("HasPendingByUser", ctx, int32(2)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.OrganizerApplication")).Return(nil)
		userRepo.On("ListByRole", ctx, domain.RoleAdmin).Return([]domain.User{{ID: 50}, {ID: 51}}, nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		app, err := svc.ApplyForOrganizer(ctx, 2, "Alice Events", "community meetups")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		noteRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("Existing organizer may not apply", func(t *testing.T) {
		_, userRepo, _, _, svc := newAdminFixture()

		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2, Role: domain.RoleOrganizer}, nil)

		_, err := svc.ApplyForOrganizer(ctx, 2, "Alice Events", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("One pending application at a time", func(t *testing.T) {
		appRepo, userRepo, _, _, svc := newAdminFixture()

		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2, Role: domain.RoleUser}, nil)
		appRepo.On("HasPendingByUser", ctx, int32(2)).Return(true, nil)

		_, err := svc.ApplyForOrganizer(ctx, 2, "Alice Events", "")
		assert.ErrorIs(t, err, domain.ErrApplicationPending)
	})
}

func TestAdminService_ApproveApplication(t *testing.T) {
	ctx := context.Background()

	appRepo, userRepo, noteRepo, emailSvc, svc := newAdminFixture()

	app := &domain.OrganizerApplication{ID: 7, UserID: 2, Status: domain.ApplicationStatusPending}
	appRepo.On("GetByID", ctx, int32(7)).Return(app, nil)
	appRepo.On("Decide", ctx, int32(7), domain.ApplicationStatusApproved, int32(50)).Return(nil)
	userRepo.On("UpdateRole", ctx, int32(2), domain.RoleOrganizer).Return(nil)
	userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2, Name: "Alice", Email: "alice@example.com"}, nil)
	noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
	emailSvc.On("SendOrganizerDecision", ctx, "alice@example.com", "Alice", true).Return(nil)

	err := svc.ApproveApplication(ctx, 50, 7)
	assert.NoError(t, err)
	userRepo.AssertCalled(t, "UpdateRole", ctx, int32(2), domain.RoleOrganizer)
	emailSvc.AssertExpectations(t)
}

func TestAdminService_RejectApplication(t *testing.T) {
	ctx := context.Background()

	appRepo, userRepo, noteRepo, emailSvc, svc := newAdminFixture()

	app := &domain.OrganizerApplication{ID: 7, UserID: 2, Status: domain.ApplicationStatusPending}
	appRepo.On("GetByID", ctx, int32(7)).Return(app, nil)
	appRepo.On("Decide", ctx, int32(7), domain.ApplicationStatusRejected, int32(50)).Return(nil)
	userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2, Name: "Alice", Email: "alice@example.com"}, nil)
	noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
	emailSvc.On("SendOrganizerDecision", ctx, "alice@example.com", "Alice", false).Return(nil)

	err := svc.RejectApplication(ctx, 50, 7)
	assert.NoError(t, err)
	userRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}
