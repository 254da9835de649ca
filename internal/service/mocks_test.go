package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lightevent-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) UpdateRole(ctx context.Context, userID int32, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) UpdateStatus(ctx context.Context, id int32, status domain.EventStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockEventRepo) SetCoverImage(ctx context.Context, id int32, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}
func (m *MockEventRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEventRepo) List(ctx context.Context, status domain.EventStatus, page, pageSize int32) ([]domain.Event, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Event), args.Get(1).(int32), args.Error(2)
}
func (m *MockEventRepo) ListByOrganizer(ctx context.Context, organizerID int32, page, pageSize int32) ([]domain.Event, int32, error) {
	args := m.Called(ctx, organizerID, page, pageSize)
	return args.Get(0).([]domain.Event), args.Get(1).(int32), args.Error(2)
}
func (m *MockEventRepo) AddMember(ctx context.Context, member *domain.EventMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockEventRepo) RemoveMember(ctx context.Context, eventID, userID int32) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}
func (m *MockEventRepo) ListMembers(ctx context.Context, eventID int32) ([]domain.EventMember, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.EventMember), args.Error(1)
}
func (m *MockEventRepo) IsMember(ctx context.Context, eventID, userID int32) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

// MockRegistrationRepo
type MockRegistrationRepo struct {
	mock.Mock
}

func (m *MockRegistrationRepo) Create(ctx context.Context, reg *domain.Registration, occupying []domain.RegistrationStatus) error {
	args := m.Called(ctx, reg, occupying)
	return args.Error(0)
}
func (m *MockRegistrationRepo) GetByID(ctx context.Context, id int32) (*domain.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) GetByEventAndUser(ctx context.Context, eventID, userID int32) (*domain.Registration, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) Approve(ctx context.Context, regID int32, to domain.RegistrationStatus, code *string, occupying []domain.RegistrationStatus) error {
	args := m.Called(ctx, regID, to, code, occupying)
	return args.Error(0)
}
func (m *MockRegistrationRepo) Reject(ctx context.Context, regID int32) error {
	args := m.Called(ctx, regID)
	return args.Error(0)
}
func (m *MockRegistrationRepo) MarkPaid(ctx context.Context, regID int32, code string) error {
	args := m.Called(ctx, regID, code)
	return args.Error(0)
}
func (m *MockRegistrationRepo) CheckInByCode(ctx context.Context, eventID int32, code string, actorID int32) (*domain.Registration, error) {
	args := m.Called(ctx, eventID, code, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) CheckInByID(ctx context.Context, regID int32, actorID int32) (*domain.Registration, error) {
	args := m.Called(ctx, regID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) ListByEvent(ctx context.Context, eventID int32, statuses []domain.RegistrationStatus) ([]domain.Registration, error) {
	args := m.Called(ctx, eventID, statuses)
	return args.Get(0).([]domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Registration, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Registration), args.Get(1).(int32), args.Error(2)
}
func (m *MockRegistrationRepo) CountByStatuses(ctx context.Context, eventID int32, statuses []domain.RegistrationStatus) (int32, error) {
	args := m.Called(ctx, eventID, statuses)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRegistrationRepo) HasWithStatus(ctx context.Context, eventID, userID int32, statuses []domain.RegistrationStatus) (bool, error) {
	args := m.Called(ctx, eventID, userID, statuses)
	return args.Bool(0), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) UnreadCount(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
func (m *MockNotificationRepo) MarkAllRead(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) GetByEventAndUser(ctx context.Context, eventID, userID int32) (*domain.Review, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewRepo) Exists(ctx context.Context, eventID, userID int32) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockReviewRepo) ListByEvent(ctx context.Context, eventID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	args := m.Called(ctx, eventID, page, pageSize)
	return args.Get(0).([]domain.Review), args.Get(1).(int32), args.Error(2)
}

// MockDiscussionRepo
type MockDiscussionRepo struct {
	mock.Mock
}

func (m *MockDiscussionRepo) Create(ctx context.Context, d *domain.Discussion) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDiscussionRepo) GetByID(ctx context.Context, id int32) (*domain.Discussion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Discussion), args.Error(1)
}
func (m *MockDiscussionRepo) ListByEvent(ctx context.Context, eventID int32) ([]domain.Discussion, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Discussion), args.Error(1)
}
func (m *MockDiscussionRepo) SetPinned(ctx context.Context, id int32, pinned bool) error {
	args := m.Called(ctx, id, pinned)
	return args.Error(0)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.OrganizerApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.OrganizerApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizerApplication), args.Error(1)
}
func (m *MockApplicationRepo) HasPendingByUser(ctx context.Context, userID int32) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) Decide(ctx context.Context, id int32, status domain.ApplicationStatus, reviewedBy int32) error {
	args := m.Called(ctx, id, status, reviewedBy)
	return args.Error(0)
}
func (m *MockApplicationRepo) ListPending(ctx context.Context) ([]domain.OrganizerApplication, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.OrganizerApplication), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRegistrationDecision(ctx context.Context, email, name, eventTitle string, approved bool, code string) error {
	args := m.Called(ctx, email, name, eventTitle, approved, code)
	return args.Error(0)
}
func (m *MockEmailService) SendEventCancelled(ctx context.Context, email, name, eventTitle, reason string) error {
	args := m.Called(ctx, email, name, eventTitle, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendOrganizerDecision(ctx context.Context, email, name string, approved bool) error {
	args := m.Called(ctx, email, name, approved)
	return args.Error(0)
}
