package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lightevent-backend/internal/domain"
)

func newDiscussionFixture() (*MockDiscussionRepo, *MockEventRepo, *MockUserRepo, *MockNotificationRepo, DiscussionService) {
	discRepo := new(MockDiscussionRepo)
	eventRepo := new(MockEventRepo)
	userRepo := new(MockUserRepo)
	noteRepo := new(MockNotificationRepo)
	svc := NewDiscussionService(discRepo, eventRepo, userRepo, NewNotificationService(noteRepo, nil))
	return discRepo, eventRepo, userRepo, noteRepo, svc
}

func TestDiscussionService_Reply(t *testing.T) {
	ctx := context.Background()

	t.Run("Reply notifies the parent author", func(t *testing.T) {
		discRepo, _, userRepo, noteRepo, svc := newDiscussionFixture()

		parent := &domain.Discussion{ID: 10, EventID: 1, UserID: 5, Content: "anyone carpooling?"}
		discRepo.On("GetByID", ctx, int32(10)).Return(parent, nil)
		discRepo.On("Create", ctx, mock.AnythingOfType("*domain.Discussion")).Return(nil)
		userRepo.On("GetByID", ctx, int32(6)).Return(&domain.User{ID: 6, Name: "Bob"}, nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		reply, err := svc.Reply(ctx, 6, 10, "yes, from downtown")
		assert.NoError(t, err)
		assert.Equal(t, int32(10), *reply.ParentID)
		assert.Equal(t, int32(1), reply.EventID)
		noteRepo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("Self-reply stays quiet", func(t *testing.T) {
		discRepo, _, _, noteRepo, svc := newDiscussionFixture()

		parent := &domain.Discussion{ID: 10, EventID: 1, UserID: 5}
		discRepo.On("GetByID", ctx, int32(10)).Return(parent, nil)
		discRepo.On("Create", ctx, mock.AnythingOfType("*domain.Discussion")).Return(nil)

		_, err := svc.Reply(ctx, 5, 10, "bumping this")
		assert.NoError(t, err)
		noteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Threads stay one level deep", func(t *testing.T) {
		discRepo, _, _, _, svc := newDiscussionFixture()

		parentID := int32(9)
		reply := &domain.Discussion{ID: 10, EventID: 1, UserID: 5, ParentID: &parentID}
		discRepo.On("GetByID", ctx, int32(10)).Return(reply, nil)

		_, err := svc.Reply(ctx, 6, 10, "nested")
		assert.ErrorIs(t, err, domain.ErrReplyToReply)
	})
}

func TestDiscussionService_SetPinned(t *testing.T) {
	ctx := context.Background()

	t.Run("Organizer pins a post", func(t *testing.T) {
		discRepo, eventRepo, _, _, svc := newDiscussionFixture()

		post := &domain.Discussion{ID: 10, EventID: 1, UserID: 5}
		discRepo.On("GetByID", ctx, int32(10)).Return(post, nil)
		eventRepo.On("GetByID", ctx, int32(1)).Return(&domain.Event{ID: 1, OrganizerID: 100}, nil)
		discRepo.On("SetPinned", ctx, int32(10), true).Return(nil)

		err := svc.SetPinned(ctx, 100, 10, true)
		assert.NoError(t, err)
	})

	t.Run("Replies cannot be pinned", func(t *testing.T) {
		discRepo, _, _, _, svc := newDiscussionFixture()

		parentID := int32(9)
		reply := &domain.Discussion{ID: 10, EventID: 1, ParentID: &parentID}
		discRepo.On("GetByID", ctx, int32(10)).Return(reply, nil)

		err := svc.SetPinned(ctx, 100, 10, true)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Participants may not pin", func(t *testing.T) {
		discRepo, eventRepo, _, _, svc := newDiscussionFixture()

		post := &domain.Discussion{ID: 10, EventID: 1, UserID: 5}
		discRepo.On("GetByID", ctx, int32(10)).Return(post, nil)
		eventRepo.On("GetByID", ctx, int32(1)).Return(&domain.Event{ID: 1, OrganizerID: 100}, nil)
		eventRepo.On("IsMember", ctx, int32(1), int32(5)).Return(false, nil)

		err := svc.SetPinned(ctx, 5, 10, true)
		assert.ErrorIs(t, err, domain.ErrUnauthorizedActor)
	})
}
