package postgres

import (
	"database/sql"
	"lightevent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.EventRepository
	repository.RegistrationRepository
	repository.NotificationRepository
	repository.ReviewRepository
	repository.DiscussionRepository
	repository.ApplicationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		EventRepository:        NewEventRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		ReviewRepository:       NewReviewRepository(db),
		DiscussionRepository:   NewDiscussionRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
	}
}
