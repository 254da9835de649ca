package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/security"
	"lightevent-backend/internal/service"
	"lightevent-backend/internal/storage"
)

// Server bundles the HTTP handlers over the service layer.
type Server struct {
	authSvc   service.AuthService
	userSvc   service.UserService
	eventSvc  service.EventService
	regSvc    service.RegistrationService
	noteSvc   service.NotificationService
	reviewSvc service.ReviewService
	discSvc   service.DiscussionService
	adminSvc  service.AdminService
	storage   storage.Interface
	tokens    security.TokenManager
}

func NewServer(
	authSvc service.AuthService,
	userSvc service.UserService,
	eventSvc service.EventService,
	regSvc service.RegistrationService,
	noteSvc service.NotificationService,
	reviewSvc service.ReviewService,
	discSvc service.DiscussionService,
	adminSvc service.AdminService,
	store storage.Interface,
	tokens security.TokenManager,
) *Server {
	return &Server{
		authSvc:   authSvc,
		userSvc:   userSvc,
		eventSvc:  eventSvc,
		regSvc:    regSvc,
		noteSvc:   noteSvc,
		reviewSvc: reviewSvc,
		discSvc:   discSvc,
		adminSvc:  adminSvc,
		storage:   store,
		tokens:    tokens,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/signup", s.handleSignup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", s.handleRefresh).Methods(http.MethodPost)
	api.HandleFunc("/events", s.handleListEvents).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", s.handleGetEvent).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/reviews", s.handleListReviews).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}/discussions", s.handleListDiscussions).Methods(http.MethodGet)
	api.HandleFunc("/covers/{key}", s.handleDownloadCover).Methods(http.MethodGet)
	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Authenticated
	auth := api.NewRoute().Subrouter()
	auth.Use(AuthMiddleware(s.tokens))

	auth.HandleFunc("/me", s.handleGetProfile).Methods(http.MethodGet)
	auth.HandleFunc("/me", s.handleUpdateProfile).Methods(http.MethodPut)
	auth.HandleFunc("/me/registrations", s.handleListMyRegistrations).Methods(http.MethodGet)
	auth.HandleFunc("/me/notifications", s.handleListNotifications).Methods(http.MethodGet)
	auth.HandleFunc("/me/notifications/unread-count", s.handleUnreadCount).Methods(http.MethodGet)
	auth.HandleFunc("/me/notifications/{id}/read", s.handleMarkRead).Methods(http.MethodPost)
	auth.HandleFunc("/me/notifications/read-all", s.handleMarkAllRead).Methods(http.MethodPost)

	auth.HandleFunc("/events/{id}/register", s.handleRegister).Methods(http.MethodPost)
	auth.HandleFunc("/events/{id}/my-registration", s.handleGetMyRegistration).Methods(http.MethodGet)
	auth.HandleFunc("/events/{id}/my-review", s.handleGetMyReview).Methods(http.MethodGet)
	auth.HandleFunc("/events/{id}/can-review", s.handleCanReview).Methods(http.MethodGet)
	auth.HandleFunc("/events/{id}/reviews", s.handleSubmitReview).Methods(http.MethodPost)
	auth.HandleFunc("/events/{id}/discussions", s.handlePostDiscussion).Methods(http.MethodPost)
	auth.HandleFunc("/discussions/{id}/replies", s.handleReplyDiscussion).Methods(http.MethodPost)
	auth.HandleFunc("/registrations/{id}", s.handleGetRegistration).Methods(http.MethodGet)
	auth.HandleFunc("/registrations/{id}/pay", s.handleSimulatePayment).Methods(http.MethodPost)
	auth.HandleFunc("/organizer-applications", s.handleApplyForOrganizer).Methods(http.MethodPost)

	// Organizer management
	org := auth.NewRoute().Subrouter()
	org.Use(RequireRole(domain.Role.CanOrganize))

	org.HandleFunc("/events", s.handleCreateEvent).Methods(http.MethodPost)
	org.HandleFunc("/my/events", s.handleListMyEvents).Methods(http.MethodGet)
	org.HandleFunc("/events/{id}", s.handleUpdateEvent).Methods(http.MethodPut)
	org.HandleFunc("/events/{id}", s.handleDeleteEvent).Methods(http.MethodDelete)
	org.HandleFunc("/events/{id}/publish", s.handlePublishEvent).Methods(http.MethodPost)
	org.HandleFunc("/events/{id}/cancel", s.handleCancelEvent).Methods(http.MethodPost)
	org.HandleFunc("/events/{id}/cover", s.handleUploadCover).Methods(http.MethodPost)
	org.HandleFunc("/events/{id}/registrations", s.handleListRegistrations).Methods(http.MethodGet)
	org.HandleFunc("/events/{id}/check-in", s.handleCheckInByCode).Methods(http.MethodPost)
	org.HandleFunc("/events/{id}/members", s.handleListMembers).Methods(http.MethodGet)
	org.HandleFunc("/events/{id}/members", s.handleAddMember).Methods(http.MethodPost)
	org.HandleFunc("/events/{id}/members/{userID}", s.handleRemoveMember).Methods(http.MethodDelete)
	org.HandleFunc("/registrations/{id}/approve", s.handleApproveRegistration).Methods(http.MethodPost)
	org.HandleFunc("/registrations/{id}/reject", s.handleRejectRegistration).Methods(http.MethodPost)
	org.HandleFunc("/registrations/{id}/check-in", s.handleCheckInByID).Methods(http.MethodPost)
	org.HandleFunc("/discussions/{id}/pin", s.handlePinDiscussion).Methods(http.MethodPost)

	// Admin
	admin := auth.PathPrefix("/admin").Subrouter()
	admin.Use(RequireRole(domain.Role.CanAdminister))

	admin.HandleFunc("/organizer-applications", s.handleListApplications).Methods(http.MethodGet)
	admin.HandleFunc("/organizer-applications/{id}/approve", s.handleApproveApplication).Methods(http.MethodPost)
	admin.HandleFunc("/organizer-applications/{id}/reject", s.handleRejectApplication).Methods(http.MethodPost)

	return r
}

// pathID parses a numeric path variable.
func pathID(r *http.Request, name string) (int32, bool) {
	v, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	if err != nil || v <= 0 {
		return 0, false
	}
	return int32(v), true
}

// pagination reads page/page_size query parameters with sane bounds.
func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
