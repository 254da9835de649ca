package http

import (
	"net/http"
	"time"

	"lightevent-backend/internal/domain"
)

type eventRequest struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Type                 string     `json:"type"`
	StartTime            time.Time  `json:"start_time"`
	EndTime              time.Time  `json:"end_time"`
	Location             string     `json:"location"`
	Address              string     `json:"address"`
	MaxParticipants      *int32     `json:"max_participants"`
	IsPaid               bool       `json:"is_paid"`
	PriceCents           int32      `json:"price_cents"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	RequiresApproval     bool       `json:"requires_approval"`
	Status               string     `json:"status"`
}

func (req *eventRequest) toDomain() *domain.Event {
	return &domain.Event{
		Title:                req.Title,
		Description:          req.Description,
		Type:                 domain.EventType(req.Type),
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Location:             req.Location,
		Address:              req.Address,
		MaxParticipants:      req.MaxParticipants,
		IsPaid:               req.IsPaid,
		PriceCents:           req.PriceCents,
		RegistrationDeadline: req.RegistrationDeadline,
		RequiresApproval:     req.RequiresApproval,
		Status:               domain.EventStatus(req.Status),
	}
}

type eventResponse struct {
	*domain.Event
	DisplayStatus domain.EventStatus `json:"display_status"`
	OccupiedSeats *int32             `json:"occupied_seats,omitempty"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{Event: e, DisplayStatus: e.DisplayStatus(time.Now())}
}

type eventListResponse struct {
	Events []eventResponse `json:"events"`
	Total  int32           `json:"total"`
}

func toEventListResponse(events []domain.Event, total int32) eventListResponse {
	resp := eventListResponse{Events: make([]eventResponse, 0, len(events)), Total: total}
	for i := range events {
		resp.Events = append(resp.Events, toEventResponse(&events[i]))
	}
	return resp
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	var req eventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	event := req.toDomain()
	if err := s.eventSvc.CreateEvent(r.Context(), claims.UserID, event); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	var req eventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	event := req.toDomain()
	event.ID = id
	updated, err := s.eventSvc.UpdateEvent(r.Context(), claims.UserID, event)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(updated))
}

func (s *Server) handlePublishEvent(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	if err := s.eventSvc.PublishEvent(r.Context(), claims.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "published"})
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (s *Server) handleCancelEvent(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	var req cancelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.eventSvc.CancelEvent(r.Context(), claims.UserID, id, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	reason := r.URL.Query().Get("reason")
	if err := s.eventSvc.DeleteEvent(r.Context(), claims.UserID, id, reason); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	event, err := s.eventSvc.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	occupied, err := s.regSvc.CountOccupied(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := toEventResponse(event)
	resp.OccupiedSeats = &occupied
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.EventStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.EventStatusPublished
	}
	events, total, err := s.eventSvc.ListEvents(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventListResponse(events, total))
}

func (s *Server) handleListMyEvents(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	page, pageSize := pagination(r)
	events, total, err := s.eventSvc.ListMyEvents(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventListResponse(events, total))
}

type addMemberRequest struct {
	UserID int32 `json:"user_id"`
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	var req addMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.eventSvc.AddMember(r.Context(), claims.UserID, id, req.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	userID, ok := pathID(r, "userID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}
	if err := s.eventSvc.RemoveMember(r.Context(), claims.UserID, id, userID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	members, err := s.eventSvc.ListMembers(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}
