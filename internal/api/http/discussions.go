package http

import (
	"net/http"
)

type discussionRequest struct {
	Content string `json:"content"`
}

type pinRequest struct {
	Pinned bool `json:"pinned"`
}

func (s *Server) handlePostDiscussion(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	eventID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	var req discussionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d, err := s.discSvc.Post(r.Context(), claims.UserID, eventID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleReplyDiscussion(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	parentID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid discussion id"})
		return
	}
	var req discussionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d, err := s.discSvc.Reply(r.Context(), claims.UserID, parentID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handlePinDiscussion(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid discussion id"})
		return
	}
	var req pinRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.discSvc.SetPinned(r.Context(), claims.UserID, id, req.Pinned); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleListDiscussions(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	discussions, err := s.discSvc.ListByEvent(r.Context(), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, discussions)
}
