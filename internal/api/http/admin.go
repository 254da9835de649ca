package http

import (
	"net/http"
)

type organizerApplicationRequest struct {
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

func (s *Server) handleApplyForOrganizer(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	var req organizerApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	app, err := s.adminSvc.ApplyForOrganizer(r.Context(), claims.UserID, req.DisplayName, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := s.adminSvc.ListPendingApplications(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (s *Server) handleApproveApplication(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid application id"})
		return
	}
	if err := s.adminSvc.ApproveApplication(r.Context(), claims.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "approved"})
}

func (s *Server) handleRejectApplication(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid application id"})
		return
	}
	if err := s.adminSvc.RejectApplication(r.Context(), claims.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}
