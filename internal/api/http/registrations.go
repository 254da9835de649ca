package http

import (
	"net/http"
	"strings"

	"lightevent-backend/internal/domain"
)

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	eventID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	reg, err := s.regSvc.Register(r.Context(), eventID, claims.UserID, req.Name, req.Email, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

func (s *Server) handleGetRegistration(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid registration id"})
		return
	}
	reg, err := s.regSvc.GetRegistration(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (s *Server) handleGetMyRegistration(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	eventID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	reg, err := s.regSvc.GetMyRegistrationForEvent(r.Context(), claims.UserID, eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (s *Server) handleApproveRegistration(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid registration id"})
		return
	}
	reg, err := s.regSvc.Approve(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (s *Server) handleRejectRegistration(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid registration id"})
		return
	}
	reg, err := s.regSvc.Reject(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

type checkInRequest struct {
	Code string `json:"code"`
}

func (s *Server) handleCheckInByCode(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	eventID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	var req checkInRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	reg, err := s.regSvc.CheckInByCode(r.Context(), claims.UserID, eventID, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (s *Server) handleCheckInByID(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid registration id"})
		return
	}
	reg, err := s.regSvc.CheckInByID(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (s *Server) handleSimulatePayment(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid registration id"})
		return
	}
	reg, err := s.regSvc.SimulatePayment(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (s *Server) handleListRegistrations(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	eventID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	var statuses []domain.RegistrationStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, v := range strings.Split(raw, ",") {
			statuses = append(statuses, domain.RegistrationStatus(v))
		}
	}

	regs, err := s.regSvc.ListEventRegistrations(r.Context(), claims.UserID, eventID, statuses)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regs)
}

type registrationListResponse struct {
	Registrations []domain.Registration `json:"registrations"`
	Total         int32                 `json:"total"`
}

func (s *Server) handleListMyRegistrations(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	page, pageSize := pagination(r)
	regs, total, err := s.regSvc.ListMyRegistrations(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, registrationListResponse{Registrations: regs, Total: total})
}
