package http

import (
	"net/http"

	"lightevent-backend/internal/domain"
)

type submitReviewRequest struct {
	Rating  int32  `json:"rating"`
	Comment string `json:"comment"`
}

type reviewListResponse struct {
	Reviews []domain.Review `json:"reviews"`
	Total   int32           `json:"total"`
}

func (s *Server) handleCanReview(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	eventID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	can, err := s.reviewSvc.CanReview(r.Context(), claims.UserID, eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"can_review": can})
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	eventID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	var req submitReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	review, err := s.reviewSvc.SubmitReview(r.Context(), claims.UserID, eventID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (s *Server) handleGetMyReview(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	eventID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	review, err := s.reviewSvc.GetMyReview(r.Context(), claims.UserID, eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}
	page, pageSize := pagination(r)
	reviews, total, err := s.reviewSvc.ListEventReviews(r.Context(), eventID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewListResponse{Reviews: reviews, Total: total})
}
