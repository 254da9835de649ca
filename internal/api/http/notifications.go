package http

import (
	"net/http"

	"lightevent-backend/internal/domain"
)

type notificationListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int32                 `json:"total"`
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	page, pageSize := pagination(r)
	notes, total, err := s.noteSvc.List(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notificationListResponse{Notifications: notes, Total: total})
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	count, err := s.noteSvc.UnreadCount(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"unread_count": count})
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid notification id"})
		return
	}
	if err := s.noteSvc.MarkAsRead(r.Context(), claims.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	if err := s.noteSvc.MarkAllRead(r.Context(), claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}
