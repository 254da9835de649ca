package http

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxCoverSize = 5 << 20 // 5 MiB

func coverContentType(key string) string {
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	}
	return "application/octet-stream"
}

func (s *Server) handleUploadCover(w http.ResponseWriter, r *http.Request) {
	claims, _ := claimsFrom(r)
	eventID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	var ext string
	switch r.Header.Get("Content-Type") {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unsupported image type"})
		return
	}

	key := fmt.Sprintf("%d-%s%s", eventID, uuid.NewString(), ext)
	if err := s.storage.Save(key, io.LimitReader(r.Body, maxCoverSize)); err != nil {
		writeError(w, err)
		return
	}
	url := s.storage.URL(key)
	if err := s.eventSvc.SetCoverImage(r.Context(), claims.UserID, eventID, url); err != nil {
		// The event row was not updated, so the orphaned file can go.
		_ = s.storage.Delete(key)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"cover_image_url": url})
}

func (s *Server) handleDownloadCover(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing key"})
		return
	}
	file, err := s.storage.Open(key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "cover not found"})
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", coverContentType(key))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = io.Copy(w, file)
}
