package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"emprius-backend/internal/logger"
	"emprius-backend/internal/storage"
)

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// ImageHandler serves rating image uploads and downloads for local storage.
type ImageHandler struct {
	store    storage.LocalStore
	maxBytes int64
}

func NewImageHandler(store storage.LocalStore, maxBytes int64) *ImageHandler {
	return &ImageHandler{store: store, maxBytes: maxBytes}
}

// HandleUpload accepts the PUT issued against an upload URL.
func (h *ImageHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" || imageContentTypes[strings.ToLower(filepath.Ext(key))] != contentType {
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}
	if h.maxBytes > 0 && r.ContentLength > h.maxBytes {
		http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
		return
	}

	body := r.Body
	if h.maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}
	if err := h.store.Save(key, body); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			_ = h.store.Delete(r.Context(), key)
			http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
		case errors.Is(err, storage.ErrInvalidKey):
			http.Error(w, "Invalid key", http.StatusBadRequest)
		default:
			logger.Error("Failed to save upload", "key", key, "error", err)
			http.Error(w, "Failed to save file", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("ETag", `"`+mux.Vars(r)["token"]+`"`)
	w.WriteHeader(http.StatusOK)
}

// HandleDownload streams a stored image.
func (h *ImageHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.store.Open(key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidKey):
			http.Error(w, "Invalid key", http.StatusBadRequest)
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "File not found", http.StatusNotFound)
		default:
			logger.Error("Failed to open file", "key", key, "error", err)
			http.Error(w, "Failed to read file", http.StatusInternalServerError)
		}
		return
	}
	defer file.Close()

	contentType, ok := imageContentTypes[strings.ToLower(filepath.Ext(key))]
	if !ok {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if _, err := io.Copy(w, file); err != nil {
		logger.Warn("Download interrupted", "key", key, "error", err)
	}
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	}
}

// NewRouter builds the HTTP side of the server: a health probe plus the local
// storage routes that upload and download URLs point at.
func NewRouter(store storage.LocalStore, maxBytes int64, db Pinger) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", healthHandler(db)).Methods(http.MethodGet)

	handler := NewImageHandler(store, maxBytes)
	router.HandleFunc("/api/v1/upload/{token}", handler.HandleUpload).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/download", handler.HandleDownload).Methods(http.MethodGet)
	return router
}
