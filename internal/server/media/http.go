package media

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/snapfeed/snapfeed/internal/logging"
)

// maxUploadBytes bounds a single upload. Requests above it are rejected
// before the body is buffered in full.
const maxUploadBytes = 10 << 20

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

type Handler struct {
	service      *Service
	uploadPreset string
	logger       logging.Logger
}

func NewHandler(service *Service, uploadPreset string, logger logging.Logger) *Handler {
	return &Handler{
		service:      service,
		uploadPreset: uploadPreset,
		logger:       logger.With("module", "media_handler"),
	}
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload", h.handleUpload)
	return mux
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	if r.FormValue("upload_preset") != h.uploadPreset {
		http.Error(w, "unknown upload preset", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "error reading file", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	url, err := h.service.Store(r.Context(), contentType, body)
	if err != nil {
		h.logger.Error(r.Context(), "upload store error", "error", err)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}

	h.logger.Info(r.Context(), "stored upload", "bytes", len(body), "url", url)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(uploadResponse{SecureURL: url})
}
