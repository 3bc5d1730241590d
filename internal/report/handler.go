package report

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quizdesk/internal/config"
)

var contentTypes = map[string]string{
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"pdf":  "application/pdf",
}

type Handler struct {
	service ReportService
}

func NewHandler(s ReportService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) QuizResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	results, err := h.service.QuizResults(r.Context(), quizID, OrderByRollNumber)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load quiz results")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, results)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	// Render to a buffer first so a mid-render failure still yields a
	// clean error response.
	var buf bytes.Buffer
	filename, err := h.service.Export(r.Context(), &buf, quizID, format)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found", http.StatusNotFound)
		case errors.Is(err, ErrUnknownFormat):
			http.Error(w, "format must be xlsx or pdf", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to export quiz results")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Error("Failed to stream export")
	}
}
