package attempt

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"quizdesk/internal/auth"
	"quizdesk/internal/config"
	"quizdesk/internal/quiz"
)

type Handler struct {
	service AttemptService
}

func NewHandler(s AttemptService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) StartAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	studentID, ok := studentFromRequest(w, r)
	if !ok {
		return
	}

	quizID, err := uuid.Parse(chi.URLParam(r, "quizID"))
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	resp, err := h.service.StartAttempt(r.Context(), studentID, quizID)
	if err != nil {
		writeAttemptError(w, log, err, "Failed to start attempt")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	studentID, ok := studentFromRequest(w, r)
	if !ok {
		return
	}

	attemptID, err := uuid.Parse(chi.URLParam(r, "attemptID"))
	if err != nil {
		http.Error(w, "invalid attempt id", http.StatusBadRequest)
		return
	}

	var dto SubmitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	selections := make(map[uuid.UUID]quiz.Option, len(dto.Answers))
	for rawID, selected := range dto.Answers {
		questionID, err := uuid.Parse(rawID)
		if err != nil {
			http.Error(w, "invalid question id in answers", http.StatusBadRequest)
			return
		}
		if selected == "" {
			continue
		}
		option := quiz.Option(selected)
		if !option.IsValid() {
			http.Error(w, "selected answer must be one of A, B, C or D", http.StatusBadRequest)
			return
		}
		selections[questionID] = option
	}

	a, err := h.service.FinalizeAttempt(r.Context(), attemptID, studentID, selections)
	if err != nil {
		writeAttemptError(w, log, err, "Failed to finalize attempt")
		return
	}

	config.JSON(w, http.StatusOK, toAttemptResponse(a))
}

func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	studentID, ok := studentFromRequest(w, r)
	if !ok {
		return
	}

	attemptID, err := uuid.Parse(chi.URLParam(r, "attemptID"))
	if err != nil {
		http.Error(w, "invalid attempt id", http.StatusBadRequest)
		return
	}

	summary, err := h.service.Summarize(r.Context(), attemptID, studentID)
	if err != nil {
		writeAttemptError(w, log, err, "Failed to summarize attempt")
		return
	}

	config.JSON(w, http.StatusOK, summary)
}

func (h *Handler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	studentID, ok := studentFromRequest(w, r)
	if !ok {
		return
	}

	quizzes, err := h.service.ListAvailableQuizzes(r.Context(), studentID)
	if err != nil {
		log.WithError(err).Error("Failed to list available quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) ListAttempted(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	studentID, ok := studentFromRequest(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListAttempted(r.Context(), studentID)
	if err != nil {
		log.WithError(err).Error("Failed to list attempted quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, items)
}

func studentFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}

func writeAttemptError(w http.ResponseWriter, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, ErrQuizNotFound):
		http.Error(w, "quiz not found", http.StatusNotFound)
	case errors.Is(err, ErrAttemptNotFound):
		http.Error(w, "attempt not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrQuizInactive):
		http.Error(w, "quiz is not active", http.StatusConflict)
	case errors.Is(err, ErrAlreadyAttempted):
		http.Error(w, "you have already attempted this quiz", http.StatusConflict)
	case errors.Is(err, ErrAlreadySubmitted):
		http.Error(w, "this quiz has already been submitted", http.StatusConflict)
	case errors.Is(err, ErrNotCompleted):
		http.Error(w, "quiz not yet completed", http.StatusConflict)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
