package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quizdesk/internal/auth"
	"quizdesk/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if dto.Title == "" {
		http.Error(w, "title required", http.StatusBadRequest)
		return
	}

	q, err := h.service.CreateQuiz(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		log.WithError(err).Error("Failed to create quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	items, err := h.service.ListQuizzes(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, items)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	q, err := h.service.GetQuizWithQuestions(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	q, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to toggle quiz status")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteQuiz(r.Context(), id); err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var dto QuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.service.AddQuestion(r.Context(), quizID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidCorrectAnswer), errors.Is(err, ErrInvalidMarks):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to add question")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, question)
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	questionID, ok := parseIDParam(w, r, "questionID")
	if !ok {
		return
	}

	var dto QuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.service.UpdateQuestion(r.Context(), questionID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuestionNotFound):
			http.Error(w, "question not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidCorrectAnswer), errors.Is(err, ErrInvalidMarks):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update question")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, question)
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	questionID, ok := parseIDParam(w, r, "questionID")
	if !ok {
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), questionID); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to delete question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question removed successfully",
	})
}

func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		http.Error(w, name+" required", http.StatusBadRequest)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
