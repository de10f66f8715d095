// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/openagora/agora/cliparse"
	"github.com/openagora/agora/middleware"
	"github.com/openagora/agora/models"
)

type QuestionHandler struct {
	db  *gorm.DB
	cfg cliparse.Config
}

func NewQuestionHandler(db *gorm.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg}
}

var questionSortKeys = sortKeys[models.Question]{
	Likes:   func(q models.Question) int64 { return q.LikesCount },
	Created: func(q models.Question) time.Time { return q.CreatedAt },
	Name:    func(q models.Question) string { return q.Title },
}

// GetAllQuestions handles GET /questions/getAllQuestions
func (h *QuestionHandler) GetAllQuestions(w http.ResponseWriter, r *http.Request) {
	questions := []models.Question{}
	if err := h.db.Preload("Creator").Preload("Replies").Find(&questions).Error; err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, questions)
}

// GetAllQuestionsWithFilters handles GET /questions/getAllQuestionsWithFilters?q=&search=
func (h *QuestionHandler) GetAllQuestionsWithFilters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if !models.ValidFilter(q) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid filter")
		return
	}

	tx := h.db.Preload("Creator")
	if search := r.URL.Query().Get("search"); search != "" {
		tx = tx.Where("LOWER(title) LIKE ?", searchPattern(search))
	}

	questions := []models.Question{}
	if err := tx.Find(&questions).Error; err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	applyFilter(questions, q, questionSortKeys)
	middleware.JSONResponse(w, http.StatusOK, questions)
}

// CreateQuestion handles POST /questions/createQuestion
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Title == "" || req.Content == "" || req.CreatorID == 0 || req.CreatedAt.IsZero() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	question := models.Question{
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: req.CreatedAt,
		CreatorID: req.CreatorID,
	}
	if err := h.db.Create(&question).Error; err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	if err := h.db.Preload("Creator").First(&question, question.QuestionID).Error; err != nil {
		slog.Error("failed to reload question", "error", err, "question_id", question.QuestionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("question created", "question_id", question.QuestionID, "creator_id", question.CreatorID)
	middleware.JSONResponse(w, http.StatusCreated, question)
}

// UpdateQuestion handles PUT /questions/updateQuestion
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.QuestionID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	var question models.Question
	err := h.db.First(&question, req.QuestionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", req.QuestionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if req.Title != "" {
		question.Title = req.Title
	}
	if req.Content != "" {
		question.Content = req.Content
	}

	if err := h.db.Save(&question).Error; err != nil {
		slog.Error("failed to update question", "error", err, "question_id", question.QuestionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update question")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, question)
}

// DeleteQuestion handles DELETE /questions/deleteQuestion?QuestionID=
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "QuestionID")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var question models.Question
	err = h.db.First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := h.db.Delete(&question).Error; err != nil {
		slog.Error("failed to delete question", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Question deleted"})
}

// GetSavedQuestions handles GET /questions/getSavedQuestions?UserID=
func (h *QuestionHandler) GetSavedQuestions(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "UserID")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	questions := []models.Question{}
	err = h.db.Preload("Creator").
		Joins("JOIN saveds ON saveds.question_id = questions.question_id AND saveds.user_id = ?", userID).
		Find(&questions).Error
	if err != nil {
		slog.Error("failed to query saved questions", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

func (h *QuestionHandler) LikeQuestion(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindQuestion, opLike, w, r)
}

func (h *QuestionHandler) UnlikeQuestion(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindQuestion, opUnlike, w, r)
}

func (h *QuestionHandler) SaveQuestion(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindQuestion, opSave, w, r)
}

func (h *QuestionHandler) UnsaveQuestion(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindQuestion, opUnsave, w, r)
}
