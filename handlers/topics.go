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

type TopicHandler struct {
	db  *gorm.DB
	cfg cliparse.Config
}

func NewTopicHandler(db *gorm.DB, cfg cliparse.Config) *TopicHandler {
	return &TopicHandler{db: db, cfg: cfg}
}

var topicSortKeys = sortKeys[models.Topic]{
	Likes:   func(t models.Topic) int64 { return t.LikesCount },
	Created: func(t models.Topic) time.Time { return t.CreatedAt },
	Name:    func(t models.Topic) string { return t.Title },
}

// GetAllTopics handles GET /discussions/getAllTopics
func (h *TopicHandler) GetAllTopics(w http.ResponseWriter, r *http.Request) {
	topics := []models.Topic{}
	if err := h.db.Preload("Creator").Preload("Replies").Find(&topics).Error; err != nil {
		slog.Error("failed to query topics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, topics)
}

// GetAllTopicsWithFilters handles GET /discussions/getAllTopicsWithFilters?q=&search=
func (h *TopicHandler) GetAllTopicsWithFilters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if !models.ValidFilter(q) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid filter")
		return
	}

	tx := h.db.Preload("Creator")
	if search := r.URL.Query().Get("search"); search != "" {
		tx = tx.Where("LOWER(title) LIKE ?", searchPattern(search))
	}

	topics := []models.Topic{}
	if err := tx.Find(&topics).Error; err != nil {
		slog.Error("failed to query topics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	applyFilter(topics, q, topicSortKeys)
	middleware.JSONResponse(w, http.StatusOK, topics)
}

// CreateTopic handles POST /discussions/createTopic
func (h *TopicHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTopicRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Title == "" || req.Content == "" || req.CreatorID == 0 || req.CreatedAt.IsZero() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	topic := models.Topic{
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: req.CreatedAt,
		CreatorID: req.CreatorID,
	}
	if err := h.db.Create(&topic).Error; err != nil {
		slog.Error("failed to insert topic", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create topic")
		return
	}

	// Return the row with its relations loaded
	if err := h.db.Preload("Creator").First(&topic, topic.TopicID).Error; err != nil {
		slog.Error("failed to reload topic", "error", err, "topic_id", topic.TopicID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("topic created", "topic_id", topic.TopicID, "creator_id", topic.CreatorID)
	middleware.JSONResponse(w, http.StatusCreated, topic)
}

// UpdateTopic handles PUT /discussions/updateTopic
func (h *TopicHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTopicRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.TopicID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	var topic models.Topic
	err := h.db.First(&topic, req.TopicID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Topic not found")
		return
	}
	if err != nil {
		slog.Error("failed to query topic", "error", err, "topic_id", req.TopicID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Editable fields only; creator and counters never change here
	if req.Title != "" {
		topic.Title = req.Title
	}
	if req.Content != "" {
		topic.Content = req.Content
	}

	if err := h.db.Save(&topic).Error; err != nil {
		slog.Error("failed to update topic", "error", err, "topic_id", topic.TopicID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update topic")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, topic)
}

// DeleteTopic handles DELETE /discussions/deleteTopic?TopicID=
func (h *TopicHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "TopicID")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var topic models.Topic
	err = h.db.First(&topic, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Topic not found")
		return
	}
	if err != nil {
		slog.Error("failed to query topic", "error", err, "topic_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := h.db.Delete(&topic).Error; err != nil {
		slog.Error("failed to delete topic", "error", err, "topic_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete topic")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Topic deleted"})
}

// GetSavedTopics handles GET /discussions/getSavedTopics?UserID=
func (h *TopicHandler) GetSavedTopics(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "UserID")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	topics := []models.Topic{}
	err = h.db.Preload("Creator").
		Joins("JOIN saveds ON saveds.topic_id = topics.topic_id AND saveds.user_id = ?", userID).
		Find(&topics).Error
	if err != nil {
		slog.Error("failed to query saved topics", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, topics)
}

// Interactions delegate to the shared engine.

func (h *TopicHandler) LikeTopic(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindTopic, opLike, w, r)
}

func (h *TopicHandler) UnlikeTopic(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindTopic, opUnlike, w, r)
}

func (h *TopicHandler) SaveTopic(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindTopic, opSave, w, r)
}

func (h *TopicHandler) UnsaveTopic(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindTopic, opUnsave, w, r)
}
