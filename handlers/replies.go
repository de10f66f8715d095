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

type ReplyHandler struct {
	db  *gorm.DB
	cfg cliparse.Config
}

func NewReplyHandler(db *gorm.DB, cfg cliparse.Config) *ReplyHandler {
	return &ReplyHandler{db: db, cfg: cfg}
}

// Replies have no title; the name ordering uses the content text.
var replySortKeys = sortKeys[models.Reply]{
	Likes:   func(rp models.Reply) int64 { return rp.LikesCount },
	Created: func(rp models.Reply) time.Time { return rp.CreatedAt },
	Name:    func(rp models.Reply) string { return rp.Content },
}

// GetAllReplies handles GET /replies/getAllReplies
func (h *ReplyHandler) GetAllReplies(w http.ResponseWriter, r *http.Request) {
	replies := []models.Reply{}
	if err := h.db.Preload("Creator").Find(&replies).Error; err != nil {
		slog.Error("failed to query replies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, replies)
}

// GetAllRepliesWithFilters handles
// GET /replies/getAllRepliesWithFilters?q=&search=&TopicID=&QuestionID=
// TopicID/QuestionID narrow the candidate set to one parent's replies.
func (h *ReplyHandler) GetAllRepliesWithFilters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if !models.ValidFilter(q) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid filter")
		return
	}

	tx := h.db.Preload("Creator")
	if search := r.URL.Query().Get("search"); search != "" {
		tx = tx.Where("LOWER(content) LIKE ?", searchPattern(search))
	}
	if raw := r.URL.Query().Get("TopicID"); raw != "" {
		id, err := parseIDParam(r, "TopicID")
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		tx = tx.Where("topic_id = ?", id)
	}
	if raw := r.URL.Query().Get("QuestionID"); raw != "" {
		id, err := parseIDParam(r, "QuestionID")
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		tx = tx.Where("question_id = ?", id)
	}

	replies := []models.Reply{}
	if err := tx.Find(&replies).Error; err != nil {
		slog.Error("failed to query replies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	applyFilter(replies, q, replySortKeys)
	middleware.JSONResponse(w, http.StatusOK, replies)
}

// CreateReply handles POST /replies/createReply
// A reply targets exactly one of {Topic, Question}.
func (h *ReplyHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReplyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Content == "" || req.CreatorID == 0 || req.CreatedAt.IsZero() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	hasTopic := req.TopicID != nil && *req.TopicID != 0
	hasQuestion := req.QuestionID != nil && *req.QuestionID != 0
	if hasTopic == hasQuestion {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Reply must target exactly one of TopicID or QuestionID")
		return
	}

	reply := models.Reply{
		Content:   req.Content,
		CreatedAt: req.CreatedAt,
		CreatorID: req.CreatorID,
	}
	if hasTopic {
		reply.TopicID = req.TopicID
	} else {
		reply.QuestionID = req.QuestionID
	}

	if err := h.db.Create(&reply).Error; err != nil {
		slog.Error("failed to insert reply", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create reply")
		return
	}

	if err := h.db.Preload("Creator").First(&reply, reply.ReplyID).Error; err != nil {
		slog.Error("failed to reload reply", "error", err, "reply_id", reply.ReplyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("reply created", "reply_id", reply.ReplyID, "creator_id", reply.CreatorID)
	middleware.JSONResponse(w, http.StatusCreated, reply)
}

// UpdateReply handles PUT /replies/updateReply
func (h *ReplyHandler) UpdateReply(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateReplyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ReplyID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	var reply models.Reply
	err := h.db.First(&reply, req.ReplyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Reply not found")
		return
	}
	if err != nil {
		slog.Error("failed to query reply", "error", err, "reply_id", req.ReplyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Content is the only editable field; the target never moves
	if req.Content != "" {
		reply.Content = req.Content
	}

	if err := h.db.Save(&reply).Error; err != nil {
		slog.Error("failed to update reply", "error", err, "reply_id", reply.ReplyID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update reply")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, reply)
}

// DeleteReply handles DELETE /replies/deleteReply?ReplyID=
func (h *ReplyHandler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "ReplyID")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var reply models.Reply
	err = h.db.First(&reply, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Reply not found")
		return
	}
	if err != nil {
		slog.Error("failed to query reply", "error", err, "reply_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := h.db.Delete(&reply).Error; err != nil {
		slog.Error("failed to delete reply", "error", err, "reply_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete reply")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Reply deleted"})
}

func (h *ReplyHandler) LikeReply(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindReply, opLike, w, r)
}

func (h *ReplyHandler) UnlikeReply(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindReply, opUnlike, w, r)
}
