// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"github.com/openagora/agora/middleware"
	"github.com/openagora/agora/models"
)

// targetKind selects which content table an interaction applies to.
type targetKind int

const (
	kindTopic targetKind = iota
	kindQuestion
	kindEvent
	kindReply
)

type interactionOp int

const (
	opLike interactionOp = iota
	opUnlike
	opSave
	opUnsave
)

type kindInfo struct {
	table    string // content table
	pk       string // primary key column of the content table
	column   string // target column on the likes/saveds join tables
	label    string // for messages: "Topic", "Question", ...
	saveable bool   // replies can be liked but not saved
}

var kinds = map[targetKind]kindInfo{
	kindTopic:    {table: "topics", pk: "topic_id", column: "topic_id", label: "Topic", saveable: true},
	kindQuestion: {table: "questions", pk: "question_id", column: "question_id", label: "Question", saveable: true},
	kindEvent:    {table: "events", pk: "event_id", column: "event_id", label: "Event", saveable: true},
	kindReply:    {table: "replies", pk: "reply_id", column: "reply_id", label: "Reply", saveable: false},
}

// handleInteraction is the single implementation behind every
// like/unlike/save/unsave route, parameterized by target kind. All four
// resource handlers delegate here with one-line methods.
//
// like and unlike touch the denormalized counter and the join row as two
// separate statements with no wrapping transaction. A failure between the
// two leaves the counter mutated; that is logged and surfaced as a 500,
// never compensated.
func handleInteraction(gdb *gorm.DB, kind targetKind, op interactionOp, w http.ResponseWriter, r *http.Request) {
	info := kinds[kind]

	var req models.InteractionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id := requestTargetID(kind, req)
	if id == 0 || req.UserID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	// Existence check before any mutation
	var count int64
	if err := gdb.Table(info.table).Where(info.pk+" = ?", id).Count(&count).Error; err != nil {
		slog.Error("failed to look up interaction target", "error", err, "table", info.table, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, info.label+" not found")
		return
	}

	switch op {
	case opLike:
		if err := bumpCounter(gdb, info, id, +1); err != nil {
			slog.Error("failed to increment likes count", "error", err, "table", info.table, "id", id)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to like "+info.label)
			return
		}
		row := likeRow(kind, id, req.UserID)
		if err := gdb.Create(&row).Error; err != nil {
			// Counter is already incremented at this point. Duplicate likes
			// land here via the unique (user, target) index.
			slog.Error("failed to insert like row, counter already incremented",
				"error", err, "table", info.table, "id", id, "user_id", req.UserID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to like "+info.label)
			return
		}
		respondWithCount(gdb, info, id, info.label+" liked", w)

	case opUnlike:
		if err := bumpCounter(gdb, info, id, -1); err != nil {
			slog.Error("failed to decrement likes count", "error", err, "table", info.table, "id", id)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to unlike "+info.label)
			return
		}
		res := gdb.Where("user_id = ? AND "+info.column+" = ?", req.UserID, id).Delete(&models.Like{})
		if res.Error != nil || res.RowsAffected == 0 {
			// Deleting a join row that is not there is a persistence failure
			// under delete-by-key semantics; the counter is already down one.
			slog.Error("failed to delete like row, counter already decremented",
				"error", res.Error, "table", info.table, "id", id, "user_id", req.UserID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to unlike "+info.label)
			return
		}
		respondWithCount(gdb, info, id, info.label+" unliked", w)

	case opSave:
		if !info.saveable {
			middleware.ErrorResponse(w, http.StatusBadRequest, info.label+" cannot be saved")
			return
		}
		row := savedRow(kind, id, req.UserID)
		if err := gdb.Create(&row).Error; err != nil {
			slog.Error("failed to insert saved row", "error", err, "table", info.table, "id", id, "user_id", req.UserID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save "+info.label)
			return
		}
		middleware.JSONResponse(w, http.StatusOK, models.InteractionResponse{Message: info.label + " saved"})

	case opUnsave:
		if !info.saveable {
			middleware.ErrorResponse(w, http.StatusBadRequest, info.label+" cannot be saved")
			return
		}
		res := gdb.Where("user_id = ? AND "+info.column+" = ?", req.UserID, id).Delete(&models.Saved{})
		if res.Error != nil || res.RowsAffected == 0 {
			slog.Error("failed to delete saved row", "error", res.Error, "table", info.table, "id", id, "user_id", req.UserID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to unsave "+info.label)
			return
		}
		middleware.JSONResponse(w, http.StatusOK, models.InteractionResponse{Message: info.label + " unsaved"})
	}
}

func requestTargetID(kind targetKind, req models.InteractionRequest) uint {
	switch kind {
	case kindTopic:
		return req.TopicID
	case kindQuestion:
		return req.QuestionID
	case kindEvent:
		return req.EventID
	case kindReply:
		return req.ReplyID
	}
	return 0
}

func bumpCounter(gdb *gorm.DB, info kindInfo, id uint, delta int) error {
	return gdb.Table(info.table).
		Where(info.pk+" = ?", id).
		Update("likes_count", gorm.Expr("likes_count + ?", delta)).Error
}

func likeRow(kind targetKind, id, userID uint) models.Like {
	row := models.Like{UserID: userID}
	switch kind {
	case kindTopic:
		row.TopicID = &id
	case kindQuestion:
		row.QuestionID = &id
	case kindEvent:
		row.EventID = &id
	case kindReply:
		row.ReplyID = &id
	}
	return row
}

func savedRow(kind targetKind, id, userID uint) models.Saved {
	row := models.Saved{UserID: userID}
	switch kind {
	case kindTopic:
		row.TopicID = &id
	case kindQuestion:
		row.QuestionID = &id
	case kindEvent:
		row.EventID = &id
	}
	return row
}

func respondWithCount(gdb *gorm.DB, info kindInfo, id uint, message string, w http.ResponseWriter) {
	var likes int64
	if err := gdb.Table(info.table).Select("likes_count").Where(info.pk+" = ?", id).Scan(&likes).Error; err != nil {
		slog.Error("failed to read likes count", "error", err, "table", info.table, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.InteractionResponse{Message: message, LikesCount: &likes})
}
