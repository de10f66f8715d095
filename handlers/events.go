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

type EventHandler struct {
	db  *gorm.DB
	cfg cliparse.Config
}

func NewEventHandler(db *gorm.DB, cfg cliparse.Config) *EventHandler {
	return &EventHandler{db: db, cfg: cfg}
}

var eventSortKeys = sortKeys[models.Event]{
	Likes:   func(e models.Event) int64 { return e.LikesCount },
	Created: func(e models.Event) time.Time { return e.CreatedAt },
	Name:    func(e models.Event) string { return e.Title },
}

// GetAllEvents handles GET /events/getAllEvents
func (h *EventHandler) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	events := []models.Event{}
	if err := h.db.Preload("Creator").Find(&events).Error; err != nil {
		slog.Error("failed to query events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, events)
}

// GetAllEventsWithFilters handles GET /events/getAllEventsWithFilters?q=&search=
func (h *EventHandler) GetAllEventsWithFilters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if !models.ValidFilter(q) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid filter")
		return
	}

	tx := h.db.Preload("Creator")
	if search := r.URL.Query().Get("search"); search != "" {
		tx = tx.Where("LOWER(title) LIKE ?", searchPattern(search))
	}

	events := []models.Event{}
	if err := tx.Find(&events).Error; err != nil {
		slog.Error("failed to query events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	applyFilter(events, q, eventSortKeys)
	middleware.JSONResponse(w, http.StatusOK, events)
}

// CreateEvent handles POST /events/createEvent
// Events additionally require Date and Location.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Title == "" || req.Description == "" || req.Location == "" ||
		req.Date.IsZero() || req.CreatorID == 0 || req.CreatedAt.IsZero() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		CreatedAt:   req.CreatedAt,
		CreatorID:   req.CreatorID,
	}
	if err := h.db.Create(&event).Error; err != nil {
		slog.Error("failed to insert event", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	if err := h.db.Preload("Creator").First(&event, event.EventID).Error; err != nil {
		slog.Error("failed to reload event", "error", err, "event_id", event.EventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("event created", "event_id", event.EventID, "creator_id", event.CreatorID)
	middleware.JSONResponse(w, http.StatusCreated, event)
}

// UpdateEvent handles PUT /events/updateEvent
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.EventID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	var event models.Event
	err := h.db.First(&event, req.EventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to query event", "error", err, "event_id", req.EventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if !req.Date.IsZero() {
		event.Date = req.Date
	}
	if req.Location != "" {
		event.Location = req.Location
	}

	if err := h.db.Save(&event).Error; err != nil {
		slog.Error("failed to update event", "error", err, "event_id", event.EventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update event")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, event)
}

// DeleteEvent handles DELETE /events/deleteEvent?EventID=
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "EventID")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var event models.Event
	err = h.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to query event", "error", err, "event_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := h.db.Delete(&event).Error; err != nil {
		slog.Error("failed to delete event", "error", err, "event_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Event deleted"})
}

// GetSavedEvents handles GET /events/getSavedEvents?UserID=
func (h *EventHandler) GetSavedEvents(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "UserID")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	events := []models.Event{}
	err = h.db.Preload("Creator").
		Joins("JOIN saveds ON saveds.event_id = events.event_id AND saveds.user_id = ?", userID).
		Find(&events).Error
	if err != nil {
		slog.Error("failed to query saved events", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

func (h *EventHandler) LikeEvent(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindEvent, opLike, w, r)
}

func (h *EventHandler) UnlikeEvent(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindEvent, opUnlike, w, r)
}

func (h *EventHandler) SaveEvent(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindEvent, opSave, w, r)
}

func (h *EventHandler) UnsaveEvent(w http.ResponseWriter, r *http.Request) {
	handleInteraction(h.db, kindEvent, opUnsave, w, r)
}
