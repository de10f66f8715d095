// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/openagora/agora/auth"
	"github.com/openagora/agora/cliparse"
	"github.com/openagora/agora/middleware"
	"github.com/openagora/agora/models"
)

type UserHandler struct {
	db  *gorm.DB
	cfg cliparse.Config
}

func NewUserHandler(db *gorm.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// Signup handles POST /auth/signup
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	var existing models.User
	err := h.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Email already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("failed to check email uniqueness", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hash,
	}
	if err := h.db.Create(&user).Error; err != nil {
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	slog.Info("user created", "user_id", user.UserID, "email", user.Email)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthResponse{
		Data:    user,
		Message: "User created",
	})
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validated before any lookup
	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	var user models.User
	err := h.db.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Wrong password")
		return
	}

	token, err := auth.GenerateToken(user.UserID, user.Email, h.cfg.JWTSecret, h.cfg.TokenTTL)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.TokenTTL),
		HttpOnly: true,
	})

	slog.Info("user logged in", "user_id", user.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{
		Data:    user,
		Token:   token,
		Message: "Login successful",
	})
}

// Logout handles POST /auth/logout (authenticated)
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	if user, ok := middleware.UserFrom(r.Context()); ok {
		slog.Info("user logged out", "user_id", user.UserID)
	}

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{Message: "Logout successful"})
}

// GetOneUser handles GET /auth/getOneUser?UserID=
func (h *UserHandler) GetOneUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "UserID")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	err = h.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err, "user_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// GetAllUsers handles GET /auth/getAllUsers
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users := []models.User{}
	if err := h.db.Find(&users).Error; err != nil {
		slog.Error("failed to query users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}

// UpdateUser handles PUT /auth/updateUser
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.UserID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
		return
	}

	var user models.User
	err := h.db.First(&user, req.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Editable fields only
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := h.db.Save(&user).Error; err != nil {
		slog.Error("failed to update user", "error", err, "user_id", user.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /auth/deleteUser?UserID=
// Content rows keep their creator (RESTRICT), so deleting a user who still
// owns content fails at the constraint and surfaces as a database error.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "UserID")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	err = h.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err, "user_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		slog.Error("failed to delete user", "error", err, "user_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "User deleted"})
}
