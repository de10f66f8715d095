// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/openagora/agora/auth"
	"github.com/openagora/agora/cliparse"
	"github.com/openagora/agora/models"
)

type contextKey string

const userContextKey contextKey = "agora.user"

// RequireAuth gates a handler behind bearer-token authentication. The token
// is verified, its subject resolved to an existing user, and the user record
// attached to the request context for downstream handlers. Public routes
// (signup, login) are simply never wrapped; there is no runtime allow-list.
func RequireAuth(gdb *gorm.DB, cfg cliparse.Config, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			ErrorResponse(w, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := auth.VerifyToken(token, cfg.JWTSecret)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		var user models.User
		err = gdb.First(&user, claims.UserID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ErrorResponse(w, http.StatusUnauthorized, "User does not exist")
			return
		}
		if err != nil {
			slog.Error("failed to resolve token subject", "error", err, "user_id", claims.UserID)
			ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// UserFrom returns the authenticated user attached by RequireAuth.
func UserFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}
