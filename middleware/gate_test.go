// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openagora/agora/middleware"
	"github.com/openagora/agora/models"
	"github.com/openagora/agora/testutil"
)

func TestRequireAuth_Rejections(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	// A token whose subject no longer exists
	ghost := testutil.CreateTestUser(t, gdb, "ghost@example.com")
	ghostHeader := testutil.BearerHeader(t, cfg, ghost)
	if err := gdb.Delete(&ghost).Error; err != nil {
		t.Fatalf("Failed to delete ghost user: %v", err)
	}

	tests := []struct {
		name    string
		headers map[string]string
		message string
	}{
		{"missing token", nil, "No token provided"},
		{"not bearer", map[string]string{"Authorization": "Basic abc"}, "No token provided"},
		{"garbage token", map[string]string{"Authorization": "Bearer nonsense"}, "Invalid token"},
		{"deleted user", ghostHeader, "User does not exist"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gate := middleware.RequireAuth(gdb, cfg, func(w http.ResponseWriter, r *http.Request) {
				t.Error("Handler should not run")
			})

			req := testutil.MakeRequest("GET", "/auth/getAllUsers", nil, tc.headers)
			w := httptest.NewRecorder()
			gate(w, req)

			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			var body models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode body: %v", err)
			}
			if body.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, body.Message)
			}
		})
	}
}

func TestRequireAuth_AttachesUser(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	user := testutil.CreateTestUser(t, gdb, "attached@example.com")

	handlerCalled := false
	gate := middleware.RequireAuth(gdb, cfg, func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true

		got, ok := middleware.UserFrom(r.Context())
		if !ok {
			t.Fatal("Expected user in request context")
		}
		if got.UserID != user.UserID {
			t.Errorf("Expected user %d, got %d", user.UserID, got.UserID)
		}
		if got.Email != "attached@example.com" {
			t.Errorf("Unexpected email: %s", got.Email)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := testutil.MakeRequest("GET", "/auth/getAllUsers", nil, testutil.BearerHeader(t, cfg, user))
	w := httptest.NewRecorder()
	gate(w, req)

	if !handlerCalled {
		t.Fatal("Expected handler to run")
	}
	testutil.AssertStatus(t, w, http.StatusOK)
}
