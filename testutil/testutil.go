// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openagora/agora/auth"
	"github.com/openagora/agora/cliparse"
	"github.com/openagora/agora/db"
	"github.com/openagora/agora/models"
)

// TestPassword is the plaintext behind every fixture user's hash.
const TestPassword = "hunter2hunter2"

// SetupTestDB creates a fresh in-memory database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return gdb
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:        8843,
		DatabaseURL: "sqlite::memory:",
		JWTSecret:   "test-jwt-secret",
		TokenTTL:    time.Hour,
	}
}

// CreateTestUser inserts a user with the given email and returns it.
// The password hash is bcrypt(TestPassword) at min cost to keep tests fast.
func CreateTestUser(t *testing.T, gdb *gorm.DB, email string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  string(hash),
	}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// BearerHeader returns headers carrying a valid token for the user.
func BearerHeader(t *testing.T, cfg cliparse.Config, user models.User) map[string]string {
	t.Helper()

	token, err := auth.GenerateToken(user.UserID, user.Email, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		t.Fatalf("Failed to generate test token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// CreateTestTopic inserts a topic with the given title, like count, and
// creation time.
func CreateTestTopic(t *testing.T, gdb *gorm.DB, creatorID uint, title string, likes int64, createdAt time.Time) models.Topic {
	t.Helper()

	topic := models.Topic{
		Title:      title,
		Content:    "content of " + title,
		CreatedAt:  createdAt,
		CreatorID:  creatorID,
		LikesCount: likes,
	}
	if err := gdb.Create(&topic).Error; err != nil {
		t.Fatalf("Failed to create test topic: %v", err)
	}
	return topic
}

// CreateTestQuestion inserts a question.
func CreateTestQuestion(t *testing.T, gdb *gorm.DB, creatorID uint, title string, likes int64, createdAt time.Time) models.Question {
	t.Helper()

	question := models.Question{
		Title:      title,
		Content:    "content of " + title,
		CreatedAt:  createdAt,
		CreatorID:  creatorID,
		LikesCount: likes,
	}
	if err := gdb.Create(&question).Error; err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return question
}

// CreateTestEvent inserts an event.
func CreateTestEvent(t *testing.T, gdb *gorm.DB, creatorID uint, title string, likes int64, createdAt time.Time) models.Event {
	t.Helper()

	event := models.Event{
		Title:       title,
		Description: "description of " + title,
		Date:        createdAt.Add(72 * time.Hour),
		Location:    "Test Hall",
		CreatedAt:   createdAt,
		CreatorID:   creatorID,
		LikesCount:  likes,
	}
	if err := gdb.Create(&event).Error; err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return event
}

// CreateTestReply inserts a reply targeting the given topic.
func CreateTestReply(t *testing.T, gdb *gorm.DB, creatorID, topicID uint, content string) models.Reply {
	t.Helper()

	reply := models.Reply{
		Content:   content,
		CreatedAt: time.Now(),
		CreatorID: creatorID,
		TopicID:   &topicID,
	}
	if err := gdb.Create(&reply).Error; err != nil {
		t.Fatalf("Failed to create test reply: %v", err)
	}
	return reply
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
