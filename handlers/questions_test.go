// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openagora/agora/models"
	"github.com/openagora/agora/testutil"
)

func TestCreateQuestion(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(gdb, cfg)

	creator := testutil.CreateTestUser(t, gdb, "creator@example.com")
	now := time.Now()

	tests := []struct {
		name       string
		body       models.CreateQuestionRequest
		wantStatus int
	}{
		{
			name:       "valid question",
			body:       models.CreateQuestionRequest{Title: "How do channels work?", Content: "Buffered vs unbuffered", CreatedAt: now, CreatorID: creator.UserID},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title",
			body:       models.CreateQuestionRequest{Content: "orphan body", CreatedAt: now, CreatorID: creator.UserID},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing creator",
			body:       models.CreateQuestionRequest{Title: "Who asked?", Content: "nobody", CreatedAt: now},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.CreateQuestion(w, testutil.MakeRequest("POST", "/questions/createQuestion", tc.body, nil))
			testutil.AssertStatus(t, w, tc.wantStatus)
		})
	}
}

func TestUpdateQuestion(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(gdb, cfg)

	creator := testutil.CreateTestUser(t, gdb, "creator@example.com")
	question := testutil.CreateTestQuestion(t, gdb, creator.UserID, "Before", 3, time.Now())

	w := httptest.NewRecorder()
	handler.UpdateQuestion(w, testutil.MakeRequest("PUT", "/questions/updateQuestion",
		models.UpdateQuestionRequest{QuestionID: question.QuestionID, Title: "After"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var got models.Question
	if err := gdb.First(&got, question.QuestionID).Error; err != nil {
		t.Fatalf("Failed to reload question: %v", err)
	}
	if got.Title != "After" {
		t.Errorf("Expected updated title, got '%s'", got.Title)
	}
	if got.LikesCount != 3 {
		t.Error("Counters must survive the update")
	}

	w = httptest.NewRecorder()
	handler.UpdateQuestion(w, testutil.MakeRequest("PUT", "/questions/updateQuestion",
		models.UpdateQuestionRequest{QuestionID: 9999, Title: "ghost"}, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetAllQuestionsWithFilters(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewQuestionHandler(gdb, cfg)

	creator := testutil.CreateTestUser(t, gdb, "creator@example.com")
	testutil.CreateTestQuestion(t, gdb, creator.UserID, "Quiet one", 1, time.Now().Add(-time.Hour))
	loud := testutil.CreateTestQuestion(t, gdb, creator.UserID, "Loud one", 9, time.Now())

	w := httptest.NewRecorder()
	handler.GetAllQuestionsWithFilters(w, testutil.MakeRequest("GET", "/questions/getAllQuestionsWithFilters?q=popular", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var questions []models.Question
	testutil.AssertJSON(t, w, &questions)
	if len(questions) != 2 || questions[0].QuestionID != loud.QuestionID {
		t.Errorf("Expected the most-liked question first, got %+v", questions)
	}

	w = httptest.NewRecorder()
	handler.GetAllQuestionsWithFilters(w, testutil.MakeRequest("GET", "/questions/getAllQuestionsWithFilters?q=trending", nil, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
