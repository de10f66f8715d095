// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/openagora/agora/models"
	"github.com/openagora/agora/router"
	"github.com/openagora/agora/testutil"
)

func TestHealthAndRoot(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	mux := router.NewRouter(gdb, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/health", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "agora API v1" {
		t.Errorf("Expected API banner, got '%s'", w.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	mux := router.NewRouter(gdb, testutil.GetTestConfig())

	protected := []struct {
		method string
		path   string
	}{
		{"GET", "/discussions/getAllTopics"},
		{"POST", "/discussions/createTopic"},
		{"GET", "/questions/getAllQuestionsWithFilters?q=all"},
		{"POST", "/events/likeEvent"},
		{"DELETE", "/replies/deleteReply?ReplyID=1"},
		{"GET", "/auth/getAllUsers"},
		{"POST", "/auth/logout"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(route.method, route.path, nil, nil))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			var errResp models.ErrorResponse
			testutil.AssertJSON(t, w, &errResp)
			if errResp.Message != "No token provided" {
				t.Errorf("Expected 'No token provided', got '%s'", errResp.Message)
			}
		})
	}
}

func TestSignupAndLoginArePublic(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	mux := router.NewRouter(gdb, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/auth/signup", models.SignupRequest{
		FirstName: "Pat",
		LastName:  "Doe",
		Email:     "pat@example.com",
		Password:  testutil.TestPassword,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/auth/login", models.LoginRequest{
		Email:    "pat@example.com",
		Password: testutil.TestPassword,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AuthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Token == "" {
		t.Error("Expected a token from login")
	}
}

// TestForumWorkflow drives the mux end to end: sign up, log in, create a
// topic with the bearer token, like it, see it ranked first, unlike it,
// and finally delete it.
func TestForumWorkflow(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := router.NewRouter(gdb, cfg)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/auth/signup", models.SignupRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  testutil.TestPassword,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/auth/login", models.LoginRequest{
		Email:    "ada@example.com",
		Password: testutil.TestPassword,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var login models.AuthResponse
	testutil.AssertJSON(t, w, &login)
	headers := map[string]string{"Authorization": "Bearer " + login.Token}

	var user models.User
	if err := gdb.Where("email = ?", "ada@example.com").First(&user).Error; err != nil {
		t.Fatalf("Failed to load signed-up user: %v", err)
	}

	// A quieter topic from a fixture so the ranking has something to beat
	testutil.CreateTestTopic(t, gdb, user.UserID, "Sleepy thread", 0, time.Now().Add(-time.Hour))

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/discussions/createTopic", models.CreateTopicRequest{
		Title:     "Analytical engines",
		Content:   "Punch cards welcome",
		CreatedAt: time.Now(),
		CreatorID: user.UserID,
	}, headers))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var topic models.Topic
	testutil.AssertJSON(t, w, &topic)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/discussions/likeTopic", models.InteractionRequest{
		TopicID: topic.TopicID,
		UserID:  user.UserID,
	}, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var liked models.InteractionResponse
	testutil.AssertJSON(t, w, &liked)
	if liked.LikesCount == nil || *liked.LikesCount != 1 {
		t.Fatalf("Expected likes count 1 after like, got %v", liked.LikesCount)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/discussions/getAllTopicsWithFilters?q=popular", nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var ranked []models.Topic
	testutil.AssertJSON(t, w, &ranked)
	if len(ranked) != 2 {
		t.Fatalf("Expected 2 topics, got %d", len(ranked))
	}
	if ranked[0].TopicID != topic.TopicID {
		t.Errorf("Expected the liked topic first, got topic %d", ranked[0].TopicID)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/discussions/unlikeTopic", models.InteractionRequest{
		TopicID: topic.TopicID,
		UserID:  user.UserID,
	}, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var unliked models.InteractionResponse
	testutil.AssertJSON(t, w, &unliked)
	if unliked.LikesCount == nil || *unliked.LikesCount != 0 {
		t.Fatalf("Expected likes count 0 after unlike, got %v", unliked.LikesCount)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("DELETE",
		"/discussions/deleteTopic?TopicID="+itoa(topic.TopicID), nil, headers))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
