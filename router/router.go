// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/openagora/agora/cliparse"
	"github.com/openagora/agora/handlers"
	"github.com/openagora/agora/middleware"
)

func NewRouter(db *gorm.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	topicHandler := handlers.NewTopicHandler(db, cfg)
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	eventHandler := handlers.NewEventHandler(db, cfg)
	replyHandler := handlers.NewReplyHandler(db, cfg)

	// public: logging only; gated: logging + bearer-token gate.
	// Signup and login are the static allow-list: they are never wrapped.
	public := middleware.WithLogging
	gated := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(db, cfg, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth and users
	mux.HandleFunc("POST /auth/signup", public(userHandler.Signup))
	mux.HandleFunc("POST /auth/login", public(userHandler.Login))
	mux.HandleFunc("POST /auth/logout", gated(userHandler.Logout))
	mux.HandleFunc("GET /auth/getOneUser", gated(userHandler.GetOneUser))
	mux.HandleFunc("GET /auth/getAllUsers", gated(userHandler.GetAllUsers))
	mux.HandleFunc("PUT /auth/updateUser", gated(userHandler.UpdateUser))
	mux.HandleFunc("DELETE /auth/deleteUser", gated(userHandler.DeleteUser))

	// Topics (discussions)
	mux.HandleFunc("GET /discussions/getAllTopics", gated(topicHandler.GetAllTopics))
	mux.HandleFunc("GET /discussions/getAllTopicsWithFilters", gated(topicHandler.GetAllTopicsWithFilters))
	mux.HandleFunc("POST /discussions/createTopic", gated(topicHandler.CreateTopic))
	mux.HandleFunc("PUT /discussions/updateTopic", gated(topicHandler.UpdateTopic))
	mux.HandleFunc("DELETE /discussions/deleteTopic", gated(topicHandler.DeleteTopic))
	mux.HandleFunc("POST /discussions/likeTopic", gated(topicHandler.LikeTopic))
	mux.HandleFunc("POST /discussions/unlikeTopic", gated(topicHandler.UnlikeTopic))
	mux.HandleFunc("POST /discussions/saveTopic", gated(topicHandler.SaveTopic))
	mux.HandleFunc("POST /discussions/unsaveTopic", gated(topicHandler.UnsaveTopic))
	mux.HandleFunc("GET /discussions/getSavedTopics", gated(topicHandler.GetSavedTopics))

	// Questions
	mux.HandleFunc("GET /questions/getAllQuestions", gated(questionHandler.GetAllQuestions))
	mux.HandleFunc("GET /questions/getAllQuestionsWithFilters", gated(questionHandler.GetAllQuestionsWithFilters))
	mux.HandleFunc("POST /questions/createQuestion", gated(questionHandler.CreateQuestion))
	mux.HandleFunc("PUT /questions/updateQuestion", gated(questionHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /questions/deleteQuestion", gated(questionHandler.DeleteQuestion))
	mux.HandleFunc("POST /questions/likeQuestion", gated(questionHandler.LikeQuestion))
	mux.HandleFunc("POST /questions/unlikeQuestion", gated(questionHandler.UnlikeQuestion))
	mux.HandleFunc("POST /questions/saveQuestion", gated(questionHandler.SaveQuestion))
	mux.HandleFunc("POST /questions/unsaveQuestion", gated(questionHandler.UnsaveQuestion))
	mux.HandleFunc("GET /questions/getSavedQuestions", gated(questionHandler.GetSavedQuestions))

	// Events
	mux.HandleFunc("GET /events/getAllEvents", gated(eventHandler.GetAllEvents))
	mux.HandleFunc("GET /events/getAllEventsWithFilters", gated(eventHandler.GetAllEventsWithFilters))
	mux.HandleFunc("POST /events/createEvent", gated(eventHandler.CreateEvent))
	mux.HandleFunc("PUT /events/updateEvent", gated(eventHandler.UpdateEvent))
	mux.HandleFunc("DELETE /events/deleteEvent", gated(eventHandler.DeleteEvent))
	mux.HandleFunc("POST /events/likeEvent", gated(eventHandler.LikeEvent))
	mux.HandleFunc("POST /events/unlikeEvent", gated(eventHandler.UnlikeEvent))
	mux.HandleFunc("POST /events/saveEvent", gated(eventHandler.SaveEvent))
	mux.HandleFunc("POST /events/unsaveEvent", gated(eventHandler.UnsaveEvent))
	mux.HandleFunc("GET /events/getSavedEvents", gated(eventHandler.GetSavedEvents))

	// Replies
	mux.HandleFunc("GET /replies/getAllReplies", gated(replyHandler.GetAllReplies))
	mux.HandleFunc("GET /replies/getAllRepliesWithFilters", gated(replyHandler.GetAllRepliesWithFilters))
	mux.HandleFunc("POST /replies/createReply", gated(replyHandler.CreateReply))
	mux.HandleFunc("PUT /replies/updateReply", gated(replyHandler.UpdateReply))
	mux.HandleFunc("DELETE /replies/deleteReply", gated(replyHandler.DeleteReply))
	mux.HandleFunc("POST /replies/likeReply", gated(replyHandler.LikeReply))
	mux.HandleFunc("POST /replies/unlikeReply", gated(replyHandler.UnlikeReply))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("agora API v1"))
	})

	return mux
}
