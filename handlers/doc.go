// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the agora API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - UserHandler: signup, login, logout, user lookup and CRUD
  - TopicHandler: discussion topics
  - QuestionHandler: questions
  - EventHandler: events (with date and location)
  - ReplyHandler: replies attached to a topic or question

Handlers are created via constructor functions that accept *gorm.DB and Config:

	topicHandler := handlers.NewTopicHandler(db, cfg)

# Resource Shape

The four content kinds share one endpoint shape, e.g. for topics:

	GET    /discussions/getAllTopics
	GET    /discussions/getAllTopicsWithFilters?q=&search=
	POST   /discussions/createTopic
	PUT    /discussions/updateTopic
	DELETE /discussions/deleteTopic?TopicID=
	POST   /discussions/likeTopic, /discussions/unlikeTopic
	POST   /discussions/saveTopic, /discussions/unsaveTopic
	GET    /discussions/getSavedTopics?UserID=

Replies can be liked but not saved, and their filter endpoint also accepts
TopicID/QuestionID to scope to one parent.

# Interactions

Like/unlike/save/unsave are one implementation parameterized by target
kind, in interactions.go. Like bumps the denormalized likes_count and then
inserts the (user, target) join row as two separate statements; a failure
between the two leaves the counter mutated and is reported as a 500.
Liking the same target twice hits the unique pair index on the second
insert and also surfaces as a 500.

# Filtering

The *WithFilters endpoints validate q against the five modes (all, popular,
recent, name, old) before touching the database, fetch the candidate set
(optionally narrowed by a case-insensitive substring match), and order it
in memory in filters.go. The name ordering is locale-aware via
golang.org/x/text/collate.
*/
package handlers
