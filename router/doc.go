// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ routing.

# Route Groups

  - /auth: signup, login (public), logout and user CRUD (gated)
  - /discussions: topics
  - /questions: questions
  - /events: events
  - /replies: replies

Every route is wrapped in request logging. All routes except
POST /auth/signup and POST /auth/login are additionally wrapped in the
bearer-token gate (middleware.RequireAuth); the allow-list is the route
table itself, decided statically, not a runtime check.

GET /health and GET / remain open for probes.
*/
package router
