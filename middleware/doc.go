// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Authentication Gate

RequireAuth wraps a handler with bearer-token verification:

	mux.HandleFunc("POST /discussions/createTopic",
		middleware.WithLogging(middleware.RequireAuth(db, cfg, h.CreateTopic)))

The gate rejects with 401 on a missing token ("No token provided"), a
failed signature or expiry check ("Invalid token"), or a subject that no
longer resolves to a user row ("User does not exist"). On success the user
record is attached to the request context:

	user, ok := middleware.UserFrom(r.Context())

Public routes (signup, login) bypass the gate statically: the route table
never wraps them.

# Logging

WithLogging logs request start and completion with a per-request UUID and
the elapsed time, via log/slog.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Missing Data")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse emits the shared {error, message} shape.

# CORS

CORS reflects the request origin and handles OPTIONS preflight. Applied
once around the whole mux in main.
*/
package middleware
