// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the agora API server.

Agora is a REST backend for a discussion platform: users create topics,
questions, events and replies, like and save them, and filter listings.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 8843 -d "postgres://..." --jwt-secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): secret for signing session tokens

Optional settings:

  - PORT (-p): server port (default: 8843)
  - TOKEN_TTL (--token-ttl): session token lifetime (default: 24h)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, topics, questions, events, replies)
  - router: route definitions using Go 1.22+ routing
  - middleware: auth gate, CORS, logging, JSON helpers
  - models: gorm entities and request/response types
  - auth: JWT issue/verify and bcrypt password hashing
  - db: gorm connection and auto-migration
  - cliparse: configuration parsing

All authenticated routes require an Authorization: Bearer {token} header;
only signup and login are public. See package documentation for each
component.
*/
package main
