// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the gorm entities plus request and response types
for the API.

# Domain Types

Persisted entities:

  - User: account with unique email and bcrypt password hash
  - Topic, Question: title + content, denormalized LikesCount, replies
  - Event: title + description with kind-specific Date and Location
  - Reply: content attached to exactly one of Topic or Question
  - Like: join row (user, one target), unique per pair
  - Saved: join row like Like, topics/questions/events only, no counter

All entities keep their creator via CreatorID with a RESTRICT constraint:
deleting a user does not cascade into their content.

# Request Types

Types for parsing incoming JSON:

  - SignupRequest, LoginRequest, UpdateUserRequest
  - Create/Update{Topic,Question,Event,Reply}Request
  - InteractionRequest: shared body for like/unlike/save/unsave

# Response Types

  - AuthResponse: the {data, token, message} envelope used by /auth only
  - InteractionResponse: message plus the current LikesCount
  - MessageResponse, ErrorResponse

# Filter Modes

The *WithFilters endpoints accept exactly five values for q:

	all | popular | recent | name | old

ValidFilter checks membership; everything else is rejected with 400 at the
handler boundary.
*/
package models
