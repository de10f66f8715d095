// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Filter modes accepted by the *WithFilters endpoints
const (
	FilterAll     = "all"
	FilterPopular = "popular"
	FilterRecent  = "recent"
	FilterName    = "name"
	FilterOld     = "old"
)

// ValidFilter reports whether q is one of the five accepted filter modes.
func ValidFilter(q string) bool {
	switch q {
	case FilterAll, FilterPopular, FilterRecent, FilterName, FilterOld:
		return true
	}
	return false
}

// Domain types (gorm entities)

type User struct {
	UserID    uint      `gorm:"primaryKey" json:"UserID"`
	FirstName string    `gorm:"not null" json:"FirstName"`
	LastName  string    `gorm:"not null" json:"LastName"`
	Email     string    `gorm:"uniqueIndex;not null" json:"Email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never exposed
	CreatedAt time.Time `json:"CreatedAt"`
}

type Topic struct {
	TopicID    uint      `gorm:"primaryKey" json:"TopicID"`
	Title      string    `gorm:"not null" json:"Title"`
	Content    string    `gorm:"not null" json:"Content"`
	CreatedAt  time.Time `json:"CreatedAt"`
	CreatorID  uint      `gorm:"not null;index" json:"CreatorID"`
	Creator    User      `gorm:"foreignKey:CreatorID;constraint:OnDelete:RESTRICT" json:"Creator"`
	LikesCount int64     `gorm:"not null;default:0" json:"LikesCount"`
	Replies    []Reply   `gorm:"foreignKey:TopicID" json:"Replies,omitempty"`
}

type Question struct {
	QuestionID uint      `gorm:"primaryKey" json:"QuestionID"`
	Title      string    `gorm:"not null" json:"Title"`
	Content    string    `gorm:"not null" json:"Content"`
	CreatedAt  time.Time `json:"CreatedAt"`
	CreatorID  uint      `gorm:"not null;index" json:"CreatorID"`
	Creator    User      `gorm:"foreignKey:CreatorID;constraint:OnDelete:RESTRICT" json:"Creator"`
	LikesCount int64     `gorm:"not null;default:0" json:"LikesCount"`
	Replies    []Reply   `gorm:"foreignKey:QuestionID" json:"Replies,omitempty"`
}

type Event struct {
	EventID     uint      `gorm:"primaryKey" json:"EventID"`
	Title       string    `gorm:"not null" json:"Title"`
	Description string    `gorm:"not null" json:"Description"`
	Date        time.Time `gorm:"not null" json:"Date"`
	Location    string    `gorm:"not null" json:"Location"`
	CreatedAt   time.Time `json:"CreatedAt"`
	CreatorID   uint      `gorm:"not null;index" json:"CreatorID"`
	Creator     User      `gorm:"foreignKey:CreatorID;constraint:OnDelete:RESTRICT" json:"Creator"`
	LikesCount  int64     `gorm:"not null;default:0" json:"LikesCount"`
}

// Reply targets exactly one of TopicID/QuestionID. The exclusivity is
// validated at the handler boundary, not by the schema.
type Reply struct {
	ReplyID    uint      `gorm:"primaryKey" json:"ReplyID"`
	Content    string    `gorm:"not null" json:"Content"`
	CreatedAt  time.Time `json:"CreatedAt"`
	CreatorID  uint      `gorm:"not null;index" json:"CreatorID"`
	Creator    User      `gorm:"foreignKey:CreatorID;constraint:OnDelete:RESTRICT" json:"Creator"`
	TopicID    *uint     `gorm:"index" json:"TopicID,omitempty"`
	QuestionID *uint     `gorm:"index" json:"QuestionID,omitempty"`
	LikesCount int64     `gorm:"not null;default:0" json:"LikesCount"`
}

// Like is a join row linking a user to exactly one target. Each
// (user, target) pair is unique; a second like from the same user hits
// the index and fails.
type Like struct {
	LikeID     uint      `gorm:"primaryKey" json:"LikeID"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_like_topic;uniqueIndex:idx_like_question;uniqueIndex:idx_like_event;uniqueIndex:idx_like_reply" json:"UserID"`
	TopicID    *uint     `gorm:"uniqueIndex:idx_like_topic" json:"TopicID,omitempty"`
	QuestionID *uint     `gorm:"uniqueIndex:idx_like_question" json:"QuestionID,omitempty"`
	EventID    *uint     `gorm:"uniqueIndex:idx_like_event" json:"EventID,omitempty"`
	ReplyID    *uint     `gorm:"uniqueIndex:idx_like_reply" json:"ReplyID,omitempty"`
	CreatedAt  time.Time `json:"CreatedAt"`
}

// Saved is a join row like Like, minus replies and minus any counter
// side effect.
type Saved struct {
	SavedID    uint      `gorm:"primaryKey" json:"SavedID"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_saved_topic;uniqueIndex:idx_saved_question;uniqueIndex:idx_saved_event" json:"UserID"`
	TopicID    *uint     `gorm:"uniqueIndex:idx_saved_topic" json:"TopicID,omitempty"`
	QuestionID *uint     `gorm:"uniqueIndex:idx_saved_question" json:"QuestionID,omitempty"`
	EventID    *uint     `gorm:"uniqueIndex:idx_saved_event" json:"EventID,omitempty"`
	CreatedAt  time.Time `json:"CreatedAt"`
}

// Request types

type SignupRequest struct {
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Email     string `json:"Email"`
	Password  string `json:"Password"`
}

type LoginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type UpdateUserRequest struct {
	UserID    uint   `json:"UserID"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Email     string `json:"Email"`
}

type CreateTopicRequest struct {
	Title     string    `json:"Title"`
	Content   string    `json:"Content"`
	CreatedAt time.Time `json:"CreatedAt"`
	CreatorID uint      `json:"CreatorID"`
}

type UpdateTopicRequest struct {
	TopicID uint   `json:"TopicID"`
	Title   string `json:"Title"`
	Content string `json:"Content"`
}

type CreateQuestionRequest struct {
	Title     string    `json:"Title"`
	Content   string    `json:"Content"`
	CreatedAt time.Time `json:"CreatedAt"`
	CreatorID uint      `json:"CreatorID"`
}

type UpdateQuestionRequest struct {
	QuestionID uint   `json:"QuestionID"`
	Title      string `json:"Title"`
	Content    string `json:"Content"`
}

type CreateEventRequest struct {
	Title       string    `json:"Title"`
	Description string    `json:"Description"`
	Date        time.Time `json:"Date"`
	Location    string    `json:"Location"`
	CreatedAt   time.Time `json:"CreatedAt"`
	CreatorID   uint      `json:"CreatorID"`
}

type UpdateEventRequest struct {
	EventID     uint      `json:"EventID"`
	Title       string    `json:"Title"`
	Description string    `json:"Description"`
	Date        time.Time `json:"Date"`
	Location    string    `json:"Location"`
}

type CreateReplyRequest struct {
	Content    string    `json:"Content"`
	CreatedAt  time.Time `json:"CreatedAt"`
	CreatorID  uint      `json:"CreatorID"`
	TopicID    *uint     `json:"TopicID,omitempty"`
	QuestionID *uint     `json:"QuestionID,omitempty"`
}

type UpdateReplyRequest struct {
	ReplyID uint   `json:"ReplyID"`
	Content string `json:"Content"`
}

// InteractionRequest is the shared body for like/unlike/save/unsave.
// Exactly one target ID is read, selected by the route's resource kind.
type InteractionRequest struct {
	TopicID    uint `json:"TopicID"`
	QuestionID uint `json:"QuestionID"`
	EventID    uint `json:"EventID"`
	ReplyID    uint `json:"ReplyID"`
	UserID     uint `json:"UserID"`
}

// Response types

// AuthResponse is the ad hoc envelope used by the auth endpoints only.
type AuthResponse struct {
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

type InteractionResponse struct {
	Message    string `json:"message"`
	LikesCount *int64 `json:"LikesCount,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
