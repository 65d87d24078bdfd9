package model

import "time"

// User is the upstream account attached to a session. Object/ObjectID carry the
// "this admin manages entity X" reference the core API uses.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Object    string `json:"object"`
	ObjectID  string `json:"object_id"`
	IsActive  bool   `json:"is_active"`
}

// Session is the single source of truth for an authenticated visitor: the upstream
// bearer token stays here, server-side, and only the session ID travels to the
// browser inside a signed gateway token.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}
