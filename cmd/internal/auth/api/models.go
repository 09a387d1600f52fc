package authapi

import "time"

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type revokeRequest struct {
	SessionID string `json:"sessionId"`
}

type sessionItem struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Device    string    `json:"device"`
	CreatedAt time.Time `json:"created_at"`
}
