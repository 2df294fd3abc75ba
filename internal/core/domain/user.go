package domain

import "time"

// User models an account on the user service.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// LoginResult is what the user service returns on a successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}
