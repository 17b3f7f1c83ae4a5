package entity

import "time"

// User is an authenticated account. Guests never get a row here; they are
// tracked by session id only. Email is unique when present.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	IsGuest   bool      `json:"is_guest"`
	CreatedAt time.Time `json:"created_at"`
}
