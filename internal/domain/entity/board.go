package entity

import "time"

// ContactMessage is one entry on the contact board. Admins see the full
// grid; everyone else only submits.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// Feedback is one free-text feedback entry.
type Feedback struct {
	ID      int64
	Message string
}
