package domain

import (
	"time"

	"github.com/google/uuid"
)

type MeetingStatus string

const (
	StatusScheduled MeetingStatus = "scheduled"
	StatusCancelled MeetingStatus = "cancelled"
	StatusCompleted MeetingStatus = "completed"
)

// Meeting is the persisted form of an accepted scheduling proposal.
type Meeting struct {
	ID           uuid.UUID
	Date         string // YYYY-MM-DD
	Time         string // HH:MM, 24h
	Participants []string
	Title        string
	Description  string
	Status       MeetingStatus
	CreatedAt    time.Time
}

// User is a known chat participant, unique by email.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}
