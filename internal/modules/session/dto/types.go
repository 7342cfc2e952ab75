package dto

import "time"

type SessionOutput struct {
	ID              int64
	Title           string
	Description     string
	ScheduledDate   string
	ScheduledTime   string
	DurationMinutes int
	SkillLevel      string
	CreatedBy       int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type SessionDetailOutput struct {
	Session SessionOutput
	Content []ContentOutput
}

type SessionFields struct {
	Title           string
	Description     string
	ScheduledDate   string
	ScheduledTime   string
	DurationMinutes int
	SkillLevel      string
}

type CreateSessionInput struct {
	Fields  SessionFields
	CoachID int64
}

type UpdateSessionInput struct {
	ID     int64
	Fields SessionFields
}

type ContentOutput struct {
	ID              int64
	SessionID       int64
	Type            string
	Title           string
	Description     string
	DurationMinutes int
	OrderIndex      int
}

type ContentFields struct {
	Type            string
	Title           string
	Description     string
	DurationMinutes int
}

type CreateContentInput struct {
	SessionID int64
	Fields    ContentFields
}

type UpdateContentInput struct {
	ID     int64
	Fields ContentFields
}
