package dto

import "time"

type TemplateOutput struct {
	ID              int64
	Title           string
	Description     string
	Type            string
	DurationMinutes int
	SkillLevel      string
	CreatedBy       int64
	CreatedAt       time.Time
}

type CreateTemplateInput struct {
	Title           string
	Description     string
	Type            string
	DurationMinutes int
	SkillLevel      string
	CreatedBy       int64
}

type LinkOutput struct {
	ID         int64
	SessionID  int64
	TemplateID int64
	OrderIndex int
	CreatedAt  time.Time
}

// AttachedTemplate pairs a link with the template it points at, in plan order.
type AttachedTemplate struct {
	Link     LinkOutput
	Template TemplateOutput
}
