package domain

import (
	"fmt"
	"time"

	rosterdomain "courtside/internal/modules/roster/domain"
	sessiondomain "courtside/internal/modules/session/domain"
)

// TrainingTemplate is a reusable content blueprint a coach keeps outside any
// single session. Attaching one to a session records a link, it never copies.
type TrainingTemplate struct {
	ID              int64
	Title           string
	Description     string
	Type            sessiondomain.ContentType
	DurationMinutes int
	SkillLevel      rosterdomain.SkillLevel
	CreatedBy       int64
	CreatedAt       time.Time
}

func (t TrainingTemplate) Validate() error {
	if len(t.Title) < 2 || len(t.Title) > 100 {
		return fmt.Errorf("title must be 2-100 characters")
	}
	if len(t.Description) > 500 {
		return fmt.Errorf("description must be at most 500 characters")
	}
	if _, err := sessiondomain.ParseContentType(string(t.Type)); err != nil {
		return err
	}
	if t.DurationMinutes != 0 && (t.DurationMinutes < 1 || t.DurationMinutes > 480) {
		return fmt.Errorf("duration must be between 1 and 480 minutes")
	}
	if t.SkillLevel != "" {
		if _, err := rosterdomain.ParseSkillLevel(string(t.SkillLevel)); err != nil {
			return err
		}
	}
	if t.CreatedBy == 0 {
		return fmt.Errorf("owning coach is required")
	}
	return nil
}

// SessionTrainingLink ties a template into a session's plan at a position.
// OrderIndex follows the same append-only numbering as session content.
type SessionTrainingLink struct {
	ID         int64
	SessionID  int64
	TemplateID int64
	OrderIndex int
	CreatedAt  time.Time
}
