package domain

import (
	"fmt"
	"strings"
	"time"

	rosterdomain "courtside/internal/modules/roster/domain"
)

// Session is a schedulable unit of training owned by exactly one coach.
// Scheduled date and time stay in their wire form (YYYY-MM-DD, HH:MM);
// validation is structural and the strings double as sort keys.
type Session struct {
	ID              int64
	Title           string
	Description     string
	ScheduledDate   string
	ScheduledTime   string
	DurationMinutes int
	SkillLevel      rosterdomain.SkillLevel
	CreatedBy       int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s Session) Validate() error {
	if len(s.Title) < 3 || len(s.Title) > 100 {
		return fmt.Errorf("title must be 3-100 characters")
	}
	if len(s.Description) > 500 {
		return fmt.Errorf("description must be at most 500 characters")
	}
	if s.DurationMinutes != 0 && (s.DurationMinutes < 5 || s.DurationMinutes > 480) {
		return fmt.Errorf("duration must be between 5 and 480 minutes")
	}
	if s.SkillLevel != "" {
		if _, err := rosterdomain.ParseSkillLevel(string(s.SkillLevel)); err != nil {
			return err
		}
	}
	if s.CreatedBy == 0 {
		return fmt.Errorf("owning coach is required")
	}
	return nil
}

// ContentType is the kind of a training content item.
type ContentType string

const (
	ContentDrill    ContentType = "drill"
	ContentExercise ContentType = "exercise"
	ContentWarmup   ContentType = "warmup"
	ContentCooldown ContentType = "cooldown"
)

// ContentTypes returns the cycling order used by enum form fields.
func ContentTypes() []ContentType {
	return []ContentType{ContentDrill, ContentExercise, ContentWarmup, ContentCooldown}
}

func ParseContentType(s string) (ContentType, error) {
	switch strings.ToLower(s) {
	case "drill":
		return ContentDrill, nil
	case "exercise":
		return ContentExercise, nil
	case "warmup":
		return ContentWarmup, nil
	case "cooldown":
		return ContentCooldown, nil
	default:
		return "", fmt.Errorf("unknown content type %q", s)
	}
}

// TrainingContent is an ordered item inside a session. OrderIndex is a sort
// key assigned on append and never renumbered on delete.
type TrainingContent struct {
	ID              int64
	SessionID       int64
	Type            ContentType
	Title           string
	Description     string
	DurationMinutes int
	OrderIndex      int
}

func (c TrainingContent) Validate() error {
	if c.SessionID == 0 {
		return fmt.Errorf("parent session is required")
	}
	if _, err := ParseContentType(string(c.Type)); err != nil {
		return err
	}
	if len(c.Title) < 2 || len(c.Title) > 100 {
		return fmt.Errorf("title must be 2-100 characters")
	}
	if len(c.Description) > 500 {
		return fmt.Errorf("description must be at most 500 characters")
	}
	if c.DurationMinutes != 0 && (c.DurationMinutes < 1 || c.DurationMinutes > 480) {
		return fmt.Errorf("duration must be between 1 and 480 minutes")
	}
	return nil
}
