package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role decides which capability set the UI offers. The two sets are
// mutually exclusive: a coach never subscribes, a player never edits.
type Role string

const (
	RoleCoach  Role = "coach"
	RolePlayer Role = "player"
)

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(s) {
	case "coach":
		return RoleCoach, nil
	case "player":
		return RolePlayer, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Validate() error {
	if r != RoleCoach && r != RolePlayer {
		return fmt.Errorf("invalid role %q", string(r))
	}
	return nil
}

// SkillLevel is optional on users and sessions; the empty string means unset.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// SkillLevels returns the cycling order used by enum form fields.
func SkillLevels() []SkillLevel {
	return []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced}
}

func ParseSkillLevel(s string) (SkillLevel, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case "beginner":
		return SkillBeginner, nil
	case "intermediate":
		return SkillIntermediate, nil
	case "advanced":
		return SkillAdvanced, nil
	default:
		return "", fmt.Errorf("unknown skill level %q", s)
	}
}

type User struct {
	ID          int64
	Username    string
	DisplayName string
	Role        Role
	SkillLevel  SkillLevel
	Goals       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (u User) IsCoach() bool  { return u.Role == RoleCoach }
func (u User) IsPlayer() bool { return u.Role == RolePlayer }

func (u User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("username is required")
	}
	if u.DisplayName == "" {
		return fmt.Errorf("display name is required")
	}
	if err := u.Role.Validate(); err != nil {
		return err
	}
	if u.SkillLevel != "" {
		if _, err := ParseSkillLevel(string(u.SkillLevel)); err != nil {
			return err
		}
	}
	return nil
}
