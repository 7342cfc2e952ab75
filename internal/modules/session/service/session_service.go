package service

import (
	"context"
	"fmt"

	rosterdomain "courtside/internal/modules/roster/domain"
	"courtside/internal/modules/session/domain"
	sessionout "courtside/internal/modules/session/port/out"
	"courtside/internal/platform/clock"
)

// SessionService builds and persists sessions and their training content.
// Ownership is gated upstream by the UI capability filter; the service
// trusts the caller-supplied coach id.
type SessionService struct {
	clock    clock.Clock
	sessions sessionout.SessionStore
	content  sessionout.ContentStore
}

func NewSessionService(clock clock.Clock, sessions sessionout.SessionStore, content sessionout.ContentStore) *SessionService {
	return &SessionService{clock: clock, sessions: sessions, content: content}
}

func (s *SessionService) Create(ctx context.Context, session domain.Session) (domain.Session, error) {
	now := s.clock.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	if err := session.Validate(); err != nil {
		return domain.Session{}, err
	}
	id, err := s.sessions.Create(ctx, session)
	if err != nil {
		return domain.Session{}, fmt.Errorf("create session: %w", err)
	}
	session.ID = id
	return session, nil
}

func (s *SessionService) Update(ctx context.Context, session domain.Session) (domain.Session, error) {
	existing, err := s.sessions.FindByID(ctx, session.ID)
	if err != nil {
		return domain.Session{}, err
	}
	session.CreatedBy = existing.CreatedBy
	session.CreatedAt = existing.CreatedAt
	session.UpdatedAt = s.clock.Now()
	if err := session.Validate(); err != nil {
		return domain.Session{}, err
	}
	if err := s.sessions.Update(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("update session: %w", err)
	}
	return session, nil
}

// Delete removes a session and its content rows. Content goes first so a
// failure never leaves orphaned items behind a missing session.
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.sessions.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.content.DeleteBySession(ctx, id); err != nil {
		return fmt.Errorf("delete session content: %w", err)
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// AppendContent assigns the next order index for the session: current item
// count plus one. Indices are sort keys; deletes leave gaps.
func (s *SessionService) AppendContent(ctx context.Context, content domain.TrainingContent) (domain.TrainingContent, error) {
	if _, err := s.sessions.FindByID(ctx, content.SessionID); err != nil {
		return domain.TrainingContent{}, err
	}
	count, err := s.content.CountBySession(ctx, content.SessionID)
	if err != nil {
		return domain.TrainingContent{}, fmt.Errorf("count session content: %w", err)
	}
	content.OrderIndex = count + 1
	if err := content.Validate(); err != nil {
		return domain.TrainingContent{}, err
	}
	id, err := s.content.Create(ctx, content)
	if err != nil {
		return domain.TrainingContent{}, fmt.Errorf("create content: %w", err)
	}
	content.ID = id
	return content, nil
}

func (s *SessionService) UpdateContent(ctx context.Context, content domain.TrainingContent) (domain.TrainingContent, error) {
	existing, err := s.content.FindByID(ctx, content.ID)
	if err != nil {
		return domain.TrainingContent{}, err
	}
	content.SessionID = existing.SessionID
	content.OrderIndex = existing.OrderIndex
	if err := content.Validate(); err != nil {
		return domain.TrainingContent{}, err
	}
	if err := s.content.Update(ctx, content); err != nil {
		return domain.TrainingContent{}, fmt.Errorf("update content: %w", err)
	}
	return content, nil
}

// NewSession assembles an unsaved session from raw field values.
func NewSession(title, description, date, timeOfDay string, duration int, level string, coachID int64) (domain.Session, error) {
	skill, err := rosterdomain.ParseSkillLevel(level)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Title:           title,
		Description:     description,
		ScheduledDate:   date,
		ScheduledTime:   timeOfDay,
		DurationMinutes: duration,
		SkillLevel:      skill,
		CreatedBy:       coachID,
	}, nil
}

// NewContent assembles an unsaved training content item from raw field values.
func NewContent(sessionID int64, kind, title, description string, duration int) (domain.TrainingContent, error) {
	contentType, err := domain.ParseContentType(kind)
	if err != nil {
		return domain.TrainingContent{}, err
	}
	return domain.TrainingContent{
		SessionID:       sessionID,
		Type:            contentType,
		Title:           title,
		Description:     description,
		DurationMinutes: duration,
	}, nil
}
