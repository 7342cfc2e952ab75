package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"courtside/internal/modules/session/domain"
	"courtside/internal/modules/session/service"
	apperrors "courtside/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeSessionStore struct {
	sessions map[int64]domain.Session
	nextID   int64
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[int64]domain.Session{}}
}

func (f *fakeSessionStore) ListAll(context.Context) ([]domain.Session, error) {
	out := make([]domain.Session, 0, len(f.sessions))
	for _, s := range f.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessionStore) ListByCoach(_ context.Context, coachID int64) ([]domain.Session, error) {
	var out []domain.Session
	for _, s := range f.sessions {
		if s.CreatedBy == coachID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionStore) FindByID(_ context.Context, id int64) (domain.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return domain.Session{}, apperrors.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionStore) Create(_ context.Context, s domain.Session) (int64, error) {
	f.nextID++
	s.ID = f.nextID
	f.sessions[s.ID] = s
	return s.ID, nil
}

func (f *fakeSessionStore) Update(_ context.Context, s domain.Session) error {
	if _, ok := f.sessions[s.ID]; !ok {
		return apperrors.ErrNotFound
	}
	f.sessions[s.ID] = s
	return nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id int64) error {
	delete(f.sessions, id)
	return nil
}

type fakeContentStore struct {
	items  map[int64]domain.TrainingContent
	nextID int64
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{items: map[int64]domain.TrainingContent{}}
}

func (f *fakeContentStore) ListBySession(_ context.Context, sessionID int64) ([]domain.TrainingContent, error) {
	var out []domain.TrainingContent
	for _, c := range f.items {
		if c.SessionID == sessionID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContentStore) FindByID(_ context.Context, id int64) (domain.TrainingContent, error) {
	c, ok := f.items[id]
	if !ok {
		return domain.TrainingContent{}, apperrors.ErrNotFound
	}
	return c, nil
}

func (f *fakeContentStore) CountBySession(_ context.Context, sessionID int64) (int, error) {
	count := 0
	for _, c := range f.items {
		if c.SessionID == sessionID {
			count++
		}
	}
	return count, nil
}

func (f *fakeContentStore) Create(_ context.Context, c domain.TrainingContent) (int64, error) {
	f.nextID++
	c.ID = f.nextID
	f.items[c.ID] = c
	return c.ID, nil
}

func (f *fakeContentStore) Update(_ context.Context, c domain.TrainingContent) error {
	if _, ok := f.items[c.ID]; !ok {
		return apperrors.ErrNotFound
	}
	f.items[c.ID] = c
	return nil
}

func (f *fakeContentStore) Delete(_ context.Context, id int64) error {
	delete(f.items, id)
	return nil
}

func (f *fakeContentStore) DeleteBySession(_ context.Context, sessionID int64) error {
	for id, c := range f.items {
		if c.SessionID == sessionID {
			delete(f.items, id)
		}
	}
	return nil
}

func newService(now time.Time) (*service.SessionService, *fakeSessionStore, *fakeContentStore) {
	sessions := newFakeSessionStore()
	content := newFakeContentStore()
	return service.NewSessionService(fixedClock{now: now}, sessions, content), sessions, content
}

func validSession(coachID int64) domain.Session {
	return domain.Session{
		Title:           "Serve Clinic",
		Description:     "First serve mechanics",
		ScheduledDate:   "2026-09-01",
		ScheduledTime:   "17:00",
		DurationMinutes: 60,
		SkillLevel:      "advanced",
		CreatedBy:       coachID,
	}
}

func TestCreateStampsTimestamps(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newService(now)

	created, err := svc.Create(context.Background(), validSession(1))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not stamped: created=%v updated=%v", created.CreatedAt, created.UpdatedAt)
	}
}

func TestCreateRejectsInvalidTitle(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(time.Now())

	s := validSession(1)
	s.Title = "ab"
	if _, err := svc.Create(context.Background(), s); err == nil {
		t.Fatal("expected validation error for 2-char title")
	}
}

func TestUpdatePreservesOwnerAndCreatedAt(t *testing.T) {
	t.Parallel()
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	later := created.Add(48 * time.Hour)
	sessions := newFakeSessionStore()
	content := newFakeContentStore()
	creator := service.NewSessionService(fixedClock{now: created}, sessions, content)
	editor := service.NewSessionService(fixedClock{now: later}, sessions, content)

	session, err := creator.Create(context.Background(), validSession(7))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edit := session
	edit.Title = "Serve Clinic v2"
	edit.CreatedBy = 999 // must be ignored

	updated, err := editor.Update(context.Background(), edit)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CreatedBy != 7 {
		t.Fatalf("owner changed on update: %d", updated.CreatedBy)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("created_at changed on update: %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(later) {
		t.Fatalf("updated_at not advanced: %v", updated.UpdatedAt)
	}
}

func TestAppendContentAssignsSequentialIndices(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(time.Now())

	session, err := svc.Create(context.Background(), validSession(1))
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	for want := 1; want <= 3; want++ {
		item := domain.TrainingContent{
			SessionID: session.ID,
			Type:      domain.ContentDrill,
			Title:     "Drill",
		}
		created, err := svc.AppendContent(context.Background(), item)
		if err != nil {
			t.Fatalf("append %d: %v", want, err)
		}
		if created.OrderIndex != want {
			t.Fatalf("order index = %d, want %d", created.OrderIndex, want)
		}
	}
}

func TestAppendContentAfterDeleteUsesCount(t *testing.T) {
	t.Parallel()
	svc, _, content := newService(time.Now())

	session, err := svc.Create(context.Background(), validSession(1))
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	var ids []int64
	for i := 0; i < 3; i++ {
		created, err := svc.AppendContent(context.Background(), domain.TrainingContent{
			SessionID: session.ID, Type: domain.ContentExercise, Title: "Item",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
		ids = append(ids, created.ID)
	}
	if err := content.Delete(context.Background(), ids[1]); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Indices are sort keys, not positions: count+1 after a delete can repeat
	// an existing index and leave a gap behind.
	created, err := svc.AppendContent(context.Background(), domain.TrainingContent{
		SessionID: session.ID, Type: domain.ContentCooldown, Title: "Stretch",
	})
	if err != nil {
		t.Fatalf("append after delete: %v", err)
	}
	if created.OrderIndex != 3 {
		t.Fatalf("order index = %d, want 3 (count 2 + 1)", created.OrderIndex)
	}
}

func TestUpdateContentPreservesSessionAndIndex(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(time.Now())

	session, err := svc.Create(context.Background(), validSession(1))
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	created, err := svc.AppendContent(context.Background(), domain.TrainingContent{
		SessionID: session.ID, Type: domain.ContentDrill, Title: "Crosscourt rally",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	edit := domain.TrainingContent{
		ID:        created.ID,
		SessionID: 12345, // must be ignored
		Type:      domain.ContentDrill,
		Title:     "Crosscourt rally, deep targets",
	}
	updated, err := svc.UpdateContent(context.Background(), edit)
	if err != nil {
		t.Fatalf("update content: %v", err)
	}
	if updated.SessionID != session.ID {
		t.Fatalf("session id changed: %d", updated.SessionID)
	}
	if updated.OrderIndex != created.OrderIndex {
		t.Fatalf("order index changed: %d", updated.OrderIndex)
	}
}

func TestDeleteRemovesSessionAndContent(t *testing.T) {
	t.Parallel()
	svc, sessions, content := newService(time.Now())

	session, err := svc.Create(context.Background(), validSession(1))
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := svc.AppendContent(context.Background(), domain.TrainingContent{
		SessionID: session.ID, Type: domain.ContentWarmup, Title: "Jog",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := svc.Delete(context.Background(), session.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := sessions.FindByID(context.Background(), session.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("session still present: %v", err)
	}
	count, err := content.CountBySession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("orphaned content rows: %d", count)
	}
}

func TestDeleteUnknownSession(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(time.Now())
	if err := svc.Delete(context.Background(), 42); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestNewSessionRejectsUnknownSkill(t *testing.T) {
	t.Parallel()
	if _, err := service.NewSession("Footwork", "", "", "", 0, "expert", 1); err == nil {
		t.Fatal("expected error for unknown skill level")
	}
}
