package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"courtside/internal/modules/session/adapter/out"
	"courtside/internal/modules/session/domain"
	sessionout "courtside/internal/modules/session/port/out"
	apperrors "courtside/internal/platform/errors"
	"courtside/internal/platform/sqlite"
)

func openStores(t *testing.T) (sessionout.SessionStore, sessionout.ContentStore) {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	sessions, err := out.NewSQLiteSessionStore(db)
	if err != nil {
		t.Fatalf("new session store: %v", err)
	}
	content, err := out.NewSQLiteContentStore(db)
	if err != nil {
		t.Fatalf("new content store: %v", err)
	}
	return sessions, content
}

func session(title, date string, createdAt time.Time) domain.Session {
	return domain.Session{
		Title:         title,
		ScheduledDate: date,
		CreatedBy:     1,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()
	sessions, _ := openStores(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	in := domain.Session{
		Title:           "Serve Clinic",
		Description:     "First serves",
		ScheduledDate:   "2026-09-01",
		ScheduledTime:   "17:00",
		DurationMinutes: 60,
		SkillLevel:      "advanced",
		CreatedBy:       1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	id, err := sessions.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := sessions.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Title != in.Title || got.ScheduledDate != in.ScheduledDate ||
		got.ScheduledTime != in.ScheduledTime || got.DurationMinutes != in.DurationMinutes ||
		got.SkillLevel != in.SkillLevel {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, now)
	}
}

func TestSessionListOrdersByDateThenCreation(t *testing.T) {
	t.Parallel()
	sessions, _ := openStores(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	// Same date, different creation times, plus an earlier and an undated one.
	inputs := []domain.Session{
		session("Old", "2026-08-15", base),
		session("Same Day Early", "2026-09-01", base.Add(1*time.Hour)),
		session("Same Day Late", "2026-09-01", base.Add(2*time.Hour)),
	}
	for _, s := range inputs {
		if _, err := sessions.Create(ctx, s); err != nil {
			t.Fatalf("create %s: %v", s.Title, err)
		}
	}

	got, err := sessions.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Same Day Late", "Same Day Early", "Old"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("position %d = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestSessionUpdateUnknownID(t *testing.T) {
	t.Parallel()
	sessions, _ := openStores(t)

	s := session("Ghost", "2026-09-01", time.Now().UTC())
	s.ID = 999
	if err := sessions.Update(context.Background(), s); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestContentListAndCascadeDelete(t *testing.T) {
	t.Parallel()
	sessions, content := openStores(t)
	ctx := context.Background()

	id, err := sessions.Create(ctx, session("With Content", "2026-09-01", time.Now().UTC()))
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	for i, title := range []string{"Warmup", "Drill", "Cooldown"} {
		_, err := content.Create(ctx, domain.TrainingContent{
			SessionID:  id,
			Type:       domain.ContentDrill,
			Title:      title,
			OrderIndex: i + 1,
		})
		if err != nil {
			t.Fatalf("create content: %v", err)
		}
	}

	items, err := content.ListBySession(ctx, id)
	if err != nil {
		t.Fatalf("list content: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("content count = %d, want 3", len(items))
	}
	for i, item := range items {
		if item.OrderIndex != i+1 {
			t.Fatalf("content not ordered by index: %+v", items)
		}
	}

	count, err := content.CountBySession(ctx, id)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}

	if err := content.DeleteBySession(ctx, id); err != nil {
		t.Fatalf("delete by session: %v", err)
	}
	count, err = content.CountBySession(ctx, id)
	if err != nil {
		t.Fatalf("count after delete: %v", err)
	}
	if count != 0 {
		t.Fatalf("count after delete = %d, want 0", count)
	}
}

func TestContentFindUnknownID(t *testing.T) {
	t.Parallel()
	_, content := openStores(t)
	if _, err := content.FindByID(context.Background(), 404); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
