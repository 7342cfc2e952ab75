package app_test

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	rosterdto "courtside/internal/modules/roster/dto"
	sessiondto "courtside/internal/modules/session/dto"
	subdto "courtside/internal/modules/subscription/dto"
	apperrors "courtside/internal/platform/errors"
	"courtside/internal/ui/app"
)

type fakeSessions struct {
	sessions []sessiondto.SessionOutput
	deleted  []int64
}

func (f *fakeSessions) ListByCoach(context.Context, int64) ([]sessiondto.SessionOutput, error) {
	return f.sessions, nil
}

func (f *fakeSessions) Get(_ context.Context, id int64) (sessiondto.SessionDetailOutput, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			return sessiondto.SessionDetailOutput{Session: s}, nil
		}
	}
	return sessiondto.SessionDetailOutput{}, apperrors.ErrNotFound
}

func (f *fakeSessions) Create(_ context.Context, input sessiondto.CreateSessionInput) (sessiondto.SessionOutput, error) {
	out := sessiondto.SessionOutput{ID: int64(len(f.sessions) + 1), Title: input.Fields.Title}
	f.sessions = append(f.sessions, out)
	return out, nil
}

func (f *fakeSessions) Update(_ context.Context, input sessiondto.UpdateSessionInput) (sessiondto.SessionOutput, error) {
	return sessiondto.SessionOutput{ID: input.ID, Title: input.Fields.Title}, nil
}

func (f *fakeSessions) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSessions) AddContent(_ context.Context, input sessiondto.CreateContentInput) (sessiondto.ContentOutput, error) {
	return sessiondto.ContentOutput{ID: 1, SessionID: input.SessionID, Title: input.Fields.Title}, nil
}

func (f *fakeSessions) UpdateContent(_ context.Context, input sessiondto.UpdateContentInput) (sessiondto.ContentOutput, error) {
	return sessiondto.ContentOutput{ID: input.ID, Title: input.Fields.Title}, nil
}

func (f *fakeSessions) DeleteContent(context.Context, int64) error { return nil }

type fakeSubs struct {
	views   []subdto.SessionView
	toggled []int64
}

func (f *fakeSubs) ListForPlayer(context.Context, int64, subdto.Filter) ([]subdto.SessionView, error) {
	return f.views, nil
}

func (f *fakeSubs) Toggle(_ context.Context, _, sessionID int64) (subdto.ToggleOutput, error) {
	f.toggled = append(f.toggled, sessionID)
	return subdto.ToggleOutput{Subscribed: true, SessionID: sessionID}, nil
}

func (f *fakeSubs) MarkComplete(_ context.Context, _, sessionID int64) (subdto.SubscriptionOutput, error) {
	for i := range f.views {
		sub := f.views[i].Subscription
		if f.views[i].Session.ID != sessionID || sub == nil {
			continue
		}
		if sub.IsCompleted() {
			return subdto.SubscriptionOutput{}, apperrors.ErrAlreadyCompleted
		}
		sub.CompletedAt = time.Now()
		return *sub, nil
	}
	return subdto.SubscriptionOutput{}, apperrors.ErrNotSubscribed
}

func coachUser() rosterdto.UserOutput {
	return rosterdto.UserOutput{ID: 1, Username: "coach_peter", DisplayName: "Coach Peter", Role: "coach"}
}

func playerUser() rosterdto.UserOutput {
	return rosterdto.UserOutput{ID: 2, Username: "alice", DisplayName: "Alice", Role: "player", SkillLevel: "beginner"}
}

func newTestModel(user rosterdto.UserOutput, sessions *fakeSessions, subs *fakeSubs) tea.Model {
	m := app.NewModel(user, sessions, subs)
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return sized
}

func press(m tea.Model, key string) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func pressKey(m tea.Model, k tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

// drain executes a returned command and feeds its message back, the way the
// Bubble Tea runtime would.
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return m
		}
		m, cmd = m.Update(msg)
	}
	return m
}

func serveClinic() []sessiondto.SessionOutput {
	return []sessiondto.SessionOutput{
		{ID: 10, Title: "Serve Clinic", ScheduledDate: "2026-09-01", DurationMinutes: 60, CreatedBy: 1},
	}
}

func TestHomeShowsRoleWelcome(t *testing.T) {
	t.Parallel()
	m := newTestModel(coachUser(), &fakeSessions{}, &fakeSubs{})
	if !strings.Contains(m.View(), "Welcome, Coach!") {
		t.Fatal("coach home missing welcome")
	}

	p := newTestModel(playerUser(), &fakeSessions{}, &fakeSubs{})
	view := p.View()
	if !strings.Contains(view, "Welcome, Alice!") || !strings.Contains(view, "beginner") {
		t.Fatal("player home missing name or skill level")
	}
}

func TestSessionListLoadsOnEntry(t *testing.T) {
	t.Parallel()
	m := newTestModel(coachUser(), &fakeSessions{sessions: serveClinic()}, &fakeSubs{})
	m, cmd := press(m, "2")
	m = drain(t, m, cmd)
	if !strings.Contains(m.View(), "Serve Clinic") {
		t.Fatal("session list missing loaded session")
	}
}

func TestQuitOnlyFromHome(t *testing.T) {
	t.Parallel()
	m := newTestModel(coachUser(), &fakeSessions{sessions: serveClinic()}, &fakeSubs{})

	m, cmd := press(m, "2")
	m = drain(t, m, cmd)
	m, cmd = press(m, "q")
	if cmd != nil {
		t.Fatal("q outside home should not quit")
	}
	if !strings.Contains(m.View(), "Welcome") {
		t.Fatal("q outside home should return home")
	}

	_, cmd = press(m, "q")
	if cmd == nil {
		t.Fatal("q on home should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q on home should produce QuitMsg")
	}
}

func TestHelpAlwaysReturnsHome(t *testing.T) {
	t.Parallel()
	m := newTestModel(coachUser(), &fakeSessions{sessions: serveClinic()}, &fakeSubs{})

	// Open help from the session list, not home.
	m, cmd := press(m, "2")
	m = drain(t, m, cmd)
	m, _ = press(m, "?")
	if !strings.Contains(m.View(), "Help") {
		t.Fatal("help screen not shown")
	}
	m, _ = pressKey(m, tea.KeyEsc)
	if !strings.Contains(m.View(), "Welcome") {
		t.Fatal("closing help should land on home, not the previous screen")
	}
}

func TestPlayerCannotOpenCoachForms(t *testing.T) {
	t.Parallel()
	subs := &fakeSubs{views: []subdto.SessionView{{Session: serveClinic()[0]}}}
	m := newTestModel(playerUser(), &fakeSessions{}, subs)
	m, cmd := press(m, "2")
	m = drain(t, m, cmd)

	m, _ = press(m, "c")
	if strings.Contains(m.View(), "Create Session") {
		t.Fatal("player opened the create form")
	}
}

func TestCoachInvalidSubmitKeepsForm(t *testing.T) {
	t.Parallel()
	m := newTestModel(coachUser(), &fakeSessions{sessions: serveClinic()}, &fakeSubs{})
	m, cmd := press(m, "2")
	m = drain(t, m, cmd)
	m, _ = press(m, "c")
	if !strings.Contains(m.View(), "Create Session") {
		t.Fatal("create form not shown")
	}

	m, _ = pressKey(m, tea.KeyEnter)
	view := m.View()
	if !strings.Contains(view, "Create Session") {
		t.Fatal("invalid submit left the form screen")
	}
	if !strings.Contains(view, "Title is required") {
		t.Fatal("validation message not surfaced in status")
	}
}

func TestCoachDeleteNeedsConfirmation(t *testing.T) {
	t.Parallel()
	sessions := &fakeSessions{sessions: serveClinic()}
	m := newTestModel(coachUser(), sessions, &fakeSubs{})
	m, cmd := press(m, "2")
	m = drain(t, m, cmd)

	m, _ = press(m, "d")
	if !strings.Contains(m.View(), "Delete this session?") {
		t.Fatal("confirmation screen not shown")
	}
	if len(sessions.deleted) != 0 {
		t.Fatal("delete ran before confirmation")
	}

	m, cmd = press(m, "n")
	m = drain(t, m, cmd)
	if len(sessions.deleted) != 0 {
		t.Fatal("delete ran after decline")
	}

	m, _ = press(m, "d")
	m, cmd = press(m, "y")
	m = drain(t, m, cmd)
	if len(sessions.deleted) != 1 || sessions.deleted[0] != 10 {
		t.Fatalf("deleted = %v, want [10]", sessions.deleted)
	}
}

func TestPlayerSubscribeToggle(t *testing.T) {
	t.Parallel()
	subs := &fakeSubs{views: []subdto.SessionView{{Session: serveClinic()[0]}}}
	m := newTestModel(playerUser(), &fakeSessions{}, subs)
	m, cmd := press(m, "2")
	m = drain(t, m, cmd)

	m, cmd = press(m, "s")
	m = drain(t, m, cmd)
	if len(subs.toggled) != 1 || subs.toggled[0] != 10 {
		t.Fatalf("toggled = %v, want [10]", subs.toggled)
	}
	if !strings.Contains(m.View(), "subscribed") {
		t.Fatal("status missing subscription feedback")
	}
}

func TestMarkCompleteErrorSurfacesInStatus(t *testing.T) {
	t.Parallel()
	subs := &fakeSubs{views: []subdto.SessionView{{Session: serveClinic()[0]}}}
	m := newTestModel(playerUser(), &fakeSessions{}, subs)
	m, cmd := press(m, "2")
	m = drain(t, m, cmd)

	m, cmd = press(m, "m")
	m = drain(t, m, cmd)
	if !strings.Contains(m.View(), "must subscribe first") {
		t.Fatal("domain error not surfaced in status")
	}
}

func TestDetailReportsCompletionStatus(t *testing.T) {
	t.Parallel()
	done := &subdto.SubscriptionOutput{ID: 1, UserID: 2, SessionID: 10, Status: "completed", CompletedAt: time.Now()}
	subs := &fakeSubs{views: []subdto.SessionView{{Session: serveClinic()[0], Subscription: done}}}
	m := newTestModel(playerUser(), &fakeSessions{sessions: serveClinic()}, subs)

	m, cmd := press(m, "2")
	m = drain(t, m, cmd)
	m, cmd = pressKey(m, tea.KeyEnter)
	m = drain(t, m, cmd)
	if !strings.Contains(m.View(), "Status: ") {
		t.Fatal("player detail missing subscription status line")
	}
	if !strings.Contains(m.View(), "Completed") {
		t.Fatal("detail view does not report completion status")
	}
}

func TestMarkCompleteFromDetailUpdatesStatus(t *testing.T) {
	t.Parallel()
	active := &subdto.SubscriptionOutput{ID: 1, UserID: 2, SessionID: 10, Status: "active"}
	subs := &fakeSubs{views: []subdto.SessionView{{Session: serveClinic()[0], Subscription: active}}}
	m := newTestModel(playerUser(), &fakeSessions{sessions: serveClinic()}, subs)

	m, cmd := press(m, "2")
	m = drain(t, m, cmd)
	m, cmd = pressKey(m, tea.KeyEnter)
	m = drain(t, m, cmd)
	if !strings.Contains(m.View(), "Subscribed") {
		t.Fatal("detail missing active subscription status")
	}

	m, cmd = press(m, "m")
	m = drain(t, m, cmd)
	view := m.View()
	if !strings.Contains(view, "Completed") {
		t.Fatal("detail status not updated after mark complete")
	}
	if !strings.Contains(view, "marked complete") {
		t.Fatal("status message missing completion feedback")
	}
}

func TestCoachDetailHasNoSubscriptionStatus(t *testing.T) {
	t.Parallel()
	m := newTestModel(coachUser(), &fakeSessions{sessions: serveClinic()}, &fakeSubs{})
	m, cmd := press(m, "2")
	m = drain(t, m, cmd)
	m, cmd = pressKey(m, tea.KeyEnter)
	m = drain(t, m, cmd)
	if strings.Contains(m.View(), "Status: ") {
		t.Fatal("coach detail should not show a subscription status line")
	}
}

func TestEnterOpensDetail(t *testing.T) {
	t.Parallel()
	m := newTestModel(coachUser(), &fakeSessions{sessions: serveClinic()}, &fakeSubs{})
	m, cmd := press(m, "2")
	m = drain(t, m, cmd)

	m, cmd = pressKey(m, tea.KeyEnter)
	m = drain(t, m, cmd)
	view := m.View()
	if !strings.Contains(view, "Training Content") {
		t.Fatal("detail screen not shown after enter")
	}
}
