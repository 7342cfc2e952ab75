package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"courtside/internal/modules/subscription/domain"
	"courtside/internal/modules/subscription/service"
	apperrors "courtside/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeSubscriptionStore struct {
	subs   map[int64]domain.Subscription
	nextID int64
}

func newFakeSubscriptionStore() *fakeSubscriptionStore {
	return &fakeSubscriptionStore{subs: map[int64]domain.Subscription{}}
}

func (f *fakeSubscriptionStore) Create(_ context.Context, sub domain.Subscription) (int64, error) {
	for _, s := range f.subs {
		if s.UserID == sub.UserID && s.SessionID == sub.SessionID {
			return 0, errors.New("unique constraint: user_id, session_id")
		}
	}
	f.nextID++
	sub.ID = f.nextID
	f.subs[sub.ID] = sub
	return sub.ID, nil
}

func (f *fakeSubscriptionStore) FindByUserAndSession(_ context.Context, userID, sessionID int64) (domain.Subscription, error) {
	for _, s := range f.subs {
		if s.UserID == userID && s.SessionID == sessionID {
			return s, nil
		}
	}
	return domain.Subscription{}, apperrors.ErrNotFound
}

func (f *fakeSubscriptionStore) ListByUser(_ context.Context, userID int64) ([]domain.Subscription, error) {
	var out []domain.Subscription
	for _, s := range f.subs {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionStore) ListBySession(_ context.Context, sessionID int64) ([]domain.Subscription, error) {
	var out []domain.Subscription
	for _, s := range f.subs {
		if s.SessionID == sessionID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionStore) MarkCompleted(_ context.Context, id int64, at time.Time) error {
	s, ok := f.subs[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	s.CompletedAt = at
	s.Status = domain.StatusCompleted
	f.subs[id] = s
	return nil
}

func (f *fakeSubscriptionStore) Delete(_ context.Context, id int64) error {
	delete(f.subs, id)
	return nil
}

func (f *fakeSubscriptionStore) DeleteByUserAndSession(_ context.Context, userID, sessionID int64) error {
	for id, s := range f.subs {
		if s.UserID == userID && s.SessionID == sessionID {
			delete(f.subs, id)
		}
	}
	return nil
}

func TestToggleSubscribesThenUnsubscribes(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	store := newFakeSubscriptionStore()
	svc := service.NewSubscriptionService(fixedClock{now: now}, store)

	subscribed, err := svc.Toggle(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !subscribed {
		t.Fatal("first toggle should subscribe")
	}
	sub, err := store.FindByUserAndSession(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("find after subscribe: %v", err)
	}
	if sub.Status != domain.StatusActive {
		t.Fatalf("status = %q, want active", sub.Status)
	}
	if !sub.SubscribedAt.Equal(now) {
		t.Fatalf("subscribed_at = %v, want clock time", sub.SubscribedAt)
	}

	subscribed, err = svc.Toggle(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if subscribed {
		t.Fatal("second toggle should unsubscribe")
	}
	if _, err := store.FindByUserAndSession(context.Background(), 2, 10); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("subscription still present after unsubscribe: %v", err)
	}
}

func TestToggleRoundTripIsClean(t *testing.T) {
	t.Parallel()
	store := newFakeSubscriptionStore()
	svc := service.NewSubscriptionService(fixedClock{now: time.Now()}, store)

	for i := 0; i < 3; i++ {
		if _, err := svc.Toggle(context.Background(), 5, 20); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		if _, err := svc.Toggle(context.Background(), 5, 20); err != nil {
			t.Fatalf("toggle back %d: %v", i, err)
		}
	}
	if len(store.subs) != 0 {
		t.Fatalf("leftover rows after round trips: %d", len(store.subs))
	}
}

func TestMarkCompleteRequiresSubscription(t *testing.T) {
	t.Parallel()
	svc := service.NewSubscriptionService(fixedClock{now: time.Now()}, newFakeSubscriptionStore())

	_, err := svc.MarkComplete(context.Background(), 2, 10)
	if !errors.Is(err, apperrors.ErrNotSubscribed) {
		t.Fatalf("err = %v, want ErrNotSubscribed", err)
	}
}

func TestMarkCompleteSetsTimestampOnce(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 28, 18, 30, 0, 0, time.UTC)
	store := newFakeSubscriptionStore()
	svc := service.NewSubscriptionService(fixedClock{now: now}, store)

	if _, err := svc.Toggle(context.Background(), 2, 10); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	sub, err := svc.MarkComplete(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	if !sub.CompletedAt.Equal(now) {
		t.Fatalf("completed_at = %v, want clock time", sub.CompletedAt)
	}
	if sub.Status != domain.StatusCompleted {
		t.Fatalf("status = %q, want completed", sub.Status)
	}

	if _, err := svc.MarkComplete(context.Background(), 2, 10); !errors.Is(err, apperrors.ErrAlreadyCompleted) {
		t.Fatalf("second mark err = %v, want ErrAlreadyCompleted", err)
	}
}
