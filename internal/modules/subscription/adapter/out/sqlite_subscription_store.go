package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"courtside/internal/modules/subscription/domain"
	subscriptionout "courtside/internal/modules/subscription/port/out"
	apperrors "courtside/internal/platform/errors"
)

const subscriptionColumns = `id, user_id, session_id, subscribed_at, completed_at, status, notes`

type SQLiteSubscriptionStore struct {
	db *sql.DB
}

func NewSQLiteSubscriptionStore(db *sql.DB) (subscriptionout.SubscriptionStore, error) {
	store := &SQLiteSubscriptionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSubscriptionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS subscriptions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  session_id INTEGER NOT NULL,
  subscribed_at TEXT NOT NULL,
  completed_at TEXT,
  status TEXT NOT NULL DEFAULT 'active' CHECK(status IN ('active', 'completed', 'cancelled')),
  notes TEXT,
  FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
  FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE,
  UNIQUE(user_id, session_id)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create subscriptions table: %w", err)
	}
	return nil
}

func (s *SQLiteSubscriptionStore) Create(ctx context.Context, sub domain.Subscription) (int64, error) {
	const stmt = `
INSERT INTO subscriptions (user_id, session_id, subscribed_at, status, notes)
VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, stmt,
		sub.UserID,
		sub.SessionID,
		sub.SubscribedAt.Format(time.RFC3339),
		string(sub.Status),
		nullString(sub.Notes),
	)
	if err != nil {
		return 0, fmt.Errorf("insert subscription: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteSubscriptionStore) FindByUserAndSession(ctx context.Context, userID, sessionID int64) (domain.Subscription, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE user_id = ? AND session_id = ?`,
		userID, sessionID)
	sub, err := scanSubscription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Subscription{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Subscription{}, fmt.Errorf("find subscription user=%d session=%d: %w", userID, sessionID, err)
	}
	return sub, nil
}

func (s *SQLiteSubscriptionStore) ListByUser(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE user_id = ? ORDER BY subscribed_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions for user %d: %w", userID, err)
	}
	return collectSubscriptions(rows)
}

func (s *SQLiteSubscriptionStore) ListBySession(ctx context.Context, sessionID int64) ([]domain.Subscription, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE session_id = ? ORDER BY subscribed_at DESC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions for session %d: %w", sessionID, err)
	}
	return collectSubscriptions(rows)
}

func (s *SQLiteSubscriptionStore) MarkCompleted(ctx context.Context, id int64, at time.Time) error {
	const stmt = `UPDATE subscriptions SET completed_at = ?, status = 'completed' WHERE id = ?`
	res, err := s.db.ExecContext(ctx, stmt, at.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("mark subscription %d completed: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *SQLiteSubscriptionStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete subscription %d: %w", id, err)
	}
	return nil
}

func (s *SQLiteSubscriptionStore) DeleteByUserAndSession(ctx context.Context, userID, sessionID int64) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM subscriptions WHERE user_id = ? AND session_id = ?`, userID, sessionID); err != nil {
		return fmt.Errorf("delete subscription user=%d session=%d: %w", userID, sessionID, err)
	}
	return nil
}

func collectSubscriptions(rows *sql.Rows) ([]domain.Subscription, error) {
	defer rows.Close()
	var subs []domain.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (domain.Subscription, error) {
	var (
		sub          domain.Subscription
		subscribedAt string
		completedAt  sql.NullString
		status       string
		notes        sql.NullString
	)
	err := row.Scan(&sub.ID, &sub.UserID, &sub.SessionID, &subscribedAt, &completedAt, &status, &notes)
	if err != nil {
		return domain.Subscription{}, err
	}
	sub.SubscribedAt = parseTime(subscribedAt)
	if completedAt.Valid {
		sub.CompletedAt = parseTime(completedAt.String)
	}
	sub.Status = domain.Status(status)
	sub.Notes = notes.String
	return sub, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
