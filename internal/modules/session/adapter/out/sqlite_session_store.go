package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	rosterdomain "courtside/internal/modules/roster/domain"
	"courtside/internal/modules/session/domain"
	sessionout "courtside/internal/modules/session/port/out"
	apperrors "courtside/internal/platform/errors"
)

const sessionColumns = `id, title, description, scheduled_date, scheduled_time,
duration_minutes, skill_level, created_by, created_at, updated_at`

type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(db *sql.DB) (sessionout.SessionStore, error) {
	store := &SQLiteSessionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  description TEXT,
  scheduled_date TEXT,
  scheduled_time TEXT,
  duration_minutes INTEGER,
  skill_level TEXT,
  created_by INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (created_by) REFERENCES users(id)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

// Newest scheduled first, creation time breaking ties. ISO date strings sort
// correctly without parsing.
const sessionOrder = ` ORDER BY scheduled_date DESC, created_at DESC`

func (s *SQLiteSessionStore) ListAll(ctx context.Context) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+sessionColumns+` FROM sessions`+sessionOrder)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return collectSessions(rows)
}

func (s *SQLiteSessionStore) ListByCoach(ctx context.Context, coachID int64) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE created_by = ?`+sessionOrder, coachID)
	if err != nil {
		return nil, fmt.Errorf("list sessions for coach %d: %w", coachID, err)
	}
	return collectSessions(rows)
}

func (s *SQLiteSessionStore) FindByID(ctx context.Context, id int64) (domain.Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("find session %d: %w", id, err)
	}
	return session, nil
}

func (s *SQLiteSessionStore) Create(ctx context.Context, session domain.Session) (int64, error) {
	const stmt = `
INSERT INTO sessions (title, description, scheduled_date, scheduled_time,
                      duration_minutes, skill_level, created_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, stmt,
		session.Title,
		nullString(session.Description),
		nullString(session.ScheduledDate),
		nullString(session.ScheduledTime),
		nullInt(session.DurationMinutes),
		nullString(string(session.SkillLevel)),
		session.CreatedBy,
		session.CreatedAt.Format(time.RFC3339),
		session.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteSessionStore) Update(ctx context.Context, session domain.Session) error {
	const stmt = `
UPDATE sessions
SET title = ?, description = ?, scheduled_date = ?, scheduled_time = ?,
    duration_minutes = ?, skill_level = ?, updated_at = ?
WHERE id = ?`
	res, err := s.db.ExecContext(ctx, stmt,
		session.Title,
		nullString(session.Description),
		nullString(session.ScheduledDate),
		nullString(session.ScheduledTime),
		nullInt(session.DurationMinutes),
		nullString(string(session.SkillLevel)),
		session.UpdatedAt.Format(time.RFC3339),
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update session %d: %w", session.ID, err)
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

func (s *SQLiteSessionStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session %d: %w", id, err)
	}
	return nil
}

func collectSessions(rows *sql.Rows) ([]domain.Session, error) {
	defer rows.Close()
	var sessions []domain.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.Session, error) {
	var (
		session     domain.Session
		description sql.NullString
		date        sql.NullString
		timeOfDay   sql.NullString
		duration    sql.NullInt64
		skillLevel  sql.NullString
		createdAt   string
		updatedAt   string
	)
	err := row.Scan(&session.ID, &session.Title, &description, &date, &timeOfDay,
		&duration, &skillLevel, &session.CreatedBy, &createdAt, &updatedAt)
	if err != nil {
		return domain.Session{}, err
	}
	session.Description = description.String
	session.ScheduledDate = date.String
	session.ScheduledTime = timeOfDay.String
	session.DurationMinutes = int(duration.Int64)
	session.SkillLevel = rosterdomain.SkillLevel(skillLevel.String)
	session.CreatedAt = parseTime(createdAt)
	session.UpdatedAt = parseTime(updatedAt)
	return session, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
