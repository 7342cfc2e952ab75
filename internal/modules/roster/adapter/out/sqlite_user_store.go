package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"courtside/internal/modules/roster/domain"
	rosterout "courtside/internal/modules/roster/port/out"
	apperrors "courtside/internal/platform/errors"
)

type SQLiteUserStore struct {
	db *sql.DB
}

func NewSQLiteUserStore(db *sql.DB) (rosterout.UserStore, error) {
	store := &SQLiteUserStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteUserStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT UNIQUE NOT NULL,
  display_name TEXT NOT NULL,
  role TEXT NOT NULL CHECK(role IN ('coach', 'player')),
  skill_level TEXT CHECK(skill_level IN ('beginner', 'intermediate', 'advanced')),
  goals TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (s *SQLiteUserStore) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	const query = `
SELECT id, username, display_name, role, skill_level, goals, created_at, updated_at
FROM users WHERE username = ?`
	user, err := scanUser(s.db.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("find user %s: %w", username, err)
	}
	return user, nil
}

func (s *SQLiteUserStore) List(ctx context.Context) ([]domain.User, error) {
	const query = `
SELECT id, username, display_name, role, skill_level, goals, created_at, updated_at
FROM users ORDER BY username ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *SQLiteUserStore) Create(ctx context.Context, user domain.User) (int64, error) {
	const stmt = `
INSERT INTO users (username, display_name, role, skill_level, goals, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, stmt,
		user.Username,
		user.DisplayName,
		string(user.Role),
		nullString(string(user.SkillLevel)),
		nullString(user.Goals),
		user.CreatedAt.Format(time.RFC3339),
		user.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		user       domain.User
		role       string
		skillLevel sql.NullString
		goals      sql.NullString
		createdAt  string
		updatedAt  string
	)
	err := row.Scan(&user.ID, &user.Username, &user.DisplayName, &role, &skillLevel, &goals, &createdAt, &updatedAt)
	if err != nil {
		return domain.User{}, err
	}
	user.Role = domain.Role(role)
	user.SkillLevel = domain.SkillLevel(skillLevel.String)
	user.Goals = goals.String
	user.CreatedAt = parseTime(createdAt)
	user.UpdatedAt = parseTime(updatedAt)
	return user, nil
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
