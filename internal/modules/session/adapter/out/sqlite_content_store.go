package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courtside/internal/modules/session/domain"
	sessionout "courtside/internal/modules/session/port/out"
	apperrors "courtside/internal/platform/errors"
)

const contentColumns = `id, session_id, content_type, title, description, duration_minutes, order_index`

type SQLiteContentStore struct {
	db *sql.DB
}

func NewSQLiteContentStore(db *sql.DB) (sessionout.ContentStore, error) {
	store := &SQLiteContentStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteContentStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS training_content (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id INTEGER NOT NULL,
  content_type TEXT NOT NULL CHECK(content_type IN ('drill', 'exercise', 'warmup', 'cooldown')),
  title TEXT NOT NULL,
  description TEXT,
  duration_minutes INTEGER,
  order_index INTEGER NOT NULL,
  FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create training_content table: %w", err)
	}
	return nil
}

func (s *SQLiteContentStore) ListBySession(ctx context.Context, sessionID int64) ([]domain.TrainingContent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+contentColumns+` FROM training_content WHERE session_id = ? ORDER BY order_index ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("list content for session %d: %w", sessionID, err)
	}
	defer rows.Close()

	var items []domain.TrainingContent
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteContentStore) FindByID(ctx context.Context, id int64) (domain.TrainingContent, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+contentColumns+` FROM training_content WHERE id = ?`, id)
	item, err := scanContent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TrainingContent{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.TrainingContent{}, fmt.Errorf("find content %d: %w", id, err)
	}
	return item, nil
}

func (s *SQLiteContentStore) CountBySession(ctx context.Context, sessionID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM training_content WHERE session_id = ?`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count content for session %d: %w", sessionID, err)
	}
	return count, nil
}

func (s *SQLiteContentStore) Create(ctx context.Context, content domain.TrainingContent) (int64, error) {
	const stmt = `
INSERT INTO training_content (session_id, content_type, title, description, duration_minutes, order_index)
VALUES (?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, stmt,
		content.SessionID,
		string(content.Type),
		content.Title,
		nullString(content.Description),
		nullInt(content.DurationMinutes),
		content.OrderIndex,
	)
	if err != nil {
		return 0, fmt.Errorf("insert content: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteContentStore) Update(ctx context.Context, content domain.TrainingContent) error {
	const stmt = `
UPDATE training_content
SET content_type = ?, title = ?, description = ?, duration_minutes = ?, order_index = ?
WHERE id = ?`
	res, err := s.db.ExecContext(ctx, stmt,
		string(content.Type),
		content.Title,
		nullString(content.Description),
		nullInt(content.DurationMinutes),
		content.OrderIndex,
		content.ID,
	)
	if err != nil {
		return fmt.Errorf("update content %d: %w", content.ID, err)
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

func (s *SQLiteContentStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM training_content WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete content %d: %w", id, err)
	}
	return nil
}

func (s *SQLiteContentStore) DeleteBySession(ctx context.Context, sessionID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM training_content WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete content for session %d: %w", sessionID, err)
	}
	return nil
}

func scanContent(row rowScanner) (domain.TrainingContent, error) {
	var (
		item        domain.TrainingContent
		contentType string
		description sql.NullString
		duration    sql.NullInt64
	)
	err := row.Scan(&item.ID, &item.SessionID, &contentType, &item.Title, &description, &duration, &item.OrderIndex)
	if err != nil {
		return domain.TrainingContent{}, err
	}
	item.Type = domain.ContentType(contentType)
	item.Description = description.String
	item.DurationMinutes = int(duration.Int64)
	return item, nil
}
