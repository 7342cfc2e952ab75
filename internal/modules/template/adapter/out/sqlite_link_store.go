package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"courtside/internal/modules/template/domain"
	templateout "courtside/internal/modules/template/port/out"
)

type SQLiteLinkStore struct {
	db *sql.DB
}

func NewSQLiteLinkStore(db *sql.DB) (templateout.LinkStore, error) {
	store := &SQLiteLinkStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteLinkStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS session_training_links (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id INTEGER NOT NULL,
  template_id INTEGER NOT NULL,
  order_index INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE,
  FOREIGN KEY (template_id) REFERENCES training_templates(id) ON DELETE CASCADE
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create session_training_links table: %w", err)
	}
	return nil
}

func (s *SQLiteLinkStore) Insert(ctx context.Context, link domain.SessionTrainingLink) (int64, error) {
	const stmt = `
INSERT INTO session_training_links (session_id, template_id, order_index, created_at)
VALUES (?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, stmt,
		link.SessionID, link.TemplateID, link.OrderIndex,
		link.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert session training link: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteLinkStore) ListBySession(ctx context.Context, sessionID int64) ([]domain.SessionTrainingLink, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, template_id, order_index, created_at
FROM session_training_links WHERE session_id = ? ORDER BY order_index`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list links for session %d: %w", sessionID, err)
	}
	defer rows.Close()
	var links []domain.SessionTrainingLink
	for rows.Next() {
		var (
			link      domain.SessionTrainingLink
			createdAt string
		)
		if err := rows.Scan(&link.ID, &link.SessionID, &link.TemplateID, &link.OrderIndex, &createdAt); err != nil {
			return nil, fmt.Errorf("scan session training link: %w", err)
		}
		link.CreatedAt = parseTime(createdAt)
		links = append(links, link)
	}
	return links, rows.Err()
}

func (s *SQLiteLinkStore) CountBySession(ctx context.Context, sessionID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM session_training_links WHERE session_id = ?`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count links for session %d: %w", sessionID, err)
	}
	return count, nil
}

func (s *SQLiteLinkStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_training_links WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session training link %d: %w", id, err)
	}
	return nil
}

func (s *SQLiteLinkStore) DeleteByTemplate(ctx context.Context, templateID int64) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM session_training_links WHERE template_id = ?`, templateID); err != nil {
		return fmt.Errorf("delete links for template %d: %w", templateID, err)
	}
	return nil
}
