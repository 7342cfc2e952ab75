package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	rosterdomain "courtside/internal/modules/roster/domain"
	sessiondomain "courtside/internal/modules/session/domain"
	"courtside/internal/modules/template/domain"
	templateout "courtside/internal/modules/template/port/out"
	apperrors "courtside/internal/platform/errors"
)

const templateColumns = `id, title, description, content_type, duration_minutes, skill_level, created_by, created_at`

type SQLiteTemplateStore struct {
	db *sql.DB
}

func NewSQLiteTemplateStore(db *sql.DB) (templateout.TemplateStore, error) {
	store := &SQLiteTemplateStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteTemplateStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS training_templates (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  description TEXT,
  content_type TEXT NOT NULL CHECK(content_type IN ('drill', 'exercise', 'warmup', 'cooldown')),
  duration_minutes INTEGER,
  skill_level TEXT CHECK(skill_level IN ('beginner', 'intermediate', 'advanced')),
  created_by INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (created_by) REFERENCES users(id)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create training_templates table: %w", err)
	}
	return nil
}

func (s *SQLiteTemplateStore) Insert(ctx context.Context, template domain.TrainingTemplate) (int64, error) {
	const stmt = `
INSERT INTO training_templates (title, description, content_type, duration_minutes, skill_level, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, stmt,
		template.Title,
		nullString(template.Description),
		string(template.Type),
		nullInt(template.DurationMinutes),
		nullString(string(template.SkillLevel)),
		template.CreatedBy,
		template.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert training template: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteTemplateStore) FindByID(ctx context.Context, id int64) (domain.TrainingTemplate, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+templateColumns+` FROM training_templates WHERE id = ?`, id)
	template, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TrainingTemplate{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.TrainingTemplate{}, fmt.Errorf("find training template %d: %w", id, err)
	}
	return template, nil
}

func (s *SQLiteTemplateStore) List(ctx context.Context) ([]domain.TrainingTemplate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+templateColumns+` FROM training_templates ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list training templates: %w", err)
	}
	defer rows.Close()
	var templates []domain.TrainingTemplate
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan training template: %w", err)
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}

func (s *SQLiteTemplateStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM training_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete training template %d: %w", id, err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (domain.TrainingTemplate, error) {
	var (
		template    domain.TrainingTemplate
		description sql.NullString
		contentType string
		duration    sql.NullInt64
		skillLevel  sql.NullString
		createdAt   string
	)
	err := row.Scan(&template.ID, &template.Title, &description, &contentType,
		&duration, &skillLevel, &template.CreatedBy, &createdAt)
	if err != nil {
		return domain.TrainingTemplate{}, err
	}
	template.Description = description.String
	template.Type = sessiondomain.ContentType(contentType)
	template.DurationMinutes = int(duration.Int64)
	template.SkillLevel = rosterdomain.SkillLevel(skillLevel.String)
	template.CreatedAt = parseTime(createdAt)
	return template, nil
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
