package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"issuegrip/internal/domain"
)

// Store is the sqlite-backed issue database. It implements the mutation
// API the bulk action bar dispatches against: every bulk method takes the
// full id snapshot and applies one batched statement.
type Store struct {
	db *sql.DB
}

// Open opens (and bootstraps) the issue database at path
func Open(ctx context.Context, path string) (*Store, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL enables one writer + many readers; busy_timeout helps avoid
	// "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS issues (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			body        TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL DEFAULT 'backlog',
			sprint      TEXT NOT NULL DEFAULT '',
			created_at  INTEGER NOT NULL,
			updated_at  INTEGER NOT NULL,
			archived_at INTEGER,
			deleted_at  INTEGER
		);`,
		`CREATE INDEX IF NOT EXISTS idx_issues_sprint ON issues(sprint);`,
		`CREATE INDEX IF NOT EXISTS idx_issues_deleted ON issues(deleted_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// CreateIssue inserts a new issue and returns it
func (s *Store) CreateIssue(ctx context.Context, title, body string, status domain.Status, sprint string) (*domain.Issue, error) {
	now := time.Now().UTC()
	issue := &domain.Issue{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		Status:    status,
		Sprint:    sprint,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO issues (id, title, body, status, sprint, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		issue.ID, issue.Title, issue.Body, string(issue.Status), issue.Sprint,
		now.Unix(), now.Unix())
	if err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}
	return issue, nil
}

// GetIssue loads a single issue by id
func (s *Store) GetIssue(ctx context.Context, id string) (*domain.Issue, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, body, status, sprint, created_at, updated_at, archived_at, deleted_at
		 FROM issues WHERE id = ?`, id)
	issue, err := scanIssue(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("issue %s not found", id)
	}
	return issue, err
}

// ListIssues loads every issue, including archived and trashed ones; the
// query service decides per-tab visibility.
func (s *Store) ListIssues(ctx context.Context) ([]*domain.Issue, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, body, status, sprint, created_at, updated_at, archived_at, deleted_at
		 FROM issues`)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	var issues []*domain.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanIssue(row rowScanner) (*domain.Issue, error) {
	var (
		issue                 domain.Issue
		status                string
		created, updated      int64
		archivedAt, deletedAt sql.NullInt64
	)
	err := row.Scan(&issue.ID, &issue.Title, &issue.Body, &status, &issue.Sprint,
		&created, &updated, &archivedAt, &deletedAt)
	if err != nil {
		return nil, err
	}
	issue.Status = domain.Status(status)
	issue.CreatedAt = time.Unix(created, 0).UTC()
	issue.UpdatedAt = time.Unix(updated, 0).UTC()
	if archivedAt.Valid {
		t := time.Unix(archivedAt.Int64, 0).UTC()
		issue.ArchivedAt = &t
	}
	if deletedAt.Valid {
		t := time.Unix(deletedAt.Int64, 0).UTC()
		issue.DeletedAt = &t
	}
	return &issue, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func idArgs(ids []string, extra ...interface{}) []interface{} {
	args := append([]interface{}{}, extra...)
	for _, id := range ids {
		args = append(args, id)
	}
	return args
}

// UpdateMany applies a patch to all given issues in one statement
func (s *Store) UpdateMany(ctx context.Context, ids []string, patch domain.IssuePatch) error {
	if len(ids) == 0 {
		return nil
	}
	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UTC().Unix()}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.Sprint != nil {
		sets = append(sets, "sprint = ?")
		args = append(args, *patch.Sprint)
	}
	query := fmt.Sprintf("UPDATE issues SET %s WHERE id IN (%s)",
		strings.Join(sets, ", "), placeholders(len(ids)))
	for _, id := range ids {
		args = append(args, id)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update issues: %w", err)
	}
	return nil
}

// ArchiveMany stamps the given issues as archived
func (s *Store) ArchiveMany(ctx context.Context, ids []string) error {
	return s.stampMany(ctx, ids, "archived_at", true)
}

// UnarchiveMany clears the archive stamp; the undo path for ArchiveMany
func (s *Store) UnarchiveMany(ctx context.Context, ids []string) error {
	return s.stampMany(ctx, ids, "archived_at", false)
}

// SoftDeleteMany moves the given issues to the trash
func (s *Store) SoftDeleteMany(ctx context.Context, ids []string) error {
	return s.stampMany(ctx, ids, "deleted_at", true)
}

// RestoreMany brings issues back from the trash; the undo path for
// SoftDeleteMany
func (s *Store) RestoreMany(ctx context.Context, ids []string) error {
	return s.stampMany(ctx, ids, "deleted_at", false)
}

func (s *Store) stampMany(ctx context.Context, ids []string, column string, set bool) error {
	if len(ids) == 0 {
		return nil
	}
	now := time.Now().UTC().Unix()
	var stamp interface{}
	if set {
		stamp = now
	}
	query := fmt.Sprintf("UPDATE issues SET %s = ?, updated_at = ? WHERE id IN (%s)",
		column, placeholders(len(ids)))
	if _, err := s.db.ExecContext(ctx, query, idArgs(ids, stamp, now)...); err != nil {
		return fmt.Errorf("stamp %s: %w", column, err)
	}
	return nil
}

// Count returns the total number of issues, trashed ones included
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM issues`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count issues: %w", err)
	}
	return n, nil
}
