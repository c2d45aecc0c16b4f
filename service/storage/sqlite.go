// Package storage persists release history in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.relctl/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func (s *service) SaveRelease(ctx context.Context, input SaveReleaseInput) (int64, error) {
	if input.Version == "" {
		return 0, errors.New("version is required")
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO releases (
			version, next_version, auditors, duration_sec, step_count, cli_version
		) VALUES (?, ?, ?, ?, ?, ?)
	`, input.Version, input.NextVersion, input.Auditors, input.DurationSec, input.StepCount, input.CLIVersion)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *service) GetRecentReleases(limit int) ([]ReleaseSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT release_id, version, next_version, auditors, duration_sec, step_count,
		       COALESCE(cli_version, ''), released_at
		FROM releases
		ORDER BY released_at DESC, release_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var releases []ReleaseSummary
	for rows.Next() {
		var r ReleaseSummary
		if err := rows.Scan(&r.ReleaseID, &r.Version, &r.NextVersion, &r.Auditors,
			&r.DurationSec, &r.StepCount, &r.CLIVersion, &r.ReleasedAt); err != nil {
			return nil, err
		}
		releases = append(releases, r)
	}
	return releases, rows.Err()
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM releases
		WHERE released_at < datetime('now', ?)
	`, fmt.Sprintf("-%d days", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) Close() error {
	return s.db.Close()
}
