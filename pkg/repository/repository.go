// Package repository implements the SQLite-backed preferences store.
package repository

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/umputun/aidigest/pkg/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories contains all repository instances
type Repositories struct {
	Profile   *ProfileRepository
	Selection *SelectionRepository
	DB        *sqlx.DB
}

// NewRepositories creates all repositories with a shared database connection
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:aidigest.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// optimize SQLite settings
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	// initialize schema
	if err := initSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	repos := &Repositories{
		Profile:   NewProfileRepository(db),
		Selection: NewSelectionRepository(db),
		DB:        db,
	}
	return repos, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// GetProfile forwards to the profile repository
func (r *Repositories) GetProfile(ctx context.Context) (*domain.Profile, error) {
	return r.Profile.GetProfile(ctx)
}

// SaveProfile forwards to the profile repository
func (r *Repositories) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	return r.Profile.SaveProfile(ctx, profile)
}

// ToggleTheme forwards to the profile repository
func (r *Repositories) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	return r.Profile.ToggleTheme(ctx)
}

// GetSelectedTopics forwards to the selection repository
func (r *Repositories) GetSelectedTopics(ctx context.Context) ([]string, error) {
	return r.Selection.GetSelectedTopics(ctx)
}

// SaveSelectedTopics forwards to the selection repository
func (r *Repositories) SaveSelectedTopics(ctx context.Context, ids []string) error {
	return r.Selection.SaveSelectedTopics(ctx, ids)
}

// backup is the serialized form of the full store
type backup struct {
	Version        int           `json:"version"`
	ExportedAt     time.Time     `json:"exported_at"`
	Profile        backupProfile `json:"profile"`
	SelectedTopics []string      `json:"selected_topics"`
}

// backupProfile mirrors domain.Profile with stable json field names
type backupProfile struct {
	Persona               string `json:"persona"`
	City                  string `json:"city"`
	Theme                 string `json:"theme"`
	NotificationFrequency string `json:"notification_frequency"`
}

const backupVersion = 1

// ExportData serializes the full store to JSON text
func (r *Repositories) ExportData(ctx context.Context) (string, error) {
	profile, err := r.Profile.GetProfile(ctx)
	if err != nil {
		return "", fmt.Errorf("export profile: %w", err)
	}
	selected, err := r.Selection.GetSelectedTopics(ctx)
	if err != nil {
		return "", fmt.Errorf("export selected topics: %w", err)
	}
	if selected == nil {
		selected = []string{}
	}

	b := backup{
		Version:    backupVersion,
		ExportedAt: time.Now().UTC(),
		Profile: backupProfile{
			Persona:               string(profile.Persona),
			City:                  profile.City,
			Theme:                 string(profile.Theme),
			NotificationFrequency: string(profile.NotificationFrequency),
		},
		SelectedTopics: selected,
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal backup: %w", err)
	}
	return string(data), nil
}

// ImportData parses backup text and replaces the store contents.
// Malformed or invalid input fails before anything is written.
func (r *Repositories) ImportData(ctx context.Context, text string) error {
	var b backup
	if err := json.Unmarshal([]byte(text), &b); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}

	profile := domain.Profile{
		Persona:               domain.Persona(b.Profile.Persona),
		City:                  b.Profile.City,
		Theme:                 domain.Theme(b.Profile.Theme),
		NotificationFrequency: domain.NotificationFrequency(b.Profile.NotificationFrequency),
	}
	if !profile.Persona.Valid() {
		return fmt.Errorf("invalid persona %q in backup", b.Profile.Persona)
	}
	if !profile.Theme.Valid() {
		return fmt.Errorf("invalid theme %q in backup", b.Profile.Theme)
	}
	if !profile.NotificationFrequency.Valid() {
		return fmt.Errorf("invalid notification frequency %q in backup", b.Profile.NotificationFrequency)
	}
	if len(b.SelectedTopics) > 1 {
		return fmt.Errorf("backup has %d selected topics, at most one allowed", len(b.SelectedTopics))
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
		UPDATE profile
		SET persona = ?, city = ?, theme = ?, notification_frequency = ?, updated_at = datetime('now')
		WHERE id = 1
	`
	if _, err := tx.ExecContext(ctx, query,
		string(profile.Persona), profile.City, string(profile.Theme), string(profile.NotificationFrequency)); err != nil {
		return fmt.Errorf("import profile: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM selected_topics"); err != nil {
		return fmt.Errorf("clear selected topics: %w", err)
	}
	for _, id := range b.SelectedTopics {
		if _, err := tx.ExecContext(ctx, "INSERT INTO selected_topics (topic_id) VALUES (?)", id); err != nil {
			return fmt.Errorf("import selected topic %q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// HardReset wipes all persisted state back to initial defaults. Irreversible.
func (r *Repositories) HardReset(ctx context.Context) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM selected_topics"); err != nil {
		return fmt.Errorf("reset selected topics: %w", err)
	}

	def := domain.DefaultProfile()
	query := `
		UPDATE profile
		SET persona = ?, city = ?, theme = ?, notification_frequency = ?, updated_at = datetime('now')
		WHERE id = 1
	`
	if _, err := tx.ExecContext(ctx, query,
		string(def.Persona), def.City, string(def.Theme), string(def.NotificationFrequency)); err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
