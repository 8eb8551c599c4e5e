package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/aidigest/pkg/domain"
)

// ProfileRepository handles profile-related database operations
type ProfileRepository struct {
	db *sqlx.DB
}

// profileSQL represents the profile row for SQL operations
type profileSQL struct {
	ID                    int64     `db:"id"`
	Persona               string    `db:"persona"`
	City                  string    `db:"city"`
	Theme                 string    `db:"theme"`
	NotificationFrequency string    `db:"notification_frequency"`
	UpdatedAt             time.Time `db:"updated_at"`
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(database *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// GetProfile retrieves the user profile
func (r *ProfileRepository) GetProfile(ctx context.Context) (*domain.Profile, error) {
	var row profileSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM profile WHERE id = 1")
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &domain.Profile{
		Persona:               domain.Persona(row.Persona),
		City:                  row.City,
		Theme:                 domain.Theme(row.Theme),
		NotificationFrequency: domain.NotificationFrequency(row.NotificationFrequency),
		UpdatedAt:             row.UpdatedAt,
	}, nil
}

// SaveProfile writes the full profile record back
func (r *ProfileRepository) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE profile
			SET persona = ?, city = ?, theme = ?, notification_frequency = ?, updated_at = datetime('now')
			WHERE id = 1
		`
		_, err := r.db.ExecContext(ctx, query,
			string(profile.Persona), profile.City, string(profile.Theme), string(profile.NotificationFrequency))
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save profile: %w", err)}
		}
		return nil
	})
}

// SetPersona updates only the persona field
func (r *ProfileRepository) SetPersona(ctx context.Context, persona domain.Persona) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := "UPDATE profile SET persona = ?, updated_at = datetime('now') WHERE id = 1"
		_, err := r.db.ExecContext(ctx, query, string(persona))
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set persona: %w", err)}
		}
		return nil
	})
}

// ToggleTheme flips the stored theme and returns the new value
func (r *ProfileRepository) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	var current string
	if err := r.db.GetContext(ctx, &current, "SELECT theme FROM profile WHERE id = 1"); err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}

	next := domain.Theme(current).Toggle()
	query := "UPDATE profile SET theme = ?, updated_at = datetime('now') WHERE id = 1"
	if _, err := r.db.ExecContext(ctx, query, string(next)); err != nil {
		return "", fmt.Errorf("toggle theme: %w", err)
	}
	return next, nil
}
