// Package prefs implements the preferences service: topic selection,
// profile edits, theme toggling and data management over the store and
// notification collaborators.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/aidigest/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Store is the persistence collaborator
type Store interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile *domain.Profile) error
	ToggleTheme(ctx context.Context) (domain.Theme, error)
	GetSelectedTopics(ctx context.Context) ([]string, error)
	SaveSelectedTopics(ctx context.Context, ids []string) error
	ExportData(ctx context.Context) (string, error)
	ImportData(ctx context.Context, text string) error
	HardReset(ctx context.Context) error
}

// Notifier is the notification platform collaborator
type Notifier interface {
	Supported(ctx context.Context) (bool, error)
	Permission(ctx context.Context) (domain.PermissionState, error)
	RequestPermission(ctx context.Context) (bool, error)
}

// Catalog resolves topic ids against the static catalog
type Catalog interface {
	Get(id string) (domain.Topic, bool)
}

// user-facing failures, mapped to messages at the HTTP surface
var (
	ErrUnknownTopic             = errors.New("unknown topic")
	ErrInvalidPersona           = errors.New("unknown persona")
	ErrInvalidFrequency         = errors.New("unknown notification frequency")
	ErrNotificationsUnsupported = errors.New("notifications are not supported on this platform")
	ErrPermissionDenied         = errors.New("notification permission denied")
	ErrConfirmationMismatch     = errors.New("confirmation phrase does not match")
)

// Service coordinates the preferences screen state. It keeps a transient
// mirror of the selection and profile; the mirror always equals the last
// value written to the store. All operations are serialized by a mutex,
// an HTTP surface is not single-threaded the way a UI event loop is.
type Service struct {
	store       Store
	notifier    Notifier
	catalog     Catalog
	resetPhrase string

	mu       sync.Mutex
	selected []string
	profile  domain.Profile
}

// ServiceConfig holds configuration for Service
type ServiceConfig struct {
	Store       Store
	Notifier    Notifier
	Catalog     Catalog
	ResetPhrase string // exact confirmation required for hard reset
}

// NewService creates a preferences service; call Load before serving
func NewService(cfg ServiceConfig) *Service {
	resetPhrase := cfg.ResetPhrase
	if resetPhrase == "" {
		resetPhrase = "RESET"
	}
	return &Service{
		store:       cfg.Store,
		notifier:    cfg.Notifier,
		catalog:     cfg.Catalog,
		resetPhrase: resetPhrase,
	}
}

// Load populates the in-memory mirrors from the store
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload(ctx)
}

// reload refreshes mirrors from the store, caller holds the lock
func (s *Service) reload(ctx context.Context) error {
	profile, err := s.store.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	selected, err := s.store.GetSelectedTopics(ctx)
	if err != nil {
		return fmt.Errorf("load selected topics: %w", err)
	}
	s.profile = *profile
	s.selected = selected
	return nil
}

// SelectTopic replaces any existing selection with the singleton {id} and
// persists it immediately. Re-selecting the current topic is a no-op write
// with the same result. Unknown ids are rejected without mutation.
func (s *Service) SelectTopic(ctx context.Context, id string) error {
	if _, ok := s.catalog.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTopic, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	singleton := []string{id}
	if err := s.store.SaveSelectedTopics(ctx, singleton); err != nil {
		return fmt.Errorf("save selected topic: %w", err)
	}
	s.selected = singleton
	lgr.Printf("[INFO] topic selected: %s", id)
	return nil
}

// SelectedTopics returns the current selection mirror
func (s *Service) SelectedTopics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]string, len(s.selected))
	copy(res, s.selected)
	return res
}

// Profile returns the current profile mirror
func (s *Service) Profile() domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetPersona overlays the persona on the full profile and writes it back
func (s *Service) SetPersona(ctx context.Context, persona domain.Persona) error {
	if !persona.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPersona, persona)
	}
	return s.updateProfile(ctx, func(p *domain.Profile) { p.Persona = persona })
}

// SetCity overlays the city on the full profile and writes it back
func (s *Service) SetCity(ctx context.Context, city string) error {
	return s.updateProfile(ctx, func(p *domain.Profile) { p.City = city })
}

// SetFrequency changes the notification frequency. Any non-off value first
// needs notification permission: unsupported platforms reject the change,
// an unanswered permission triggers the provider prompt and the change
// proceeds only if granted. On rejection nothing is mutated.
func (s *Service) SetFrequency(ctx context.Context, freq domain.NotificationFrequency) error {
	if !freq.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidFrequency, freq)
	}

	if freq != domain.FrequencyOff {
		if err := s.ensurePermission(ctx); err != nil {
			return err
		}
	}
	return s.updateProfile(ctx, func(p *domain.Profile) { p.NotificationFrequency = freq })
}

// ensurePermission verifies notification support and permission,
// requesting it from the provider if not decided yet
func (s *Service) ensurePermission(ctx context.Context) error {
	supported, err := s.notifier.Supported(ctx)
	if err != nil {
		return fmt.Errorf("check notification support: %w", err)
	}
	if !supported {
		return ErrNotificationsUnsupported
	}

	state, err := s.notifier.Permission(ctx)
	if err != nil {
		return fmt.Errorf("check notification permission: %w", err)
	}

	switch state {
	case domain.PermissionGranted:
		return nil
	case domain.PermissionDenied, domain.PermissionUnsupported:
		return ErrPermissionDenied
	case domain.PermissionDefault:
		granted, err := s.notifier.RequestPermission(ctx)
		if err != nil {
			return fmt.Errorf("request notification permission: %w", err)
		}
		if !granted {
			return ErrPermissionDenied
		}
		return nil
	default:
		return fmt.Errorf("unexpected permission state %q", state)
	}
}

// updateProfile performs the read-modify-write: read the full profile,
// overlay the single change, write the full record back
func (s *Service) updateProfile(ctx context.Context, overlay func(*domain.Profile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.store.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	overlay(profile)
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	s.profile = *profile
	return nil
}

// ToggleTheme flips the theme via the store and returns the new value
func (s *Service) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	theme, err := s.store.ToggleTheme(ctx)
	if err != nil {
		return "", fmt.Errorf("toggle theme: %w", err)
	}
	s.profile.Theme = theme
	return theme, nil
}

// Export serializes the full store and names the backup file
func (s *Service) Export(ctx context.Context) (filename string, data []byte, err error) {
	text, err := s.store.ExportData(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("export data: %w", err)
	}
	filename = fmt.Sprintf("ai_digest_backup_%s.json", time.Now().UTC().Format("2006-01-02"))
	return filename, []byte(text), nil
}

// Import hands backup text to the store and refreshes the mirrors on
// success. A failed import leaves no visible state change.
func (s *Service) Import(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ImportData(ctx, text); err != nil {
		return fmt.Errorf("import data: %w", err)
	}
	if err := s.reload(ctx); err != nil {
		return fmt.Errorf("reload after import: %w", err)
	}
	lgr.Printf("[INFO] data imported, profile and selection reloaded")
	return nil
}

// HardReset destroys all persisted state. The confirmation phrase must
// match exactly; anything else rejects the reset with no mutation.
func (s *Service) HardReset(ctx context.Context, confirm string) error {
	if confirm != s.resetPhrase {
		return ErrConfirmationMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.HardReset(ctx); err != nil {
		return fmt.Errorf("hard reset: %w", err)
	}
	if err := s.reload(ctx); err != nil {
		return fmt.Errorf("reload after reset: %w", err)
	}
	lgr.Printf("[WARN] hard reset performed, all data wiped")
	return nil
}
