package prefs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/aidigest/pkg/catalog"
	"github.com/umputun/aidigest/pkg/domain"
	"github.com/umputun/aidigest/pkg/prefs/mocks"
)

// memStore is a StoreMock wired to a live in-memory state, it keeps the
// mock call records while behaving like a real store
func memStore() (*mocks.StoreMock, *domain.Profile, *[]string) {
	profile := domain.DefaultProfile()
	selected := []string{}

	store := &mocks.StoreMock{
		GetProfileFunc: func(ctx context.Context) (*domain.Profile, error) {
			p := profile
			return &p, nil
		},
		SaveProfileFunc: func(ctx context.Context, p *domain.Profile) error {
			profile = *p
			return nil
		},
		ToggleThemeFunc: func(ctx context.Context) (domain.Theme, error) {
			profile.Theme = profile.Theme.Toggle()
			return profile.Theme, nil
		},
		GetSelectedTopicsFunc: func(ctx context.Context) ([]string, error) {
			res := make([]string, len(selected))
			copy(res, selected)
			return res, nil
		},
		SaveSelectedTopicsFunc: func(ctx context.Context, ids []string) error {
			selected = append([]string{}, ids...)
			return nil
		},
		HardResetFunc: func(ctx context.Context) error {
			profile = domain.DefaultProfile()
			selected = []string{}
			return nil
		},
	}
	return store, &profile, &selected
}

func grantedNotifier() *mocks.NotifierMock {
	return &mocks.NotifierMock{
		SupportedFunc: func(ctx context.Context) (bool, error) { return true, nil },
		PermissionFunc: func(ctx context.Context) (domain.PermissionState, error) {
			return domain.PermissionGranted, nil
		},
	}
}

func newTestService(t *testing.T, store Store, notifier Notifier) *Service {
	cat, err := catalog.Load()
	require.NoError(t, err)

	svc := NewService(ServiceConfig{Store: store, Notifier: notifier, Catalog: cat, ResetPhrase: "RESET"})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestService_SelectTopic(t *testing.T) {
	t.Run("selecting B after A leaves only B", func(t *testing.T) {
		store, _, selected := memStore()
		svc := newTestService(t, store, grantedNotifier())

		require.NoError(t, svc.SelectTopic(context.Background(), "ai"))
		require.NoError(t, svc.SelectTopic(context.Background(), "space"))

		assert.Equal(t, []string{"space"}, svc.SelectedTopics())
		assert.Equal(t, []string{"space"}, *selected, "store must hold the same singleton")

		// every write was a singleton, never an accumulated set
		for _, call := range store.SaveSelectedTopicsCalls() {
			assert.Len(t, call.Ids, 1)
		}
	})

	t.Run("selecting the same topic twice is idempotent", func(t *testing.T) {
		store, _, _ := memStore()
		svc := newTestService(t, store, grantedNotifier())

		require.NoError(t, svc.SelectTopic(context.Background(), "ai"))
		require.NoError(t, svc.SelectTopic(context.Background(), "ai"))

		assert.Equal(t, []string{"ai"}, svc.SelectedTopics())
		assert.Len(t, store.SaveSelectedTopicsCalls(), 2, "each select persists immediately")
	})

	t.Run("unknown topic rejected without mutation", func(t *testing.T) {
		store, _, _ := memStore()
		svc := newTestService(t, store, grantedNotifier())

		err := svc.SelectTopic(context.Background(), "astrology")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownTopic)
		assert.Empty(t, svc.SelectedTopics())
		assert.Empty(t, store.SaveSelectedTopicsCalls())
	})

	t.Run("store failure keeps the mirror unchanged", func(t *testing.T) {
		store, _, _ := memStore()
		svc := newTestService(t, store, grantedNotifier())
		require.NoError(t, svc.SelectTopic(context.Background(), "ai"))

		store.SaveSelectedTopicsFunc = func(ctx context.Context, ids []string) error {
			return fmt.Errorf("disk full")
		}
		err := svc.SelectTopic(context.Background(), "space")
		require.Error(t, err)
		assert.Equal(t, []string{"ai"}, svc.SelectedTopics(), "mirror equals last successful write")
	})
}

func TestService_SetCity(t *testing.T) {
	store, profile, _ := memStore()
	svc := newTestService(t, store, grantedNotifier())

	// set some non-default values first
	require.NoError(t, svc.SetPersona(context.Background(), domain.PersonaDeepDive))
	_, err := svc.ToggleTheme(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.SetCity(context.Background(), "Hamburg"))

	assert.Equal(t, "Hamburg", profile.City)
	assert.Equal(t, domain.PersonaDeepDive, profile.Persona, "city edit must not alter persona")
	assert.Equal(t, domain.ThemeDark, profile.Theme, "city edit must not alter theme")
	assert.Equal(t, domain.FrequencyOff, profile.NotificationFrequency, "city edit must not alter frequency")

	// the write carried the full profile record
	calls := store.SaveProfileCalls()
	require.NotEmpty(t, calls)
	last := calls[len(calls)-1]
	assert.Equal(t, "Hamburg", last.Profile.City)
	assert.Equal(t, domain.PersonaDeepDive, last.Profile.Persona)
}

func TestService_SetPersona(t *testing.T) {
	store, profile, _ := memStore()
	svc := newTestService(t, store, grantedNotifier())

	require.NoError(t, svc.SetPersona(context.Background(), domain.PersonaHeadlines))
	assert.Equal(t, domain.PersonaHeadlines, profile.Persona)
	assert.Equal(t, domain.PersonaHeadlines, svc.Profile().Persona)

	t.Run("invalid persona rejected", func(t *testing.T) {
		err := svc.SetPersona(context.Background(), "prophet")
		assert.ErrorIs(t, err, ErrInvalidPersona)
		assert.Equal(t, domain.PersonaHeadlines, profile.Persona)
	})
}

func TestService_SetFrequency(t *testing.T) {
	t.Run("granted permission allows non-off frequency", func(t *testing.T) {
		store, profile, _ := memStore()
		svc := newTestService(t, store, grantedNotifier())

		require.NoError(t, svc.SetFrequency(context.Background(), domain.FrequencyDaily))
		assert.Equal(t, domain.FrequencyDaily, profile.NotificationFrequency)
	})

	t.Run("unsupported platform rejects without mutation", func(t *testing.T) {
		store, profile, _ := memStore()
		notifier := &mocks.NotifierMock{
			SupportedFunc: func(ctx context.Context) (bool, error) { return false, nil },
		}
		svc := newTestService(t, store, notifier)

		err := svc.SetFrequency(context.Background(), domain.FrequencyDaily)
		assert.ErrorIs(t, err, ErrNotificationsUnsupported)
		assert.Equal(t, domain.FrequencyOff, profile.NotificationFrequency)
		assert.Empty(t, store.SaveProfileCalls())
	})

	t.Run("denied permission rejects without mutation", func(t *testing.T) {
		store, profile, _ := memStore()
		notifier := &mocks.NotifierMock{
			SupportedFunc: func(ctx context.Context) (bool, error) { return true, nil },
			PermissionFunc: func(ctx context.Context) (domain.PermissionState, error) {
				return domain.PermissionDenied, nil
			},
		}
		svc := newTestService(t, store, notifier)

		err := svc.SetFrequency(context.Background(), domain.FrequencyWeekly)
		assert.ErrorIs(t, err, ErrPermissionDenied)
		assert.Equal(t, domain.FrequencyOff, profile.NotificationFrequency)
	})

	t.Run("undecided permission triggers prompt and proceeds when granted", func(t *testing.T) {
		store, profile, _ := memStore()
		notifier := &mocks.NotifierMock{
			SupportedFunc: func(ctx context.Context) (bool, error) { return true, nil },
			PermissionFunc: func(ctx context.Context) (domain.PermissionState, error) {
				return domain.PermissionDefault, nil
			},
			RequestPermissionFunc: func(ctx context.Context) (bool, error) { return true, nil },
		}
		svc := newTestService(t, store, notifier)

		require.NoError(t, svc.SetFrequency(context.Background(), domain.FrequencyThreeTimesDaily))
		assert.Equal(t, domain.FrequencyThreeTimesDaily, profile.NotificationFrequency)
		assert.Len(t, notifier.RequestPermissionCalls(), 1)
	})

	t.Run("undecided permission prompt declined rejects change", func(t *testing.T) {
		store, profile, _ := memStore()
		notifier := &mocks.NotifierMock{
			SupportedFunc: func(ctx context.Context) (bool, error) { return true, nil },
			PermissionFunc: func(ctx context.Context) (domain.PermissionState, error) {
				return domain.PermissionDefault, nil
			},
			RequestPermissionFunc: func(ctx context.Context) (bool, error) { return false, nil },
		}
		svc := newTestService(t, store, notifier)

		err := svc.SetFrequency(context.Background(), domain.FrequencyDaily)
		assert.ErrorIs(t, err, ErrPermissionDenied)
		assert.Equal(t, domain.FrequencyOff, profile.NotificationFrequency)
	})

	t.Run("off frequency never consults the notifier", func(t *testing.T) {
		store, _, _ := memStore()
		notifier := &mocks.NotifierMock{} // all funcs nil, any call would panic
		svc := newTestService(t, store, notifier)

		require.NoError(t, svc.SetFrequency(context.Background(), domain.FrequencyOff))
		assert.Empty(t, notifier.SupportedCalls())
	})

	t.Run("invalid frequency rejected", func(t *testing.T) {
		store, _, _ := memStore()
		svc := newTestService(t, store, grantedNotifier())

		err := svc.SetFrequency(context.Background(), "hourly")
		assert.ErrorIs(t, err, ErrInvalidFrequency)
	})
}

func TestService_ToggleTheme(t *testing.T) {
	store, _, _ := memStore()
	svc := newTestService(t, store, grantedNotifier())

	theme, err := svc.ToggleTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
	assert.Equal(t, domain.ThemeDark, svc.Profile().Theme, "mirror follows the store's answer")

	theme, err = svc.ToggleTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestService_Export(t *testing.T) {
	store, _, _ := memStore()
	store.ExportDataFunc = func(ctx context.Context) (string, error) {
		return `{"version":1}`, nil
	}
	svc := newTestService(t, store, grantedNotifier())

	filename, data, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(data))
	assert.Regexp(t, `^ai_digest_backup_\d{4}-\d{2}-\d{2}\.json$`, filename)
}

func TestService_Import(t *testing.T) {
	t.Run("success reloads mirrors", func(t *testing.T) {
		store, profile, selected := memStore()
		store.ImportDataFunc = func(ctx context.Context, text string) error {
			profile.City = "Porto"
			profile.Persona = domain.PersonaCasualReader
			*selected = []string{"books"}
			return nil
		}
		svc := newTestService(t, store, grantedNotifier())

		require.NoError(t, svc.Import(context.Background(), `{"whatever":true}`))
		assert.Equal(t, "Porto", svc.Profile().City)
		assert.Equal(t, []string{"books"}, svc.SelectedTopics())
	})

	t.Run("failure leaves mirrors untouched", func(t *testing.T) {
		store, _, _ := memStore()
		store.ImportDataFunc = func(ctx context.Context, text string) error {
			return errors.New("corrupt backup")
		}
		svc := newTestService(t, store, grantedNotifier())
		require.NoError(t, svc.SelectTopic(context.Background(), "ai"))

		err := svc.Import(context.Background(), "junk")
		require.Error(t, err)
		assert.Equal(t, []string{"ai"}, svc.SelectedTopics())
		assert.Equal(t, domain.DefaultProfile().Persona, svc.Profile().Persona)
	})
}

func TestService_HardReset(t *testing.T) {
	t.Run("confirmed reset restores defaults", func(t *testing.T) {
		store, _, _ := memStore()
		svc := newTestService(t, store, grantedNotifier())

		require.NoError(t, svc.SelectTopic(context.Background(), "markets"))
		require.NoError(t, svc.SetCity(context.Background(), "Dublin"))

		require.NoError(t, svc.HardReset(context.Background(), "RESET"))

		assert.Empty(t, svc.SelectedTopics())
		def := domain.DefaultProfile()
		got := svc.Profile()
		assert.Equal(t, def.Persona, got.Persona)
		assert.Equal(t, def.City, got.City)
		assert.Equal(t, def.Theme, got.Theme)
		assert.Equal(t, def.NotificationFrequency, got.NotificationFrequency)
		assert.Len(t, store.HardResetCalls(), 1)
	})

	t.Run("wrong confirmation rejected without mutation", func(t *testing.T) {
		store, _, _ := memStore()
		svc := newTestService(t, store, grantedNotifier())
		require.NoError(t, svc.SelectTopic(context.Background(), "markets"))

		err := svc.HardReset(context.Background(), "reset")
		assert.ErrorIs(t, err, ErrConfirmationMismatch)
		assert.Equal(t, []string{"markets"}, svc.SelectedTopics())
		assert.Empty(t, store.HardResetCalls())
	})
}
