// Package preferences keeps the presentation settings (language and theme)
// that survive restarts. Values live in the metadata repository; the
// Manager caches them in memory and writes only on change.
package preferences

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/i18n"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/metadata"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

const (
	keyLanguage = "language"
	keyTheme    = "theme"
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnsupportedTheme, s)
}

type Preferences struct {
	Language i18n.Language `json:"language"`
	Theme    Theme         `json:"theme"`
}

type Manager struct {
	mu    sync.RWMutex
	repo  metadata.Repository
	prefs Preferences
}

// NewManager returns a Manager with defaults; call Load to read persisted
// values.
func NewManager(repo metadata.Repository, defaultLanguage i18n.Language) *Manager {
	if defaultLanguage == "" {
		defaultLanguage = i18n.Default
	}
	return &Manager{
		repo:  repo,
		prefs: Preferences{Language: defaultLanguage, Theme: Light},
	}
}

// Load reads persisted preferences. Unknown stored values are ignored and
// the defaults kept.
func (m *Manager) Load(ctx context.Context) error {
	lang, err := m.repo.Get(ctx, keyLanguage)
	if err != nil {
		return err
	}
	theme, err := m.repo.Get(ctx, keyTheme)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if lang != nil {
		if l, err := i18n.ParseLanguage(string(lang)); err == nil {
			m.prefs.Language = l
		}
	}
	if theme != nil {
		if t, err := ParseTheme(string(theme)); err == nil {
			m.prefs.Theme = t
		}
	}
	return nil
}

func (m *Manager) Current() Preferences {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs
}

// SetLanguage validates and stores lang. It reports whether the value
// changed.
func (m *Manager) SetLanguage(ctx context.Context, lang string) (bool, error) {
	l, err := i18n.ParseLanguage(lang)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.prefs.Language == l {
		return false, nil
	}
	if err := m.repo.Set(ctx, keyLanguage, []byte(l)); err != nil {
		return false, err
	}
	m.prefs.Language = l
	return true, nil
}

// SetTheme validates and stores theme. It reports whether the value changed.
func (m *Manager) SetTheme(ctx context.Context, theme string) (bool, error) {
	t, err := ParseTheme(theme)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.prefs.Theme == t {
		return false, nil
	}
	if err := m.repo.Set(ctx, keyTheme, []byte(t)); err != nil {
		return false, err
	}
	m.prefs.Theme = t
	return true, nil
}

// Translator returns a translator for the current language.
func (m *Manager) Translator() i18n.Translator {
	return i18n.New(m.Current().Language)
}
