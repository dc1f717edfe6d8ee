// Package theme manages chat appearance settings. The selected theme and an
// optional custom background image are persisted through the preferences
// store so they survive restarts.
package theme

import (
	"context"

	"github.com/quizgen/quizgen/internal/client/prefs"
)

const (
	themeKey      = "chatTheme"
	backgroundKey = "chatBackground"
)

type Theme struct {
	Name              string `json:"name"`
	Background        string `json:"background"`
	MessageBackground string `json:"messageBackground"`
	TextColor         string `json:"textColor"`
	AccentColor       string `json:"accentColor"`
}

// DefaultThemes are the built-in chat themes, keyed by selector name.
var DefaultThemes = map[string]Theme{
	"dark": {
		Name:              "Dark",
		Background:        "#111a24",
		MessageBackground: "#1a2738",
		TextColor:         "#e6eef6",
		AccentColor:       "#1976ff",
	},
	"light": {
		Name:              "Light",
		Background:        "#f8f9fa",
		MessageBackground: "#ffffff",
		TextColor:         "#2c3e50",
		AccentColor:       "#1976ff",
	},
	"forest": {
		Name:              "Forest",
		Background:        "#1a472a",
		MessageBackground: "#2d5a3f",
		TextColor:         "#e0f5e9",
		AccentColor:       "#5cdb95",
	},
	"ocean": {
		Name:              "Ocean",
		Background:        "#1a3a4a",
		MessageBackground: "#234b61",
		TextColor:         "#e3f2fd",
		AccentColor:       "#64b5f6",
	},
}

// Manager holds the active theme state for one client.
type Manager struct {
	prefs            *prefs.Prefs
	current          Theme
	customBackground string
}

// NewManager loads the saved theme (default: dark) and custom background.
func NewManager(ctx context.Context, p *prefs.Prefs) *Manager {
	m := &Manager{prefs: p, current: DefaultThemes["dark"]}
	p.Get(ctx, themeKey, &m.current)
	m.customBackground = p.GetString(ctx, backgroundKey, "")
	return m
}

// SetTheme switches to a built-in theme and persists the choice. Unknown
// names are ignored.
func (m *Manager) SetTheme(ctx context.Context, name string) error {
	t, ok := DefaultThemes[name]
	if !ok {
		return nil
	}
	m.current = t
	return m.prefs.Set(ctx, themeKey, t)
}

// SetCustomBackground stores a background image URL that overrides the
// theme's background color.
func (m *Manager) SetCustomBackground(ctx context.Context, imageURL string) error {
	m.customBackground = imageURL
	return m.prefs.Set(ctx, backgroundKey, imageURL)
}

func (m *Manager) ClearBackground(ctx context.Context) error {
	return m.SetCustomBackground(ctx, "")
}

func (m *Manager) Current() Theme {
	return m.current
}

// Background returns the custom background URL, or empty when the theme's
// own background applies.
func (m *Manager) Background() string {
	return m.customBackground
}
