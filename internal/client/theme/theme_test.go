package theme

import (
	"context"
	"database/sql"
	"testing"

	"github.com/quizgen/quizgen/internal/client/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupPrefs(t *testing.T) *prefs.Prefs {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE preferences (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)

	return prefs.New(db)
}

func TestNewManager_DefaultsToDark(t *testing.T) {
	m := NewManager(context.Background(), setupPrefs(t))

	assert.Equal(t, DefaultThemes["dark"], m.Current())
	assert.Empty(t, m.Background())
}

func TestSetTheme_PersistsAcrossRestart(t *testing.T) {
	p := setupPrefs(t)
	ctx := context.Background()

	m := NewManager(ctx, p)
	require.NoError(t, m.SetTheme(ctx, "ocean"))
	assert.Equal(t, DefaultThemes["ocean"], m.Current())

	reloaded := NewManager(ctx, p)
	assert.Equal(t, DefaultThemes["ocean"], reloaded.Current())
}

func TestSetTheme_UnknownNameIgnored(t *testing.T) {
	p := setupPrefs(t)
	ctx := context.Background()

	m := NewManager(ctx, p)
	require.NoError(t, m.SetTheme(ctx, "forest"))
	require.NoError(t, m.SetTheme(ctx, "neon"))

	assert.Equal(t, DefaultThemes["forest"], m.Current())

	reloaded := NewManager(ctx, p)
	assert.Equal(t, DefaultThemes["forest"], reloaded.Current())
}

func TestCustomBackground(t *testing.T) {
	p := setupPrefs(t)
	ctx := context.Background()

	m := NewManager(ctx, p)
	require.NoError(t, m.SetCustomBackground(ctx, "https://example.com/bg.png"))
	assert.Equal(t, "https://example.com/bg.png", m.Background())

	// override survives a restart independently of the theme choice
	reloaded := NewManager(ctx, p)
	assert.Equal(t, "https://example.com/bg.png", reloaded.Background())

	require.NoError(t, reloaded.ClearBackground(ctx))
	assert.Empty(t, reloaded.Background())
	assert.Empty(t, NewManager(ctx, p).Background())
}

func TestDefaultThemes_Complete(t *testing.T) {
	for name, theme := range DefaultThemes {
		assert.NotEmpty(t, theme.Name, name)
		assert.NotEmpty(t, theme.Background, name)
		assert.NotEmpty(t, theme.MessageBackground, name)
		assert.NotEmpty(t, theme.TextColor, name)
		assert.NotEmpty(t, theme.AccentColor, name)
	}
}
