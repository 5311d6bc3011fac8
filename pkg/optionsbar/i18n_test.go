package optionsbar

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocalizedLabels(t *testing.T) {
	bundle := NewBundle(language.English)
	_, err := bundle.ParseMessageFileBytes([]byte(`
games = "Games"
settings = "Settings"
`), "en.toml")
	require.NoError(t, err)

	labels := LocalizedLabels(i18n.NewLocalizer(bundle, "en"))

	assert.Equal(t, "Games", labels("games"))
	assert.Equal(t, "Settings", labels("settings"))
	assert.Equal(t, "recents", labels("recents"), "untranslated ids pass through")
}

func TestLocalizedLabels_LanguageFallback(t *testing.T) {
	bundle := NewBundle(language.English)
	_, err := bundle.ParseMessageFileBytes([]byte(`games = "Games"`), "en.toml")
	require.NoError(t, err)
	_, err = bundle.ParseMessageFileBytes([]byte(`games = "Spiele"`), "de.toml")
	require.NoError(t, err)

	german := LocalizedLabels(i18n.NewLocalizer(bundle, "de"))
	assert.Equal(t, "Spiele", german("games"))

	// An unknown language falls back to the bundle default.
	unknown := LocalizedLabels(i18n.NewLocalizer(bundle, "zz"))
	assert.Equal(t, "Games", unknown("games"))
}

func TestLocalizedLabels_AsResolveLabel(t *testing.T) {
	bundle := NewBundle(language.English)
	_, err := bundle.ParseMessageFileBytes([]byte(`apps = "Applications"`), "en.toml")
	require.NoError(t, err)

	bar, err := New(Config[string]{
		Items:        []string{"apps", "tools"},
		SelectedID:   "apps",
		ResolveLabel: LocalizedLabels(i18n.NewLocalizer(bundle, "en")),
	})
	require.NoError(t, err)

	assert.Equal(t, []resolvedItem{
		{id: "apps", label: "Applications"},
		{id: "tools", label: "tools"},
	}, bar.resolved)
}
