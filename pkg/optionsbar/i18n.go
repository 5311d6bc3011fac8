package optionsbar

import (
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// NewBundle creates a message bundle that understands TOML message files,
// the format bar skins and translations ship in. Load message files into
// it and build localizers per user language in the usual go-i18n way.
func NewBundle(defaultLanguage language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// LocalizedLabels adapts a localizer into a ResolveLabel for string item
// lists whose ids double as message IDs. Ids without a translation fall
// back to the raw id, so a missing message file degrades to readable
// English-ish labels instead of blanks.
func LocalizedLabels(localizer *i18n.Localizer) func(string) string {
	return func(id string) string {
		label, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil || label == "" {
			return id
		}
		return label
	}
}
