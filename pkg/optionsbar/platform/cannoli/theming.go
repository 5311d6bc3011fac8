// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
// Unlike NextUI it has no user-editable theme file, so the palette is fixed
// and only the font path comes from the host application.
package cannoli

import (
	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/internal"
)

// Cannoli's stock look: dark ink on white panels with a teal accent.
const (
	panelHex  = 0xFFFFFF
	accentHex = 0x008080
	inkHex    = 0x000000
)

// InitCannoliTheme builds the fixed Cannoli palette around the given font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		HighlightColor:       internal.HexToColor(panelHex),
		AccentColor:          internal.HexToColor(accentHex),
		HintColor:            internal.HexToColor(inkHex),
		TextColor:            internal.HexToColor(panelHex),
		HighlightedTextColor: internal.HexToColor(inkHex),
		BackgroundColor:      internal.HexToColor(panelHex),
		FontPath:             fontPath,
	}
}
