// Package nextui provides theming support for the NextUI custom firmware.
// NextUI stores its theme as key=value pairs in a shared settings file on
// the SD card; the theme here reads that file and falls back to the stock
// NextUI look when it is missing or incomplete.
package nextui

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	settingsPath        = "/mnt/SDCARD/.userdata/shared/minuisettings.txt"
	fontPath            = "/mnt/SDCARD/.system/res/BPreplayBold-unhinted.otf"
	backgroundImagePath = "/mnt/SDCARD/bg.png"
)

// InitNextUITheme creates a theme from the device's NextUI settings.
func InitNextUITheme() internal.Theme {
	theme := internal.Theme{
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		AccentColor:          internal.HexToColor(0x9B2257),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		HintColor:            internal.HexToColor(0x666666),
		BackgroundColor:      internal.HexToColor(0x000000),
		FontPath:             fontPath,
		BackgroundImagePath:  backgroundImagePath,
	}

	settings, err := loadSettings(settingsPath)
	if err != nil {
		internal.GetInternalLogger().Debug("NextUI settings not readable, using stock theme", "path", settingsPath, "error", err)
		return theme
	}

	theme.TextColor = settingsColor(settings, "color1", theme.TextColor)
	theme.AccentColor = settingsColor(settings, "color2", theme.AccentColor)
	theme.HintColor = settingsColor(settings, "color3", theme.HintColor)
	theme.HighlightColor = settingsColor(settings, "color4", theme.HighlightColor)
	theme.HighlightedTextColor = settingsColor(settings, "color5", theme.HighlightedTextColor)
	theme.BackgroundColor = settingsColor(settings, "color6", theme.BackgroundColor)

	return theme
}

// loadSettings parses the key=value settings file. Blank lines and lines
// without a separator are skipped.
func loadSettings(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	settings := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		settings[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return settings, scanner.Err()
}

// settingsColor parses a NextUI color value like "0xFFFFFF". Missing or
// malformed values keep the fallback.
func settingsColor(settings map[string]string, key string, fallback sdl.Color) sdl.Color {
	raw, ok := settings[key]
	if !ok {
		return fallback
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "#")
	value, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		internal.GetInternalLogger().Debug("Invalid NextUI color value", "key", key, "value", raw)
		return fallback
	}
	return internal.HexToColor(uint32(value))
}
