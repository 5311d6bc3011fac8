// Package optionsbar provides an animated selectable options bar for
// graphical applications on embedded Linux devices, particularly handheld
// gaming consoles running custom firmware like NextUI or Cannoli.
//
// The bar distributes its items across the full available width when they
// fit and falls back to a horizontally scrollable list with paging arrows
// when they overflow. A rounded indicator slides between selections and the
// label colors follow it. The package also handles SDL initialization,
// theming, fonts, and logging for hosts that don't bring their own setup.
package optionsbar

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/constants"
	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/internal"
	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/platform/cannoli"
	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/platform/nextui"
)

// Options configures library initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background image
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color (ignored on NextUI which uses the system theme)
	IsCannoli            bool                   // Enable Cannoli CFW theming
	IsNextUI             bool                   // Enable NextUI CFW theming and power button handling
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	LogFilename          string                 // Deprecated: Use LogPath instead. Log filename within the state directory.
}

// Init initializes the SDL subsystems, theming, and fonts. Must be called
// before constructing bars that use the framework fonts or DefaultStyle.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	} else if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if constants.IsDebugMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	pbc := internal.PowerButtonConfig{}

	if options.IsNextUI {
		theme := nextui.InitNextUITheme()

		// Detect power button input device path based on platform.
		// TG5050 uses /dev/input/event2, all others use /dev/input/event1.
		powerDevicePath := "/dev/input/event1"
		platformEnv := strings.ToUpper(os.Getenv("PLATFORM"))
		if strings.Contains(platformEnv, "TG5050") {
			powerDevicePath = "/dev/input/event2"
		}

		pbc = internal.PowerButtonConfig{
			ButtonCode:      116,
			DevicePath:      powerDevicePath,
			ShortPressMax:   2 * time.Second,
			CoolDownTime:    1 * time.Second,
			SuspendScript:   "/mnt/SDCARD/.system/tg5040/bin/suspend",
			ShutdownCommand: "/sbin/poweroff",
		}
		internal.SetTheme(theme)
	} else if options.IsCannoli {
		internal.SetTheme(cannoli.InitCannoliTheme("/mnt/SDCARD/System/fonts/Cannoli.ttf"))
	} else {
		// Neither CFW flagged: Cannoli palette with a font that exists on
		// desktop dev machines.
		internal.SetTheme(cannoli.InitCannoliTheme("/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"))
	}

	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme := internal.GetTheme()
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, pbc)
}

// Close releases all SDL resources and shuts down the library.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogFilename sets the filename for the log file within the state directory.
// Deprecated: Use SetLogPath instead for full path support.
// Call before Init() to take effect during initialization.
func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
