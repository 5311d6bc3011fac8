// Package constants defines shared constants, types, and configuration values
// used throughout the options bar library.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// BackgroundPathEnvVar is the environment variable name for custom background image path.
const BackgroundPathEnvVar = "BACKGROUND_PATH"

// DebugEnvVar enables internal debug logging when set to any non-empty value.
const DebugEnvVar = "OPTIONSBAR_DEBUG"

// WindowWidthEnvVar and WindowHeightEnvVar override the window size in development mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// IsDebugMode returns true if internal debug diagnostics are enabled.
func IsDebugMode() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction allows the bar to work with different controller configurations.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonMenu
	VirtualButtonPower
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPower:
		return "Power"
	default:
		return "Unknown"
	}
}

// Default timing constants.
const (
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between accepted input events
)
