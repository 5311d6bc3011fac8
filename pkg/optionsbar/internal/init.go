// Package internal contains the core infrastructure for the options bar
// library. This includes SDL initialization, theming, font management, and
// rendering utilities. Types and functions in this package are not part of
// the public API.
package internal
