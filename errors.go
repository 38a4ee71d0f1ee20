package icyengine

import "errors"

// File-format load/save errors, surfaced as Result/error values from codec
// Load/Save calls (never from parsers, which report warnings by emitting
// ParseError commands through CommandSink.Emit).
var (
	ErrFileTooShort          = errors.New("icyengine: file too short")
	ErrIDMismatch            = errors.New("icyengine: file header / magic id mismatch")
	ErrOnly8BitChars         = errors.New("icyengine: only 8-bit characters are supported by this format")
	ErrOnly8x16Fonts         = errors.New("icyengine: only 8x16 fonts are supported by this format")
	ErrNoFontFound           = errors.New("icyengine: no matching font found")
	ErrWidthMismatch         = errors.New("icyengine: buffer width does not match format requirement")
	ErrMultipleFontsUnsupported = errors.New("icyengine: this format supports only a single font table")
	ErrInvalidSauceRecord    = errors.New("icyengine: malformed SAUCE record")
	ErrIceModeRequired       = errors.New("icyengine: only ice-color-mode buffers are supported by this format")
	ErrHeightLimitExceeded   = errors.New("icyengine: buffer height exceeds this format's limit")
	ErrPaletteSizeMismatch   = errors.New("icyengine: only 16-color palettes are supported by this format")
)
