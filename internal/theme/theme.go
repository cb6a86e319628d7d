// Package theme derives the light and dark shades of the two brand colours.
package theme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned for anything other than six hex digits with an optional leading '#'.
var ErrInvalidColorFormat = errors.New("invalid color format")

const (
	LightenAmount = 40
	DarkenAmount  = -30
)

// Theme holds the six colours applied to the presentation layer
type Theme struct {
	Primary        string `json:"primary"`
	PrimaryLight   string `json:"primaryLight"`
	PrimaryDark    string `json:"primaryDark"`
	Secondary      string `json:"secondary"`
	SecondaryLight string `json:"secondaryLight"`
	SecondaryDark  string `json:"secondaryDark"`
}

// Shift adds amount to each RGB channel of color, clamping every channel to [0,255].
// A leading '#' is kept in the result when present in the input.
func Shift(color string, amount int) (string, error) {
	hex, hasPound := strings.CutPrefix(color, "#")
	if len(hex) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, color)
	}
	num, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, color)
	}

	r := clamp(int(num>>16) + amount)
	g := clamp(int(num>>8&0xff) + amount)
	b := clamp(int(num&0xff) + amount)

	out := fmt.Sprintf("%06x", r<<16|g<<8|b)
	if hasPound {
		out = "#" + out
	}
	return out, nil
}

// Validate reports whether color can be shifted
func Validate(color string) error {
	_, err := Shift(color, 0)
	return err
}

// Derive builds the full theme from the two stored base colours
func Derive(primary, secondary string) (Theme, error) {
	primaryLight, err := Shift(primary, LightenAmount)
	if err != nil {
		return Theme{}, fmt.Errorf("primary color: %w", err)
	}
	primaryDark, err := Shift(primary, DarkenAmount)
	if err != nil {
		return Theme{}, fmt.Errorf("primary color: %w", err)
	}
	secondaryLight, err := Shift(secondary, LightenAmount)
	if err != nil {
		return Theme{}, fmt.Errorf("secondary color: %w", err)
	}
	secondaryDark, err := Shift(secondary, DarkenAmount)
	if err != nil {
		return Theme{}, fmt.Errorf("secondary color: %w", err)
	}

	return Theme{
		Primary:        primary,
		PrimaryLight:   primaryLight,
		PrimaryDark:    primaryDark,
		Secondary:      secondary,
		SecondaryLight: secondaryLight,
		SecondaryDark:  secondaryDark,
	}, nil
}

// CSSVariables maps the theme onto the style variables the UI reads
func (t Theme) CSSVariables() map[string]string {
	return map[string]string{
		"--color-primary-DEFAULT":   t.Primary,
		"--color-primary-light":     t.PrimaryLight,
		"--color-primary-dark":      t.PrimaryDark,
		"--color-secondary-DEFAULT": t.Secondary,
		"--color-secondary-light":   t.SecondaryLight,
		"--color-secondary-dark":    t.SecondaryDark,
	}
}

func clamp(v int) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return v
}
