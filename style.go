package sparkle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidStyle is returned by ParseStyle for strings that are not an
// rgb(), rgba(), hsl() or hsla() expression.
var ErrInvalidStyle = errors.New("invalid fill style")

// ParseStyle parses a fill style produced by Color.RGBString, Color.HSLString
// or their alpha-override variants back into a Color. The alpha argument is
// optional and defaults to 1. Percent signs on saturation and lightness are
// optional.
func ParseStyle(style string) (Color, error) {
	s := strings.TrimSpace(strings.ToLower(style))
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, fmt.Errorf("parse style %q: %w", style, ErrInvalidStyle)
	}
	fn := s[:open]
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("parse style %q: %w", style, ErrInvalidStyle)
	}

	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		p = strings.TrimSuffix(strings.TrimSpace(p), "%")
		n, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Color{}, fmt.Errorf("parse style %q: %w", style, errors.Join(ErrInvalidStyle, err))
		}
		v[i] = n
	}

	switch fn {
	case "rgb", "rgba":
		return NewColor(v[0], v[1], v[2], v[3]), nil
	case "hsl", "hsla":
		return ColorFromHSL(v[0], v[1], v[2], v[3]), nil
	default:
		return Color{}, fmt.Errorf("parse style %q: %w", style, ErrInvalidStyle)
	}
}
