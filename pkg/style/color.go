package style

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS-style color value: #rgb, #rrggbb, or an SVG 1.1
// color name ("rebeccapurple" excepted, it postdates the table).
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color value")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(hex string) (color.RGBA, error) {
	switch len(hex) {
	case 3:
		r, okR := hexNibble(hex[0])
		g, okG := hexNibble(hex[1])
		b, okB := hexNibble(hex[2])
		if !okR || !okG || !okB {
			return color.RGBA{}, fmt.Errorf("malformed hex color #%s", hex)
		}
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}, nil
	case 6:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			hi, okHi := hexNibble(hex[2*i])
			lo, okLo := hexNibble(hex[2*i+1])
			if !okHi || !okLo {
				return color.RGBA{}, fmt.Errorf("malformed hex color #%s", hex)
			}
			out[i] = hi<<4 | lo
		}
		return color.RGBA{R: out[0], G: out[1], B: out[2], A: 0xff}, nil
	default:
		return color.RGBA{}, fmt.Errorf("malformed hex color #%s", hex)
	}
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	default:
		return 0, false
	}
}

// FormatColor renders c as a lowercase #rrggbb value. Alpha is ignored;
// panel output is always opaque.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorNames returns every recognized color name in sorted order. The
// autocomplete helper feeds these to its ranking.
func ColorNames() []string {
	return colornames.Names
}
