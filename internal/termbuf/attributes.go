package termbuf

import "strings"

// Color is one of the sixteen named terminal colors, or ColorDefault.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

var colorNames = [...]string{
	ColorDefault:       "default",
	ColorBlack:         "black",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightBlack:   "bright-black",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// Valid reports whether c is one of the named colors.
func (c Color) Valid() bool {
	return int(c) < len(colorNames)
}

// IsBright reports whether c is one of the BRIGHT_ variants.
func (c Color) IsBright() bool {
	return c >= ColorBrightBlack && c <= ColorBrightWhite
}

// ParseColor resolves a color name such as "red", "bright-blue" or
// "BRIGHT_BLUE". Matching is case-insensitive and treats '_' and ' ' as '-'.
func ParseColor(name string) (Color, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	if key == "" {
		return ColorDefault, false
	}
	for i, n := range colorNames {
		if n == key {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// Style holds the boolean text styles.
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
}

// Attributes are the visual attributes of a cell. It is a plain value:
// assigning or passing it copies it.
type Attributes struct {
	Fg    Color
	Bg    Color
	Style Style
}

// DefaultAttributes returns default colors with no styles.
func DefaultAttributes() Attributes {
	return Attributes{}
}

// WithForeground returns a copy of a with the foreground replaced.
func (a Attributes) WithForeground(c Color) Attributes {
	a.Fg = c
	return a
}

// WithBackground returns a copy of a with the background replaced.
func (a Attributes) WithBackground(c Color) Attributes {
	a.Bg = c
	return a
}

// WithStyle returns a copy of a with the style replaced.
func (a Attributes) WithStyle(s Style) Attributes {
	a.Style = s
	return a
}

// IsDefault reports whether a equals DefaultAttributes.
func (a Attributes) IsDefault() bool {
	return a == Attributes{}
}
