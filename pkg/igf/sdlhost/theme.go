package sdlhost

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ririf4/IGF/pkg/igf"
)

// KindStyle maps one visual kind to its rendered appearance.
type KindStyle struct {
	Color string `toml:"color"` // Slot fill as "#RRGGBB"
	Icon  string `toml:"icon"`  // Path to an SVG icon, optional
}

// Theme defines the visual appearance of rendered surfaces. Themes are
// typically loaded from a TOML file; zero fields fall back to the
// built-in defaults.
type Theme struct {
	Background string               `toml:"background"`  // Window clear color
	SlotColor  string               `toml:"slot_color"`  // Empty slot fill
	SlotBorder string               `toml:"slot_border"` // Slot outline
	TitleColor string               `toml:"title_color"` // Surface title text
	LabelColor string               `toml:"label_color"` // Hovered item label text
	FontPath   string               `toml:"font_path"`   // TTF font for title and labels
	FontSize   int                  `toml:"font_size"`   // Point size; 0 means 18
	Kinds      map[string]KindStyle `toml:"kinds"`       // Visual kind -> style
}

// DefaultTheme returns the built-in dark theme, including styles for
// the framework's conventional kinds.
func DefaultTheme() Theme {
	return Theme{
		Background: "#1a1a1d",
		SlotColor:  "#2b2b30",
		SlotBorder: "#44444c",
		TitleColor: "#ffffff",
		LabelColor: "#d0d0d8",
		FontSize:   18,
		Kinds: map[string]KindStyle{
			string(igf.KindFiller):    {Color: "#35353c"},
			string(igf.KindPrevArrow): {Color: "#3d5a80"},
			string(igf.KindNextArrow): {Color: "#3d5a80"},
			string(igf.KindEmpty):     {Color: "#50404a"},
		},
	}
}

// LoadTheme reads a theme from a TOML file, filling unset fields from
// the built-in defaults.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return Theme{}, fmt.Errorf("sdlhost: load theme %s: %w", path, err)
	}
	if theme.Kinds == nil {
		theme.Kinds = DefaultTheme().Kinds
	}
	return theme, nil
}

func (t Theme) fontSize() int {
	if t.FontSize <= 0 {
		return 18
	}
	return t.FontSize
}

func (t Theme) kindStyle(kind igf.VisualKind) (KindStyle, bool) {
	style, ok := t.Kinds[string(kind)]
	return style, ok
}

// parseColor parses "#RRGGBB" or "#RRGGBBAA". Unparseable values come
// back as the given fallback.
func parseColor(s string, fallback sdl.Color) sdl.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return fallback
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return sdl.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}
