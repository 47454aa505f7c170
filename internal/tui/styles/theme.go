// Package styles holds the color theme and shared lipgloss styles of the TUI.
package styles

import (
	"image/color"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Selected marks the highlighted entry of a list.
const Selected = "▸"

// Theme is a named color palette.
//
//nolint:govet // Field order groups related colors.
type Theme struct {
	Name   string
	IsDark bool

	Primary   color.Color
	Secondary color.Color
	Tertiary  color.Color
	Accent    color.Color

	BgBase    color.Color
	BgSubtle  color.Color
	BgOverlay color.Color

	FgBase   color.Color
	FgMuted  color.Color
	FgSubtle color.Color

	Border      color.Color
	BorderFocus color.Color

	Success color.Color
	Error   color.Color
	Warning color.Color
	Info    color.Color

	once   sync.Once
	styles *Styles
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Primary  lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Prompt   lipgloss.Style
}

// S returns the theme's styles, building them on first use.
func (t *Theme) S() *Styles {
	t.once.Do(func() {
		base := lipgloss.NewStyle()
		t.styles = &Styles{
			Text:     base.Foreground(t.FgBase),
			Muted:    base.Foreground(t.FgMuted),
			Subtle:   base.Foreground(t.FgSubtle),
			Title:    base.Foreground(t.Accent).Bold(true),
			Subtitle: base.Foreground(t.Secondary).Bold(true),
			Primary:  base.Foreground(t.Primary),
			Success:  base.Foreground(t.Success),
			Error:    base.Foreground(t.Error),
			Warning:  base.Foreground(t.Warning),
			Info:     base.Foreground(t.Info),
			Prompt:   base.Foreground(t.Primary).Bold(true),
		}
	})
	return t.styles
}

var (
	mu      sync.RWMutex
	current *Theme
)

// CurrentTheme returns the active theme, the default one unless SetTheme
// was called.
func CurrentTheme() *Theme {
	mu.RLock()
	t := current
	mu.RUnlock()
	if t != nil {
		return t
	}

	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = NewDefaultTheme()
	}
	return current
}

// SetTheme makes t the active theme.
func SetTheme(t *Theme) {
	mu.Lock()
	defer mu.Unlock()
	current = t
}

// ParseHex converts a "#rrggbb" string into a color. Invalid input yields
// black.
func ParseHex(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	return c
}

// Hex renders c as "#rrggbb".
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// ApplyForegroundGrad colors each grapheme of input along a gradient from
// from to to. Every line runs the full gradient.
func ApplyForegroundGrad(input string, from, to color.Color) string {
	if input == "" {
		return ""
	}

	lines := strings.Split(input, "\n")
	var out strings.Builder
	for i, line := range lines {
		clusters := graphemes(line)
		ramp := blend(len(clusters), from, to)
		for j, cluster := range clusters {
			out.WriteString(lipgloss.NewStyle().Foreground(ramp[j]).Render(cluster))
		}
		if i < len(lines)-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func blend(n int, from, to color.Color) []color.Color {
	a, _ := colorful.MakeColor(from)
	b, _ := colorful.MakeColor(to)

	out := make([]color.Color, n)
	for i := range out {
		switch {
		case i == 0:
			out[i] = from
		case i == n-1:
			out[i] = to
		default:
			out[i] = a.BlendLuv(b, float64(i)/float64(n-1)).Clamped()
		}
	}
	return out
}
