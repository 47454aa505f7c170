package prompt

import (
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"

	"github.com/guilhermegouw/phonebook/internal/tui/styles"
)

// MarkdownRenderer renders markdown output such as the help table.
type MarkdownRenderer struct {
	renderer    *glamour.TermRenderer
	cachedWidth int
	cache       *renderCache
	mu          sync.Mutex
}

const renderCacheSize = 64

// NewMarkdownRenderer creates a new markdown renderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{cache: newRenderCache(renderCacheSize)}
}

// Render renders markdown content to styled terminal output.
// The underlying renderer is rebuilt only when width changes.
func (m *MarkdownRenderer) Render(content string, width int) (string, error) {
	if content == "" {
		return "", nil
	}

	key := renderKey{content: content, width: width}
	if out, ok := m.cache.get(key); ok {
		return out, nil
	}

	renderer, err := m.getRenderer(width)
	if err != nil {
		return content, err
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content, err
	}
	m.cache.put(key, rendered)
	return rendered, nil
}

func (m *MarkdownRenderer) getRenderer(width int) (*glamour.TermRenderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.renderer != nil && m.cachedWidth == width {
		return m.renderer, nil
	}

	opts := []glamour.TermRendererOption{
		glamour.WithStyles(buildStyle()),
		glamour.WithColorProfile(termenv.TrueColor),
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}

	m.renderer = renderer
	m.cachedWidth = width
	return renderer, nil
}

// buildStyle creates a Glamour style config that matches the app theme.
func buildStyle() ansi.StyleConfig {
	t := styles.CurrentTheme()
	style := glamourstyles.DarkStyleConfig

	primary := styles.Hex(t.Primary)
	secondary := styles.Hex(t.Secondary)
	accent := styles.Hex(t.Accent)
	muted := styles.Hex(t.FgMuted)
	base := styles.Hex(t.FgBase)

	style.Document.Margin = uintPtr(0)

	style.H1.Color = stringPtr(accent)
	style.H1.Prefix = ""
	style.H1.Suffix = ""
	style.H2.Color = stringPtr(primary)
	style.H2.Prefix = ""
	style.H3.Color = stringPtr(secondary)
	style.H3.Prefix = ""

	style.Code.Color = stringPtr(secondary)
	style.Code.BackgroundColor = nil

	style.BlockQuote.Color = stringPtr(muted)
	style.HorizontalRule.Color = stringPtr(muted)
	style.Table.Color = stringPtr(base)

	return style
}

func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }
