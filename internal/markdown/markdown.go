// Package markdown renders task content, which may contain markdown, for
// the terminal.
package markdown

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// DefaultStyle is a fixed glamour style; auto-detection queries the
// terminal and can block inside a running program
const DefaultStyle = "dark"

const minWidth = 10

// Cache renderers by style and width to avoid expensive re-creation
var rendererCache sync.Map // map[string]*glamour.TermRenderer

func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := fmt.Sprintf("%s:%d", style, width)
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	actual, _ := rendererCache.LoadOrStore(key, renderer)
	return actual.(*glamour.TermRenderer), nil
}

// Render renders md wrapped to width. Rendering failures fall back to the
// raw text.
func Render(md string, width int, style string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}
	if style == "" {
		style = DefaultStyle
	}

	renderer, err := getRenderer(style, width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
