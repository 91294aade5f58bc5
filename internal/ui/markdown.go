package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer renders Markdown with glamour, caching by source and
// wrap width since both rarely change between frames
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
	cache    map[string]string
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{cache: make(map[string]string)}
}

// Render returns src rendered for width columns. On failure the raw
// Markdown is returned so the page still shows the text.
func (r *markdownRenderer) Render(src string, width int) string {
	width = max(width, 20)
	if width != r.width || r.renderer == nil {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			log.Printf("Markdown renderer unavailable: %v", err)
			return src
		}
		r.renderer = renderer
		r.width = width
		r.cache = make(map[string]string)
	}

	if out, ok := r.cache[src]; ok {
		return out
	}
	out, err := r.renderer.Render(src)
	if err != nil {
		log.Printf("Markdown render failed: %v", err)
		return src
	}
	out = strings.Trim(out, "\n")
	r.cache[src] = out
	return out
}
