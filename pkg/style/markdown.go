package style

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer uses glamour for rich markdown rendering. It is used for
// report summaries and help topics.
type MarkdownRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Word wrap width (0 = glamour default)
}

// NewMarkdownRenderer creates a markdown renderer with style auto-detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render converts markdown to terminal output. Content whose format is not
// ".md" is returned unchanged, as is everything glamour fails on.
func (r *MarkdownRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// RenderMarkdown renders md with a renderer configured by style.
func RenderMarkdown(md, glamourStyle string) string {
	r := &MarkdownRenderer{Style: glamourStyle}
	return r.Render(md, ".md")
}
