package topics

// Renderer formats topic content for display.
type Renderer interface {
	// Render takes raw content and the extension of the file it came from
	// (".md", ".txt") and returns what should be printed.
	Render(content string, format string) string
}

// PlainRenderer prints topics unchanged. It is the default.
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
