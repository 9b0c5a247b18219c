package topics

// Renderer formats topic content for display
type Renderer interface {
	// Render takes raw content and the file extension and returns display text
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// RendererFor picks glamour for terminals and plain output otherwise
func RendererFor(isTerminal bool) Renderer {
	if isTerminal {
		return NewGlamourRenderer()
	}
	return &PlainRenderer{}
}
