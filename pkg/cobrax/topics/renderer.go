package topics

// Renderer formats topic content for the terminal
type Renderer interface {
	// Render takes raw content and the extension of its source file
	Render(content string, ext string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}
