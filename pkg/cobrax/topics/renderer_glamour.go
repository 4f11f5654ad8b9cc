package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	// Style is a glamour style name such as "dark", "light" or "notty",
	// a path to a JSON style, or "auto"
	Style string
	// Width wraps output at this column; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a renderer. Unstyled output uses the notty
// style so that redirected help stays free of escape sequences.
func NewGlamourRenderer(styled bool) *GlamourRenderer {
	if !styled {
		return &GlamourRenderer{Style: "notty"}
	}
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to terminal output. Other content and rendering
// failures fall back to the raw text.
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
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
