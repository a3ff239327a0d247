package components

import (
	"html/template"

	"portfolio-builder-backend/internal/models"
)

// Mode selects between the interactive builder rendering and the read-only
// public/preview rendering.
type Mode string

const (
	ModeEdit   Mode = "edit"
	ModePublic Mode = "public"
)

// Mutator is the live-edit capability handed to renderers in edit mode.
// Public rendering carries no mutator at all rather than a callback that
// discards writes.
type Mutator interface {
	UpdateComponent(componentID string, patch models.JSONMap)
}

// Context carries everything a renderer may consult: the rendering mode,
// the document's palette (explicitly threaded, never ambient state), a
// sanitizer for user-supplied rich text, and the optional mutator.
type Context struct {
	Mode     Mode
	Palette  models.DesignPalette
	Sanitize func(string) string
	Mutator  Mutator
}

// Editable reports whether edit affordances should be rendered.
func (c *Context) Editable() bool {
	return c != nil && c.Mode == ModeEdit
}

func (c *Context) sanitize(input string) string {
	if c != nil && c.Sanitize != nil {
		return c.Sanitize(input)
	}
	return template.HTMLEscapeString(input)
}
