package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterText registers the rich text component on the provided registry.
func RegisterText(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeText,
		Name:        "Text",
		Description: "A free-form paragraph of text",
		Category:    "content",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"content": "Tell your story here."}
		},
		Render: renderText,
	})
}

func renderText(ctx *Context, comp models.Component) string {
	content := strings.TrimSpace(getString(comp.Data, "content"))
	if content == "" {
		// Missing content degrades to the documented placeholder in the
		// builder and to nothing in public rendering.
		return editPlaceholder(ctx, "pf-text", "Add some text")
	}

	var style styleAttr
	style.add("color", resolve(comp.Styles.Color, ctx.Palette.DescriptionColor, "#4b5563"))
	if comp.Styles.FontSize != nil {
		style.add("font-size", *comp.Styles.FontSize)
	}

	return `<div class="pf-text"` + wrapperStyle(ctx, comp) + `><p class="pf-text__content"` + style.String() + `>` + ctx.sanitize(content) + `</p></div>`
}
