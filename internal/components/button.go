package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterButton registers the call-to-action button group component.
func RegisterButton(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeButton,
		Name:        "Buttons",
		Description: "One or more call-to-action buttons",
		Category:    "content",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{
				"buttons": []interface{}{
					map[string]interface{}{
						"text":    "Get in touch",
						"link":    "#contact",
						"variant": "primary",
					},
				},
			}
		},
		Render: renderButton,
	})
}

func renderButton(ctx *Context, comp models.Component) string {
	buttons := getMaps(comp.Data, "buttons")
	if len(buttons) == 0 {
		return editPlaceholder(ctx, "pf-buttons", "Add a button")
	}

	primary := resolve(nil, ctx.Palette.PrimaryColor, "#2563eb")
	radius := resolve(comp.Styles.BorderRadius, ctx.Palette.BorderRadius, "8px")

	var sb strings.Builder
	sb.WriteString(`<div class="pf-buttons"` + wrapperStyle(ctx, comp) + `>`)

	rendered := 0
	for _, button := range buttons {
		text := strings.TrimSpace(getString(button, "text"))
		link := strings.TrimSpace(getString(button, "link"))
		if text == "" || link == "" {
			continue
		}

		variant := normalizeButtonVariant(getString(button, "variant"))

		var style styleAttr
		style.add("border-radius", radius)
		switch variant {
		case "primary":
			style.add("background-color", primary)
			style.add("color", "#ffffff")
		case "outline":
			style.add("border-color", primary)
			style.add("color", primary)
		}

		sb.WriteString(`<a class="pf-buttons__button pf-buttons__button--` + variant + `" href="` + esc(link) + `"` + style.String() + `>`)
		if icon := strings.TrimSpace(getString(button, "icon")); icon != "" {
			sb.WriteString(`<span class="pf-buttons__icon pf-buttons__icon--` + esc(icon) + `"></span>`)
		}
		sb.WriteString(esc(text))
		sb.WriteString(`</a>`)
		rendered++
	}
	sb.WriteString(`</div>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-buttons", "Add a button")
	}
	return sb.String()
}

func normalizeButtonVariant(value string) string {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "secondary":
		return "secondary"
	case "outline":
		return "outline"
	default:
		return "primary"
	}
}
