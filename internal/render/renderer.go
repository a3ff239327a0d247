package render

import (
	"fmt"
	"html/template"
	"strings"

	"portfolio-builder-backend/internal/components"
	"portfolio-builder-backend/internal/models"
	"portfolio-builder-backend/pkg/logger"
	"portfolio-builder-backend/pkg/validator"
)

// Renderer turns a website document into HTML. Rendering is a pure function
// of the document and the mode: the same input always produces the same
// markup.
type Renderer struct {
	registry *components.Registry
}

func NewRenderer(registry *components.Registry) *Renderer {
	return &Renderer{registry: registry}
}

// Render produces the component tree markup for a website. In edit mode each
// component is wrapped with the data attributes the builder needs to select
// and manipulate it; in public mode builder-only types, unknown types and
// components with no content are dropped.
func (r *Renderer) Render(site *models.Website, mode components.Mode, mutator components.Mutator) string {
	if site == nil {
		return ""
	}

	ctx := &components.Context{
		Mode:     mode,
		Palette:  site.Palette.Normalized(),
		Sanitize: validator.SanitizeHTML,
		Mutator:  mutator,
	}

	var sb strings.Builder
	sb.WriteString(`<div class="pf-page"` + paletteStyle(ctx.Palette) + `>`)
	for _, comp := range site.Components {
		sb.WriteString(r.renderComponent(ctx, comp))
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func (r *Renderer) renderComponent(ctx *components.Context, comp models.Component) string {
	desc, ok := r.registry.Get(comp.Type)
	if !ok {
		// A stored type the registry does not know is a data error, not a
		// render crash. It is surfaced in the builder and logged, never
		// shown to visitors.
		logger.Error(fmt.Errorf("unknown component type"), "Skipping unrenderable component", map[string]interface{}{
			"component_id":   comp.ID,
			"component_type": comp.Type,
		})
		if ctx.Editable() {
			return `<div class="pf-component pf-component--unknown" data-component-id="` + template.HTMLEscapeString(comp.ID) + `">Unknown component type: ` + template.HTMLEscapeString(comp.Type) + `</div>`
		}
		return ""
	}

	if !ctx.Editable() && !desc.Public {
		return ""
	}

	output := desc.Render(ctx, comp)
	if !ctx.Editable() {
		// Empty output means empty content. Public pages show no trace of
		// the component, not an empty shell.
		if strings.TrimSpace(output) == "" {
			return ""
		}
		return output
	}

	var sb strings.Builder
	sb.WriteString(`<div class="pf-component" data-component-id="` + template.HTMLEscapeString(comp.ID) + `" data-component-type="` + template.HTMLEscapeString(desc.Type) + `">`)
	sb.WriteString(output)
	sb.WriteString(`</div>`)
	return sb.String()
}

// paletteStyle emits the document's theme tokens as CSS custom properties on
// the page root so component markup and external stylesheets resolve the
// same values.
func paletteStyle(palette models.DesignPalette) string {
	var sb strings.Builder
	sb.WriteString(` style="`)
	writeVar(&sb, "--pf-primary", palette.PrimaryColor)
	writeVar(&sb, "--pf-background", palette.BackgroundColor)
	writeVar(&sb, "--pf-title-color", palette.TitleColor)
	writeVar(&sb, "--pf-description-color", palette.DescriptionColor)
	writeVar(&sb, "--pf-font", palette.FontFamily)
	writeVar(&sb, "--pf-corner-radius", palette.BorderRadius)
	writeVar(&sb, "background-color", palette.BackgroundColor)
	writeVar(&sb, "font-family", fontStack(palette.FontFamily))
	sb.WriteString(`"`)
	return sb.String()
}

func writeVar(sb *strings.Builder, name, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	sb.WriteString(name)
	sb.WriteString(":")
	sb.WriteString(template.HTMLEscapeString(value))
	sb.WriteString(";")
}

func fontStack(family string) string {
	family = strings.TrimSpace(family)
	if family == "" {
		return "system-ui, sans-serif"
	}
	if strings.ContainsAny(family, " ") && !strings.HasPrefix(family, `'`) {
		family = "'" + family + "'"
	}
	return family + ", system-ui, sans-serif"
}
