package components

import (
	"strconv"
	"strings"

	"portfolio-builder-backend/internal/models"
)

// Structural components carry no content of their own. The divider,
// spacer and navigation render on public pages; the layout container
// exists only for the editor.

func RegisterDivider(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeDivider,
		Name:        "Divider",
		Description: "A horizontal rule between sections",
		Category:    "structure",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"style": "solid", "width": "100%"}
		},
		Render: renderDivider,
	})
}

func renderDivider(ctx *Context, comp models.Component) string {
	style := getStringOr(comp.Data, "style", "solid")
	switch style {
	case "solid", "dashed", "dotted":
	default:
		style = "solid"
	}
	width := getStringOr(comp.Data, "width", "100%")

	var attr styleAttr
	attr.add("border-top-style", style)
	attr.add("width", width)
	attr.add("border-color", resolve(comp.Styles.Color, ctx.Palette.DescriptionColor, "#e5e7eb"))
	return `<hr class="pf-divider"` + attr.String() + ` />`
}

func RegisterSpacer(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeSpacer,
		Name:        "Spacer",
		Description: "Vertical whitespace between sections",
		Category:    "structure",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"height": 32}
		},
		Render: renderSpacer,
	})
}

func renderSpacer(ctx *Context, comp models.Component) string {
	height := getInt(comp.Data, "height", 32)
	if height < 0 {
		height = 0
	}
	if height > 512 {
		height = 512
	}
	var attr styleAttr
	attr.add("height", strconv.Itoa(height)+"px")
	if ctx.Editable() {
		return `<div class="pf-spacer pf-spacer--editing"` + attr.String() + `></div>`
	}
	return `<div class="pf-spacer" aria-hidden="true"` + attr.String() + `></div>`
}

func RegisterNavigation(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeNavigation,
		Name:        "Navigation",
		Description: "In-page links to other sections",
		Category:    "structure",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"links": []interface{}{}}
		},
		Render: renderNavigation,
	})
}

func renderNavigation(ctx *Context, comp models.Component) string {
	links := getMaps(comp.Data, "links")

	var linkStyle styleAttr
	linkStyle.add("color", resolve(comp.Styles.Color, ctx.Palette.TitleColor, "#111827"))

	var sb strings.Builder
	sb.WriteString(`<nav class="pf-navigation"` + wrapperStyle(ctx, comp) + `>`)
	rendered := 0
	for _, link := range links {
		label := strings.TrimSpace(getString(link, "label"))
		target := strings.TrimSpace(getString(link, "target"))
		if label == "" || target == "" {
			continue
		}
		rendered++
		sb.WriteString(`<a class="pf-navigation__link" href="` + esc(target) + `"` + linkStyle.String() + `>` + esc(label) + `</a>`)
	}
	sb.WriteString(`</nav>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-navigation", "Add navigation links")
	}
	return sb.String()
}

// RegisterLayout registers the editor-only layout container. It is never
// part of public output.
func RegisterLayout(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeLayout,
		Name:        "Layout",
		Description: "Editor grid container for arranging components",
		Category:    "structure",
		Public:      false,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"columns": 2, "gap": 16}
		},
		Render: renderLayout,
	})
}

func renderLayout(ctx *Context, comp models.Component) string {
	if !ctx.Editable() {
		return ""
	}
	columns := getInt(comp.Data, "columns", 2)
	if columns < 1 {
		columns = 1
	}
	if columns > 4 {
		columns = 4
	}
	gap := getInt(comp.Data, "gap", 16)
	if gap < 0 {
		gap = 0
	}

	var attr styleAttr
	attr.add("display", "grid")
	attr.add("grid-template-columns", "repeat("+strconv.Itoa(columns)+", 1fr)")
	attr.add("gap", strconv.Itoa(gap)+"px")
	return `<div class="pf-layout" data-columns="` + strconv.Itoa(columns) + `"` + attr.String() + `></div>`
}
