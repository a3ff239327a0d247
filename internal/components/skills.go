package components

import (
	"strconv"
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterSkills registers the skills list component.
func RegisterSkills(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeSkills,
		Name:        "Skills",
		Description: "A set of skills with optional proficiency levels",
		Category:    "about",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{
				"title":  "Skills",
				"skills": []interface{}{},
			}
		},
		Render: renderSkills,
	})
}

func renderSkills(ctx *Context, comp models.Component) string {
	skills := getMaps(comp.Data, "skills")

	// Older documents stored skills as a plain string list. Editing a
	// document upgrades the stored shape through the mutator so the
	// conversion happens once.
	if len(skills) == 0 {
		for _, name := range getStrings(comp.Data, "skills") {
			skills = append(skills, models.JSONMap{"name": name})
		}
		if len(skills) > 0 && ctx.Editable() && ctx.Mutator != nil {
			upgraded := make([]interface{}, len(skills))
			for i, skill := range skills {
				upgraded[i] = skill
			}
			ctx.Mutator.UpdateComponent(comp.ID, models.JSONMap{"skills": upgraded})
		}
	}
	if len(skills) == 0 {
		return editPlaceholder(ctx, "pf-skills", "Add skills")
	}

	title := strings.TrimSpace(getString(comp.Data, "title"))
	primary := resolve(nil, ctx.Palette.PrimaryColor, "#2563eb")

	var sb strings.Builder
	sb.WriteString(`<div class="pf-skills"` + wrapperStyle(ctx, comp) + `>`)
	writeSectionTitle(ctx, &sb, comp, "pf-skills", title)
	sb.WriteString(`<ul class="pf-skills__list">`)
	for _, skill := range skills {
		name := strings.TrimSpace(getString(skill, "name"))
		if name == "" {
			continue
		}

		sb.WriteString(`<li class="pf-skills__item">`)
		sb.WriteString(`<span class="pf-skills__name">` + esc(name) + `</span>`)
		if level := getInt(skill, "level", 0); level > 0 && level <= 100 {
			var barStyle styleAttr
			barStyle.add("width", strconv.Itoa(level)+"%")
			barStyle.add("background-color", primary)
			sb.WriteString(`<span class="pf-skills__bar"><span class="pf-skills__bar-fill"` + barStyle.String() + `></span></span>`)
		}
		sb.WriteString(`</li>`)
	}
	sb.WriteString(`</ul></div>`)
	return sb.String()
}

// RegisterTools registers the tools/stack component.
func RegisterTools(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeTools,
		Name:        "Tools",
		Description: "Badges for the tools and technologies you use",
		Category:    "about",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{
				"title": "Tools",
				"tools": []interface{}{},
			}
		},
		Render: renderTools,
	})
}

func renderTools(ctx *Context, comp models.Component) string {
	tools := getMaps(comp.Data, "tools")
	if len(tools) == 0 {
		return editPlaceholder(ctx, "pf-tools", "Add tools")
	}

	title := strings.TrimSpace(getString(comp.Data, "title"))
	radius := resolve(comp.Styles.BorderRadius, ctx.Palette.BorderRadius, "8px")

	var sb strings.Builder
	sb.WriteString(`<div class="pf-tools"` + wrapperStyle(ctx, comp) + `>`)
	writeSectionTitle(ctx, &sb, comp, "pf-tools", title)
	sb.WriteString(`<ul class="pf-tools__list">`)

	rendered := 0
	for _, tool := range tools {
		name := strings.TrimSpace(getString(tool, "name"))
		if name == "" {
			continue
		}

		var badgeStyle styleAttr
		badgeStyle.add("border-radius", radius)

		sb.WriteString(`<li class="pf-tools__item"` + badgeStyle.String() + `>`)
		if icon := strings.TrimSpace(getString(tool, "icon")); icon != "" {
			sb.WriteString(`<span class="pf-tools__icon pf-tools__icon--` + esc(icon) + `"></span>`)
		}
		sb.WriteString(esc(name))
		sb.WriteString(`</li>`)
		rendered++
	}
	sb.WriteString(`</ul></div>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-tools", "Add tools")
	}
	return sb.String()
}

// RegisterLanguages registers the spoken languages component.
func RegisterLanguages(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeLanguages,
		Name:        "Languages",
		Description: "Languages you speak with proficiency labels",
		Category:    "about",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"languages": []interface{}{}}
		},
		Render: renderLanguages,
	})
}

func renderLanguages(ctx *Context, comp models.Component) string {
	languages := getMaps(comp.Data, "languages")
	if len(languages) == 0 {
		return editPlaceholder(ctx, "pf-languages", "Add languages")
	}

	var bodyStyle styleAttr
	bodyStyle.add("color", resolve(comp.Styles.Color, ctx.Palette.DescriptionColor, "#4b5563"))

	var sb strings.Builder
	sb.WriteString(`<ul class="pf-languages"` + wrapperStyle(ctx, comp) + `>`)

	rendered := 0
	for _, language := range languages {
		name := strings.TrimSpace(getString(language, "name"))
		if name == "" {
			continue
		}

		sb.WriteString(`<li class="pf-languages__item"` + bodyStyle.String() + `>`)
		sb.WriteString(`<span class="pf-languages__name">` + esc(name) + `</span>`)
		if proficiency := strings.TrimSpace(getString(language, "proficiency")); proficiency != "" {
			sb.WriteString(`<span class="pf-languages__level">` + esc(proficiency) + `</span>`)
		}
		sb.WriteString(`</li>`)
		rendered++
	}
	sb.WriteString(`</ul>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-languages", "Add languages")
	}
	return sb.String()
}

// writeSectionTitle emits the shared section heading used by list-style
// components, resolving the title color through the fallback chain.
func writeSectionTitle(ctx *Context, sb *strings.Builder, comp models.Component, prefix, title string) {
	if title == "" {
		return
	}

	var style styleAttr
	style.add("color", resolve(comp.Styles.TitleColor, ctx.Palette.TitleColor, "#111827"))
	sb.WriteString(`<h2 class="` + prefix + `__title"` + style.String() + `>` + esc(title) + `</h2>`)
}
