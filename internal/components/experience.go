package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterExperience registers the work experience timeline component.
func RegisterExperience(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeExperience,
		Name:        "Experience",
		Description: "A timeline of roles and companies",
		Category:    "career",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{
				"title": "Experience",
				"items": []interface{}{},
			}
		},
		Render: renderExperience,
	})
}

func renderExperience(ctx *Context, comp models.Component) string {
	items := getMaps(comp.Data, "items")
	if len(items) == 0 {
		return editPlaceholder(ctx, "pf-experience", "Add a role")
	}

	title := strings.TrimSpace(getString(comp.Data, "title"))
	palette := ctx.Palette

	var roleStyle styleAttr
	roleStyle.add("color", resolve(comp.Styles.TitleColor, palette.TitleColor, "#111827"))

	var bodyStyle styleAttr
	bodyStyle.add("color", resolve(comp.Styles.Color, palette.DescriptionColor, "#4b5563"))

	var sb strings.Builder
	sb.WriteString(`<div class="pf-experience"` + wrapperStyle(ctx, comp) + `>`)
	writeSectionTitle(ctx, &sb, comp, "pf-experience", title)
	sb.WriteString(`<ol class="pf-experience__timeline">`)

	rendered := 0
	for _, item := range items {
		role := strings.TrimSpace(getString(item, "role"))
		company := strings.TrimSpace(getString(item, "company"))
		if role == "" && company == "" {
			continue
		}

		sb.WriteString(`<li class="pf-experience__item">`)
		if role != "" {
			sb.WriteString(`<h3 class="pf-experience__role"` + roleStyle.String() + `>` + esc(role) + `</h3>`)
		}
		if company != "" {
			sb.WriteString(`<p class="pf-experience__company"` + bodyStyle.String() + `>` + esc(company) + `</p>`)
		}
		if period := strings.TrimSpace(getString(item, "period")); period != "" {
			sb.WriteString(`<p class="pf-experience__period"` + bodyStyle.String() + `>` + esc(period) + `</p>`)
		}
		if description := strings.TrimSpace(getString(item, "description")); description != "" {
			sb.WriteString(`<p class="pf-experience__description"` + bodyStyle.String() + `>` + ctx.sanitize(description) + `</p>`)
		}
		sb.WriteString(`</li>`)
		rendered++
	}
	sb.WriteString(`</ol></div>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-experience", "Add a role")
	}
	return sb.String()
}

// RegisterProjects registers the project showcase component.
func RegisterProjects(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeProjects,
		Name:        "Projects",
		Description: "Cards showcasing selected projects",
		Category:    "career",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{
				"title":    "Projects",
				"projects": []interface{}{},
			}
		},
		Render: renderProjects,
	})
}

func renderProjects(ctx *Context, comp models.Component) string {
	projects := getMaps(comp.Data, "projects")
	if len(projects) == 0 {
		return editPlaceholder(ctx, "pf-projects", "Add a project")
	}

	title := strings.TrimSpace(getString(comp.Data, "title"))
	palette := ctx.Palette
	radius := resolve(comp.Styles.BorderRadius, palette.BorderRadius, "8px")

	var nameStyle styleAttr
	nameStyle.add("color", resolve(comp.Styles.TitleColor, palette.TitleColor, "#111827"))

	var bodyStyle styleAttr
	bodyStyle.add("color", resolve(comp.Styles.Color, palette.DescriptionColor, "#4b5563"))

	var sb strings.Builder
	sb.WriteString(`<div class="pf-projects"` + wrapperStyle(ctx, comp) + `>`)
	writeSectionTitle(ctx, &sb, comp, "pf-projects", title)
	sb.WriteString(`<div class="pf-projects__grid">`)

	rendered := 0
	for _, project := range projects {
		name := strings.TrimSpace(getString(project, "title"))
		if name == "" {
			continue
		}

		var cardStyle styleAttr
		cardStyle.add("border-radius", radius)

		sb.WriteString(`<article class="pf-projects__card"` + cardStyle.String() + `>`)
		if imageURL := strings.TrimSpace(getString(project, "imageUrl")); imageURL != "" {
			sb.WriteString(`<img class="pf-projects__image" src="` + esc(imageURL) + `" alt="` + esc(name) + `" />`)
		}
		sb.WriteString(`<h3 class="pf-projects__name"` + nameStyle.String() + `>` + esc(name) + `</h3>`)
		if description := strings.TrimSpace(getString(project, "description")); description != "" {
			sb.WriteString(`<p class="pf-projects__description"` + bodyStyle.String() + `>` + ctx.sanitize(description) + `</p>`)
		}
		if tags := getStrings(project, "tags"); len(tags) > 0 {
			sb.WriteString(`<ul class="pf-projects__tags">`)
			for _, tag := range tags {
				sb.WriteString(`<li class="pf-projects__tag">` + esc(tag) + `</li>`)
			}
			sb.WriteString(`</ul>`)
		}
		if link := strings.TrimSpace(getString(project, "link")); link != "" {
			sb.WriteString(`<a class="pf-projects__link" href="` + esc(link) + `">View project</a>`)
		}
		sb.WriteString(`</article>`)
		rendered++
	}
	sb.WriteString(`</div></div>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-projects", "Add a project")
	}
	return sb.String()
}
