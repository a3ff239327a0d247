package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterAward registers the awards list component.
func RegisterAward(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeAward,
		Name:        "Awards",
		Description: "Recognitions and awards you have received",
		Category:    "career",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"awards": []interface{}{}}
		},
		Render: renderAward,
	})
}

func renderAward(ctx *Context, comp models.Component) string {
	awards := getMaps(comp.Data, "awards")
	if len(awards) == 0 {
		return editPlaceholder(ctx, "pf-awards", "Add an award")
	}

	palette := ctx.Palette

	var titleStyle styleAttr
	titleStyle.add("color", resolve(comp.Styles.TitleColor, palette.TitleColor, "#111827"))

	var bodyStyle styleAttr
	bodyStyle.add("color", resolve(comp.Styles.Color, palette.DescriptionColor, "#4b5563"))

	var sb strings.Builder
	sb.WriteString(`<ul class="pf-awards"` + wrapperStyle(ctx, comp) + `>`)

	rendered := 0
	for _, award := range awards {
		title := strings.TrimSpace(getString(award, "title"))
		if title == "" {
			continue
		}

		sb.WriteString(`<li class="pf-awards__item">`)
		if image := strings.TrimSpace(getString(award, "image")); image != "" {
			sb.WriteString(`<img class="pf-awards__image" src="` + esc(image) + `" alt="` + esc(title) + `" />`)
		}
		sb.WriteString(`<h3 class="pf-awards__title"` + titleStyle.String() + `>` + esc(title) + `</h3>`)

		organization := strings.TrimSpace(getString(award, "organization"))
		year := strings.TrimSpace(getString(award, "year"))
		if organization != "" || year != "" {
			meta := organization
			if organization != "" && year != "" {
				meta += ", " + year
			} else if year != "" {
				meta = year
			}
			sb.WriteString(`<p class="pf-awards__meta"` + bodyStyle.String() + `>` + esc(meta) + `</p>`)
		}
		if description := strings.TrimSpace(getString(award, "description")); description != "" {
			sb.WriteString(`<p class="pf-awards__description"` + bodyStyle.String() + `>` + ctx.sanitize(description) + `</p>`)
		}
		sb.WriteString(`</li>`)
		rendered++
	}
	sb.WriteString(`</ul>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-awards", "Add an award")
	}
	return sb.String()
}

// RegisterReview registers the testimonials component.
func RegisterReview(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeReview,
		Name:        "Reviews",
		Description: "Testimonials from clients and colleagues",
		Category:    "business",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"reviews": []interface{}{}}
		},
		Render: renderReview,
	})
}

func renderReview(ctx *Context, comp models.Component) string {
	reviews := getMaps(comp.Data, "reviews")
	if len(reviews) == 0 {
		return editPlaceholder(ctx, "pf-reviews", "Add a review")
	}

	palette := ctx.Palette

	var authorStyle styleAttr
	authorStyle.add("color", resolve(comp.Styles.TitleColor, palette.TitleColor, "#111827"))

	var bodyStyle styleAttr
	bodyStyle.add("color", resolve(comp.Styles.Color, palette.DescriptionColor, "#4b5563"))

	var sb strings.Builder
	sb.WriteString(`<div class="pf-reviews"` + wrapperStyle(ctx, comp) + `>`)

	rendered := 0
	for _, review := range reviews {
		text := strings.TrimSpace(getString(review, "text"))
		if text == "" {
			continue
		}

		sb.WriteString(`<blockquote class="pf-reviews__item">`)
		sb.WriteString(`<p class="pf-reviews__text"` + bodyStyle.String() + `>` + ctx.sanitize(text) + `</p>`)

		author := strings.TrimSpace(getString(review, "author"))
		role := strings.TrimSpace(getString(review, "role"))
		if author != "" {
			sb.WriteString(`<footer class="pf-reviews__author"` + authorStyle.String() + `>` + esc(author))
			if role != "" {
				sb.WriteString(`<span class="pf-reviews__role">, ` + esc(role) + `</span>`)
			}
			sb.WriteString(`</footer>`)
		}

		if rating := getInt(review, "rating", 0); rating >= 1 && rating <= 5 {
			sb.WriteString(`<span class="pf-reviews__rating">` + strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating) + `</span>`)
		}
		sb.WriteString(`</blockquote>`)
		rendered++
	}
	sb.WriteString(`</div>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-reviews", "Add a review")
	}
	return sb.String()
}
