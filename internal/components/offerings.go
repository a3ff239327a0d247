package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterServices registers the services grid component.
func RegisterServices(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeServices,
		Name:        "Services",
		Description: "A grid of services you offer",
		Category:    "business",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{
				"title":    "Services",
				"services": []interface{}{},
			}
		},
		Render: renderServices,
	})
}

func renderServices(ctx *Context, comp models.Component) string {
	services := getMaps(comp.Data, "services")
	if len(services) == 0 {
		return editPlaceholder(ctx, "pf-services", "Add a service")
	}

	title := strings.TrimSpace(getString(comp.Data, "title"))
	palette := ctx.Palette

	var nameStyle styleAttr
	nameStyle.add("color", resolve(comp.Styles.TitleColor, palette.TitleColor, "#111827"))

	var bodyStyle styleAttr
	bodyStyle.add("color", resolve(comp.Styles.Color, palette.DescriptionColor, "#4b5563"))

	var sb strings.Builder
	sb.WriteString(`<div class="pf-services"` + wrapperStyle(ctx, comp) + `>`)
	writeSectionTitle(ctx, &sb, comp, "pf-services", title)
	sb.WriteString(`<div class="pf-services__grid">`)

	rendered := 0
	for _, item := range services {
		name := strings.TrimSpace(getString(item, "title"))
		if name == "" {
			continue
		}

		sb.WriteString(`<article class="pf-services__card">`)
		if icon := strings.TrimSpace(getString(item, "icon")); icon != "" {
			sb.WriteString(`<span class="pf-services__icon pf-services__icon--` + esc(icon) + `"></span>`)
		}
		sb.WriteString(`<h3 class="pf-services__name"` + nameStyle.String() + `>` + esc(name) + `</h3>`)
		if description := strings.TrimSpace(getString(item, "description")); description != "" {
			sb.WriteString(`<p class="pf-services__description"` + bodyStyle.String() + `>` + ctx.sanitize(description) + `</p>`)
		}
		sb.WriteString(`</article>`)
		rendered++
	}
	sb.WriteString(`</div></div>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-services", "Add a service")
	}
	return sb.String()
}

// RegisterPricing registers the pricing table component.
func RegisterPricing(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypePricing,
		Name:        "Pricing",
		Description: "Tiered pricing cards with feature lists",
		Category:    "business",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{
				"title": "Pricing",
				"tiers": []interface{}{},
			}
		},
		Render: renderPricing,
	})
}

func renderPricing(ctx *Context, comp models.Component) string {
	tiers := getMaps(comp.Data, "tiers")
	if len(tiers) == 0 {
		return editPlaceholder(ctx, "pf-pricing", "Add a pricing tier")
	}

	title := strings.TrimSpace(getString(comp.Data, "title"))
	palette := ctx.Palette
	primary := resolve(nil, palette.PrimaryColor, "#2563eb")
	radius := resolve(comp.Styles.BorderRadius, palette.BorderRadius, "8px")

	var nameStyle styleAttr
	nameStyle.add("color", resolve(comp.Styles.TitleColor, palette.TitleColor, "#111827"))

	var sb strings.Builder
	sb.WriteString(`<div class="pf-pricing"` + wrapperStyle(ctx, comp) + `>`)
	writeSectionTitle(ctx, &sb, comp, "pf-pricing", title)
	sb.WriteString(`<div class="pf-pricing__grid">`)

	rendered := 0
	for _, tier := range tiers {
		name := strings.TrimSpace(getString(tier, "name"))
		price := strings.TrimSpace(getString(tier, "price"))
		if name == "" || price == "" {
			continue
		}

		highlighted := getBool(tier, "highlighted", false)

		var cardStyle styleAttr
		cardStyle.add("border-radius", radius)
		if highlighted {
			cardStyle.add("border-color", primary)
		}

		card := "pf-pricing__card"
		if highlighted {
			card += " pf-pricing__card--highlighted"
		}

		sb.WriteString(`<article class="` + card + `"` + cardStyle.String() + `>`)
		sb.WriteString(`<h3 class="pf-pricing__name"` + nameStyle.String() + `>` + esc(name) + `</h3>`)
		sb.WriteString(`<p class="pf-pricing__price">` + esc(price))
		if period := strings.TrimSpace(getString(tier, "period")); period != "" {
			sb.WriteString(`<span class="pf-pricing__period">/` + esc(period) + `</span>`)
		}
		sb.WriteString(`</p>`)

		if features := getStrings(tier, "features"); len(features) > 0 {
			sb.WriteString(`<ul class="pf-pricing__features">`)
			for _, feature := range features {
				sb.WriteString(`<li class="pf-pricing__feature">` + esc(feature) + `</li>`)
			}
			sb.WriteString(`</ul>`)
		}

		ctaText := strings.TrimSpace(getString(tier, "ctaText"))
		ctaLink := strings.TrimSpace(getString(tier, "ctaLink"))
		if ctaText != "" && ctaLink != "" {
			var ctaStyle styleAttr
			ctaStyle.add("background-color", primary)
			ctaStyle.add("border-radius", radius)
			sb.WriteString(`<a class="pf-pricing__cta" href="` + esc(ctaLink) + `"` + ctaStyle.String() + `>` + esc(ctaText) + `</a>`)
		}
		sb.WriteString(`</article>`)
		rendered++
	}
	sb.WriteString(`</div></div>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-pricing", "Add a pricing tier")
	}
	return sb.String()
}
