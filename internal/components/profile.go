package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterProfile registers the profile card component.
func RegisterProfile(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeProfile,
		Name:        "Profile",
		Description: "Name, job title, bio and location",
		Category:    "about",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{
				"name":     "Your Name",
				"jobTitle": "",
				"bio":      "",
				"location": "",
				"photoUrl": "",
			}
		},
		Render: renderProfile,
	})
}

func renderProfile(ctx *Context, comp models.Component) string {
	name := getStringOr(comp.Data, "name", "Your Name")
	jobTitle := strings.TrimSpace(getString(comp.Data, "jobTitle"))
	bio := strings.TrimSpace(getString(comp.Data, "bio"))
	location := strings.TrimSpace(getString(comp.Data, "location"))
	photoURL := strings.TrimSpace(getString(comp.Data, "photoUrl"))

	palette := ctx.Palette

	var nameStyle styleAttr
	nameStyle.add("color", resolve(comp.Styles.TitleColor, palette.TitleColor, "#111827"))

	var bodyStyle styleAttr
	bodyStyle.add("color", resolve(comp.Styles.Color, palette.DescriptionColor, "#4b5563"))

	var sb strings.Builder
	sb.WriteString(`<div class="pf-profile"` + wrapperStyle(ctx, comp) + `>`)
	if photoURL != "" {
		sb.WriteString(`<img class="pf-profile__photo" src="` + esc(photoURL) + `" alt="` + esc(name) + `" />`)
	}
	sb.WriteString(`<div class="pf-profile__body">`)
	sb.WriteString(`<h2 class="pf-profile__name"` + nameStyle.String() + `>` + esc(name) + `</h2>`)
	if jobTitle != "" {
		sb.WriteString(`<p class="pf-profile__role"` + bodyStyle.String() + `>` + esc(jobTitle) + `</p>`)
	}
	if location != "" {
		sb.WriteString(`<p class="pf-profile__location"` + bodyStyle.String() + `>` + esc(location) + `</p>`)
	}
	if bio != "" {
		sb.WriteString(`<p class="pf-profile__bio"` + bodyStyle.String() + `>` + ctx.sanitize(bio) + `</p>`)
	}
	sb.WriteString(`</div></div>`)
	return sb.String()
}

// RegisterProfilePhoto registers the standalone profile photo component.
func RegisterProfilePhoto(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeProfilePhoto,
		Name:        "Profile Photo",
		Description: "A standalone portrait image",
		Category:    "about",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"url": "", "alt": "", "shape": "circle"}
		},
		Render: renderProfilePhoto,
	})
}

func renderProfilePhoto(ctx *Context, comp models.Component) string {
	url := strings.TrimSpace(getString(comp.Data, "url"))
	if url == "" {
		return editPlaceholder(ctx, "pf-profile-photo", "Add a photo")
	}

	alt := getStringOr(comp.Data, "alt", "Profile photo")
	shape := normalizePhotoShape(getString(comp.Data, "shape"))

	var style styleAttr
	if shape == "rounded" {
		style.add("border-radius", resolve(comp.Styles.BorderRadius, ctx.Palette.BorderRadius, "8px"))
	}

	return `<div class="pf-profile-photo pf-profile-photo--` + shape + `"` + wrapperStyle(ctx, comp) + `>` +
		`<img class="pf-profile-photo__img" src="` + esc(url) + `" alt="` + esc(alt) + `"` + style.String() + ` /></div>`
}

func normalizePhotoShape(value string) string {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "square":
		return "square"
	case "rounded":
		return "rounded"
	default:
		return "circle"
	}
}
