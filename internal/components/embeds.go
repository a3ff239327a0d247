package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterGitHub registers the GitHub activity component.
func RegisterGitHub(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeGitHub,
		Name:        "GitHub",
		Description: "Link to a GitHub profile with an optional contribution chart",
		Category:    "embed",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"username": "", "showChart": true}
		},
		Render: renderGitHub,
	})
}

func renderGitHub(ctx *Context, comp models.Component) string {
	username := strings.TrimSpace(getString(comp.Data, "username"))
	if username == "" {
		return editPlaceholder(ctx, "pf-github", "Add your GitHub username")
	}

	var linkStyle styleAttr
	linkStyle.add("color", resolve(comp.Styles.Color, ctx.Palette.PrimaryColor, "#2563eb"))

	var sb strings.Builder
	sb.WriteString(`<div class="pf-github"` + wrapperStyle(ctx, comp) + `>`)
	sb.WriteString(`<a class="pf-github__link" href="https://github.com/` + esc(username) + `" target="_blank" rel="noopener noreferrer"` + linkStyle.String() + `>@` + esc(username) + `</a>`)
	if getBool(comp.Data, "showChart", true) {
		sb.WriteString(`<img class="pf-github__chart" src="https://ghchart.rshah.org/` + esc(username) + `" alt="GitHub contribution chart for ` + esc(username) + `" loading="lazy" />`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// RegisterSpotify registers the Spotify embed component.
func RegisterSpotify(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeSpotify,
		Name:        "Spotify",
		Description: "Embedded Spotify player for a track, album or playlist",
		Category:    "embed",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"embedUrl": ""}
		},
		Render: renderSpotify,
	})
}

func renderSpotify(ctx *Context, comp models.Component) string {
	embedURL := strings.TrimSpace(getString(comp.Data, "embedUrl"))
	if embedURL == "" || !isSpotifyEmbed(embedURL) {
		return editPlaceholder(ctx, "pf-spotify", "Paste a Spotify embed link")
	}

	var sb strings.Builder
	sb.WriteString(`<div class="pf-spotify"` + wrapperStyle(ctx, comp) + `>`)
	sb.WriteString(`<iframe class="pf-spotify__frame" src="` + esc(embedURL) + `" width="100%" height="152" frameborder="0" allow="encrypted-media" loading="lazy"></iframe>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

// Only embed URLs from Spotify's own embed host are accepted; anything
// else stored in the document is treated as empty.
func isSpotifyEmbed(raw string) bool {
	return strings.HasPrefix(raw, "https://open.spotify.com/embed/")
}
