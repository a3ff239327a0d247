package components

import (
	"fmt"
	"html/template"
	"strings"

	"portfolio-builder-backend/internal/models"
)

func getString(data models.JSONMap, key string) string {
	if data == nil {
		return ""
	}
	if value, ok := data[key]; ok {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}

// getStringOr falls back when the field is missing, mistyped or blank, so
// legacy payloads degrade to the type's documented default instead of
// failing the render.
func getStringOr(data models.JSONMap, key, fallback string) string {
	value := strings.TrimSpace(getString(data, key))
	if value == "" {
		return fallback
	}
	return value
}

func getBool(data models.JSONMap, key string, fallback bool) bool {
	if data == nil {
		return fallback
	}
	switch v := data[key].(type) {
	case bool:
		return v
	case string:
		switch strings.TrimSpace(strings.ToLower(v)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}

func getInt(data models.JSONMap, key string, fallback int) int {
	if data == nil {
		return fallback
	}
	switch v := data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}

// getMaps extracts a list-of-objects field. Entries that are not objects
// are dropped rather than failing the whole list.
func getMaps(data models.JSONMap, key string) []models.JSONMap {
	if data == nil {
		return nil
	}

	raw, ok := data[key].([]interface{})
	if !ok {
		return nil
	}

	result := make([]models.JSONMap, 0, len(raw))
	for _, item := range raw {
		if entry, ok := item.(map[string]interface{}); ok {
			result = append(result, models.JSONMap(entry))
		}
	}
	return result
}

func getStrings(data models.JSONMap, key string) []string {
	if data == nil {
		return nil
	}

	raw, ok := data[key].([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(raw))
	for _, item := range raw {
		if str, ok := item.(string); ok && strings.TrimSpace(str) != "" {
			result = append(result, str)
		}
	}
	return result
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}

// resolve implements the per-property style fallback chain: component
// override first, then the palette token, then the renderer's hardcoded
// constant. Each property resolves independently.
func resolve(override *string, paletteValue, fallback string) string {
	if override != nil && strings.TrimSpace(*override) != "" {
		return strings.TrimSpace(*override)
	}
	if strings.TrimSpace(paletteValue) != "" {
		return strings.TrimSpace(paletteValue)
	}
	return fallback
}

// styleAttr accumulates CSS declarations and emits a style attribute, or
// nothing when no declaration was added.
type styleAttr struct {
	sb strings.Builder
}

func (s *styleAttr) add(property, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	s.sb.WriteString(esc(property))
	s.sb.WriteString(":")
	s.sb.WriteString(esc(value))
	s.sb.WriteString(";")
}

func (s *styleAttr) String() string {
	if s.sb.Len() == 0 {
		return ""
	}
	return fmt.Sprintf(` style="%s"`, s.sb.String())
}

// wrapperStyle resolves the box-level overrides every component shares.
func wrapperStyle(ctx *Context, comp models.Component) string {
	palette := ctx.Palette

	var attr styleAttr
	if comp.Styles.BackgroundColor != nil {
		attr.add("background-color", *comp.Styles.BackgroundColor)
	}
	attr.add("border-radius", resolve(comp.Styles.BorderRadius, palette.BorderRadius, ""))
	if comp.Styles.Padding != nil {
		attr.add("padding", *comp.Styles.Padding)
	}
	if comp.Styles.Margin != nil {
		attr.add("margin", *comp.Styles.Margin)
	}
	if comp.Styles.BoxShadow != nil {
		attr.add("box-shadow", *comp.Styles.BoxShadow)
	}
	if comp.Styles.MaxWidth != nil {
		attr.add("max-width", *comp.Styles.MaxWidth)
	}
	if comp.Styles.TextAlign != nil {
		attr.add("text-align", *comp.Styles.TextAlign)
	}
	return attr.String()
}

// editPlaceholder renders the add-content affordance shown in the builder
// when a component has nothing to display yet.
func editPlaceholder(ctx *Context, class, message string) string {
	if !ctx.Editable() {
		return ""
	}
	return `<div class="` + class + ` ` + class + `--empty">` + esc(message) + `</div>`
}
