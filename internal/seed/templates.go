package seed

import (
	"sort"
	"strings"

	"portfolio-builder-backend/internal/components"
	"portfolio-builder-backend/internal/models"
)

// A starter template is an ordered list of component blueprints. Each entry
// starts from the type's registry defaults and overlays template-specific
// data, so templates never drift from the types' schemas.
type blueprint struct {
	componentType string
	data          models.JSONMap
}

type template struct {
	Name        string
	Description string
	blueprints  []blueprint
}

var templates = map[string]template{
	"blank": {
		Name:        "Blank",
		Description: "An empty page to build from scratch",
	},
	"minimal": {
		Name:        "Minimal",
		Description: "Name, a short bio and contact details",
		blueprints: []blueprint{
			{componentType: components.TypeHeader, data: models.JSONMap{
				"title":    "Your Name",
				"subtitle": "What you do",
			}},
			{componentType: components.TypeText, data: models.JSONMap{
				"content": "A few sentences about who you are and what you care about.",
			}},
			{componentType: components.TypeDivider, data: nil},
			{componentType: components.TypeContactDetails, data: nil},
			{componentType: components.TypeSocialMedia, data: nil},
		},
	},
	"developer": {
		Name:        "Developer",
		Description: "Profile, skills, projects and experience for engineers",
		blueprints: []blueprint{
			{componentType: components.TypeProfile, data: models.JSONMap{
				"name":     "Your Name",
				"jobTitle": "Software Engineer",
				"bio":      "I build reliable software.",
			}},
			{componentType: components.TypeSkills, data: models.JSONMap{
				"title":  "Skills",
				"skills": []interface{}{},
			}},
			{componentType: components.TypeProjects, data: models.JSONMap{
				"title":    "Projects",
				"projects": []interface{}{},
			}},
			{componentType: components.TypeExperience, data: models.JSONMap{
				"title": "Experience",
				"items": []interface{}{},
			}},
			{componentType: components.TypeGitHub, data: nil},
			{componentType: components.TypeContactForm, data: nil},
		},
	},
	"creative": {
		Name:        "Creative",
		Description: "Gallery-first layout for designers and photographers",
		blueprints: []blueprint{
			{componentType: components.TypeHeader, data: models.JSONMap{
				"title": "Your Name",
			}},
			{componentType: components.TypeGallery, data: nil},
			{componentType: components.TypeServices, data: models.JSONMap{
				"title":    "Services",
				"services": []interface{}{},
			}},
			{componentType: components.TypeReview, data: nil},
			{componentType: components.TypeContactForm, data: nil},
		},
	},
}

// Build instantiates the named template against the registry. Unknown names
// fall back to an empty document with ok=false so callers can tell a typo
// from the blank template.
func Build(name string, reg *components.Registry) (models.ComponentList, bool) {
	tpl, ok := templates[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return models.ComponentList{}, false
	}

	list := make(models.ComponentList, 0, len(tpl.blueprints))
	for _, bp := range tpl.blueprints {
		comp, err := reg.NewComponent(bp.componentType)
		if err != nil {
			// A template referencing an unregistered type is a programming
			// error; skip the entry rather than fail site creation.
			continue
		}
		for key, value := range bp.data {
			comp.Data[key] = value
		}
		list = append(list, comp)
	}
	return list, true
}

// TemplateInfo is the dashboard-facing description of one starter template.
type TemplateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func ListTemplates() []TemplateInfo {
	result := make([]TemplateInfo, 0, len(templates))
	for id, tpl := range templates {
		result = append(result, TemplateInfo{ID: id, Name: tpl.Name, Description: tpl.Description})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
