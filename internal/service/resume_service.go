package service

import (
	"context"
	"io"
	"strings"

	"portfolio-builder-backend/internal/components"
	"portfolio-builder-backend/internal/models"
	"portfolio-builder-backend/pkg/logger"
	"portfolio-builder-backend/pkg/validator"
)

// ResumeService parses uploaded resumes and applies the result to a website
// document. When a language model structurer is configured it is tried
// first; the heuristic parser is both the no-model default and the safety
// net for model failures.
type ResumeService struct {
	websiteService *WebsiteService
	registry       *components.Registry
	structurer     ResumeStructurer
	fallback       ResumeStructurer
}

func NewResumeService(websiteService *WebsiteService, registry *components.Registry, structurer ResumeStructurer) *ResumeService {
	return &ResumeService{
		websiteService: websiteService,
		registry:       registry,
		structurer:     structurer,
		fallback:       NewHeuristicResumeStructurer(),
	}
}

// Parse extracts text from the uploaded file and structures it into a
// profile.
func (s *ResumeService) Parse(ctx context.Context, filename string, file io.ReaderAt, size int64) (*ResumeProfile, error) {
	text, err := ExtractResumeText(filename, file, size)
	if err != nil {
		return nil, err
	}

	if s.structurer != nil {
		profile, err := s.structurer.Structure(ctx, text)
		if err == nil {
			return sanitizeProfile(profile), nil
		}
		logger.Warn("Resume structuring via model failed, using heuristics", map[string]interface{}{
			"error": err.Error(),
		})
	}

	profile, err := s.fallback.Structure(ctx, text)
	if err != nil {
		return nil, err
	}
	return sanitizeProfile(profile), nil
}

// Apply overlays a parsed profile onto a website. Existing components of a
// type the profile feeds are updated in place; missing ones are appended, so
// re-importing a resume refreshes content instead of duplicating sections.
func (s *ResumeService) Apply(userID, websiteID uint, profile *ResumeProfile) (*models.Website, error) {
	site, err := s.websiteService.Get(userID, websiteID)
	if err != nil {
		return nil, err
	}

	for _, section := range profileSections(profile) {
		if index := findComponentByType(site.Components, section.componentType); index >= 0 {
			site.Components = site.Components.Update(site.Components[index].ID, section.data)
			continue
		}
		comp, err := s.registry.NewComponent(section.componentType)
		if err != nil {
			continue
		}
		for key, value := range section.data {
			comp.Data[key] = value
		}
		site.Components = append(site.Components, comp)
	}

	if site.Title == "" || site.Title == "Untitled" {
		if profile.FullName != "" {
			site.Title = profile.FullName
		}
	}

	return s.websiteService.save(site)
}

type profileSection struct {
	componentType string
	data          models.JSONMap
}

// profileSections maps profile fields to the components they populate, in
// page order. Sections with no data are skipped entirely.
func profileSections(profile *ResumeProfile) []profileSection {
	var sections []profileSection

	if profile.FullName != "" || profile.JobTitle != "" || profile.Bio != "" {
		data := models.JSONMap{}
		if profile.FullName != "" {
			data["name"] = profile.FullName
		}
		if profile.JobTitle != "" {
			data["jobTitle"] = profile.JobTitle
		}
		if profile.Bio != "" {
			data["bio"] = profile.Bio
		}
		if profile.Location != "" {
			data["location"] = profile.Location
		}
		sections = append(sections, profileSection{components.TypeProfile, data})
	}

	if len(profile.Skills) > 0 {
		skills := make([]interface{}, 0, len(profile.Skills))
		for _, skill := range profile.Skills {
			skills = append(skills, map[string]interface{}{"name": skill})
		}
		sections = append(sections, profileSection{components.TypeSkills, models.JSONMap{
			"title":  "Skills",
			"skills": skills,
		}})
	}

	if profile.WorkHistory != "" {
		sections = append(sections, profileSection{components.TypeExperience, models.JSONMap{
			"title": "Experience",
			"items": []interface{}{map[string]interface{}{
				"role":        profile.JobTitle,
				"description": profile.WorkHistory,
			}},
		}})
	}

	if profile.Education != "" {
		sections = append(sections, profileSection{components.TypeText, models.JSONMap{
			"content": profile.Education,
		}})
	}

	if profile.Email != "" || profile.Phone != "" || profile.Location != "" {
		data := models.JSONMap{}
		if profile.Email != "" {
			data["email"] = profile.Email
		}
		if profile.Phone != "" {
			data["phone"] = profile.Phone
		}
		if profile.Location != "" {
			data["location"] = profile.Location
		}
		sections = append(sections, profileSection{components.TypeContactDetails, data})
	}

	return sections
}

func findComponentByType(list models.ComponentList, componentType string) int {
	for i, comp := range list {
		if comp.Type == componentType {
			return i
		}
	}
	return -1
}

// sanitizeProfile strips markup from every field. Model output and raw
// resume text are both untrusted.
func sanitizeProfile(profile *ResumeProfile) *ResumeProfile {
	if profile == nil {
		return &ResumeProfile{}
	}

	clean := func(s string) string {
		return strings.TrimSpace(validator.SanitizeString(s))
	}

	profile.FullName = clean(profile.FullName)
	profile.Email = clean(profile.Email)
	profile.Phone = clean(profile.Phone)
	profile.JobTitle = clean(profile.JobTitle)
	profile.Experience = clean(profile.Experience)
	profile.Location = clean(profile.Location)
	profile.Bio = clean(profile.Bio)
	profile.Education = clean(profile.Education)
	profile.WorkHistory = clean(profile.WorkHistory)

	skills := profile.Skills[:0]
	for _, skill := range profile.Skills {
		if cleaned := clean(skill); cleaned != "" {
			skills = append(skills, cleaned)
		}
	}
	profile.Skills = skills

	return profile
}
