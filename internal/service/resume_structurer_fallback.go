package service

import (
	"context"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRegex = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?(?:\(\d{2,4}\)[\s.\-]?)?\d{2,4}[\s.\-]?\d{2,4}[\s.\-]?\d{2,4}`)
	yearsRegex = regexp.MustCompile(`(?i)(\d{1,2})\+?\s*(?:years?|yrs?)`)
)

var sectionHeadings = map[string]string{
	"skills":               "skills",
	"technical skills":     "skills",
	"core skills":          "skills",
	"technologies":         "skills",
	"experience":           "work",
	"work experience":      "work",
	"employment":           "work",
	"employment history":   "work",
	"professional history": "work",
	"education":            "education",
	"summary":              "bio",
	"about":                "bio",
	"about me":             "bio",
	"profile":              "bio",
	"objective":            "bio",
}

var jobTitleKeywords = []string{
	"engineer", "developer", "designer", "manager", "architect", "analyst",
	"consultant", "scientist", "specialist", "lead", "director", "writer",
	"marketer", "photographer", "researcher", "administrator",
}

// HeuristicResumeStructurer parses resume text with line and section
// heuristics. It is the fallback when no language model is configured and
// the safety net when the model call fails.
type HeuristicResumeStructurer struct{}

func NewHeuristicResumeStructurer() *HeuristicResumeStructurer {
	return &HeuristicResumeStructurer{}
}

func (s *HeuristicResumeStructurer) Structure(_ context.Context, text string) (*ResumeProfile, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResume
	}

	profile := &ResumeProfile{}
	profile.Email = emailRegex.FindString(text)
	profile.Phone = findPhone(text)
	if match := yearsRegex.FindStringSubmatch(text); match != nil {
		profile.Experience = match[1] + "+ years"
	}

	lines := strings.Split(text, "\n")
	profile.FullName = findName(lines)
	profile.JobTitle = findJobTitle(lines)

	sections := splitSections(lines)
	profile.Skills = parseSkills(sections["skills"])
	profile.Education = strings.TrimSpace(strings.Join(sections["education"], "\n"))
	profile.WorkHistory = strings.TrimSpace(strings.Join(sections["work"], "\n"))
	profile.Bio = firstParagraph(sections["bio"])

	return profile, nil
}

// findName assumes the resume opens with the candidate's name: the first
// short line that is not an email, phone or heading.
func findName(lines []string) string {
	for _, line := range lines[:min(len(lines), 5)] {
		line = strings.TrimSpace(line)
		if line == "" || emailRegex.MatchString(line) {
			continue
		}
		if _, isHeading := sectionHeadings[strings.ToLower(line)]; isHeading {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 1 && len(words) <= 4 && len(line) <= 60 {
			return line
		}
	}
	return ""
}

func findJobTitle(lines []string) string {
	for _, line := range lines[:min(len(lines), 8)] {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > 80 {
			continue
		}
		lower := strings.ToLower(line)
		for _, keyword := range jobTitleKeywords {
			if strings.Contains(lower, keyword) {
				return line
			}
		}
	}
	return ""
}

func findPhone(text string) string {
	for _, candidate := range phoneRegex.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		// Enough digits to be a phone number, not a year or a zip code.
		if digits >= 7 && digits <= 15 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// splitSections groups lines under the nearest recognised heading.
func splitSections(lines []string) map[string][]string {
	sections := map[string][]string{}
	current := ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line), ":"))
		if key, ok := sectionHeadings[strings.ToLower(trimmed)]; ok {
			current = key
			continue
		}
		if current != "" && strings.TrimSpace(line) != "" {
			sections[current] = append(sections[current], strings.TrimSpace(line))
		}
	}
	return sections
}

func parseSkills(lines []string) []string {
	var skills []string
	seen := map[string]bool{}
	for _, line := range lines {
		for _, part := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == '|' || r == '•' || r == '·'
		}) {
			skill := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(part), "-"))
			if skill == "" || len(skill) > 40 || seen[strings.ToLower(skill)] {
				continue
			}
			seen[strings.ToLower(skill)] = true
			skills = append(skills, skill)
		}
	}
	return skills
}

func firstParagraph(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			break
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strings.TrimSpace(line))
		if sb.Len() > 400 {
			break
		}
	}
	return sb.String()
}
