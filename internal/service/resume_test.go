package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-builder-backend/internal/components"
	"portfolio-builder-backend/internal/models"
)

const sampleResume = `Jane Doe
Senior Software Engineer
jane.doe@example.com
+1 415 555 0142

Summary
I build reliable backend systems and enjoy mentoring.
8 years of shipping production services.

Skills
Go, PostgreSQL, Redis, Kubernetes

Experience
Acme Corp, 2019-2024
Led the platform team.

Education
BSc Computer Science, MIT
`

func TestExtractPlainTextResume(t *testing.T) {
	data := []byte(sampleResume)
	text, err := ExtractResumeText("resume.txt", bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ExtractResumeText: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") {
		t.Fatalf("expected resume text, got %q", text)
	}
}

func TestExtractRejectsLegacyDoc(t *testing.T) {
	data := []byte("binary blob")
	_, err := ExtractResumeText("resume.doc", bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractRejectsUnknownExtension(t *testing.T) {
	data := []byte("content")
	_, err := ExtractResumeText("resume.odt", bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractEmptyResume(t *testing.T) {
	data := []byte("   \n\n  ")
	_, err := ExtractResumeText("resume.txt", bytes.NewReader(data), int64(len(data)))
	if !errors.Is(err, ErrEmptyResume) {
		t.Fatalf("expected ErrEmptyResume, got %v", err)
	}
}

func buildDocx(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	document, err := writer.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}

	var body strings.Builder
	body.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, paragraph := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + paragraph + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)
	if _, err := document.Write([]byte(body.String())); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractDocxResume(t *testing.T) {
	data := buildDocx(t, []string{"Jane Doe", "Software Engineer", "jane@example.com"})

	text, err := ExtractResumeText("resume.docx", bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ExtractResumeText: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") || !strings.Contains(text, "jane@example.com") {
		t.Fatalf("expected paragraphs in output, got %q", text)
	}
	if !strings.Contains(text, "\n") {
		t.Fatal("expected paragraph breaks as newlines")
	}
}

func TestHeuristicStructurer(t *testing.T) {
	profile, err := NewHeuristicResumeStructurer().Structure(context.Background(), sampleResume)
	if err != nil {
		t.Fatalf("Structure: %v", err)
	}

	if profile.FullName != "Jane Doe" {
		t.Fatalf("got name %q", profile.FullName)
	}
	if profile.Email != "jane.doe@example.com" {
		t.Fatalf("got email %q", profile.Email)
	}
	if profile.JobTitle != "Senior Software Engineer" {
		t.Fatalf("got job title %q", profile.JobTitle)
	}
	if profile.Experience != "8+ years" {
		t.Fatalf("got experience %q", profile.Experience)
	}
	if len(profile.Skills) != 4 || profile.Skills[0] != "Go" {
		t.Fatalf("got skills %v", profile.Skills)
	}
	if !strings.Contains(profile.Education, "MIT") {
		t.Fatalf("got education %q", profile.Education)
	}
	if !strings.Contains(profile.WorkHistory, "Acme Corp") {
		t.Fatalf("got work history %q", profile.WorkHistory)
	}
	if !strings.Contains(profile.Bio, "reliable backend systems") {
		t.Fatalf("got bio %q", profile.Bio)
	}
}

func TestOpenAIStructurerParsesFencedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"` +
			"```json\\n{\\\"fullName\\\":\\\"Jane Doe\\\",\\\"skills\\\":[\\\"Go\\\"]}\\n```" +
			`"}}]}`))
	}))
	defer server.Close()

	structurer, err := NewOpenAIResumeStructurer("test-key", OpenAIResumeOptions{
		Endpoint:   server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewOpenAIResumeStructurer: %v", err)
	}

	profile, err := structurer.Structure(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("Structure: %v", err)
	}
	if profile.FullName != "Jane Doe" {
		t.Fatalf("got %q", profile.FullName)
	}
	if len(profile.Skills) != 1 || profile.Skills[0] != "Go" {
		t.Fatalf("got skills %v", profile.Skills)
	}
}

func TestOpenAIStructurerRequiresKey(t *testing.T) {
	if _, err := NewOpenAIResumeStructurer("   ", OpenAIResumeOptions{}); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

type failingStructurer struct{}

func (failingStructurer) Structure(context.Context, string) (*ResumeProfile, error) {
	return nil, errors.New("model unavailable")
}

func TestParseFallsBackWhenModelFails(t *testing.T) {
	websiteService, _ := newTestService()
	svc := NewResumeService(websiteService, components.DefaultRegistry(), failingStructurer{})

	data := []byte(sampleResume)
	profile, err := svc.Parse(context.Background(), "resume.txt", bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if profile.FullName != "Jane Doe" {
		t.Fatalf("fallback did not run, got %q", profile.FullName)
	}
}

func TestParseSanitizesProfile(t *testing.T) {
	websiteService, _ := newTestService()
	svc := NewResumeService(websiteService, components.DefaultRegistry(), nil)

	resume := "<b>Jane</b> Doe\nSoftware Engineer\n"
	data := []byte(resume)
	profile, err := svc.Parse(context.Background(), "resume.txt", bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if strings.Contains(profile.FullName, "<") {
		t.Fatalf("profile not sanitized: %q", profile.FullName)
	}
}

func TestApplyUpdatesExistingSections(t *testing.T) {
	websiteService, _ := newTestService()
	site, _ := websiteService.Create(1, models.CreateWebsiteRequest{Title: "Jane", Template: "developer"})
	svc := NewResumeService(websiteService, components.DefaultRegistry(), nil)

	profile := &ResumeProfile{
		FullName: "Jane Doe",
		JobTitle: "Staff Engineer",
		Skills:   []string{"Go", "SQL"},
		Email:    "jane@example.com",
	}

	before, _ := websiteService.Get(1, site.ID)
	profileCount := 0
	for _, comp := range before.Components {
		if comp.Type == components.TypeProfile {
			profileCount++
		}
	}

	updated, err := svc.Apply(1, site.ID, profile)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	after := 0
	var profileComp *models.Component
	for i, comp := range updated.Components {
		if comp.Type == components.TypeProfile {
			after++
			profileComp = &updated.Components[i]
		}
	}
	if after != profileCount {
		t.Fatalf("apply must update in place, had %d profiles, now %d", profileCount, after)
	}
	if profileComp.Data["jobTitle"] != "Staff Engineer" {
		t.Fatalf("profile data not updated: %v", profileComp.Data)
	}

	foundContact := false
	for _, comp := range updated.Components {
		if comp.Type == components.TypeContactDetails {
			foundContact = true
			if comp.Data["email"] != "jane@example.com" {
				t.Fatalf("contact data missing: %v", comp.Data)
			}
		}
	}
	if !foundContact {
		t.Fatal("missing sections must be appended")
	}
}
