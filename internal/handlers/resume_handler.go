package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-builder-backend/internal/service"
)

const maxResumeSize = 8 * 1024 * 1024

type ResumeHandler struct {
	resumeService *service.ResumeService
}

func NewResumeHandler(resumeService *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// Parse accepts a multipart resume upload and returns the structured
// profile without touching any website.
func (h *ResumeHandler) Parse(c *gin.Context) {
	profile, ok := h.parseUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Import parses the uploaded resume and applies it to the website in one
// request.
func (h *ResumeHandler) Import(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, ok := websiteID(c)
	if !ok {
		return
	}

	profile, ok := h.parseUpload(c)
	if !ok {
		return
	}

	site, err := h.resumeService.Apply(userID, id, profile)
	if err != nil {
		respondWebsiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"website": site, "profile": profile})
}

func (h *ResumeHandler) parseUpload(c *gin.Context) (*service.ResumeProfile, bool) {
	header, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file is required"})
		return nil, false
	}
	if header.Size > maxResumeSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "resume file is too large"})
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read resume file"})
		return nil, false
	}
	defer file.Close()

	profile, err := h.resumeService.Parse(c.Request.Context(), header.Filename, file, header.Size)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFormat):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmptyResume):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse resume: " + err.Error()})
		}
		return nil, false
	}

	if isProfileEmpty(profile) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not extract any profile data from the resume"})
		return nil, false
	}

	return profile, true
}

func isProfileEmpty(profile *service.ResumeProfile) bool {
	if profile == nil {
		return true
	}
	return strings.TrimSpace(profile.FullName) == "" &&
		strings.TrimSpace(profile.Email) == "" &&
		strings.TrimSpace(profile.JobTitle) == "" &&
		strings.TrimSpace(profile.Bio) == "" &&
		len(profile.Skills) == 0 &&
		strings.TrimSpace(profile.WorkHistory) == ""
}
