package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-builder-backend/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	url, filename, err := h.uploadService.UploadImage(file, c.PostForm("name"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrUploadTooLarge) {
			status = http.StatusRequestEntityTooLarge
		} else if errors.Is(err, service.ErrUploadBadFormat) {
			status = http.StatusUnsupportedMediaType
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url, "filename": filename})
}

func (h *UploadHandler) UploadMultipleImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form is required"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image files provided"})
		return
	}

	urls, err := h.uploadService.UploadMultipleImages(files)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"urls": urls})
}

func (h *UploadHandler) ListImages(c *gin.Context) {
	uploads, err := h.uploadService.ListImages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"uploads": uploads})
}

func (h *UploadHandler) DeleteImage(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.uploadService.IsManagedURL(req.URL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url does not point to an upload"})
		return
	}

	if err := h.uploadService.DeleteImage(req.URL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "image deleted successfully"})
}

// InitialAvatar generates (or reuses) a letter placeholder for a name, used
// by profile components without a photo.
func (h *UploadHandler) InitialAvatar(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.uploadService.EnsureInitialAvatar(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if url == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name has no usable initial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
