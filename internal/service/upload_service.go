package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-builder-backend/pkg/utils"
)

// UploadService stores the images portfolio components reference: gallery
// pictures, profile photos, open-graph images.
type UploadService struct {
	uploadDir    string
	maxSize      int64
	allowedTypes []string
}

type UploadInfo struct {
	URL      string    `json:"url"`
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	ModTime  time.Time `json:"mod_time"`
}

var (
	ErrUploadNotFound  = errors.New("upload not found")
	ErrUploadTooLarge  = errors.New("file size exceeds maximum allowed size")
	ErrUploadBadFormat = errors.New("file type not allowed")
)

func NewUploadService(uploadDir string, maxSize int64) *UploadService {
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}

	if maxSize <= 0 {
		maxSize = 10 * 1024 * 1024
	}

	return &UploadService{
		uploadDir:    uploadDir,
		maxSize:      maxSize,
		allowedTypes: []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"},
	}
}

func (s *UploadService) UploadImage(file *multipart.FileHeader, preferredName string) (string, string, error) {
	if file.Size > s.maxSize {
		return "", "", ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !s.isAllowedType(ext) {
		return "", "", ErrUploadBadFormat
	}

	filename := s.generateFilename(file.Filename, preferredName, ext)
	filePath := filepath.Join(s.uploadDir, filename)

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", err
	}

	return "/uploads/" + filename, filename, nil
}

func (s *UploadService) UploadMultipleImages(files []*multipart.FileHeader) ([]string, error) {
	var urls []string

	for _, file := range files {
		url, _, err := s.UploadImage(file, "")
		if err != nil {
			for _, u := range urls {
				s.DeleteImage(u)
			}
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func (s *UploadService) DeleteImage(url string) error {
	// Generated initial avatars are shared between profiles with the same
	// first letter, so one user must not be able to remove them.
	if s.IsInitialAvatar(url) {
		return errors.New("generated avatars cannot be deleted")
	}

	filename := filepath.Base(url)
	filePath := filepath.Join(s.uploadDir, filename)

	uploadDirAbs, err := filepath.Abs(s.uploadDir)
	if err != nil {
		return err
	}

	filePathAbs, err := filepath.Abs(filePath)
	if err != nil {
		return err
	}

	if !strings.HasPrefix(filePathAbs, uploadDirAbs) {
		return errors.New("invalid file path")
	}

	if err := os.Remove(filePathAbs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	return nil
}

// IsManagedURL reports whether the URL points into the upload directory, as
// opposed to an external image a user linked directly.
func (s *UploadService) IsManagedURL(url string) bool {
	return strings.HasPrefix(strings.TrimSpace(url), "/uploads/")
}

func (s *UploadService) ListImages() ([]UploadInfo, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return nil, err
	}

	uploads := make([]UploadInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !s.isAllowedType(strings.ToLower(filepath.Ext(name))) {
			continue
		}
		if s.IsInitialAvatar(name) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		uploads = append(uploads, UploadInfo{
			URL:      "/uploads/" + name,
			Filename: name,
			Size:     info.Size(),
			ModTime:  info.ModTime(),
		})
	}

	sort.Slice(uploads, func(i, j int) bool {
		return uploads[i].ModTime.After(uploads[j].ModTime)
	})

	return uploads, nil
}

func (s *UploadService) isAllowedType(ext string) bool {
	for _, allowed := range s.allowedTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (s *UploadService) generateFilename(originalName, preferredName, ext string) string {
	baseName := strings.TrimSpace(preferredName)
	if baseName == "" {
		baseName = strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	}

	cleaned := utils.GenerateSlug(baseName)
	if cleaned == "" {
		cleaned = uuid.New().String()
	}

	candidate := fmt.Sprintf("%s%s", cleaned, ext)
	if !s.fileExists(candidate) {
		return candidate
	}

	for i := 1; i < 1000; i++ {
		candidate = fmt.Sprintf("%s-%d%s", cleaned, i, ext)
		if !s.fileExists(candidate) {
			return candidate
		}
	}

	return fmt.Sprintf("%s%s", uuid.New().String(), ext)
}

func (s *UploadService) fileExists(name string) bool {
	_, err := os.Stat(filepath.Join(s.uploadDir, name))
	return err == nil
}
