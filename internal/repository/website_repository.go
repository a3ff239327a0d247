package repository

import (
	"strings"

	"portfolio-builder-backend/internal/models"

	"gorm.io/gorm"
)

type WebsiteRepository interface {
	Create(website *models.Website) error
	GetByID(id uint) (*models.Website, error)
	GetByDomain(domain string) (*models.Website, error)
	GetPublishedByDomain(domain string) (*models.Website, error)
	GetByUser(userID uint) ([]models.Website, error)
	ExistsByDomain(domain string) (bool, error)
	Update(website *models.Website) error
	Delete(id uint) error
	CountByUser(userID uint) (int64, error)
}

type websiteRepository struct {
	db *gorm.DB
}

func NewWebsiteRepository(db *gorm.DB) WebsiteRepository {
	return &websiteRepository{db: db}
}

func (r *websiteRepository) Create(website *models.Website) error {
	return r.db.Create(website).Error
}

func (r *websiteRepository) GetByID(id uint) (*models.Website, error) {
	var website models.Website
	err := r.db.First(&website, id).Error
	return &website, err
}

func (r *websiteRepository) GetByDomain(domain string) (*models.Website, error) {
	var website models.Website
	err := r.db.Where("domain = ?", normalizeDomain(domain)).First(&website).Error
	return &website, err
}

func (r *websiteRepository) GetPublishedByDomain(domain string) (*models.Website, error) {
	var website models.Website
	err := r.db.Where("domain = ? AND published = ?", normalizeDomain(domain), true).First(&website).Error
	return &website, err
}

func (r *websiteRepository) GetByUser(userID uint) ([]models.Website, error) {
	var websites []models.Website
	err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&websites).Error
	return websites, err
}

func (r *websiteRepository) ExistsByDomain(domain string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Website{}).Where("domain = ?", normalizeDomain(domain)).Count(&count).Error
	return count > 0, err
}

func (r *websiteRepository) Update(website *models.Website) error {
	return r.db.Save(website).Error
}

func (r *websiteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Website{}, id).Error
}

func (r *websiteRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Website{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// Domains are stored lowercased. Lookups normalise the same way so the
// unique index is effectively case-insensitive.
func normalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}
