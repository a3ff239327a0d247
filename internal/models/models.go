package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Status string `gorm:"default:'active'" json:"status"`

	Websites []Website `gorm:"foreignKey:UserID" json:"websites,omitempty"`
}

// Website is one user's portfolio site: an ordered component document plus
// its design palette and SEO metadata, stored as JSONB sub-objects.
type Website struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Domain      string `gorm:"uniqueIndex;not null" json:"domain"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	Components ComponentList `gorm:"type:jsonb" json:"components"`
	Palette    DesignPalette `gorm:"type:jsonb" json:"design_palette"`
	SEO        SEOSettings   `gorm:"type:jsonb" json:"seo_settings"`

	Published   bool       `gorm:"default:false" json:"published"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`
}

// Status reports the document's lifecycle state. Draft and published are the
// only two states and a site can cycle between them indefinitely.
func (w *Website) Status() string {
	if w != nil && w.Published {
		return "published"
	}
	return "draft"
}

// Publish marks the site live. The first publish records the timestamp;
// republishing after an unpublish keeps the original date.
func (w *Website) Publish() {
	w.Published = true
	if w.PublishedAt == nil {
		now := time.Now()
		w.PublishedAt = &now
	}
}

// Unpublish takes the site offline without touching its content.
func (w *Website) Unpublish() {
	w.Published = false
}

type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan JSONMap")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return err
	}

	*m = decoded
	return nil
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=12,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=12,max=128"`
}

type CreateWebsiteRequest struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug" binding:"omitempty,slug"`
	Template string `json:"template"`
}

type UpdateWebsiteRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Components  *ComponentList `json:"components,omitempty"`
	Palette     *DesignPalette `json:"design_palette,omitempty"`
	SEO         *SEOSettings   `json:"seo_settings,omitempty"`
}

type AddComponentRequest struct {
	Type    string `json:"type" binding:"required"`
	AtIndex *int   `json:"at_index,omitempty"`
}

type UpdateComponentRequest struct {
	Data   JSONMap         `json:"data"`
	Styles *StyleOverrides `json:"styles,omitempty"`
}

type ReorderComponentsRequest struct {
	FromIndex int `json:"from_index" binding:"min=0"`
	ToIndex   int `json:"to_index" binding:"min=0"`
}

