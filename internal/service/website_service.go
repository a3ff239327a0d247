package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"portfolio-builder-backend/internal/components"
	"portfolio-builder-backend/internal/models"
	"portfolio-builder-backend/internal/repository"
	"portfolio-builder-backend/internal/seed"
	"portfolio-builder-backend/pkg/cache"
	"portfolio-builder-backend/pkg/logger"
	"portfolio-builder-backend/pkg/utils"
	"portfolio-builder-backend/pkg/validator"
)

var (
	// ErrWebsiteNotFound covers both a missing record and a record the
	// caller is not allowed to see. Visitors cannot distinguish an
	// unpublished site from one that does not exist.
	ErrWebsiteNotFound = errors.New("website not found")

	ErrDomainTaken      = errors.New("domain already taken")
	ErrComponentMissing = errors.New("component not found")
	ErrUnknownComponent = errors.New("unknown component type")
	ErrInvalidIndex     = errors.New("index out of range")
	ErrInvalidPalette   = errors.New("palette contains invalid color values")
	ErrWebsiteLimit     = errors.New("website limit reached")
)

// maxWebsitesPerUser caps how many sites a single account can hold.
const maxWebsitesPerUser = 20

type WebsiteService struct {
	websiteRepo    repository.WebsiteRepository
	registry       *components.Registry
	cache          *cache.Cache
	platformDomain string
}

func NewWebsiteService(websiteRepo repository.WebsiteRepository, registry *components.Registry, c *cache.Cache, platformDomain string) *WebsiteService {
	return &WebsiteService{
		websiteRepo:    websiteRepo,
		registry:       registry,
		cache:          c,
		platformDomain: platformDomain,
	}
}

// NormalizeDomain maps whatever the caller typed to the stored form: bare
// slugs become subdomains of the platform domain, full domains pass through
// lowercased.
func (s *WebsiteService) NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return ""
	}
	if !strings.Contains(domain, ".") {
		domain = domain + "." + s.platformDomain
	}
	return domain
}

func (s *WebsiteService) Create(userID uint, req models.CreateWebsiteRequest) (*models.Website, error) {
	if err := s.checkQuota(userID); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}
	if slug == "" {
		slug = "site"
	}

	domain, err := s.availableDomain(slug)
	if err != nil {
		return nil, err
	}

	site := &models.Website{
		Domain:     domain,
		Title:      strings.TrimSpace(req.Title),
		UserID:     userID,
		Palette:    models.DefaultPalette(),
		Components: models.ComponentList{},
	}

	if template, ok := seed.Build(req.Template, s.registry); ok {
		site.Components = template
	}

	if err := s.websiteRepo.Create(site); err != nil {
		return nil, err
	}

	s.invalidateUserCaches(site)
	return site, nil
}

func (s *WebsiteService) checkQuota(userID uint) error {
	count, err := s.websiteRepo.CountByUser(userID)
	if err != nil {
		return err
	}
	if count >= maxWebsitesPerUser {
		return ErrWebsiteLimit
	}
	return nil
}

// availableDomain finds a free domain for the slug, suffixing a counter when
// the plain form is taken.
func (s *WebsiteService) availableDomain(slug string) (string, error) {
	for attempt := 0; attempt < 50; attempt++ {
		candidate := slug
		if attempt > 0 {
			candidate = fmt.Sprintf("%s-%d", slug, attempt+1)
		}
		domain := s.NormalizeDomain(candidate)

		taken, err := s.websiteRepo.ExistsByDomain(domain)
		if err != nil {
			return "", err
		}
		if !taken {
			return domain, nil
		}
	}
	return "", ErrDomainTaken
}

func (s *WebsiteService) List(userID uint) ([]models.Website, error) {
	var cached []models.Website
	if err := s.cache.GetCachedUserWebsites(userID, &cached); err == nil {
		return cached, nil
	}

	sites, err := s.websiteRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	s.cache.CacheUserWebsites(userID, sites)
	return sites, nil
}

// Get returns the website only to its owner.
func (s *WebsiteService) Get(userID, websiteID uint) (*models.Website, error) {
	var cached models.Website
	if err := s.cache.GetCachedWebsite(websiteID, &cached); err == nil && cached.ID == websiteID {
		if cached.UserID != userID {
			return nil, ErrWebsiteNotFound
		}
		return &cached, nil
	}

	site, err := s.websiteRepo.GetByID(websiteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWebsiteNotFound
		}
		return nil, err
	}
	if site.UserID != userID {
		return nil, ErrWebsiteNotFound
	}
	s.cache.CacheWebsite(websiteID, site)
	return site, nil
}

func (s *WebsiteService) Update(userID, websiteID uint, req models.UpdateWebsiteRequest) (*models.Website, error) {
	site, err := s.Get(userID, websiteID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		site.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		site.Description = strings.TrimSpace(*req.Description)
	}
	if req.Components != nil {
		site.Components = req.Components.Clone()
	}
	if req.Palette != nil {
		if err := validator.Validate(req.Palette); err != nil {
			return nil, ErrInvalidPalette
		}
		site.Palette = req.Palette.Normalized()
	}
	if req.SEO != nil {
		site.SEO = *req.SEO
	}

	return s.save(site)
}

// Rename moves the website to a new domain. Bare slugs resolve against the
// platform domain; the target must be free.
func (s *WebsiteService) Rename(userID, websiteID uint, domain string) (*models.Website, error) {
	site, err := s.Get(userID, websiteID)
	if err != nil {
		return nil, err
	}

	oldDomain := site.Domain
	newDomain := s.NormalizeDomain(domain)
	if newDomain == "" {
		return nil, ErrDomainTaken
	}
	if newDomain == oldDomain {
		return site, nil
	}

	taken, err := s.websiteRepo.ExistsByDomain(newDomain)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDomainTaken
	}

	site.Domain = newDomain
	updated, err := s.save(site)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateWebsite(site.ID, oldDomain)
	return updated, nil
}

func (s *WebsiteService) Delete(userID, websiteID uint) error {
	site, err := s.Get(userID, websiteID)
	if err != nil {
		return err
	}
	if err := s.websiteRepo.Delete(site.ID); err != nil {
		return err
	}
	s.invalidateUserCaches(site)
	return nil
}

// Duplicate copies a whole website to a fresh domain as an unpublished
// draft. Components get new IDs so the two documents never share identity.
func (s *WebsiteService) Duplicate(userID, websiteID uint) (*models.Website, error) {
	site, err := s.Get(userID, websiteID)
	if err != nil {
		return nil, err
	}
	if err := s.checkQuota(userID); err != nil {
		return nil, err
	}

	slug := utils.GenerateSlug(site.Title)
	if slug == "" {
		slug = "site"
	}
	domain, err := s.availableDomain(slug + "-copy")
	if err != nil {
		return nil, err
	}

	comps := make(models.ComponentList, 0, len(site.Components))
	for _, comp := range site.Components {
		comps = append(comps, comp.CloneWithNewID())
	}

	copySite := &models.Website{
		Domain:      domain,
		Title:       site.Title + " (copy)",
		Description: site.Description,
		Components:  comps,
		Palette:     site.Palette,
		SEO:         site.SEO,
		UserID:      userID,
	}

	if err := s.websiteRepo.Create(copySite); err != nil {
		return nil, err
	}
	s.invalidateUserCaches(copySite)
	return copySite, nil
}

func (s *WebsiteService) AddComponent(userID, websiteID uint, req models.AddComponentRequest) (*models.Website, models.Component, error) {
	site, err := s.Get(userID, websiteID)
	if err != nil {
		return nil, models.Component{}, err
	}

	comp, err := s.registry.NewComponent(req.Type)
	if err != nil {
		return nil, models.Component{}, ErrUnknownComponent
	}

	at := len(site.Components)
	if req.AtIndex != nil {
		at = *req.AtIndex
	}
	site.Components = site.Components.Insert(comp, at)

	updated, err := s.save(site)
	if err != nil {
		return nil, models.Component{}, err
	}
	return updated, comp, nil
}

// UpdateComponent patches a component's data and, optionally, its style
// overrides. A patch addressed to an ID no longer in the document is
// deliberately a no-op: concurrent edits may race a removal, and losing the
// write is the documented outcome.
func (s *WebsiteService) UpdateComponent(userID, websiteID uint, componentID string, req models.UpdateComponentRequest) (*models.Website, error) {
	site, err := s.Get(userID, websiteID)
	if err != nil {
		return nil, err
	}

	if !site.Components.ContainsID(componentID) {
		logger.Debug("Dropping update for missing component", map[string]interface{}{
			"website_id":   websiteID,
			"component_id": componentID,
		})
		return site, nil
	}

	if req.Data != nil {
		site.Components = site.Components.Update(componentID, req.Data)
	}
	if req.Styles != nil {
		site.Components = site.Components.UpdateStyles(componentID, *req.Styles)
	}

	return s.save(site)
}

func (s *WebsiteService) RemoveComponent(userID, websiteID uint, componentID string) (*models.Website, error) {
	site, err := s.Get(userID, websiteID)
	if err != nil {
		return nil, err
	}

	index := site.Components.FindIndex(componentID)
	if index < 0 {
		return nil, ErrComponentMissing
	}
	site.Components = site.Components.Remove(index)

	return s.save(site)
}

func (s *WebsiteService) DuplicateComponent(userID, websiteID uint, componentID string) (*models.Website, error) {
	site, err := s.Get(userID, websiteID)
	if err != nil {
		return nil, err
	}

	index := site.Components.FindIndex(componentID)
	if index < 0 {
		return nil, ErrComponentMissing
	}
	site.Components = site.Components.Duplicate(index)

	return s.save(site)
}

func (s *WebsiteService) ReorderComponents(userID, websiteID uint, req models.ReorderComponentsRequest) (*models.Website, error) {
	site, err := s.Get(userID, websiteID)
	if err != nil {
		return nil, err
	}

	length := len(site.Components)
	if req.FromIndex >= length || req.ToIndex >= length {
		return nil, ErrInvalidIndex
	}
	site.Components = site.Components.Reorder(req.FromIndex, req.ToIndex)

	return s.save(site)
}

func (s *WebsiteService) Publish(userID, websiteID uint) (*models.Website, error) {
	site, err := s.Get(userID, websiteID)
	if err != nil {
		return nil, err
	}
	site.Publish()
	return s.save(site)
}

func (s *WebsiteService) Unpublish(userID, websiteID uint) (*models.Website, error) {
	site, err := s.Get(userID, websiteID)
	if err != nil {
		return nil, err
	}
	site.Unpublish()
	return s.save(site)
}

// Resolve finds the website served on a domain. Published sites resolve for
// everyone; a draft resolves only for its owner, and for anyone else the
// domain does not exist.
func (s *WebsiteService) Resolve(domain string, viewerID uint) (*models.Website, error) {
	normalized := s.NormalizeDomain(domain)
	if normalized == "" {
		return nil, ErrWebsiteNotFound
	}

	// Anonymous viewers only ever see published sites, so their lookups
	// go through the document cache and the published-only query.
	if viewerID == 0 {
		var cached models.Website
		if err := s.cache.GetCachedWebsiteByDomain(normalized, &cached); err == nil && cached.Published {
			return &cached, nil
		}

		site, err := s.websiteRepo.GetPublishedByDomain(normalized)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrWebsiteNotFound
			}
			return nil, err
		}
		s.cache.CacheWebsiteByDomain(normalized, site)
		return site, nil
	}

	site, err := s.websiteRepo.GetByDomain(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWebsiteNotFound
		}
		return nil, err
	}

	if site.Published || site.UserID == viewerID {
		return site, nil
	}
	return nil, ErrWebsiteNotFound
}

func (s *WebsiteService) save(site *models.Website) (*models.Website, error) {
	if err := s.websiteRepo.Update(site); err != nil {
		return nil, err
	}
	s.invalidateUserCaches(site)
	return site, nil
}

func (s *WebsiteService) invalidateUserCaches(site *models.Website) {
	if err := s.cache.InvalidateWebsite(site.ID, site.Domain); err != nil {
		logger.Warn("Cache invalidation failed", map[string]interface{}{
			"website_id": site.ID,
			"error":      err.Error(),
		})
	}
	s.cache.InvalidateUserWebsites(site.UserID)
}
