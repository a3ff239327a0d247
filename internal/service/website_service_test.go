package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"portfolio-builder-backend/internal/components"
	"portfolio-builder-backend/internal/models"
	"portfolio-builder-backend/pkg/cache"
)

type fakeWebsiteRepo struct {
	nextID           uint
	sites            map[uint]*models.Website
	publishedLookups int
}

func newFakeWebsiteRepo() *fakeWebsiteRepo {
	return &fakeWebsiteRepo{nextID: 1, sites: map[uint]*models.Website{}}
}

func (r *fakeWebsiteRepo) Create(site *models.Website) error {
	site.ID = r.nextID
	r.nextID++
	stored := *site
	r.sites[site.ID] = &stored
	return nil
}

func (r *fakeWebsiteRepo) GetByID(id uint) (*models.Website, error) {
	site, ok := r.sites[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *site
	return &copied, nil
}

func (r *fakeWebsiteRepo) GetByDomain(domain string) (*models.Website, error) {
	for _, site := range r.sites {
		if site.Domain == domain {
			copied := *site
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeWebsiteRepo) GetPublishedByDomain(domain string) (*models.Website, error) {
	r.publishedLookups++
	site, err := r.GetByDomain(domain)
	if err != nil || !site.Published {
		return nil, gorm.ErrRecordNotFound
	}
	return site, nil
}

func (r *fakeWebsiteRepo) GetByUser(userID uint) ([]models.Website, error) {
	var result []models.Website
	for _, site := range r.sites {
		if site.UserID == userID {
			result = append(result, *site)
		}
	}
	return result, nil
}

func (r *fakeWebsiteRepo) ExistsByDomain(domain string) (bool, error) {
	_, err := r.GetByDomain(domain)
	return err == nil, nil
}

func (r *fakeWebsiteRepo) Update(site *models.Website) error {
	if _, ok := r.sites[site.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *site
	r.sites[site.ID] = &stored
	return nil
}

func (r *fakeWebsiteRepo) Delete(id uint) error {
	delete(r.sites, id)
	return nil
}

func (r *fakeWebsiteRepo) CountByUser(userID uint) (int64, error) {
	sites, _ := r.GetByUser(userID)
	return int64(len(sites)), nil
}

func newTestService() (*WebsiteService, *fakeWebsiteRepo) {
	repo := newFakeWebsiteRepo()
	svc := NewWebsiteService(repo, components.DefaultRegistry(), cache.NewCache("", false), "folio.site")
	return svc, repo
}

func TestCreateDerivesDomainFromTitle(t *testing.T) {
	svc, _ := newTestService()

	site, err := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane Doe"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if site.Domain != "jane-doe.folio.site" {
		t.Fatalf("got domain %q", site.Domain)
	}
	if site.Published {
		t.Fatal("new sites must start as drafts")
	}
	if site.Palette.PrimaryColor == "" {
		t.Fatal("new sites must carry the default palette")
	}
}

func TestCreateSuffixesTakenDomains(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(2, models.CreateWebsiteRequest{Title: "Jane"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Domain == second.Domain {
		t.Fatalf("both sites got %q", first.Domain)
	}
	if second.Domain != "jane-2.folio.site" {
		t.Fatalf("got %q", second.Domain)
	}
}

func TestCreateEnforcesSiteLimit(t *testing.T) {
	svc, _ := newTestService()

	for i := 0; i < maxWebsitesPerUser; i++ {
		if _, err := svc.Create(1, models.CreateWebsiteRequest{Title: fmt.Sprintf("Site %d", i)}); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	if _, err := svc.Create(1, models.CreateWebsiteRequest{Title: "One Too Many"}); !errors.Is(err, ErrWebsiteLimit) {
		t.Fatalf("expected ErrWebsiteLimit, got %v", err)
	}
	if _, err := svc.Create(2, models.CreateWebsiteRequest{Title: "Fresh Account"}); err != nil {
		t.Fatalf("the limit must apply per user: %v", err)
	}
}

func TestCreateWithTemplate(t *testing.T) {
	svc, _ := newTestService()

	site, err := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane", Template: "developer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(site.Components) == 0 {
		t.Fatal("developer template must seed components")
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})

	if _, err := svc.Get(2, site.ID); !errors.Is(err, ErrWebsiteNotFound) {
		t.Fatalf("expected not-found for foreign owner, got %v", err)
	}
	if _, err := svc.Get(1, site.ID); err != nil {
		t.Fatalf("owner must see the site, got %v", err)
	}
}

func TestAddComponentUsesRegistryDefaults(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})

	updated, comp, err := svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "text"})
	if err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	if comp.ID == "" {
		t.Fatal("component must get an id")
	}
	if comp.Data["content"] != "Tell your story here." {
		t.Fatalf("expected registry default data, got %v", comp.Data)
	}
	if len(updated.Components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(updated.Components))
	}
}

func TestAddComponentUnknownType(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})

	if _, _, err := svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "hologram"}); !errors.Is(err, ErrUnknownComponent) {
		t.Fatalf("expected ErrUnknownComponent, got %v", err)
	}
}

func TestAddComponentAtIndex(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})

	svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "header"})
	svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "text"})
	at := 0
	updated, _, err := svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "divider", AtIndex: &at})
	if err != nil {
		t.Fatalf("AddComponent: %v", err)
	}
	if updated.Components[0].Type != "divider" {
		t.Fatalf("expected divider first, got %q", updated.Components[0].Type)
	}
}

func TestUpdateComponentMergesData(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})
	_, comp, _ := svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "header"})

	updated, err := svc.UpdateComponent(1, site.ID, comp.ID, models.UpdateComponentRequest{
		Data: models.JSONMap{"subtitle": "Engineer"},
	})
	if err != nil {
		t.Fatalf("UpdateComponent: %v", err)
	}
	got := updated.Components[0].Data
	if got["subtitle"] != "Engineer" {
		t.Fatalf("patch not applied: %v", got)
	}
	if got["title"] == nil || got["title"] == "" {
		t.Fatal("patch must merge, not replace")
	}
}

func TestUpdateRejectsInvalidPaletteColor(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})

	bad := models.DefaultPalette()
	bad.PrimaryColor = "blue"
	if _, err := svc.Update(1, site.ID, models.UpdateWebsiteRequest{Palette: &bad}); !errors.Is(err, ErrInvalidPalette) {
		t.Fatalf("expected ErrInvalidPalette, got %v", err)
	}

	good := models.DefaultPalette()
	good.PrimaryColor = "#ff6600"
	updated, err := svc.Update(1, site.ID, models.UpdateWebsiteRequest{Palette: &good})
	if err != nil {
		t.Fatalf("Update with valid palette: %v", err)
	}
	if updated.Palette.PrimaryColor != "#ff6600" {
		t.Fatalf("palette not applied: %+v", updated.Palette)
	}
}

func TestUpdateMissingComponentIsSilentNoop(t *testing.T) {
	svc, repo := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})
	svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "header"})

	before, _ := repo.GetByID(site.ID)
	updated, err := svc.UpdateComponent(1, site.ID, "gone", models.UpdateComponentRequest{
		Data: models.JSONMap{"title": "lost write"},
	})
	if err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if len(updated.Components) != len(before.Components) {
		t.Fatal("no-op must not change the document")
	}
	if updated.Components[0].Data["title"] == "lost write" {
		t.Fatal("patch for a missing id must not land anywhere")
	}
}

func TestRemoveComponent(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})
	_, comp, _ := svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "header"})

	updated, err := svc.RemoveComponent(1, site.ID, comp.ID)
	if err != nil {
		t.Fatalf("RemoveComponent: %v", err)
	}
	if len(updated.Components) != 0 {
		t.Fatal("component not removed")
	}

	if _, err := svc.RemoveComponent(1, site.ID, comp.ID); !errors.Is(err, ErrComponentMissing) {
		t.Fatalf("expected ErrComponentMissing, got %v", err)
	}
}

func TestDuplicateComponentGetsFreshID(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})
	_, comp, _ := svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "text"})

	updated, err := svc.DuplicateComponent(1, site.ID, comp.ID)
	if err != nil {
		t.Fatalf("DuplicateComponent: %v", err)
	}
	if len(updated.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(updated.Components))
	}
	if updated.Components[0].ID == updated.Components[1].ID {
		t.Fatal("duplicate must get a new id")
	}
	if updated.Components[1].Data["content"] != updated.Components[0].Data["content"] {
		t.Fatal("duplicate must copy data")
	}
}

func TestReorderComponents(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})
	svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "header"})
	svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "text"})
	svc.AddComponent(1, site.ID, models.AddComponentRequest{Type: "divider"})

	updated, err := svc.ReorderComponents(1, site.ID, models.ReorderComponentsRequest{FromIndex: 2, ToIndex: 0})
	if err != nil {
		t.Fatalf("ReorderComponents: %v", err)
	}
	if updated.Components[0].Type != "divider" {
		t.Fatalf("expected divider first, got %q", updated.Components[0].Type)
	}
	if updated.Components[1].Type != "header" || updated.Components[2].Type != "text" {
		t.Fatal("relative order of the others must be preserved")
	}

	if _, err := svc.ReorderComponents(1, site.ID, models.ReorderComponentsRequest{FromIndex: 0, ToIndex: 99}); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestPublishLifecycle(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})

	published, err := svc.Publish(1, site.ID)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !published.Published || published.PublishedAt == nil {
		t.Fatal("publish must set flag and timestamp")
	}
	firstPublish := *published.PublishedAt

	unpublished, err := svc.Unpublish(1, site.ID)
	if err != nil {
		t.Fatalf("Unpublish: %v", err)
	}
	if unpublished.Published {
		t.Fatal("unpublish must clear the flag")
	}

	again, _ := svc.Publish(1, site.ID)
	if !again.PublishedAt.Equal(firstPublish) {
		t.Fatal("republishing must keep the original publish date")
	}
}

func TestResolvePublishedForAnyone(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})
	svc.Publish(1, site.ID)

	resolved, err := svc.Resolve("jane", 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.ID != site.ID {
		t.Fatal("bare slug must resolve against the platform domain")
	}

	if _, err := svc.Resolve("jane.folio.site", 0); err != nil {
		t.Fatalf("full domain must resolve too: %v", err)
	}
}

func TestResolveDraftOnlyForOwner(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})

	if _, err := svc.Resolve("jane", 0); !errors.Is(err, ErrWebsiteNotFound) {
		t.Fatalf("draft must be invisible to visitors, got %v", err)
	}
	if _, err := svc.Resolve("jane", 2); !errors.Is(err, ErrWebsiteNotFound) {
		t.Fatalf("draft must be invisible to other users, got %v", err)
	}
	resolved, err := svc.Resolve("jane", 1)
	if err != nil {
		t.Fatalf("owner must see the draft: %v", err)
	}
	if resolved.ID != site.ID {
		t.Fatal("owner resolved the wrong site")
	}
}

func TestResolveAnonymousUsesPublishedLookup(t *testing.T) {
	svc, repo := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})
	svc.Publish(1, site.ID)

	if _, err := svc.Resolve("jane", 0); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if repo.publishedLookups != 1 {
		t.Fatalf("anonymous resolution must use the published-only query, got %d lookups", repo.publishedLookups)
	}

	// The owner path goes through the plain lookup so drafts stay reachable.
	if _, err := svc.Resolve("jane", 1); err != nil {
		t.Fatalf("Resolve as owner: %v", err)
	}
	if repo.publishedLookups != 1 {
		t.Fatalf("owner resolution must not use the published-only query, got %d lookups", repo.publishedLookups)
	}
}

func TestRenameChecksAvailability(t *testing.T) {
	svc, _ := newTestService()
	first, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane"})
	second, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Other"})

	if _, err := svc.Rename(1, second.ID, "jane"); !errors.Is(err, ErrDomainTaken) {
		t.Fatalf("expected ErrDomainTaken, got %v", err)
	}

	renamed, err := svc.Rename(1, first.ID, "jane-doe")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if renamed.Domain != "jane-doe.folio.site" {
		t.Fatalf("got %q", renamed.Domain)
	}
}

func TestDuplicateWebsite(t *testing.T) {
	svc, _ := newTestService()
	site, _ := svc.Create(1, models.CreateWebsiteRequest{Title: "Jane", Template: "minimal"})
	svc.Publish(1, site.ID)

	copySite, err := svc.Duplicate(1, site.ID)
	if err != nil {
		t.Fatalf("Duplicate: %v", err)
	}
	if copySite.Published {
		t.Fatal("the copy must start as a draft")
	}
	if !strings.Contains(copySite.Domain, "copy") {
		t.Fatalf("copy domain should mark the copy, got %q", copySite.Domain)
	}
	if len(copySite.Components) != len(site.Components) {
		t.Fatal("copy must carry all components")
	}
	original, _ := svc.Get(1, site.ID)
	for i := range copySite.Components {
		if copySite.Components[i].ID == original.Components[i].ID {
			t.Fatal("copied components must get new ids")
		}
	}
}
