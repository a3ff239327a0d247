package components

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"portfolio-builder-backend/internal/models"
)

// Component type tags. The set is closed: the registry is total over these
// and nothing else.
const (
	TypeHeader         = "header"
	TypeText           = "text"
	TypeButton         = "button"
	TypeImage          = "image"
	TypeGallery        = "gallery"
	TypeProfile        = "profile"
	TypeProfilePhoto   = "profile-photo"
	TypeSkills         = "skills"
	TypeExperience     = "experience"
	TypeServices       = "services"
	TypePricing        = "pricing"
	TypeAward          = "award"
	TypeReview         = "review"
	TypeContactForm    = "contact-form"
	TypeContactDetails = "contact-details"
	TypeLanguages      = "languages"
	TypeGitHub         = "github"
	TypeSpotify        = "spotify"
	TypeLinkBlock      = "link-block"
	TypeProjects       = "projects"
	TypeTools          = "tools"
	TypeSocialMedia    = "social-media"
	TypeDivider        = "divider"
	TypeSpacer         = "spacer"
	TypeNavigation     = "navigation"
	TypeLayout         = "layout"
)

// RenderFunc renders one component into HTML. An empty return means the
// component has no content to show; public rendering drops it entirely.
type RenderFunc func(ctx *Context, comp models.Component) string

// Descriptor binds a component type tag to everything the builder and the
// renderer need to know about it.
type Descriptor struct {
	Type        string
	Name        string
	Description string
	Category    string

	// Public marks types allowed in read-only rendering. Structural
	// containers like layout are builder-only.
	Public bool

	// DefaultData produces the payload a freshly inserted component starts
	// with. It must be valid enough that the renderer never needs to guard
	// against a brand-new component.
	DefaultData func() models.JSONMap

	Render RenderFunc
}

// Metadata is the builder-facing slice of a descriptor.
type Metadata struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Public      bool   `json:"public"`
}

// Registry maps component type tags to their descriptors.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*Descriptor)}
}

// Register validates and stores a descriptor under its normalised type tag.
func (r *Registry) Register(desc *Descriptor) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if desc == nil {
		return fmt.Errorf("descriptor is nil")
	}

	componentType := strings.TrimSpace(strings.ToLower(desc.Type))
	if componentType == "" {
		return fmt.Errorf("component type is empty")
	}
	if desc.Render == nil {
		return fmt.Errorf("renderer is nil for type %s", componentType)
	}
	if desc.DefaultData == nil {
		return fmt.Errorf("default data is nil for type %s", componentType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.descriptors == nil {
		r.descriptors = make(map[string]*Descriptor)
	}
	r.descriptors[componentType] = desc
	return nil
}

// MustRegister registers the descriptor and panics if registration fails.
func (r *Registry) MustRegister(desc *Descriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// Get retrieves the descriptor for a type tag. An unknown tag returns
// ok=false and is the caller's error; the registry never invents a renderer.
func (r *Registry) Get(componentType string) (*Descriptor, bool) {
	if r == nil {
		return nil, false
	}

	componentType = strings.TrimSpace(strings.ToLower(componentType))
	if componentType == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[componentType]
	return desc, ok
}

// NewComponent creates a component of the given type populated with the
// type's default payload.
func (r *Registry) NewComponent(componentType string) (models.Component, error) {
	desc, ok := r.Get(componentType)
	if !ok {
		return models.Component{}, fmt.Errorf("unknown component type: %s", componentType)
	}
	return models.NewComponent(desc.Type, desc.DefaultData()), nil
}

// Types returns every registered type tag, sorted.
func (r *Registry) Types() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.descriptors))
	for key := range r.descriptors {
		types = append(types, key)
	}
	sort.Strings(types)
	return types
}

// ListMetadata returns builder metadata for all registered types, sorted by
// category then name for stable builder palettes.
func (r *Registry) ListMetadata() []Metadata {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Metadata, 0, len(r.descriptors))
	for _, desc := range r.descriptors {
		result = append(result, Metadata{
			Type:        desc.Type,
			Name:        desc.Name,
			Description: desc.Description,
			Category:    desc.Category,
			Public:      desc.Public,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Name < result[j].Name
	})
	return result
}
