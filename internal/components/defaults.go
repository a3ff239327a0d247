package components

// RegisterDefaults registers every built-in component type on reg.
func RegisterDefaults(reg *Registry) {
	RegisterHeader(reg)
	RegisterText(reg)
	RegisterButton(reg)
	RegisterImage(reg)
	RegisterGallery(reg)
	RegisterProfile(reg)
	RegisterProfilePhoto(reg)
	RegisterSkills(reg)
	RegisterExperience(reg)
	RegisterServices(reg)
	RegisterPricing(reg)
	RegisterAward(reg)
	RegisterReview(reg)
	RegisterContactForm(reg)
	RegisterContactDetails(reg)
	RegisterLanguages(reg)
	RegisterGitHub(reg)
	RegisterSpotify(reg)
	RegisterLinkBlock(reg)
	RegisterProjects(reg)
	RegisterTools(reg)
	RegisterSocialMedia(reg)
	RegisterDivider(reg)
	RegisterSpacer(reg)
	RegisterNavigation(reg)
	RegisterLayout(reg)
}

// DefaultRegistry returns a registry with all built-in types.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterDefaults(reg)
	return reg
}
