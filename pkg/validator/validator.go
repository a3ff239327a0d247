package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate  = newValidator()
	sanitizer = bluemonday.UGCPolicy()
)

func newValidator() *validator.Validate {
	v := validator.New()
	registerCustomValidations(v)
	return v
}

var (
	slugRegex   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	domainRegex = regexp.MustCompile(`^[a-z0-9]+(?:[-.][a-z0-9]+)*$`)
	hexRegex    = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// Init hooks the custom validations into gin's binding engine. The
// package-level validator and sanitizer work without it.
func Init() {
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(engine)
	}
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("slug", validateSlug)
	v.RegisterValidation("sitedomain", validateDomain)
	v.RegisterValidation("hexcolor_opt", validateOptionalHexColor)
}

func Validate(s interface{}) error {
	return validate.Struct(s)
}

// SanitizeHTML cleans user-supplied rich text so component renderers can
// safely inline it.
func SanitizeHTML(html string) string {
	return sanitizer.Sanitize(html)
}

// SanitizeString strips all markup, for plain-text fields.
func SanitizeString(s string) string {
	return bluemonday.StrictPolicy().Sanitize(s)
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

func validateDomain(fl validator.FieldLevel) bool {
	value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	if value == "" {
		return false
	}
	return domainRegex.MatchString(value)
}

// Palette fields may be empty (inherit default) or a hex color.
func validateOptionalHexColor(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	return hexRegex.MatchString(value)
}
