package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterContactForm registers the contact form component.
func RegisterContactForm(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeContactForm,
		Name:        "Contact Form",
		Description: "A name/email/message form delivered to your inbox",
		Category:    "contact",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{
				"title":          "Get in touch",
				"buttonText":     "Send message",
				"recipientEmail": "",
				"successMessage": "Thanks, I'll get back to you soon.",
			}
		},
		Render: renderContactForm,
	})
}

func renderContactForm(ctx *Context, comp models.Component) string {
	title := strings.TrimSpace(getString(comp.Data, "title"))
	buttonText := getStringOr(comp.Data, "buttonText", "Send message")
	recipient := strings.TrimSpace(getString(comp.Data, "recipientEmail"))

	// A form with nowhere to deliver is not publicly useful.
	if recipient == "" && !ctx.Editable() {
		return ""
	}

	primary := resolve(nil, ctx.Palette.PrimaryColor, "#2563eb")
	radius := resolve(comp.Styles.BorderRadius, ctx.Palette.BorderRadius, "8px")

	var buttonStyle styleAttr
	buttonStyle.add("background-color", primary)
	buttonStyle.add("border-radius", radius)

	// Delivery goes through the visitor's mail client. Published pages are
	// static, so the form posts straight to the recipient's address.
	action := "#"
	if recipient != "" {
		action = "mailto:" + recipient
	}

	var sb strings.Builder
	sb.WriteString(`<div class="pf-contact-form"` + wrapperStyle(ctx, comp) + `>`)
	writeSectionTitle(ctx, &sb, comp, "pf-contact-form", title)
	sb.WriteString(`<form class="pf-contact-form__form" method="post" action="` + esc(action) + `" enctype="text/plain">`)
	sb.WriteString(`<input class="pf-contact-form__input" type="text" name="name" placeholder="Name" required />`)
	sb.WriteString(`<input class="pf-contact-form__input" type="email" name="email" placeholder="Email" required />`)
	sb.WriteString(`<textarea class="pf-contact-form__input pf-contact-form__input--message" name="message" placeholder="Message" required></textarea>`)
	sb.WriteString(`<button class="pf-contact-form__submit" type="submit"` + buttonStyle.String() + `>` + esc(buttonText) + `</button>`)
	sb.WriteString(`</form></div>`)
	return sb.String()
}

// RegisterContactDetails registers the plain contact details component.
func RegisterContactDetails(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeContactDetails,
		Name:        "Contact Details",
		Description: "Email, phone and location as plain text",
		Category:    "contact",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"email": "", "phone": "", "location": ""}
		},
		Render: renderContactDetails,
	})
}

func renderContactDetails(ctx *Context, comp models.Component) string {
	email := strings.TrimSpace(getString(comp.Data, "email"))
	phone := strings.TrimSpace(getString(comp.Data, "phone"))
	location := strings.TrimSpace(getString(comp.Data, "location"))

	if email == "" && phone == "" && location == "" {
		return editPlaceholder(ctx, "pf-contact-details", "Add contact details")
	}

	var bodyStyle styleAttr
	bodyStyle.add("color", resolve(comp.Styles.Color, ctx.Palette.DescriptionColor, "#4b5563"))

	var sb strings.Builder
	sb.WriteString(`<ul class="pf-contact-details"` + wrapperStyle(ctx, comp) + `>`)
	if email != "" {
		sb.WriteString(`<li class="pf-contact-details__item pf-contact-details__item--email"` + bodyStyle.String() + `><a href="mailto:` + esc(email) + `">` + esc(email) + `</a></li>`)
	}
	if phone != "" {
		sb.WriteString(`<li class="pf-contact-details__item pf-contact-details__item--phone"` + bodyStyle.String() + `><a href="tel:` + esc(phone) + `">` + esc(phone) + `</a></li>`)
	}
	if location != "" {
		sb.WriteString(`<li class="pf-contact-details__item pf-contact-details__item--location"` + bodyStyle.String() + `>` + esc(location) + `</li>`)
	}
	sb.WriteString(`</ul>`)
	return sb.String()
}
