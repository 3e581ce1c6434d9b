package types

import (
	"net/url"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/iota-uz/commerce-admin/pkg/intl"
)

// PageContextProvider carries per-request rendering state into templ
// components.
type PageContextProvider interface {
	T(key string, args ...map[string]interface{}) string
	GetLocale() language.Tag
	GetURL() *url.URL
	GetLocalizer() *i18n.Localizer
	NavItems() []NavigationItem
	Toasts() []Toast
}

// Toast is a notification rendered once on the next page.
type Toast struct {
	Status string
	Text   string
}

type PageContext struct {
	URL       *url.URL
	Localizer *i18n.Localizer
	Locale    language.Tag
	Nav       []NavigationItem
	Flash     []Toast
}

func (p *PageContext) T(key string, args ...map[string]interface{}) string {
	return intl.T(p.Localizer, key, args...)
}

func (p *PageContext) GetLocale() language.Tag {
	return p.Locale
}

func (p *PageContext) GetURL() *url.URL {
	return p.URL
}

func (p *PageContext) GetLocalizer() *i18n.Localizer {
	return p.Localizer
}

func (p *PageContext) NavItems() []NavigationItem {
	return p.Nav
}

func (p *PageContext) Toasts() []Toast {
	return p.Flash
}
