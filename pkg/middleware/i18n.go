package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/iota-uz/commerce-admin/pkg/intl"
)

const (
	// LocaleCookie overrides Accept-Language when present.
	LocaleCookie = "locale"
	// LocaleParam switches the locale and remembers the choice in LocaleCookie.
	LocaleParam = "lang"
)

// Application is the part of the app the localizer needs.
type Application interface {
	Bundle() *i18n.Bundle
	GetSupportedLanguages() []string
}

type localeResolver struct {
	fallback language.Tag
	matcher  language.Matcher
	tags     []language.Tag
}

func newLocaleResolver(codes []string) *localeResolver {
	langs := intl.GetSupportedLanguages(codes)
	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tags = append(tags, l.Tag)
	}
	res := &localeResolver{fallback: language.English, tags: tags}
	if len(tags) > 0 {
		res.matcher = language.NewMatcher(tags)
	}
	return res
}

func (lr *localeResolver) match(candidates ...language.Tag) language.Tag {
	if lr.matcher == nil {
		return lr.fallback
	}
	if len(candidates) == 0 {
		candidates = []language.Tag{lr.fallback}
	}
	_, idx, _ := lr.matcher.Match(candidates...)
	return lr.tags[idx]
}

// resolve picks the locale from the lang param, then the cookie, then
// Accept-Language. explicit reports whether the lang param decided it.
func (lr *localeResolver) resolve(r *http.Request) (tag language.Tag, explicit bool) {
	if v := r.URL.Query().Get(LocaleParam); v != "" {
		if t, err := language.Parse(v); err == nil {
			return lr.match(t), true
		}
	}
	if c, err := r.Cookie(LocaleCookie); err == nil {
		if t, err := language.Parse(c.Value); err == nil {
			return lr.match(t), false
		}
	}
	accepted, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil {
		return lr.match(), false
	}
	return lr.match(accepted...), false
}

func ProvideLocalizer(app Application) mux.MiddlewareFunc {
	bundle := app.Bundle()
	resolver := newLocaleResolver(app.GetSupportedLanguages())
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, explicit := resolver.resolve(r)
			if explicit {
				http.SetCookie(w, &http.Cookie{
					Name:     LocaleCookie,
					Value:    locale.String(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := intl.WithLocalizer(r.Context(), i18n.NewLocalizer(bundle, locale.String()))
			ctx = intl.WithLocale(ctx, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
