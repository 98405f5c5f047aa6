package web

import (
	"net/http"
	"time"

	"golang.org/x/text/language"

	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/xhttp"
)

const (
	langParam  = "lang"
	langCookie = "hairtrend_lang"
	langMaxAge = 365 * 24 * time.Hour
)

// resolveLocale picks the request's locale: an explicit ?lang= wins and is
// remembered in a cookie, then the cookie, then Accept-Language, then the
// configured default.
func (s *Server) resolveLocale(w http.ResponseWriter, r *http.Request) locale.Locale {
	if q := r.URL.Query().Get(langParam); q != "" {
		if l, err := locale.Parse(q); err == nil {
			http.SetCookie(w, &http.Cookie{
				Name:     langCookie,
				Value:    l.String(),
				Path:     s.linker.Root(),
				MaxAge:   int(langMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			return l
		}
	}

	if c, err := r.Cookie(langCookie); err == nil {
		if l, err := locale.Parse(c.Value); err == nil {
			return l
		}
	}

	if header := r.Header.Get(xhttp.AcceptLanguage); header != "" {
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil && len(tags) > 0 {
			if l := s.catalog.Match(tags...); l != locale.Default || matchesDefault(tags) {
				return l
			}
		}
	}

	return s.defaultLocale
}

// matchesDefault reports whether the client actually asked for the default
// locale, as opposed to the matcher falling back to it.
func matchesDefault(tags []language.Tag) bool {
	want, _ := locale.Default.Tag().Base()
	for _, t := range tags {
		if base, _ := t.Base(); base == want {
			return true
		}
	}
	return false
}
