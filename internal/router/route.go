// Package router maps site paths to views and tracks navigation history.
package router

import (
	"strings"

	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/site"
)

type Route int

const (
	Home Route = iota
	Portfolio
	Shop
	Education
	Contacts
	NotFound
)

var slugs = [...]string{
	Home:      "",
	Portfolio: "portfolio",
	Shop:      "shop",
	Education: "education",
	Contacts:  "contacts",
	NotFound:  "not-found",
}

// Routes lists every addressable view in navigation order.
func Routes() []Route {
	return []Route{Home, Portfolio, Shop, Education, Contacts}
}

// NavRoutes are the four destinations offered by the home view's buttons.
func NavRoutes() [4]Route {
	return [4]Route{Portfolio, Shop, Education, Contacts}
}

func (r Route) String() string {
	if r == Home {
		return "home"
	}
	if r < Home || r > NotFound {
		return slugs[NotFound]
	}
	return slugs[r]
}

func (r Route) Slug() string {
	if r < Home || r >= NotFound {
		return ""
	}
	return slugs[r]
}

// Path is the route's path relative to the base, always with a leading slash.
func (r Route) Path() string {
	return "/" + r.Slug()
}

// NavIndex is the route's position among the navigation labels, or -1 for
// views that have no label.
func (r Route) NavIndex() int {
	switch r {
	case Portfolio, Shop, Education, Contacts:
		return int(r - Portfolio)
	default:
		return -1
	}
}

// Heading is the title shown in the page frame for dict's locale.
func (r Route) Heading(dict locale.Dictionary) string {
	if i := r.NavIndex(); i >= 0 {
		return dict.Nav[i]
	}
	if r == Home {
		return site.Brand
	}
	return dict.NotFound
}

// Match resolves a path relative to the base. Trailing slashes, a leading
// hash fragment marker and letter case are ignored.
func Match(path string) (Route, bool) {
	p := strings.TrimSpace(path)
	p = strings.TrimPrefix(p, "#")
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.Trim(p, "/")
	p = strings.ToLower(p)

	for _, r := range Routes() {
		if r.Slug() == p {
			return r, true
		}
	}
	return NotFound, false
}
