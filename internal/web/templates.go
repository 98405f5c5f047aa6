package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/site"
	"github.com/izhairtrend/hairtrend/internal/site/assets"
	"github.com/izhairtrend/hairtrend/internal/version"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type link struct {
	Label  string
	Href   string
	Code   string
	Active bool
}

type card struct {
	Title string
	Body  string
	Href  string
}

// view is one rendered section. Path mode renders a single view per page;
// hash mode renders all of them and lets the fragment pick one.
type view struct {
	ID      string
	Name    string // selects the section template
	Heading string
	Brand   string
	Home    string
	Back    string
	Logo    string

	// Locales carries the view's fragment in hash mode, where the
	// server never sees which view is showing.
	Locales []link
}

type document struct {
	Lang    string
	Title   string
	Brand   string
	Version string
	Handle  string
	Logo    string
	Hero    string
	Hash    bool

	Dict     locale.Dictionary
	Locales  []link
	Nav      []link
	Cards    []card
	Views    []view
	Missing  string
	Gallery  []site.GalleryItem
	Products []site.Product
	Courses  []site.Course
	Contacts site.ContactDetails
}

// newDocument assembles the page data for route r. selfPath is the path the
// language links point back to.
func (s *Server) newDocument(dict locale.Dictionary, r router.Route, selfPath string) document {
	l := s.linker
	doc := document{
		Lang:     dict.Locale.String(),
		Title:    r.Heading(dict),
		Brand:    site.Brand,
		Version:  version.Short(version.Get()),
		Handle:   site.Contacts().Handle,
		Logo:     l.Asset(assets.LogoSVG),
		Hero:     l.Asset(assets.HeroPNG),
		Hash:     l.Strategy() == router.StrategyHash,
		Dict:     dict,
		Gallery:  site.Gallery(),
		Products: site.Products(),
		Courses:  site.Courses(),
		Contacts: site.Contacts(),
	}

	doc.Locales = localeLinks(dict.Locale, selfPath, "")

	blurbs := [3]string{dict.PortfolioBlurb, dict.ShopBlurb, dict.EducationBlurb}
	for i, nr := range router.NavRoutes() {
		doc.Nav = append(doc.Nav, link{Label: dict.Nav[i], Href: l.Href(nr)})
		if i < len(blurbs) {
			doc.Cards = append(doc.Cards, card{Title: dict.Nav[i], Body: blurbs[i], Href: l.Href(nr)})
		}
	}

	routes := []router.Route{r}
	if doc.Hash && r == router.Home {
		routes = router.Routes()
	}
	for _, vr := range routes {
		id, fragment := vr.Path(), vr.Path()
		switch vr {
		case router.Home:
			id, fragment = "home", ""
		case router.NotFound:
			fragment = ""
		}
		v := view{
			ID:      id,
			Name:    vr.String(),
			Heading: vr.Heading(dict),
			Brand:   site.Brand,
			Home:    l.Href(router.Home),
			Back:    dict.Back,
			Logo:    doc.Logo,
		}
		if doc.Hash {
			v.Locales = localeLinks(dict.Locale, selfPath, fragment)
		}
		doc.Views = append(doc.Views, v)
	}

	return doc
}

// localeLinks points every locale back at selfPath, keeping fragment.
func localeLinks(active locale.Locale, selfPath, fragment string) []link {
	links := make([]link, 0, len(locale.All()))
	for _, loc := range locale.All() {
		href := selfPath + "?" + langParam + "=" + loc.String()
		if fragment != "" {
			href += "#" + fragment
		}
		links = append(links, link{
			Label:  loc.Label(),
			Href:   href,
			Code:   loc.String(),
			Active: loc == active,
		})
	}
	return links
}

func render(doc document) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "layout", doc); err != nil {
		return nil, fmt.Errorf("render %s: %w", doc.Title, err)
	}
	return &buf, nil
}
