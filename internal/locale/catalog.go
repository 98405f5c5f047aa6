package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed catalogs/*.toml
var embeddedCatalogs embed.FS

const catalogGlob = "catalogs/*.toml"

// Dictionary is the fixed-shape string record every view renders from.
type Dictionary struct {
	Locale Locale

	Tagline string
	Hero    string
	Back    string
	Home    string
	Scroll  string

	// Nav holds the portfolio, shop, education and contacts labels in that order.
	Nav [4]string

	PortfolioBlurb string
	ShopBlurb      string
	EducationBlurb string
	ContactsBlurb  string

	AddToCart      string
	Enroll         string
	Send           string
	FormName       string
	FormEmail      string
	FormSubject    string
	FormMessage    string
	MapPlaceholder string

	NotFound     string
	NotFoundHint string
}

type field struct {
	id  string
	set func(*Dictionary, string)
}

var fields = []field{
	{"tagline", func(d *Dictionary, s string) { d.Tagline = s }},
	{"hero", func(d *Dictionary, s string) { d.Hero = s }},
	{"back", func(d *Dictionary, s string) { d.Back = s }},
	{"home", func(d *Dictionary, s string) { d.Home = s }},
	{"scroll", func(d *Dictionary, s string) { d.Scroll = s }},
	{"nav_portfolio", func(d *Dictionary, s string) { d.Nav[0] = s }},
	{"nav_shop", func(d *Dictionary, s string) { d.Nav[1] = s }},
	{"nav_education", func(d *Dictionary, s string) { d.Nav[2] = s }},
	{"nav_contacts", func(d *Dictionary, s string) { d.Nav[3] = s }},
	{"portfolio_blurb", func(d *Dictionary, s string) { d.PortfolioBlurb = s }},
	{"shop_blurb", func(d *Dictionary, s string) { d.ShopBlurb = s }},
	{"education_blurb", func(d *Dictionary, s string) { d.EducationBlurb = s }},
	{"contacts_blurb", func(d *Dictionary, s string) { d.ContactsBlurb = s }},
	{"add_to_cart", func(d *Dictionary, s string) { d.AddToCart = s }},
	{"enroll", func(d *Dictionary, s string) { d.Enroll = s }},
	{"send", func(d *Dictionary, s string) { d.Send = s }},
	{"form_name", func(d *Dictionary, s string) { d.FormName = s }},
	{"form_email", func(d *Dictionary, s string) { d.FormEmail = s }},
	{"form_subject", func(d *Dictionary, s string) { d.FormSubject = s }},
	{"form_message", func(d *Dictionary, s string) { d.FormMessage = s }},
	{"map_placeholder", func(d *Dictionary, s string) { d.MapPlaceholder = s }},
	{"not_found", func(d *Dictionary, s string) { d.NotFound = s }},
	{"not_found_hint", func(d *Dictionary, s string) { d.NotFoundHint = s }},
}

// Keys returns every message ID a catalog must define.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.id
	}
	return keys
}

// Catalog holds one complete Dictionary per supported locale.
type Catalog struct {
	bundle  *i18n.Bundle
	matcher language.Matcher
	dicts   map[Locale]Dictionary
}

// MissingKeyError reports a message ID a locale catalog does not define.
type MissingKeyError struct {
	Locale Locale
	Key    string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("locale %s: missing or empty key %q", e.Locale, e.Key)
}

// Load reads the catalogs embedded in the binary.
func Load() (*Catalog, error) {
	return LoadFS(embeddedCatalogs)
}

// MustLoad is Load for callers that treat a broken embedded catalog as a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFS reads catalogs/<locale>.toml from fsys and verifies that every
// supported locale defines every key with a non-empty value.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, catalogGlob)
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no locale catalogs found")
	}
	sort.Strings(paths)

	bundle := i18n.NewBundle(Default.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(fsys, path); err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
	}

	loaded := make(map[Locale]bool)
	for _, tag := range bundle.LanguageTags() {
		if l, ok := FromTag(tag); ok {
			loaded[l] = true
		}
	}

	c := &Catalog{
		bundle: bundle,
		dicts:  make(map[Locale]Dictionary, len(All())),
	}

	tags := make([]language.Tag, 0, len(All()))
	for _, l := range All() {
		if !loaded[l] {
			return nil, fmt.Errorf("locale %s: catalog not found", l)
		}
		dict, err := c.build(l)
		if err != nil {
			return nil, err
		}
		c.dicts[l] = dict
		tags = append(tags, l.Tag())
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

func (c *Catalog) build(l Locale) (Dictionary, error) {
	localizer := i18n.NewLocalizer(c.bundle, l.String())
	dict := Dictionary{Locale: l}

	for _, f := range fields {
		value, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: f.id})
		var notFound *i18n.MessageNotFoundErr
		switch {
		case errors.As(err, &notFound):
			return Dictionary{}, &MissingKeyError{Locale: l, Key: f.id}
		case err != nil:
			return Dictionary{}, fmt.Errorf("locale %s: localize %q: %w", l, f.id, err)
		case strings.TrimSpace(value) == "":
			return Dictionary{}, &MissingKeyError{Locale: l, Key: f.id}
		}
		f.set(&dict, value)
	}

	return dict, nil
}

// Dictionary returns the strings for l, falling back to the default locale.
func (c *Catalog) Dictionary(l Locale) Dictionary {
	if d, ok := c.dicts[l]; ok {
		return d
	}
	return c.dicts[Default]
}

// Match picks the best supported locale for a list of preferred tags,
// as produced by language.ParseAcceptLanguage.
func (c *Catalog) Match(tags ...language.Tag) Locale {
	if len(tags) == 0 {
		return Default
	}
	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return All()[index]
}
