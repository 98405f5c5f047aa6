package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the site's string sets.
type Locale string

const (
	LT Locale = "lt"
	EN Locale = "en"
	RU Locale = "ru"
)

const Default = RU

var _ fmt.Stringer = (*Locale)(nil)

// All returns the supported locales in switcher order.
func All() []Locale {
	return []Locale{LT, EN, RU}
}

func Parse(s string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case LT, EN, RU:
		return l, nil
	default:
		return "", fmt.Errorf("invalid locale: %q (valid: lt, en, ru)", s)
	}
}

// UnmarshalText lets config and flag parsing reject unknown locales up front.
func (l *Locale) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l Locale) String() string {
	return string(l)
}

// Label is the switcher caption, e.g. "LT".
func (l Locale) Label() string {
	return strings.ToUpper(string(l))
}

func (l Locale) Tag() language.Tag {
	switch l {
	case LT:
		return language.Lithuanian
	case EN:
		return language.English
	default:
		return language.Russian
	}
}

// Next cycles lt -> en -> ru -> lt.
func (l Locale) Next() Locale {
	all := All()
	for i, candidate := range all {
		if candidate == l {
			return all[(i+1)%len(all)]
		}
	}
	return Default
}

// FromTag maps a language tag onto a supported locale.
func FromTag(tag language.Tag) (Locale, bool) {
	base, _ := tag.Base()
	l, err := Parse(base.String())
	if err != nil {
		return "", false
	}
	return l, true
}
