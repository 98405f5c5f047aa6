package locale

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
)

func TestLoadEmbeddedIsComplete(t *testing.T) {
	t.Parallel()

	catalog, err := Load()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}

	for _, l := range All() {
		dict := catalog.Dictionary(l)
		if dict.Locale != l {
			t.Errorf("Dictionary(%s).Locale = %s", l, dict.Locale)
		}

		v := reflect.ValueOf(dict)
		for i := range v.NumField() {
			name := v.Type().Field(i).Name
			f := v.Field(i)
			switch f.Kind() {
			case reflect.String:
				if strings.TrimSpace(f.String()) == "" {
					t.Errorf("locale %s: field %s is empty", l, name)
				}
			case reflect.Array:
				for j := range f.Len() {
					if strings.TrimSpace(f.Index(j).String()) == "" {
						t.Errorf("locale %s: field %s[%d] is empty", l, name, j)
					}
				}
			}
		}
	}
}

func TestDictionaryNavLabels(t *testing.T) {
	t.Parallel()

	catalog := MustLoad()

	tests := []struct {
		locale Locale
		want   [4]string
	}{
		{LT, [4]string{"Portfelis", "Parduotuvė", "Mokymai", "Kontaktai"}},
		{EN, [4]string{"Portfolio", "Shop", "Education", "Contacts"}},
		{RU, [4]string{"Портфолио", "Магазин", "Обучение", "Контакты"}},
	}

	for _, tt := range tests {
		t.Run(tt.locale.String(), func(t *testing.T) {
			t.Parallel()
			if got := catalog.Dictionary(tt.locale).Nav; got != tt.want {
				t.Errorf("Nav = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadFSRejectsMissingKey(t *testing.T) {
	t.Parallel()

	fsys := completeFS(t)
	// drop one key from lt
	var trimmed []string
	for _, line := range strings.Split(string(fsys["catalogs/lt.toml"].Data), "\n") {
		if strings.HasPrefix(line, "enroll") {
			continue
		}
		trimmed = append(trimmed, line)
	}
	fsys["catalogs/lt.toml"] = &fstest.MapFile{Data: []byte(strings.Join(trimmed, "\n"))}

	_, err := LoadFS(fsys)
	var missing *MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("LoadFS() error = %v, want MissingKeyError", err)
	}
	if missing.Locale != LT || missing.Key != "enroll" {
		t.Errorf("missing = %+v, want lt/enroll", missing)
	}
}

func TestLoadFSRejectsEmptyValue(t *testing.T) {
	t.Parallel()

	fsys := completeFS(t)
	data := strings.Replace(string(fsys["catalogs/en.toml"].Data), `back = "Back"`, `back = "  "`, 1)
	fsys["catalogs/en.toml"] = &fstest.MapFile{Data: []byte(data)}

	_, err := LoadFS(fsys)
	var missing *MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("LoadFS() error = %v, want MissingKeyError", err)
	}
	if missing.Key != "back" {
		t.Errorf("missing key = %q, want back", missing.Key)
	}
}

func TestLoadFSRejectsMissingLocale(t *testing.T) {
	t.Parallel()

	fsys := completeFS(t)
	delete(fsys, "catalogs/ru.toml")

	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("expected error for missing ru catalog")
	}
}

func TestLoadFSRejectsEmptyFS(t *testing.T) {
	t.Parallel()

	if _, err := LoadFS(fstest.MapFS{}); err == nil {
		t.Fatal("expected error for empty filesystem")
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	catalog := MustLoad()

	tests := []struct {
		name   string
		accept string
		want   Locale
	}{
		{name: "exact english", accept: "en", want: EN},
		{name: "regional english", accept: "en-GB,en;q=0.8", want: EN},
		{name: "lithuanian", accept: "lt-LT", want: LT},
		{name: "russian preferred over english", accept: "ru;q=0.9,en;q=0.5", want: RU},
		{name: "unsupported falls back", accept: "ja", want: Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tags, _, err := language.ParseAcceptLanguage(tt.accept)
			if err != nil {
				t.Fatalf("parse accept-language: %v", err)
			}
			if got := catalog.Match(tags...); got != tt.want {
				t.Errorf("Match(%q) = %s, want %s", tt.accept, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{in: "lt", want: LT},
		{in: "EN", want: EN},
		{in: " ru ", want: RU},
		{in: "de", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNextCycles(t *testing.T) {
	t.Parallel()

	l := LT
	seen := []Locale{l}
	for range 3 {
		l = l.Next()
		seen = append(seen, l)
	}
	want := []Locale{LT, EN, RU, LT}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("Next() sequence = %v, want %v", seen, want)
	}
}

func completeFS(t *testing.T) fstest.MapFS {
	t.Helper()

	fsys := fstest.MapFS{}
	for _, l := range All() {
		path := "catalogs/" + l.String() + ".toml"
		data, err := embeddedCatalogs.ReadFile(path)
		if err != nil {
			t.Fatalf("read embedded %s: %v", path, err)
		}
		fsys[path] = &fstest.MapFile{Data: data}
	}
	return fsys
}
