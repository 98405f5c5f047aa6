// Package assets serves the brand's static artwork: the logo and the hero
// portrait. A missing or unreadable asset is never fatal; callers hide it.
package assets

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/izhairtrend/hairtrend/internal/xslog"
)

const (
	LogoArt = "iz-logo.txt"
	HeroArt = "iz-hero.txt"
	LogoSVG = "iz-logo.svg"
	HeroPNG = "iz-hero.png"
)

//go:embed art
var embedded embed.FS

// Store reads assets from a directory, falling back to the embedded artwork.
type Store struct {
	fsys fs.FS
}

// New returns a Store over dir. An empty dir uses the embedded artwork only.
func New(dir string) *Store {
	if dir == "" {
		return &Store{fsys: Embedded()}
	}
	return &Store{fsys: overlayFS{primary: os.DirFS(dir), fallback: Embedded()}}
}

// NewFS wraps an arbitrary filesystem; used by tests.
func NewFS(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "art")
	if err != nil {
		panic(err)
	}
	return sub
}

func (s *Store) FS() fs.FS {
	return s.fsys
}

func (s *Store) Read(name string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", name, err)
	}
	return data, nil
}

// Art loads a text-art asset. On failure it returns "" so the element is
// hidden, and logs at debug level.
func (s *Store) Art(ctx context.Context, name string) string {
	data, err := s.Read(name)
	if err != nil {
		xslog.FromContext(ctx).DebugContext(ctx, "asset hidden", xslog.Asset(name), xslog.Error(err))
		return ""
	}
	return strings.TrimRight(string(data), "\n")
}

// Art is the artwork the terminal UI renders; empty fields are hidden.
type Art struct {
	Logo string
	Hero string
}

func (s *Store) LoadArt(ctx context.Context) Art {
	return Art{
		Logo: s.Art(ctx, LogoArt),
		Hero: s.Art(ctx, HeroArt),
	}
}

type overlayFS struct {
	primary  fs.FS
	fallback fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	if fb, fbErr := o.fallback.Open(name); fbErr == nil {
		return fb, nil
	}
	return nil, err
}

var _ slog.LogValuer = Art{}

func (a Art) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("logo", a.Logo != ""),
		slog.Bool("hero", a.Hero != ""),
	)
}
