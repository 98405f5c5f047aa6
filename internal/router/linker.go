package router

import (
	"fmt"
	"strings"
)

type Strategy string

const (
	StrategyAuto Strategy = "auto"
	StrategyPath Strategy = "path"
	StrategyHash Strategy = "hash"
)

const githubPagesSuffix = ".github.io"

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyAuto, "":
		return StrategyAuto, nil
	case StrategyPath:
		return StrategyPath, nil
	case StrategyHash:
		return StrategyHash, nil
	default:
		return "", fmt.Errorf("invalid routing strategy: %q (valid: auto, path, hash)", s)
	}
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Strategy) String() string { return string(s) }

// Resolve settles auto: static hosts that cannot rewrite unknown paths to the
// index get hash routing.
func (s Strategy) Resolve(publicHost string) Strategy {
	if s != StrategyAuto {
		return s
	}
	host := strings.ToLower(strings.TrimSpace(publicHost))
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	if strings.HasSuffix(host, githubPagesSuffix) {
		return StrategyHash
	}
	return StrategyPath
}

// Linker builds hrefs for routes under a base path.
type Linker struct {
	base     string
	strategy Strategy
}

// NewLinker normalizes base to "/" or "/segment" form. strategy must already
// be resolved; auto is treated as path.
func NewLinker(base string, strategy Strategy) Linker {
	if strategy == StrategyAuto {
		strategy = StrategyPath
	}
	return Linker{base: NormalizeBase(base), strategy: strategy}
}

func NormalizeBase(base string) string {
	b := strings.Trim(strings.TrimSpace(base), "/")
	if b == "" {
		return "/"
	}
	return "/" + b
}

func (l Linker) Base() string { return l.base }

func (l Linker) Strategy() Strategy { return l.strategy }

// Root is the base with a trailing slash, the document every hash link
// points into.
func (l Linker) Root() string {
	if l.base == "/" {
		return "/"
	}
	return l.base + "/"
}

func (l Linker) Href(r Route) string {
	if l.strategy == StrategyHash {
		if r == Home {
			return l.Root()
		}
		return l.Root() + "#" + r.Path()
	}
	if r == Home {
		return l.Root()
	}
	if l.base == "/" {
		return r.Path()
	}
	return l.base + r.Path()
}

// Asset is the href of a file served under the base's assets directory.
func (l Linker) Asset(name string) string {
	return l.Root() + "assets/" + strings.TrimPrefix(name, "/")
}

// Strip removes the base from a request path. It reports false when the path
// is outside the base.
func (l Linker) Strip(path string) (string, bool) {
	if l.base == "/" {
		return path, true
	}
	if path == l.base {
		return "/", true
	}
	rest, ok := strings.CutPrefix(path, l.base+"/")
	if !ok {
		return "", false
	}
	return "/" + rest, true
}
