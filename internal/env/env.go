package env

import (
	"fmt"
	"strings"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

func (e Environment) IsDevelopment() bool { return e == Development }
func (e Environment) IsProduction() bool  { return e == Production }

func (e Environment) String() string { return string(e) }

// UnmarshalText accepts the short forms used in deploy manifests.
func (e *Environment) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "development", "dev", "":
		*e = Development
	case "production", "prod":
		*e = Production
	default:
		return fmt.Errorf("unknown environment %q", text)
	}
	return nil
}
