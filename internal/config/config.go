package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"

	appenv "github.com/izhairtrend/hairtrend/internal/env"
	"github.com/izhairtrend/hairtrend/internal/locale"
	"github.com/izhairtrend/hairtrend/internal/router"
	"github.com/izhairtrend/hairtrend/internal/xslog"
)

type Config struct {
	Env        appenv.Environment `env:"ENV" envDefault:"development"`
	LogLevel   xslog.Level        `env:"LOG_LEVEL" envDefault:"info"`
	Lang       locale.Locale      `env:"LANG_DEFAULT" envDefault:"ru"`
	BasePath   string             `env:"BASE_PATH" envDefault:"/"`
	Routing    router.Strategy    `env:"ROUTING" envDefault:"auto"`
	PublicHost string             `env:"PUBLIC_HOST"`
	Port       int                `env:"PORT" envDefault:"8080"`
	AssetsDir  string             `env:"ASSETS_DIR"`
	Starfield  Starfield          `envPrefix:"STARFIELD_"`
}

type Starfield struct {
	DPR   float64 `env:"DPR" envDefault:"2"`
	Seed  uint64  `env:"SEED" envDefault:"0"`
	Count int     `env:"COUNT" envDefault:"600"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.Starfield.DPR <= 0 {
		return fmt.Errorf("STARFIELD_DPR must be positive: %v", c.Starfield.DPR)
	}
	if c.Starfield.Count < 0 {
		return fmt.Errorf("STARFIELD_COUNT must not be negative: %d", c.Starfield.Count)
	}
	return nil
}

// Linker resolves the routing strategy against the public host.
func (c Config) Linker() router.Linker {
	return router.NewLinker(c.BasePath, c.Routing.Resolve(c.PublicHost))
}

func (c Config) Addr() string {
	return net.JoinHostPort("", strconv.Itoa(c.Port))
}
