package icons

import (
	"fmt"

	"github.com/SH20RAJ/icons/raster"
	"github.com/caarlos0/env/v11"
)

// Env is the build configuration read from the process environment.
type Env struct {
	// Limit caps the number of icons loaded, for fast local iterations.
	Limit int `env:"ICONS_LIMIT" envDefault:"0"`
	// SrcDir is the directory holding the styles of the icon sources.
	SrcDir string `env:"ICONS_SRC_DIR" envDefault:"icons"`
	// Converter is the SVG to PNG converter binary.
	Converter string `env:"RSVG_CONVERT" envDefault:"rsvg-convert"`
}

// ReadEnv reads the build configuration from the process environment.
func ReadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, configError("parse env", err)
	}
	return cfg.validate()
}

// ReadEnvFrom reads the build configuration from vars instead of the
// process environment.
func ReadEnvFrom(vars map[string]string) (Env, error) {
	var cfg Env
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Env{}, configError("parse env", err)
	}
	return cfg.validate()
}

func (e Env) validate() (Env, error) {
	if e.Limit < 0 {
		return Env{}, configError("parse env", fmt.Errorf("ICONS_LIMIT must not be negative, got %d", e.Limit))
	}
	if e.Converter == "" {
		e.Converter = raster.DefaultBin
	}
	return e, nil
}

// LoadOptions returns the loader options derived from the environment.
func (e Env) LoadOptions() LoadOptions {
	return LoadOptions{Limit: e.Limit}
}
