package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/logutil"
)

const (
	EnvIsotope  = "ATOMSIM_ISOTOPE"
	EnvTheme    = "ATOMSIM_THEME"
	EnvFPS      = "ATOMSIM_FPS"
	EnvLogLevel = "LOG_LEVEL"
)

// LoadDotEnv reads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	logutil.Debugf("loaded environment from %s", path)
	return nil
}

// ApplyEnv overrides cfg from ATOMSIM_* variables and sets the log level.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		logutil.SetLevel(logutil.ParseLevel(v))
	}
	if v, ok := os.LookupEnv(EnvIsotope); ok && v != "" {
		iso, err := atom.ParseIsotope(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvIsotope, err)
		}
		c.Isotope = int(iso)
	}
	if v, ok := os.LookupEnv(EnvTheme); ok && v != "" {
		c.Theme = v
	}
	if v, ok := os.LookupEnv(EnvFPS); ok && v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			return fmt.Errorf("%s=%q: %w", EnvFPS, v, ErrInvalidFPS)
		}
		c.FPS = fps
	}
	return nil
}
