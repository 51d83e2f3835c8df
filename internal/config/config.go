package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
)

const (
	DefaultAddr  = ":8000"
	DefaultRoot  = "."
	DefaultIndex = "index.html"
)

// Config holds the resolved server settings.
type Config struct {
	Addr        string
	Root        string
	Index       string
	OpenBrowser bool
}

// fileConfig is the TOML shape of a config file. Open is a pointer so an
// absent key is distinguishable from an explicit false.
type fileConfig struct {
	Addr  string `toml:"addr"`
	Root  string `toml:"root"`
	Index string `toml:"index"`
	Open  *bool  `toml:"open"`
}

func Default() Config {
	return Config{
		Addr:        DefaultAddr,
		Root:        DefaultRoot,
		Index:       DefaultIndex,
		OpenBrowser: true,
	}
}

// Load reads a TOML config file. A relative root in the file resolves
// against the directory containing the file, so a config shipped next to
// its content keeps working regardless of where the server is launched
// from.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var f fileConfig
	if err := toml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if f.Root != "" && !filepath.IsAbs(f.Root) {
		f.Root = filepath.Join(filepath.Dir(path), f.Root)
	}

	cfg := f.merge(Default())
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (f fileConfig) merge(base Config) Config {
	base.Addr = lo.Ternary(f.Addr != "", f.Addr, base.Addr)
	base.Root = lo.Ternary(f.Root != "", f.Root, base.Root)
	base.Index = lo.Ternary(f.Index != "", f.Index, base.Index)
	base.OpenBrowser = lo.FromPtrOr(f.Open, base.OpenBrowser)
	return base
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.Root == "" {
		return errors.New("root must not be empty")
	}
	if c.Index == "" || strings.Contains(c.Index, "/") {
		return fmt.Errorf("invalid index document %q", c.Index)
	}
	return nil
}
