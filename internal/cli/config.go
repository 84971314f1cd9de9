package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/squashgraph/pkg/errors"
	"github.com/matzehuels/squashgraph/pkg/source/django"
)

// Config is the squashgraph.toml file.
//
//	root = "."
//	renderer = "dot"
//	output = "docs/migrations.svg"
//
//	[[apps]]
//	label = "blog"
//	path = "apps/blog"
//
// Relative paths are resolved against the directory of the config file (root)
// and against root (app paths). Listing apps disables discovery.
type Config struct {
	Root     string      `toml:"root"`
	Renderer string      `toml:"renderer"`
	Output   string      `toml:"output"`
	Apps     []AppConfig `toml:"apps"`

	// path is the file the config was read from, empty for defaults.
	path string
}

// AppConfig declares one app explicitly.
type AppConfig struct {
	Label string `toml:"label"`
	Path  string `toml:"path"`
}

// loadConfig reads the config file at path. With an empty path it tries
// ./squashgraph.toml and then the user config directory, returning an empty
// config when neither exists.
func loadConfig(path string) (*Config, error) {
	if path != "" {
		return readConfig(path)
	}

	candidates := []string{configFileName}
	if dir, err := configDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}
	return &Config{}, nil
}

func readConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	cfg.path = path
	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}
	for _, a := range cfg.Apps {
		if err := errors.ValidateAppLabel(a.Label); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
		}
		if a.Path == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "config %s: app %q has no path", path, a.Label)
		}
	}
	return &cfg, nil
}

// resolveApps returns the configured apps, or discovers them below root when
// the config lists none.
func (cfg *Config) resolveApps(root string) ([]django.App, error) {
	if len(cfg.Apps) == 0 {
		return django.Discover(root)
	}

	seen := make(map[string]bool, len(cfg.Apps))
	apps := make([]django.App, 0, len(cfg.Apps))
	for _, a := range cfg.Apps {
		if seen[a.Label] {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "app %q configured twice", a.Label)
		}
		seen[a.Label] = true

		p := a.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		apps = append(apps, django.App{Label: a.Label, Path: p})
	}
	return apps, nil
}
