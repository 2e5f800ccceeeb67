// Package config locates the product workspace and loads its layered configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// UserConfigName is the user configuration file, relative to the XDG config home.
	UserConfigName = "pdctl/config.yaml"

	// EnvPrefix prefixes environment variable overrides, e.g. PDCTL_LANES.
	EnvPrefix = "PDCTL"

	// SupportedVersions is the range of workspace.yaml versions this release reads.
	SupportedVersions = "^1.0.0"
)

// Override keys.
const (
	KeyLanes      = "lanes"
	KeyFailFast   = "fail-fast"
	KeyIntentions = "intentions"
)

// Loader implements ports.ConfigLoader on the .workspace directory.
type Loader struct {
	Logger ports.Logger
	// UserConfigFile is the optional user configuration layered over workspace.yaml.
	UserConfigFile string
}

// NewLoader creates a new Loader, locating the user configuration in the XDG config dirs.
func NewLoader(logger ports.Logger) *Loader {
	l := &Loader{Logger: logger}
	if path, err := xdg.SearchConfigFile(UserConfigName); err == nil {
		l.UserConfigFile = path
	}
	return l
}

// SetUserConfigFile replaces the user configuration layered over workspace.yaml.
func (l *Loader) SetUserConfigFile(path string) {
	l.UserConfigFile = path
}

// DiscoverRoot walks up from cwd to the first directory containing a .workspace directory.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	current := cwd
	for {
		info, err := os.Stat(filepath.Join(current, domain.WorkspaceDirName))
		if err == nil && info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", zerr.With(zerr.Wrap(domain.ErrWorkspaceNotFound, "not inside a product"), "cwd", cwd)
}

// Load finds the workspace enclosing cwd and resolves its configuration from
// workspace.yaml, the user configuration and PDCTL_* environment variables.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	product, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}
	route := filepath.Join(product, domain.WorkspaceDirName)

	wf, err := l.readWorkfile(filepath.Join(route, domain.ConfigFileName))
	if err != nil {
		return nil, err
	}

	if err := checkVersion(wf.Version); err != nil {
		return nil, err
	}

	cfg, err := wf.config()
	if err != nil {
		return nil, zerr.With(err, "file", filepath.Join(route, domain.ConfigFileName))
	}

	if err := l.applyOverrides(&cfg); err != nil {
		return nil, err
	}

	if cfg.Lanes < 1 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidLanes, "invalid configuration"), "lanes", cfg.Lanes)
	}

	return &domain.Workspace{Product: product, Route: route, Config: cfg}, nil
}

func (l *Loader) readWorkfile(path string) (*Workfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is inside the discovered workspace
	if errors.Is(err, os.ErrNotExist) {
		l.Logger.Warn(fmt.Sprintf("%s not found, using defaults", domain.ConfigFileName))
		wf := newWorkfile(domain.DefaultWorkspaceConfig())
		return &wf, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "cannot read configuration"),
			"file", path)
	}

	var wf Workfile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "cannot parse configuration"),
			"file", path)
	}
	return &wf, nil
}

func checkVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidVersion, "cannot read workspace version"), "version", version)
	}

	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return zerr.Wrap(err, "invalid supported version range")
	}
	if !constraint.Check(v) {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnsupportedVersion, "workspace needs a different pdctl"),
			"version", version), "supported", SupportedVersions)
	}
	return nil
}

// applyOverrides layers the user configuration file and the environment over cfg.
func (l *Loader) applyOverrides(cfg *domain.WorkspaceConfig) error {
	v := viper.New()
	v.SetDefault(KeyLanes, cfg.Lanes)
	v.SetDefault(KeyFailFast, cfg.FailFast)
	v.SetDefault(KeyIntentions, names(cfg.Intentions))

	if l.UserConfigFile != "" {
		v.SetConfigFile(l.UserConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "cannot read user configuration"),
				"file", l.UserConfigFile)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg.Lanes = v.GetInt(KeyLanes)
	cfg.FailFast = v.GetBool(KeyFailFast)

	var list []string
	for _, entry := range v.GetStringSlice(KeyIntentions) {
		list = append(list, strings.Split(entry, ",")...)
	}
	in, err := domain.ParseIntentions(list)
	if err != nil {
		return err
	}
	if len(in) > 0 {
		cfg.Intentions = in
	}
	return nil
}

// Init creates the .workspace route under product with its directory layout, one host
// construction context per configured context intention, and workspace.yaml.
func (l *Loader) Init(product string, cfg domain.WorkspaceConfig) (*domain.Workspace, error) {
	route := filepath.Join(product, domain.WorkspaceDirName)
	if _, err := os.Stat(route); err == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkspaceExists, "cannot initialize"), "route", route)
	}

	dirs := make([]string, 0, len(domain.WorkspaceDirs)+len(cfg.Contexts))
	for _, d := range domain.WorkspaceDirs {
		dirs = append(dirs, filepath.Join(route, d))
	}
	for _, in := range cfg.Contexts {
		dirs = append(dirs, domain.HostContextPath(route, in))
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrCreateFailed, err), "cannot initialize"), "dir", d)
		}
	}

	data, err := yaml.Marshal(newWorkfile(cfg))
	if err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrConfigWriteFailed, err), "cannot encode configuration")
	}
	path := filepath.Join(route, domain.ConfigFileName)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigWriteFailed, err), "cannot write configuration"),
			"file", path)
	}

	return &domain.Workspace{Product: product, Route: route, Config: cfg}, nil
}
