// Package config loads the run configuration from config.ini, the environment
// and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/ppiankov/identigen/internal/model"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// DefaultPath is the config file read when --config is not given
const DefaultPath = "config.ini"

// EnvPrefix prefixes every environment override, e.g. IDENTIGEN_QR_OPTIONS_GENERATE_QR
const EnvPrefix = "IDENTIGEN"

// Loader layers defaults, config file, environment and flags
type Loader struct {
	v    *viper.Viper
	path string
	used string
}

// NewLoader creates a loader for the config file at path
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultPath
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, model.DefaultConfig())

	return &Loader{v: v, path: path}
}

// BindFlag lets a command-line flag override key when the flag is set
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: flag not defined", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Path returns the config file path the loader reads
func (l *Loader) Path() string {
	return l.path
}

// Used returns the config file that was actually read, or "" when none existed
func (l *Loader) Used() string {
	return l.used
}

// Load builds the effective configuration. A missing file is not an error.
func (l *Loader) Load() (*model.Config, error) {
	sections, err := readINI(l.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.used = ""
	case err != nil:
		return nil, fmt.Errorf("load config: %w", err)
	default:
		l.used = l.path
		if err := l.v.MergeConfigMap(sections); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	cfg := &model.Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: decode: %w", err)
	}

	// Blank values in the file fall back to defaults
	if err := mergo.Merge(cfg, model.DefaultConfig()); err != nil {
		return nil, fmt.Errorf("load config: defaults: %w", err)
	}

	return cfg, nil
}

// Load reads the config file at path with environment overrides applied
func Load(path string) (*model.Config, error) {
	return NewLoader(path).Load()
}

// readINI parses path into a section -> key -> value map
func readINI(path string) (map[string]any, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveSections: true,
		InsensitiveKeys:     true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	out := make(map[string]any)
	for _, section := range file.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		values := make(map[string]any, len(section.Keys()))
		for _, key := range section.Keys() {
			values[key.Name()] = strings.TrimSpace(key.String())
		}
		out[section.Name()] = values
	}

	return out, nil
}

// setDefaults registers every key so environment overrides are seen by Unmarshal
func setDefaults(v *viper.Viper, cfg *model.Config) {
	for key, value := range Flatten(cfg) {
		v.SetDefault(key, value)
	}
}

// Sections returns cfg grouped as section -> key -> value, the shape of config.ini
func Sections(cfg *model.Config) map[string]map[string]string {
	out := make(map[string]map[string]string)
	for dotted, value := range Flatten(cfg) {
		section, key, _ := strings.Cut(dotted, ".")
		if out[section] == nil {
			out[section] = make(map[string]string)
		}
		out[section][key] = value
	}
	return out
}

// Flatten returns cfg as dotted section.key -> string pairs
func Flatten(cfg *model.Config) map[string]string {
	return map[string]string{
		"advanced_options.name_set": cfg.Advanced.NameSet,
		"advanced_options.country":  cfg.Advanced.Country,
		"advanced_options.gen":      cfg.Advanced.Gen,
		"advanced_options.age_min":  cfg.Advanced.AgeMin,
		"advanced_options.age_max":  cfg.Advanced.AgeMax,

		"qr_options.generate_qr": cfg.QR.GenerateQR,

		"output_options.output_dir": cfg.Output.Dir,

		"http_options.base_url":       cfg.HTTP.BaseURL,
		"http_options.timeout":        cfg.HTTP.Timeout.String(),
		"http_options.max_body_bytes": strconv.FormatInt(cfg.HTTP.MaxBodyBytes, 10),
		"http_options.respect_robots": cfg.HTTP.RespectRobots,
		"http_options.http_proxy":     cfg.HTTP.HTTPProxy,
		"http_options.https_proxy":    cfg.HTTP.HTTPSProxy,
	}
}
