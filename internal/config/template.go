package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ppiankov/identigen/internal/model"
	"gopkg.in/ini.v1"
)

// ErrConfigExists is returned by WriteDefault when the target file is present
var ErrConfigExists = errors.New("config file already exists")

type templateKey struct {
	section string
	name    string
	comment string
}

var templateKeys = []templateKey{
	{"advanced_options", "name_set", "name set sent as n[]"},
	{"advanced_options", "country", "country sent as c[]"},
	{"advanced_options", "gen", "gender mix percentage sent as gen"},
	{"advanced_options", "age_min", ""},
	{"advanced_options", "age_max", ""},
	{"qr_options", "generate_qr", "On writes a QR code PNG next to each record"},
	{"output_options", "output_dir", "created on first write"},
	{"http_options", "base_url", ""},
	{"http_options", "timeout", "Go duration, e.g. 10s"},
	{"http_options", "max_body_bytes", ""},
	{"http_options", "respect_robots", "On checks robots.txt before fetching"},
	{"http_options", "http_proxy", "empty uses HTTP_PROXY from the environment"},
	{"http_options", "https_proxy", "empty uses HTTPS_PROXY from the environment"},
}

// WriteDefault writes a documented config.ini holding cfg to path.
// It refuses to overwrite an existing file.
func WriteDefault(path string, cfg *model.Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	values := Flatten(cfg)
	file := ini.Empty()
	for _, tk := range templateKeys {
		section, err := file.NewSection(tk.section)
		if err != nil {
			return fmt.Errorf("section %s: %w", tk.section, err)
		}
		key, err := section.NewKey(tk.name, values[tk.section+"."+tk.name])
		if err != nil {
			return fmt.Errorf("key %s.%s: %w", tk.section, tk.name, err)
		}
		if tk.comment != "" {
			key.Comment = "; " + tk.comment
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
