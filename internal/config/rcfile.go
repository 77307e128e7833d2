package config

// Rc files are flat key=value assignments, parsed with godotenv rather than
// evaluated. Recognized keys override the default templates; unknown keys
// are ignored so shared rc files can carry settings for other tools.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// RCPaths returns the rc files in read order: the XDG config dir first, then
// the home dot-file. A later file overrides an earlier one.
func RCPaths() []string {
	home := os.Getenv("HOME")
	if home == "" {
		home = "/"
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		xdg = filepath.Join(home, ".config")
	}
	return []string{
		filepath.Join(xdg, "renuniqrc"),
		filepath.Join(home, ".renuniqrc"),
	}
}

// LoadRCFiles applies settings from the rc files onto cfg. Missing files are
// ignored; a file that exists but cannot be parsed is an error.
func LoadRCFiles(cfg *Config) error {
	for _, path := range RCPaths() {
		vals, err := godotenv.Read(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		applyRC(cfg, vals)
	}
	return nil
}

func applyRC(cfg *Config, vals map[string]string) {
	if v, ok := vals["default_template"]; ok {
		cfg.DefaultTemplate = v
	}
	if v, ok := vals["default_template_single"]; ok {
		cfg.DefaultTemplateSingle = v
	}
	if v, ok := vals["default_template_desc"]; ok {
		cfg.DefaultTemplateDesc = v
	}
	if v, ok := vals["default_template_desc_single"]; ok {
		cfg.DefaultTemplateDescSingle = v
	}
}
