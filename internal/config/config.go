// Package config holds runtime configuration: defaults, rc-file loading,
// and CLI flag parsing.
package config

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overridden by [LoadRCFiles], and then mutated by [ParseFlags]
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Files to rename, in the order given. Order is significant: it fixes
	// the counter assignment and the common-prefix computation.
	Names []string

	// Renaming settings.
	Template       string // Explicit template from -t; empty selects a default.
	Descriptor     string // Bound to %{DESC}.
	CountStart     int    // Default: 1.
	CountInterval  int    // Default: 1.
	StrftimeEnable bool   // Default: true. Cleared by -m.
	UseTimeNow     bool   // Format times against "now" instead of each file's mtime.
	DryRun         bool

	// Default templates used when -t is absent; rc files may override them.
	DefaultTemplate           string
	DefaultTemplateSingle     string
	DefaultTemplateDesc       string
	DefaultTemplateDescSingle string

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.

	// Exit-early requests; the caller acts on these after rc files are
	// loaded, because usage output depends on the configured defaults.
	ShowHelp    bool
	ShowLicense bool
	ShowVersion bool
}

// DefaultConfig returns a Config with the shipped defaults. The single-file
// template variants mirror the plural forms until an rc file overrides them.
func DefaultConfig() Config {
	return Config{
		CountStart:                1,
		CountInterval:             1,
		StrftimeEnable:            true,
		DefaultTemplate:           "%Y%m%d_%{UNIQSUFF}",
		DefaultTemplateSingle:     "%Y%m%d_%{UNIQSUFF}",
		DefaultTemplateDesc:       "%Y%m%d_%{DESC}_%{UNIQSUFF}",
		DefaultTemplateDescSingle: "%Y%m%d_%{DESC}_%{UNIQSUFF}",
		ColorMode:                 ColorAuto,
	}
}

// ResolveTemplate fills Template from the configured defaults when the user
// gave none. Selection depends on whether a descriptor was given and whether
// exactly one file is being renamed.
func (c *Config) ResolveTemplate() {
	if c.Template != "" {
		return
	}
	single := len(c.Names) == 1
	if c.Descriptor != "" {
		if single {
			c.Template = c.DefaultTemplateDescSingle
		} else {
			c.Template = c.DefaultTemplateDesc
		}
		return
	}
	if single {
		c.Template = c.DefaultTemplateSingle
	} else {
		c.Template = c.DefaultTemplate
	}
}
