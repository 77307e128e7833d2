package config

// This file implements CLI flag parsing and help text. Every short flag has
// a long alias. Negated flags (e.g. -m/--no-strftime) are applied after
// Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. Non-numeric -c/-i arguments and
// unknown flags return a non-nil error. Help, license, and version requests
// are recorded on cfg rather than handled here, because the usage text
// depends on rc-file defaults that are loaded afterwards.
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("renuniq", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprintln(os.Stderr, "Try 'renuniq -h' for more information.") }

	var negated negatedFlags

	defineRenameFlags(fs, cfg, &negated)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)
	cfg.Names = fs.Args()
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse. These
// either invert a default (noStrftime -> StrftimeEnable=false) or record an
// exit-early request.
type negatedFlags struct {
	noStrftime  bool
	forceColor  bool
	noColor     bool
	showHelp    bool
	showLicense bool
	showVersion bool
}

// defineRenameFlags registers -c, -d, -i, -t, -m, -n, -w.
func defineRenameFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.IntVar(&cfg.CountStart, "count-start", cfg.CountStart, "Start the sequential count at this integer")
	fs.IntVar(&cfg.CountStart, "c", cfg.CountStart, "Same as --count-start")
	fs.StringVar(&cfg.Descriptor, "descriptor", cfg.Descriptor, "Value of the substitution variable %{DESC}")
	fs.StringVar(&cfg.Descriptor, "d", cfg.Descriptor, "Same as --descriptor")
	fs.IntVar(&cfg.CountInterval, "interval", cfg.CountInterval, "Increment the count by this integer")
	fs.IntVar(&cfg.CountInterval, "i", cfg.CountInterval, "Same as --interval")
	fs.StringVar(&cfg.Template, "template", cfg.Template, "Template of the renamed file name")
	fs.StringVar(&cfg.Template, "t", cfg.Template, "Same as --template")
	fs.BoolVar(&n.noStrftime, "no-strftime", false, "Turn off strftime substitution in the template")
	fs.BoolVar(&n.noStrftime, "m", false, "Same as --no-strftime")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Print what would be executed without doing it")
	fs.BoolVar(&cfg.DryRun, "n", false, "Same as --dry-run")
	fs.BoolVar(&cfg.UseTimeNow, "use-now", false, "Use the time now instead of mtime for strftime")
	fs.BoolVar(&cfg.UseTimeNow, "w", false, "Same as --use-now")
}

// defineDisplayFlags registers --color, --no-color, -v, -l.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --license, --version, --help.
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showLicense, "license", false, "Display program license and exit")
	fs.BoolVar(&n.showLicense, "L", false, "Same as --license")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
	fs.BoolVar(&n.showHelp, "?", false, "Same as --help")
}

// applyNegatedFlags copies negated and exit-early flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noStrftime {
		cfg.StrftimeEnable = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
	cfg.ShowHelp = n.showHelp
	cfg.ShowLicense = n.showLicense
	cfg.ShowVersion = n.showVersion
}

// PrintUsage writes the help text to stderr. Column-aligned for readability.
// The default-template lines reflect rc-file overrides, and the single-file
// variants are shown only when they differ from the plural forms.
func PrintUsage(cfg *Config, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "renuniq v" + version + " — rename files in a batch from a naming template"},
		{"", ""},
		{"  renuniq [OPTIONS] filename...", ""},
		{"", ""},
		{"Renaming", ""},
		{"  -c, --count-start <n>", "Start the sequential count at this integer (default: 1)"},
		{"  -d, --descriptor <x>", "Set the value of the substitution variable %{DESC}"},
		{"  -i, --interval <n>", "Increment the count by this integer (default: 1)"},
		{"  -t, --template <x>", "Set the template of the renamed file name"},
		{"  -m, --no-strftime", "Turn off strftime variable substitution in the template"},
		{"  -w, --use-now", "Use the time now instead of mtime for strftime formats"},
		{"  -n, --dry-run", "Print what would be executed but don't actually do it"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -L, --license", "Display program license"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Substitutions", ""},
		{"  %{UNIQSUFF}", "the unique suffix in the list of all files"},
		{"  %{DIR}", "directory including trailing slash"},
		{"  %{NAME}", "file name"},
		{"  %{PATH}", "full name"},
		{"  %{EXT}", "file extension (section including the last .)"},
		{"  %{NOTEXT}", "file name up to the last ."},
		{"  %{DESC}", "user-specified descriptor"},
		{"  %{NUM}", "a 0-padded increasing integer of automatic width"},
		{"  %{NUMn}", "a 0-padded increasing integer of width n (1<=n<=6)"},
		{"", "strftime parameters on the modification time are also allowed, e.g. %Y, %m, %d"},
		{"", ""},
		{"", "Default template with no descriptor given: " + cfg.DefaultTemplate},
	}
	if cfg.DefaultTemplateSingle != cfg.DefaultTemplate {
		lines = append(lines, struct{ flags, desc string }{
			"", "...for only a single file argument: " + cfg.DefaultTemplateSingle})
	}
	lines = append(lines, struct{ flags, desc string }{
		"", "Default template with descriptor given:    " + cfg.DefaultTemplateDesc})
	if cfg.DefaultTemplateDescSingle != cfg.DefaultTemplateDesc {
		lines = append(lines, struct{ flags, desc string }{
			"", "...for only a single file argument: " + cfg.DefaultTemplateDescSingle})
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
