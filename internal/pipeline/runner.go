package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/backmassage/renuniq/internal/config"
	"github.com/backmassage/renuniq/internal/display"
	"github.com/backmassage/renuniq/internal/fsops"
	"github.com/backmassage/renuniq/internal/logging"
	"github.com/backmassage/renuniq/internal/naming"
)

// Run is the top-level batch entry point. It computes the batch-wide prefix
// and counter width once, then renames each file sequentially in input
// order. Per-file errors are logged and counted; the batch always runs to
// completion.
func Run(cfg *config.Config, log *logging.Logger) RunStats {
	stats := RunStats{Total: len(cfg.Names)}

	prefix := naming.Prefix(cfg.Names)
	width := naming.NumberWidth(cfg.CountStart, cfg.CountInterval, len(cfg.Names))
	log.Debug("prefix=%q numberWidth=%d", prefix, width)

	// In use-now mode every file in the batch gets the same timestamp.
	var now time.Time
	if cfg.StrftimeEnable && cfg.UseTimeNow {
		now = time.Now()
	}

	for i, path := range cfg.Names {
		stats.Current = i + 1
		// The counter is a function of the input position, so a skipped
		// file still consumes its slot.
		number := cfg.CountStart + i*cfg.CountInterval
		processFile(cfg, log, path, prefix, number, width, now, &stats)
	}

	log.Debug("done: %d renamed, %d skipped", stats.Renamed, stats.Failed)
	return stats
}

// processFile handles one file: timestamp → context → expand → strftime →
// destination → collision check → move. Terminal states are renamed or
// skipped-with-error; a skip never aborts the batch.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	path, prefix string,
	number, width int,
	now time.Time,
	stats *RunStats,
) {
	when := now
	if cfg.StrftimeEnable && !cfg.UseTimeNow {
		fi, err := os.Stat(path)
		if err != nil {
			log.Error("Skipping %s (not readable)", path)
			stats.Failed++
			return
		}
		when = fi.ModTime()
	}

	vars := naming.BuildContext(path, prefix, cfg.Descriptor)
	resolver := naming.NewResolver(vars, number, width)

	newname, err := naming.Expand(cfg.Template, resolver)
	if err != nil {
		log.Error("Skipping %s (%v)", path, err)
		stats.Failed++
		return
	}

	if cfg.StrftimeEnable {
		// Second pass: the expanded result is a strftime pattern, so
		// substituted values can themselves introduce %-directives.
		newname, err = strftime.Format(newname, when)
		if err != nil {
			log.Error("Skipping %s (bad time format: %v)", path, err)
			stats.Failed++
			return
		}
	}

	newpath := newname
	if !filepath.IsAbs(newname) {
		dir, _ := naming.SplitPath(path)
		newpath = filepath.Join(dir, newname)
	}

	// A rename earlier in this run can create the collision detected here;
	// the check is redone immediately before each move. The window between
	// this check and the move is open to outside writers.
	if _, err := os.Stat(newpath); err == nil {
		log.Error("Skipping %s (%s already exists)", path, newpath)
		stats.Failed++
		return
	}

	fmt.Println(display.FormatMove(path, newpath))
	if cfg.DryRun {
		stats.Renamed++
		return
	}

	if err := fsops.Move(path, newpath); err != nil {
		log.Error("Error renaming %s to %s: %v", path, newpath, err)
		stats.Failed++
		return
	}
	stats.Renamed++
}
