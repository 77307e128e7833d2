// Package display formats the planned-move output lines.
package display

import (
	"github.com/kballard/go-shellquote"
)

// FormatMove renders a planned rename as a shell re-entrant mv command, so
// the printed line can be copied back into a shell even when paths contain
// spaces or metacharacters.
func FormatMove(src, dst string) string {
	return "mv " + shellquote.Join(src, dst)
}
