package display

import (
	"strings"
	"testing"

	"github.com/kballard/go-shellquote"
)

func TestFormatMove_PlainNames(t *testing.T) {
	got := FormatMove("a.txt", "b.txt")
	if got != "mv a.txt b.txt" {
		t.Errorf("FormatMove() = %q, want %q", got, "mv a.txt b.txt")
	}
}

func TestFormatMove_ShellReentrant(t *testing.T) {
	// The exact quoting style is the library's business; what matters is
	// that a shell splitting the line gets back mv, src, dst verbatim.
	tests := []struct {
		name string
		src  string
		dst  string
	}{
		{"space in source", "my file.txt", "out.txt"},
		{"space in destination", "in.txt", "My Photos/out.txt"},
		{"single quote in name", "it's.txt", "out.txt"},
		{"dollar and asterisk", "$weird*.txt", "safe?.txt"},
		{"empty destination", "in.txt", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := FormatMove(tt.src, tt.dst)
			if !strings.HasPrefix(line, "mv ") {
				t.Fatalf("FormatMove() = %q, want mv prefix", line)
			}
			words, err := shellquote.Split(line)
			if err != nil {
				t.Fatalf("Split(%q) error: %v", line, err)
			}
			if len(words) != 3 || words[0] != "mv" || words[1] != tt.src || words[2] != tt.dst {
				t.Errorf("Split(%q) = %v, want [mv %q %q]", line, words, tt.src, tt.dst)
			}
		})
	}
}
