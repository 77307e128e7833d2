package naming

import (
	"path/filepath"
	"strings"
)

const sep = string(filepath.Separator)

// SplitPath splits a path at its last separator into directory and basename.
// Unlike filepath.Dir, a path with no separator yields an empty directory
// rather than ".", and "/x" keeps the root as its directory.
func SplitPath(path string) (dir, base string) {
	i := strings.LastIndex(path, sep)
	switch {
	case i < 0:
		return "", path
	case i == 0:
		return sep, path[1:]
	}
	return path[:i], path[i+1:]
}

// SplitExt splits a basename at its last dot. The extension includes the
// dot; a basename with no dot has an empty extension. stem+ext == base
// holds for every input.
func SplitExt(base string) (stem, ext string) {
	if i := strings.LastIndex(base, "."); i >= 0 {
		return base[:i], base[i:]
	}
	return base, ""
}

// BuildContext assembles the substitution variables for one file:
//
//	UNIQSUFF  basename with the batch prefix sliced off
//	DIR       directory including trailing separator ("" for cwd)
//	NAME      basename
//	PATH      the path as given
//	EXT       extension including the dot, or ""
//	NOTEXT    basename up to the last dot
//	DESC      user-supplied descriptor
//
// It is a pure function of its inputs and always succeeds. UNIQSUFF is an
// unconditional length slice: a prefix longer than the basename yields "",
// and a basename that does not literally start with the prefix still loses
// its first len(prefix) bytes.
func BuildContext(path, prefix, descriptor string) map[string]string {
	dir, base := SplitPath(path)
	if dir != "" && !strings.HasSuffix(dir, sep) {
		dir += sep
	}

	suffix := ""
	if len(prefix) < len(base) {
		suffix = base[len(prefix):]
	}

	stem, ext := SplitExt(base)

	return map[string]string{
		"UNIQSUFF": suffix,
		"DIR":      dir,
		"NAME":     base,
		"PATH":     path,
		"EXT":      ext,
		"NOTEXT":   stem,
		"DESC":     descriptor,
	}
}
