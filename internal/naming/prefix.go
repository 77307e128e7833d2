package naming

import "strings"

// Prefix computes the shared leading portion that is stripped from every
// basename to form %{UNIQSUFF}. names must be non-empty; input order matters
// because the guard below compares against the first name's directory.
//
// The common prefix is byte-wise over the full path strings, so it can end
// inside a partially shared directory name. When the directory part of the
// prefix differs from the first input's directory, the basename part is
// discarded rather than letting the prefix cross a separator boundary.
//
// A single file has no sibling to be unique against; its prefix is the
// basename up to the last dot, so UNIQSUFF becomes the extension.
func Prefix(names []string) string {
	pathPrefix := commonPrefix(names)
	dirPrefix, prefix := SplitPath(pathPrefix)
	firstDir, _ := SplitPath(names[0])
	if dirPrefix != firstDir {
		prefix = ""
	}

	if len(names) < 2 {
		if i := strings.LastIndex(prefix, "."); i >= 0 {
			prefix = prefix[:i]
		} else {
			prefix = ""
		}
	}
	return prefix
}

// commonPrefix returns the longest common leading substring of all names,
// compared byte-wise with no awareness of separators.
func commonPrefix(names []string) string {
	p := names[0]
	for _, n := range names[1:] {
		if len(n) < len(p) {
			p = p[:len(n)]
		}
		for i := 0; i < len(p); i++ {
			if n[i] != p[i] {
				p = p[:i]
				break
			}
		}
	}
	return p
}
