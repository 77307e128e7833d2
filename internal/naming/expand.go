package naming

import (
	"regexp"
	"strings"
)

// placeholderPattern matches %{name} tokens. An empty name is syntactically
// valid and is resolved like any other name (no binding for "" ever exists,
// so %{} always fails as unknown).
var placeholderPattern = regexp.MustCompile(`%\{([A-Za-z_0-9]*)\}`)

// Expand replaces every %{name} token in template with its resolved value,
// scanning left to right and copying literal text verbatim. The first
// unknown name aborts the expansion. Bare % directives (e.g. %Y) are left
// untouched for the later strftime pass.
func Expand(template string, r *Resolver) (string, error) {
	var b strings.Builder
	last := 0
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(template, -1) {
		value, err := r.Resolve(template[m[2]:m[3]])
		if err != nil {
			return "", err
		}
		b.WriteString(template[last:m[0]])
		b.WriteString(value)
		last = m[1]
	}
	b.WriteString(template[last:])
	return b.String(), nil
}
