package naming

import (
	"errors"
	"testing"
)

func TestExpand(t *testing.T) {
	vars := map[string]string{
		"UNIQSUFF": "4.x",
		"NAME":     "file4.x",
		"EXT":      ".x",
		"NOTEXT":   "file4",
		"DESC":     "trip",
		"DIR":      "",
		"PATH":     "file4.x",
	}
	r := NewResolver(vars, 3, 2)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"literal only", "no placeholders here", "no placeholders here"},
		{"empty template", "", ""},
		{"single variable", "%{NAME}", "file4.x"},
		{"variable with surrounding text", "new_%{UNIQSUFF}_end", "new_4.x_end"},
		{"adjacent variables", "%{NOTEXT}%{EXT}", "file4.x"},
		{"counter", "%{NUM}", "03"},
		{"fixed width counter", "%{NUM5}", "00003"},
		{"strftime directives untouched", "%Y%m%d_%{UNIQSUFF}", "%Y%m%d_4.x"},
		{"lone percent untouched", "100% %{DESC}", "100% trip"},
		{"unclosed brace untouched", "%{NAME", "%{NAME"},
		{"repeated variable", "%{DESC}-%{DESC}", "trip-trip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.template, r)
			if err != nil {
				t.Fatalf("Expand(%q) unexpected error: %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestExpand_UnknownVariable(t *testing.T) {
	r := NewResolver(map[string]string{"NAME": "f"}, 1, 1)

	tests := []struct {
		name     string
		template string
		wantName string
	}{
		{"unknown name", "x_%{XYZZY}_y", "XYZZY"},
		{"empty placeholder", "x%{}y", ""},
		{"unknown after known", "%{NAME}.%{BOGUS}", "BOGUS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand(tt.template, r)
			var uv *UnknownVariableError
			if !errors.As(err, &uv) {
				t.Fatalf("Expand(%q) error = %v, want UnknownVariableError", tt.template, err)
			}
			if uv.Name != tt.wantName {
				t.Errorf("UnknownVariableError.Name = %q, want %q", uv.Name, tt.wantName)
			}
		})
	}
}
