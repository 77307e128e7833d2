package naming

import (
	"fmt"
	"strconv"
)

// UnknownVariableError reports a template placeholder with no binding.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown substitution variable %q", e.Name)
}

// Resolver resolves placeholder names against one file's substitution
// context plus the counter state for that file.
type Resolver struct {
	vars        map[string]string
	number      int
	numberWidth int
}

// NewResolver binds a substitution context to the counter value assigned to
// this file and the batch-wide number width.
func NewResolver(vars map[string]string, number, numberWidth int) *Resolver {
	return &Resolver{vars: vars, number: number, numberWidth: numberWidth}
}

// Resolve returns the value bound to a placeholder name. Fixed context keys
// win. NUM is an alias for the auto-width numeric token: it is rewritten to
// NUM<numberWidth> and falls through to the width dispatch, so NUM and NUMn
// share one formatting path.
func (r *Resolver) Resolve(name string) (string, error) {
	if v, ok := r.vars[name]; ok {
		return v, nil
	}
	if name == "NUM" {
		name = fmt.Sprintf("NUM%d", r.numberWidth)
	}
	switch name {
	case "NUM1":
		return fmt.Sprintf("%01d", r.number), nil
	case "NUM2":
		return fmt.Sprintf("%02d", r.number), nil
	case "NUM3":
		return fmt.Sprintf("%03d", r.number), nil
	case "NUM4":
		return fmt.Sprintf("%04d", r.number), nil
	case "NUM5":
		return fmt.Sprintf("%05d", r.number), nil
	case "NUM6":
		return fmt.Sprintf("%06d", r.number), nil
	}
	return "", &UnknownVariableError{Name: name}
}

// NumberWidth returns the character count of the final counter value in a
// batch of count files, which fixes the rendered width of %{NUM} for the
// whole batch. A negative increment makes the final value the smallest in
// the sequence and can under-count the width; that historical behavior is
// kept.
func NumberWidth(start, increment, count int) int {
	return len(strconv.Itoa(start + increment*(count-1)))
}
