package prompts

import (
	"fmt"
	"strings"
)

// FormatError reports a template that cannot be filled from the variable
// mapping. Callers must abort the turn rather than substitute a value.
type FormatError struct {
	Variable string // placeholder name, empty for syntax errors
	Offset   int    // byte offset of the offending brace
	Reason   string
}

func (e *FormatError) Error() string {
	if e.Variable != "" {
		return fmt.Sprintf("prompt template references unknown variable %q at offset %d", e.Variable, e.Offset)
	}
	return fmt.Sprintf("malformed prompt template at offset %d: %s", e.Offset, e.Reason)
}

// Format fills {name} placeholders in template from vars. Doubled braces
// ("{{" and "}}") produce a literal brace. A "!conversion" or ":spec"
// suffix, as in {time:02d} or {names!r}, is accepted but not applied; the
// value is rendered as Stringify would.
func Format(template string, vars map[string]any) (string, error) {
	var sb strings.Builder
	sb.Grow(len(template))

	err := scan(template, func(literal string) {
		sb.WriteString(literal)
	}, func(name string, offset int) error {
		v, ok := vars[name]
		if !ok {
			return &FormatError{Variable: name, Offset: offset}
		}
		sb.WriteString(Stringify(v))
		return nil
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Placeholders lists the distinct variable names a template references, in
// order of first use.
func Placeholders(template string) ([]string, error) {
	var names []string
	seen := make(map[string]bool)

	err := scan(template, func(string) {}, func(name string, _ int) error {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Stringify renders a mapping value the way it appears in a prompt.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func scan(template string, literal func(string), placeholder func(name string, offset int) error) error {
	start := 0
	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				literal(template[start:i] + "{")
				i++
				start = i + 1
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return &FormatError{Offset: i, Reason: "unterminated placeholder"}
			}
			field := template[i+1 : i+1+end]
			if strings.ContainsRune(field, '{') {
				return &FormatError{Offset: i, Reason: "nested brace in placeholder"}
			}
			name := fieldName(field)
			if name == "" {
				return &FormatError{Offset: i, Reason: "empty placeholder"}
			}
			literal(template[start:i])
			if err := placeholder(name, i); err != nil {
				return err
			}
			i += end + 1
			start = i + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				literal(template[start:i] + "}")
				i++
				start = i + 1
				continue
			}
			return &FormatError{Offset: i, Reason: "single '}' encountered"}
		}
	}
	literal(template[start:])
	return nil
}

// fieldName strips a "!conversion" and ":spec" suffix from a placeholder
// body, leaving the variable name.
func fieldName(field string) string {
	if i := strings.IndexAny(field, "!:"); i >= 0 {
		field = field[:i]
	}
	return strings.TrimSpace(field)
}
