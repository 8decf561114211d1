package tracking

import (
	"reflect"
	"strings"
	"unicode"
)

// A DesiredNamer suggests the short name it wants when it is added without
// one.
type DesiredNamer interface {
	DesiredName() string
}

// DesiredName returns the name obj asks for, or a name derived from its Go
// type.
func DesiredName(obj any) string {
	if n, ok := obj.(DesiredNamer); ok {
		if name := n.DesiredName(); name != "" {
			return name
		}
	}

	return DefaultDesiredName(obj)
}

// DefaultDesiredName turns the type name of obj into lower snake case, for
// example *container.FieldMock becomes "field_mock".
func DefaultDesiredName(obj any) string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == nil || t.Name() == "" {
		return "element"
	}

	var sb strings.Builder
	prevLower := false
	for _, r := range t.Name() {
		switch {
		case unicode.IsUpper(r):
			if prevLower {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			prevLower = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			prevLower = true
		default:
			sb.WriteByte('_')
			prevLower = false
		}
	}

	name := strings.Trim(sb.String(), "_")
	if name == "" {
		return "element"
	}

	return name
}
