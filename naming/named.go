// Package naming provides long names for objects in an ownership hierarchy
// and the Authority that keeps those names unique and bounded in length.
package naming

// Named describes an object that has a name.
type Named interface {
	// Name returns the long name of the object.
	Name() string
}

// Nameable is a Named object whose long name can be assigned by its owner.
type Nameable interface {
	Named

	// SetName sets the long name of the object.
	SetName(name string)
}

// NamedBase is a base implementation of Nameable.
type NamedBase struct {
	name string
}

func (b *NamedBase) Name() string {
	return b.name
}

func (b *NamedBase) SetName(name string) {
	b.name = name
}

// MakeNamedBase creates a new NamedBase
func MakeNamedBase(name string) NamedBase {
	return NamedBase{name: name}
}
