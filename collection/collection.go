// Package collection stores named children of a host in one or more
// namespaced collections and attaches them to the host on insertion.
package collection

import "github.com/sarchlab/objcore/naming"

type entry struct {
	item any

	// assignedName is set when the long name of the item was computed on
	// insertion.
	assignedName bool

	// carried is set when the host's authority replaced previousAuthority
	// on insertion.
	carried           bool
	previousAuthority *naming.Authority
}

// A Collection is an insertion-ordered set of named items that share a
// namespace tag.
type Collection struct {
	namespace string
	names     []string
	entries   map[string]entry
}

// NewCollection creates an empty collection.
func NewCollection(namespace string) *Collection {
	return &Collection{
		namespace: namespace,
		entries:   make(map[string]entry),
	}
}

// Namespace returns the namespace tag of the collection.
func (c *Collection) Namespace() string {
	return c.namespace
}

// Has tells if an item is stored under name.
func (c *Collection) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Get returns the item stored under name.
func (c *Collection) Get(name string) (any, bool) {
	e, ok := c.entries[name]
	return e.item, ok
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.names)
}

// Names returns the names of all the items in insertion order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)

	return names
}

// Items returns all the items in insertion order.
func (c *Collection) Items() []any {
	items := make([]any, 0, len(c.names))
	for _, name := range c.names {
		items = append(items, c.entries[name].item)
	}

	return items
}

func (c *Collection) insert(name string, e entry) {
	c.names = append(c.names, name)
	c.entries[name] = e
}

func (c *Collection) remove(name string) (entry, bool) {
	e, ok := c.entries[name]
	if !ok {
		return entry{}, false
	}

	delete(c.entries, name)

	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}

	return e, true
}
