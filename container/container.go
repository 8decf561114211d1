// Package container provides a host with a single, unnamed collection of
// children that can name themselves.
package container

import (
	"strconv"

	"github.com/sarchlab/objcore/collection"
	"github.com/sarchlab/objcore/errs"
	"github.com/sarchlab/objcore/tracking"
)

// ContainerBase stores children in one anonymous collection. The long name of
// a child is owner_short.
type ContainerBase struct {
	elements *collection.CollectionBase
}

// NewContainerBase creates a ContainerBase for host.
func NewContainerBase(host any) *ContainerBase {
	return &ContainerBase{
		elements: collection.NewCollectionBase(host, ""),
	}
}

// Add attaches item under name and returns the name used. If name is empty,
// a free name is derived from the item's desired name by appending _2, _3 and
// so on.
func (b *ContainerBase) Add(item any, name string) (string, error) {
	if name == "" {
		name = b.freeName(tracking.DesiredName(item))
	}

	err := b.elements.AddIntoCollection(name, item, "")
	if err != nil {
		return "", err
	}

	return name, nil
}

func (b *ContainerBase) freeName(desired string) string {
	if !b.HasElement(desired) {
		return desired
	}

	for i := 2; ; i++ {
		candidate := desired + "_" + strconv.Itoa(i)
		if !b.HasElement(candidate) {
			return candidate
		}
	}
}

// GetElement returns the child with the short name.
func (b *ContainerBase) GetElement(name string) (any, error) {
	return b.elements.GetFromCollection(name, "")
}

// HasElement tells if a child with the short name exists.
func (b *ContainerBase) HasElement(name string) bool {
	return b.elements.HasInCollection(name, "")
}

// RemoveElement removes the child with the short name and detaches it.
func (b *ContainerBase) RemoveElement(shortName, namespace string) error {
	if namespace != "" {
		return errs.New(errs.ElementNotFound,
			"container has no namespaced elements").
			With("collection", namespace).
			With("name", shortName)
	}

	return b.elements.RemoveFromCollection(shortName, "")
}

// ElementCount returns the number of children.
func (b *ContainerBase) ElementCount() int {
	return b.collection().Len()
}

// ElementNames returns the short names of the children in insertion order.
func (b *ContainerBase) ElementNames() []string {
	return b.collection().Names()
}

// Elements returns the children in insertion order.
func (b *ContainerBase) Elements() []any {
	return b.collection().Items()
}

func (b *ContainerBase) collection() *collection.Collection {
	c, err := b.elements.Collection("")
	if err != nil {
		panic(err)
	}

	return c
}

// CloneFor returns the container of a duplicated host.
func (b *ContainerBase) CloneFor(host any) *ContainerBase {
	return &ContainerBase{elements: b.elements.CloneFor(host)}
}
