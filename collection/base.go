package collection

import (
	"github.com/sarchlab/objcore/errs"
	"github.com/sarchlab/objcore/naming"
	"github.com/sarchlab/objcore/tracking"
)

// CollectionBase gives a host one or more named collections of children.
// Children added to a collection are attached to the host, named after it and
// initialized.
type CollectionBase struct {
	host        any
	namespaces  []string
	collections map[string]*Collection
}

// NewCollectionBase creates a CollectionBase for host with the given
// collections declared.
func NewCollectionBase(host any, namespaces ...string) *CollectionBase {
	b := &CollectionBase{
		host:        host,
		collections: make(map[string]*Collection),
	}

	for _, ns := range namespaces {
		b.DeclareCollection(ns)
	}

	return b
}

// Host returns the object that owns the collections.
func (b *CollectionBase) Host() any {
	return b.host
}

// DeclareCollection makes sure that a collection with the namespace exists.
func (b *CollectionBase) DeclareCollection(namespace string) {
	if _, ok := b.collections[namespace]; ok {
		return
	}

	b.namespaces = append(b.namespaces, namespace)
	b.collections[namespace] = NewCollection(namespace)
}

// Namespaces returns the declared namespaces in declaration order.
func (b *CollectionBase) Namespaces() []string {
	namespaces := make([]string, len(b.namespaces))
	copy(namespaces, b.namespaces)

	return namespaces
}

// Collection returns the collection with the namespace.
func (b *CollectionBase) Collection(namespace string) (*Collection, error) {
	c, ok := b.collections[namespace]
	if !ok {
		return nil, errs.New(errs.CollectionNotFound,
			"collection does not exist").
			With("collection", namespace)
	}

	return c, nil
}

// AddIntoCollection stores item under name in the collection and attaches it
// to the host. If the item fails to initialize, it is removed again and the
// initialization error is returned.
func (b *CollectionBase) AddIntoCollection(
	name string,
	item any,
	namespace string,
) error {
	c, err := b.Collection(namespace)
	if err != nil {
		return err
	}

	if name == "" {
		return errs.New(errs.EmptyName, "empty name is not supported").
			With("collection", namespace).
			With("name", name)
	}

	if c.Has(name) {
		return errs.New(errs.DuplicateName,
			"element with the same name already exists in the collection").
			With("collection", namespace).
			With("name", name)
	}

	e, err := b.attach(name, item, namespace)
	if err != nil {
		return err
	}

	c.insert(name, e)

	err = initialize(item)
	if err != nil {
		c.remove(name)
		b.release(e)
		restoreAuthority(e)

		return err
	}

	return nil
}

func (b *CollectionBase) attach(
	name string,
	item any,
	namespace string,
) (entry, error) {
	e := entry{item: item}

	t, ok := item.(tracking.Trackable)
	if !ok {
		e.previousAuthority, e.carried = b.carryAuthority(item)
		return e, nil
	}

	err := t.SetOwner(b.host, name, namespace)
	if err != nil {
		return e, err
	}

	e.previousAuthority, e.carried = b.carryAuthority(item)

	e.assignedName, err = b.assignName(item, name, namespace)
	if err != nil {
		_ = t.UnsetOwner()
		restoreAuthority(e)

		return e, err
	}

	return e, nil
}

func (b *CollectionBase) carryAuthority(
	item any,
) (previous *naming.Authority, carried bool) {
	hostScope, ok := b.host.(naming.Scoped)
	if !ok || hostScope.Authority() == nil {
		return nil, false
	}

	itemScope, ok := item.(naming.Scoped)
	if !ok || itemScope.Authority() == hostScope.Authority() {
		return nil, false
	}

	previous = itemScope.Authority()
	itemScope.SetAuthority(hostScope.Authority())

	return previous, true
}

// restoreAuthority gives a rolled back item the authority it had before.
func restoreAuthority(e entry) {
	if !e.carried {
		return
	}

	if s, ok := e.item.(naming.Scoped); ok {
		s.SetAuthority(e.previousAuthority)
	}
}

func (b *CollectionBase) assignName(
	item any,
	shortName, namespace string,
) (assigned bool, err error) {
	child, ok := item.(naming.Nameable)
	if !ok {
		return false, nil
	}

	owner, ok := b.host.(naming.Named)
	if !ok {
		return false, nil
	}

	preset := child.Name()
	authority := naming.AuthorityOf(b.host)

	longName, err := authority.Resolve(
		owner.Name(), namespace, shortName, preset)
	if err != nil {
		return false, err
	}

	child.SetName(longName)

	return preset == "", nil
}

func initialize(item any) error {
	i, ok := item.(Initializer)
	if !ok || i.IsInitialized() {
		return nil
	}

	return i.InvokeInit()
}

// release undoes what attach did to an item that leaves the collection.
func (b *CollectionBase) release(e entry) {
	t, ok := e.item.(tracking.Trackable)
	if !ok || t.Owner() != b.host {
		return
	}

	_ = t.UnsetOwner()

	if n, ok := e.item.(naming.Nameable); ok && e.assignedName {
		n.SetName("")
	}
}

// RemoveFromCollection removes the item stored under name and detaches it
// from the host.
func (b *CollectionBase) RemoveFromCollection(name, namespace string) error {
	c, err := b.Collection(namespace)
	if err != nil {
		return err
	}

	e, ok := c.remove(name)
	if !ok {
		return errs.New(errs.ElementNotFound,
			"element is not in the collection").
			With("collection", namespace).
			With("name", name)
	}

	b.release(e)

	return nil
}

// RemoveElement removes a child by its short name and namespace.
func (b *CollectionBase) RemoveElement(shortName, namespace string) error {
	return b.RemoveFromCollection(shortName, namespace)
}

// HasInCollection tells if the collection exists and stores an item under
// name.
func (b *CollectionBase) HasInCollection(name, namespace string) bool {
	c, ok := b.collections[namespace]
	if !ok {
		return false
	}

	return c.Has(name)
}

// GetFromCollection returns the item stored under name.
func (b *CollectionBase) GetFromCollection(
	name, namespace string,
) (any, error) {
	c, err := b.Collection(namespace)
	if err != nil {
		return nil, err
	}

	item, ok := c.Get(name)
	if !ok {
		return nil, errs.New(errs.ElementNotFound,
			"element is not in the collection").
			With("collection", namespace).
			With("name", name)
	}

	return item, nil
}
