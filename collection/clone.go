package collection

import "github.com/sarchlab/objcore/tracking"

// CloneFor returns the collections of a duplicated host. Items that are
// Cloners are duplicated and re-attached to the new host under the same
// short name. Other items are shared with the original.
func (b *CollectionBase) CloneFor(host any) *CollectionBase {
	nb := NewCollectionBase(host)

	for _, ns := range b.namespaces {
		nb.DeclareCollection(ns)
		c := b.collections[ns]
		nc := nb.collections[ns]

		for _, name := range c.names {
			e := c.entries[name]
			e.item = cloneItem(e.item, host)
			nc.insert(name, e)
		}
	}

	return nb
}

func cloneItem(item any, host any) any {
	cloner, ok := item.(Cloner)
	if !ok {
		return item
	}

	clone := cloner.Clone()

	t, ok := clone.(tracking.Trackable)
	if !ok || !t.IsOwned() {
		return clone
	}

	shortName, namespace := t.ShortName(), t.Namespace()
	_ = t.UnsetOwner()

	if err := t.SetOwner(host, shortName, namespace); err != nil {
		panic(err)
	}

	return clone
}
