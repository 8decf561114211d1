// Package tracking lets objects know which owner they are attached to and
// under what short name.
package tracking

import (
	"github.com/sarchlab/objcore/errs"
)

// Trackable describes an object that can be attached to one owner at a time.
type Trackable interface {
	// Owner returns the owner, or nil if the object is not attached.
	Owner() any

	// IsOwned tells if the object is attached to an owner.
	IsOwned() bool

	// ShortName returns the name given to the object by its owner.
	ShortName() string

	// Namespace returns the namespace tag of the owner collection that holds
	// the object.
	Namespace() string

	// SetOwner attaches the object to an owner.
	SetOwner(owner any, shortName, namespace string) error

	// UnsetOwner detaches the object from its owner. The short name is kept.
	UnsetOwner() error
}

// TrackableBase is a base implementation of Trackable.
type TrackableBase struct {
	owner     any
	shortName string
	namespace string
}

func (b *TrackableBase) Owner() any {
	return b.owner
}

func (b *TrackableBase) IsOwned() bool {
	return b.owner != nil
}

func (b *TrackableBase) ShortName() string {
	return b.shortName
}

func (b *TrackableBase) Namespace() string {
	return b.namespace
}

// SetOwner attaches the object. It fails if the object already has an owner,
// so the short name cannot change while the object is attached.
func (b *TrackableBase) SetOwner(owner any, shortName, namespace string) error {
	if b.owner != nil {
		return errs.New(errs.OwnerAlreadySet, "owner already set").
			With("name", b.shortName).
			With("namespace", b.namespace)
	}

	if shortName == "" {
		return errs.New(errs.EmptyName, "empty name is not supported").
			With("namespace", namespace)
	}

	b.owner = owner
	b.shortName = shortName
	b.namespace = namespace

	return nil
}

func (b *TrackableBase) UnsetOwner() error {
	if b.owner == nil {
		return errs.New(errs.NotOwned, "owner not set").
			With("name", b.shortName)
	}

	b.owner = nil

	return nil
}
