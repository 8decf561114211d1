package tracking

import "github.com/sarchlab/objcore/errs"

// An ElementRemover is an owner that stores its children and can drop one of
// them.
type ElementRemover interface {
	RemoveElement(shortName, namespace string) error
}

// Detach removes child from its owner. If the owner stores the child, the
// entry is removed as well. Detaching an unowned child fails.
func Detach(child Trackable) error {
	owner := child.Owner()
	if owner == nil {
		return errs.New(errs.NotOwned, "object is not attached").
			With("name", child.ShortName())
	}

	remover, ok := owner.(ElementRemover)
	if !ok {
		return child.UnsetOwner()
	}

	err := remover.RemoveElement(child.ShortName(), child.Namespace())
	if err != nil {
		return err
	}

	if child.IsOwned() {
		return child.UnsetOwner()
	}

	return nil
}
