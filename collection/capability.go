package collection

// An Initializer is an object that needs to run its initialization once,
// when it is added to an owner.
type Initializer interface {
	IsInitialized() bool
	InvokeInit() error
}

// A Cloner can duplicate itself. Items that are Cloners are duplicated when
// their host is cloned.
type Cloner interface {
	Clone() any
}

// InitializerBase is a base implementation of Initializer. The embedding type
// implements InvokeInit and calls Initialize from it.
type InitializerBase struct {
	initialized bool
}

// IsInitialized tells if Initialize has run successfully.
func (b *InitializerBase) IsInitialized() bool {
	return b.initialized
}

// Initialize runs init once. The object only counts as initialized if init
// succeeds.
func (b *InitializerBase) Initialize(init func() error) error {
	if b.initialized {
		return nil
	}

	if init != nil {
		if err := init(); err != nil {
			return err
		}
	}

	b.initialized = true

	return nil
}
