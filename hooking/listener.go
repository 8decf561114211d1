package hooking

// Func is a hook listener. self is the resolved receiver: nil for free
// listeners, the host for bound and short listeners and the provider result
// for dynamic listeners.
//
// Long listeners receive the host followed by the dispatch arguments and the
// registration arguments. Short listeners receive only the dispatch arguments
// and the registration arguments.
type Func func(self any, args ...any) (any, error)

// A Provider computes the receiver of a dynamic listener right before each
// invocation.
type Provider func(host any) any

type listener struct {
	fn       Func
	args     []any
	priority int

	// index is both the removal handle and the insertion sequence.
	index int

	short    bool
	bound    any
	provider Provider
}

func (l *listener) after(priority, index int) bool {
	if l.priority != priority {
		return l.priority > priority
	}

	return l.index > index
}

// ListenerInfo identifies a listener in probe notifications and breaks.
type ListenerInfo struct {
	Hook     string
	Index    int
	Priority int
}

func (l *listener) info(hook string) ListenerInfo {
	return ListenerInfo{Hook: hook, Index: l.index, Priority: l.priority}
}

// An Option configures a listener at registration.
type Option func(l *listener)

// WithArgs appends extra arguments after the dispatch arguments of every
// invocation.
func WithArgs(args ...any) Option {
	return func(l *listener) {
		l.args = append(l.args, args...)
	}
}

// WithPriority sets the priority of the listener. Listeners with lower
// priority run first. The default priority is 0.
func WithPriority(priority int) Option {
	return func(l *listener) {
		l.priority = priority
	}
}

// BoundTo binds the listener to a receiver. The receiver must be the host of
// the registry when the listener is dispatched. Copies of the registry made
// with CloneFor rebind the listener to the new host. Receivers that cannot be
// compared, such as slices or maps, never match the host.
func BoundTo(receiver any) Option {
	return func(l *listener) {
		l.bound = receiver
	}
}
