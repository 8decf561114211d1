// Package hooking lets objects expose named hooks that other code can listen
// to.
//
// Listeners of a hook run in ascending priority. Listeners with the same
// priority run in registration order. Listeners may register or remove
// listeners, including themselves, while the hook is being dispatched.
package hooking

import (
	"sort"

	"github.com/sarchlab/objcore/errs"
)

// A HookableBase is the hook registry of one host object.
type HookableBase struct {
	host      any
	hooks     map[string][]*listener
	nextIndex int
	probes    []Probe
}

// NewHookableBase creates a HookableBase for host.
func NewHookableBase(host any) *HookableBase {
	return &HookableBase{
		host:  host,
		hooks: make(map[string][]*listener),
	}
}

// OnHook registers a long listener and returns its index. Long listeners
// receive the host as their first argument.
func (h *HookableBase) OnHook(name string, fn Func, opts ...Option) int {
	l := h.newListener(fn, opts)
	h.insert(name, l)

	return l.index
}

// OnHookShort registers a short listener and returns its index. Short
// listeners receive the host as self and do not get it as an argument.
func (h *HookableBase) OnHookShort(name string, fn Func, opts ...Option) int {
	l := h.newListener(fn, opts)
	l.short = true
	h.insert(name, l)

	return l.index
}

// OnHookDynamic registers a long listener whose receiver is computed by
// provider before each invocation.
func (h *HookableBase) OnHookDynamic(
	name string,
	provider Provider,
	fn Func,
	opts ...Option,
) (int, error) {
	return h.registerDynamic(name, provider, fn, false, opts)
}

// OnHookDynamicShort registers a short listener whose receiver is computed
// by provider before each invocation.
func (h *HookableBase) OnHookDynamicShort(
	name string,
	provider Provider,
	fn Func,
	opts ...Option,
) (int, error) {
	return h.registerDynamic(name, provider, fn, true, opts)
}

func (h *HookableBase) registerDynamic(
	name string,
	provider Provider,
	fn Func,
	short bool,
	opts []Option,
) (int, error) {
	if provider == nil {
		return 0, errs.New(errs.StaticProviderRequired,
			"dynamic listener requires a provider").
			With("hook", name)
	}

	l := h.newListener(fn, opts)
	if l.bound != nil {
		return 0, errs.New(errs.StaticProviderRequired,
			"dynamic listener must not be bound to a receiver").
			With("hook", name)
	}

	l.short = short
	l.provider = provider
	h.insert(name, l)

	return l.index, nil
}

func (h *HookableBase) newListener(fn Func, opts []Option) *listener {
	if fn == nil {
		panic("listener must not be nil")
	}

	l := &listener{fn: fn}
	for _, opt := range opts {
		opt(l)
	}

	l.index = h.nextIndex
	h.nextIndex++

	return l
}

func (h *HookableBase) insert(name string, l *listener) {
	list := h.hooks[name]
	i := sort.Search(len(list), func(i int) bool {
		return list[i].after(l.priority, l.index)
	})

	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = l

	h.hooks[name] = list
}

// HasListeners tells if any listener is registered to the hook.
func (h *HookableBase) HasListeners(name string) bool {
	return len(h.hooks[name]) > 0
}

// HasListenersAtPriority tells if any listener of the hook has the priority.
func (h *HookableBase) HasListenersAtPriority(name string, priority int) bool {
	for _, l := range h.hooks[name] {
		if l.priority == priority {
			return true
		}
	}

	return false
}

// HasListener tells if the listener with the index is registered to the
// hook.
func (h *HookableBase) HasListener(name string, index int) bool {
	return h.find(name, index) >= 0
}

// ListenerIndexes returns the indexes of the listeners of the hook in the
// order they would run.
func (h *HookableBase) ListenerIndexes(name string) []int {
	list := h.hooks[name]

	indexes := make([]int, len(list))
	for i, l := range list {
		indexes[i] = l.index
	}

	return indexes
}

func (h *HookableBase) find(name string, index int) int {
	for i, l := range h.hooks[name] {
		if l.index == index {
			return i
		}
	}

	return -1
}

// RemoveListener removes the listener with the index from the hook.
func (h *HookableBase) RemoveListener(name string, index int) error {
	i := h.find(name, index)
	if i < 0 {
		return errs.New(errs.ListenerNotFound, "listener not found").
			With("hook", name).
			With("index", index)
	}

	list := h.hooks[name]
	h.store(name, append(list[:i], list[i+1:]...))

	return nil
}

// RemoveListenersAtPriority removes every listener of the hook that has the
// priority.
func (h *HookableBase) RemoveListenersAtPriority(
	name string,
	priority int,
) error {
	list := h.hooks[name]

	kept := list[:0]
	for _, l := range list {
		if l.priority != priority {
			kept = append(kept, l)
		}
	}

	if len(kept) == len(list) {
		return errs.New(errs.ListenerNotFound,
			"no listener with the priority").
			With("hook", name).
			With("priority", priority)
	}

	clear(list[len(kept):])
	h.store(name, kept)

	return nil
}

// RemoveHook removes every listener of the hook.
func (h *HookableBase) RemoveHook(name string) error {
	if !h.HasListeners(name) {
		return errs.New(errs.ListenerNotFound, "hook has no listener").
			With("hook", name)
	}

	delete(h.hooks, name)

	return nil
}

func (h *HookableBase) store(name string, list []*listener) {
	if len(list) == 0 {
		delete(h.hooks, name)
		return
	}

	h.hooks[name] = list
}

// CloneFor returns a copy of the registry for a duplicated host. Listeners
// bound to the original host are bound to the new host in the copy.
func (h *HookableBase) CloneFor(host any) *HookableBase {
	c := &HookableBase{
		host:      host,
		hooks:     make(map[string][]*listener, len(h.hooks)),
		nextIndex: h.nextIndex,
		probes:    append([]Probe(nil), h.probes...),
	}

	for name, list := range h.hooks {
		copied := make([]*listener, len(list))

		for i, l := range list {
			nl := *l
			nl.args = append([]any(nil), l.args...)

			if nl.bound != nil && sameObject(nl.bound, h.host) {
				nl.bound = host
			}

			copied[i] = &nl
		}

		c.hooks[name] = copied
	}

	return c
}
