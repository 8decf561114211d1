package hooking

import "sync"

// A ListenerFilter decides whether a listener notification is counted.
type ListenerFilter func(info ListenerInfo) bool

// CountTracer counts how many times the listeners of each hook run.
type CountTracer struct {
	filter ListenerFilter
	lock   sync.Mutex

	hookNames []string
	counts    map[string]uint64
	breaks    map[string]uint64
	failures  map[string]uint64
}

// NewCountTracer creates a new CountTracer. A nil filter counts every
// listener.
func NewCountTracer(filter ListenerFilter) *CountTracer {
	t := &CountTracer{
		filter:   filter,
		counts:   make(map[string]uint64),
		breaks:   make(map[string]uint64),
		failures: make(map[string]uint64),
	}

	return t
}

// HookNames returns the names of the hooks seen, in order of first
// appearance.
func (t *CountTracer) HookNames() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	return append([]string(nil), t.hookNames...)
}

// Count returns the number of listener invocations recorded for the hook.
func (t *CountTracer) Count(hook string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.counts[hook]
}

// BreakCount returns how many dispatches of the hook were broken.
func (t *CountTracer) BreakCount(hook string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.breaks[hook]
}

// FailureCount returns how many dispatches of the hook failed.
func (t *CountTracer) FailureCount(hook string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.failures[hook]
}

// Func records the notification.
func (t *CountTracer) Func(ctx ProbeCtx) {
	if t.filter != nil && !t.filter(ctx.Item) {
		return
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	switch ctx.Pos {
	case ProbePosBeforeListener:
		t.countListener(ctx.Item.Hook)
	case ProbePosBreak:
		t.breaks[ctx.Item.Hook]++
	case ProbePosFailure:
		t.failures[ctx.Item.Hook]++
	}
}

func (t *CountTracer) countListener(hook string) {
	_, ok := t.counts[hook]
	if !ok {
		t.hookNames = append(t.hookNames, hook)
	}

	t.counts[hook]++
}
