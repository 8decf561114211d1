package hooking

import (
	"errors"
	"reflect"
	"sort"

	"github.com/sarchlab/objcore/errs"
)

// Dispatch runs the listeners of the hook and collects their return values.
//
// The listener list is read again before every step, and the walk resumes
// right after the last listener that ran. A listener registered during the
// dispatch runs in the same pass if it sorts after the running listener.
// Every listener runs at most once per dispatch.
//
// If a listener breaks the hook, Dispatch returns the Breaker and no
// results. If a listener fails, Dispatch returns its error unchanged.
func (h *HookableBase) Dispatch(
	name string,
	args ...any,
) (Results, *Breaker, error) {
	var (
		results Results
		cur     *listener
	)

	for {
		cur = h.next(name, cur)
		if cur == nil {
			return results, nil, nil
		}

		h.notify(ProbePosBeforeListener, name, cur, nil)

		value, err := h.invoke(cur, args)
		if err != nil {
			var b *Breaker
			if errors.As(err, &b) {
				b.Hook = name
				b.Index = cur.index
				b.Priority = cur.priority
				h.notify(ProbePosBreak, name, cur, b)

				return nil, b, nil
			}

			h.notify(ProbePosFailure, name, cur, err)

			return nil, nil, err
		}

		h.notify(ProbePosAfterListener, name, cur, value)
		results = append(results, Result{Index: cur.index, Value: value})
	}
}

// Fire dispatches the hook. It returns the break payload if a listener broke
// the hook, and the Results otherwise.
func (h *HookableBase) Fire(name string, args ...any) (any, error) {
	results, b, err := h.Dispatch(name, args...)
	if err != nil {
		return nil, err
	}

	if b != nil {
		return b.Payload, nil
	}

	return results, nil
}

func (h *HookableBase) next(name string, last *listener) *listener {
	list := h.hooks[name]
	if last == nil {
		if len(list) == 0 {
			return nil
		}

		return list[0]
	}

	i := sort.Search(len(list), func(i int) bool {
		return list[i].after(last.priority, last.index)
	})
	if i == len(list) {
		return nil
	}

	return list[i]
}

func (h *HookableBase) invoke(l *listener, args []any) (any, error) {
	self, err := h.receiver(l)
	if err != nil {
		return nil, err
	}

	callArgs := make([]any, 0, len(args)+len(l.args)+1)
	if !l.short {
		callArgs = append(callArgs, h.host)
	}

	callArgs = append(callArgs, args...)
	callArgs = append(callArgs, l.args...)

	return l.fn(self, callArgs...)
}

func (h *HookableBase) receiver(l *listener) (any, error) {
	switch {
	case l.provider != nil:
		self := l.provider(h.host)
		if isNil(self) {
			return nil, errs.New(errs.NullReceiver,
				"provider returned no receiver").
				With("index", l.index)
		}

		return self, nil
	case l.bound != nil:
		if !sameObject(l.bound, h.host) {
			return nil, errs.New(errs.ForeignBoundListener,
				"listener is bound to another object").
				With("index", l.index).
				With("bound", reflect.TypeOf(l.bound).String())
		}

		return l.bound, nil
	case l.short:
		return h.host, nil
	default:
		return nil, nil
	}
}

// sameObject tells if a and b are the same object. Values that cannot be
// compared are never the same object.
func sameObject(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	if !reflect.ValueOf(a).Comparable() {
		return false
	}

	return a == b
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
