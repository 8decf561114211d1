package hooking

// Result is the return value of one listener.
type Result struct {
	Index int
	Value any
}

// Results holds the return values of a dispatch in execution order.
type Results []Result

// Values returns the return values without the listener indexes.
func (r Results) Values() []any {
	values := make([]any, len(r))
	for i, res := range r {
		values[i] = res.Value
	}

	return values
}

// Value returns the return value of the listener with the index.
func (r Results) Value(index int) (any, bool) {
	for _, res := range r {
		if res.Index == index {
			return res.Value, true
		}
	}

	return nil, false
}
