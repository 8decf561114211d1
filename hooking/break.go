package hooking

import "fmt"

// A Breaker stops a dispatch. Listeners return it as their error through
// Break. The dispatcher fills in which listener broke the hook.
type Breaker struct {
	Payload  any
	Hook     string
	Index    int
	Priority int
}

func (b *Breaker) Error() string {
	return fmt.Sprintf("hook %q broken by listener %d", b.Hook, b.Index)
}

// Break stops the current dispatch. The payload becomes the result of Fire.
//
//	return nil, hooking.Break(payload)
func Break(payload any) error {
	return &Breaker{Payload: payload}
}
