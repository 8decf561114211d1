package naming

// Scoped describes an object that belongs to an application scope. The
// scope's Authority is shared by every object attached under it.
type Scoped interface {
	Authority() *Authority
	SetAuthority(a *Authority)
}

// ScopedBase is a base implementation of Scoped.
type ScopedBase struct {
	authority *Authority
}

// Authority returns the authority of the scope, nil if there is none.
func (b *ScopedBase) Authority() *Authority {
	return b.authority
}

// SetAuthority sets the authority of the scope.
func (b *ScopedBase) SetAuthority(a *Authority) {
	b.authority = a
}

// AuthorityOf returns the authority of obj when it is Scoped.
func AuthorityOf(obj any) *Authority {
	s, ok := obj.(Scoped)
	if !ok {
		return nil
	}

	return s.Authority()
}
