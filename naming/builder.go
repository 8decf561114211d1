package naming

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/sarchlab/objcore/errs"
)

// Builder can build Authorities.
type Builder struct {
	maxNameLength int
	hash          HashFunc
}

// MakeBuilder creates a new Builder. By default names are not bounded.
func MakeBuilder() Builder {
	return Builder{
		hash: blake3Token,
	}
}

// WithMaxNameLength sets the maximum length of long names. Zero disables
// shortening.
func (b Builder) WithMaxNameLength(n int) Builder {
	b.maxNameLength = n
	return b
}

// WithHashFunc replaces the function that produces shortening tokens.
func (b Builder) WithHashFunc(hash HashFunc) Builder {
	b.hash = hash
	return b
}

func (b Builder) parametersMustBeValid() {
	if err := ValidateMaxNameLength(b.maxNameLength); err != nil {
		panic(err.Error())
	}

	if b.hash == nil {
		panic("hash function must not be nil")
	}
}

// Build creates a new Authority.
func (b Builder) Build() *Authority {
	b.parametersMustBeValid()

	return &Authority{
		id:            xid.New().String(),
		maxNameLength: b.maxNameLength,
		hash:          b.hash,
		hashes:        make(map[string]string),
		tokens:        make(map[string]string),
	}
}

// ValidateMaxNameLength checks that n leaves room for a token and the kept
// suffix.
func ValidateMaxNameLength(n int) error {
	if n == 0 {
		return nil
	}

	if n < MinMaxNameLength {
		return errs.New(errs.InvalidConfig,
			fmt.Sprintf("max name length must be 0 or at least %d",
				MinMaxNameLength)).
			With("maxNameLength", n)
	}

	return nil
}
