package naming

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/sarchlab/objcore/errs"
	"github.com/zeebo/blake3"
)

const (
	// HashTokenLength is the number of characters of a token that replaces
	// the head of an over-length name.
	HashTokenLength = 10

	// MinKeptSuffix is the minimum number of trailing characters of a name
	// that survive shortening.
	MinKeptSuffix = 5

	// MinMaxNameLength is the smallest usable maximum name length.
	MinMaxNameLength = HashTokenLength + len(hashSeparator) + MinKeptSuffix

	maxSalt = 1 << 10
)

// A HashFunc turns a name fragment into a token of HashTokenLength ASCII
// characters. The salt is 0 on the first attempt and grows by one every time
// the token is already taken by a different fragment, so the token must
// change with the salt.
type HashFunc func(fragment string, salt int) string

// An Authority assigns long names within one application scope. It bounds
// name length and remembers every token it emitted so shortened names can be
// expanded again.
//
// A nil Authority is valid; it never shortens.
type Authority struct {
	id            string
	maxNameLength int
	hash          HashFunc

	mu     sync.RWMutex
	hashes map[string]string
	tokens map[string]string
}

// ID returns the unique ID of the authority.
func (a *Authority) ID() string {
	if a == nil {
		return ""
	}

	return a.id
}

// MaxNameLength returns the configured ceiling, 0 meaning unlimited.
func (a *Authority) MaxNameLength() int {
	if a == nil {
		return 0
	}

	return a.maxNameLength
}

// Resolve returns the long name of a child. A non-empty preset name is kept
// as is, or rejected if it does not fit. Otherwise the name is joined from
// the owner name, the namespace and the short name and shortened if needed.
func (a *Authority) Resolve(
	ownerName, namespace, shortName, preset string,
) (string, error) {
	if preset != "" {
		if a.exceeds(preset) {
			return "", errs.New(errs.NameTooLong,
				"preset name exceeds the maximum name length").
				With("name", preset).
				With("length", Length(preset)).
				With("max", a.maxNameLength)
		}

		return preset, nil
	}

	return a.Shorten(JoinName(ownerName, namespace, shortName)), nil
}

// Shorten returns desired unchanged if it fits. Otherwise its head is
// replaced by a registered token so that the result is exactly
// MaxNameLength characters long.
func (a *Authority) Shorten(desired string) string {
	if !a.exceeds(desired) {
		return desired
	}

	runes := []rune(desired)
	keep := a.maxNameLength - HashTokenLength - len(hashSeparator)
	cut := len(runes) - keep

	token := a.register(string(runes[:cut]))

	return token + hashSeparator + string(runes[cut:])
}

func (a *Authority) register(fragment string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.tokenFor(fragment)
}

func (a *Authority) exceeds(name string) bool {
	return a != nil && a.maxNameLength > 0 && Length(name) > a.maxNameLength
}

func (a *Authority) tokenFor(fragment string) string {
	if token, found := a.tokens[fragment]; found {
		return token
	}

	for salt := 0; salt < maxSalt; salt++ {
		token := a.hash(fragment, salt)
		tokenMustBeValid(token)

		if owner, taken := a.hashes[token]; taken && owner != fragment {
			continue
		}

		a.hashes[token] = fragment
		a.tokens[fragment] = token

		return token
	}

	panic(fmt.Sprintf("no free token for %q after %d salts, "+
		"the hash function must vary with the salt", fragment, maxSalt))
}

func tokenMustBeValid(token string) {
	if len(token) != HashTokenLength ||
		utf8.RuneCountInString(token) != HashTokenLength {
		panic(fmt.Sprintf("hash token %q must be %d ASCII characters long",
			token, HashTokenLength))
	}

	if strings.Contains(token, hashSeparator) {
		panic(fmt.Sprintf("hash token %q must not contain %q",
			token, hashSeparator))
	}
}

// Unshorten expands every leading token of name back into the fragment it
// replaced.
func (a *Authority) Unshorten(name string) string {
	if a == nil {
		return name
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	for i := 0; i <= len(a.hashes); i++ {
		fragment, rest, ok := a.splitToken(name)
		if !ok {
			break
		}

		name = fragment + rest
	}

	return name
}

func (a *Authority) splitToken(name string) (fragment, rest string, ok bool) {
	sepEnd := HashTokenLength + len(hashSeparator)
	if len(name) < sepEnd || name[HashTokenLength:sepEnd] != hashSeparator {
		return "", "", false
	}

	fragment, ok = a.hashes[name[:HashTokenLength]]
	if !ok {
		return "", "", false
	}

	return fragment, name[sepEnd:], true
}

// UniqueHashes returns a copy of the token registry, mapping each token to
// the fragment it replaced.
func (a *Authority) UniqueHashes() map[string]string {
	if a == nil {
		return map[string]string{}
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	hashes := make(map[string]string, len(a.hashes))
	for token, fragment := range a.hashes {
		hashes[token] = fragment
	}

	return hashes
}

// NumHashes returns the number of tokens emitted so far.
func (a *Authority) NumHashes() int {
	if a == nil {
		return 0
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.hashes)
}

func blake3Token(fragment string, salt int) string {
	input := fragment
	if salt > 0 {
		input += "#" + strconv.Itoa(salt)
	}

	sum := blake3.Sum256([]byte(input))

	return hex.EncodeToString(sum[:])[:HashTokenLength]
}
