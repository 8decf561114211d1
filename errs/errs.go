// Package errs defines the single error type used across objcore.
//
// Every failure carries a Kind that callers can branch on and an ordered list
// of parameters that describe the failing site.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an Error.
type Kind int

// Enumeration of error kinds.
const (
	Unknown Kind = iota
	EmptyName
	DuplicateName
	NotOwned
	OwnerAlreadySet
	NameTooLong
	ForeignBoundListener
	StaticProviderRequired
	NullReceiver
	ListenerNotFound
	CollectionNotFound
	ElementNotFound
	InvalidConfig
)

var kindNames = map[Kind]string{
	Unknown:                "Unknown",
	EmptyName:              "EmptyName",
	DuplicateName:          "DuplicateName",
	NotOwned:               "NotOwned",
	OwnerAlreadySet:        "OwnerAlreadySet",
	NameTooLong:            "NameTooLong",
	ForeignBoundListener:   "ForeignBoundListener",
	StaticProviderRequired: "StaticProviderRequired",
	NullReceiver:           "NullReceiver",
	ListenerNotFound:       "ListenerNotFound",
	CollectionNotFound:     "CollectionNotFound",
	ElementNotFound:        "ElementNotFound",
	InvalidConfig:          "InvalidConfig",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return name
}

// Sentinels for errors.Is. An Error matches a sentinel when their kinds are
// equal.
var (
	ErrEmptyName              = &Error{Kind: EmptyName}
	ErrDuplicateName          = &Error{Kind: DuplicateName}
	ErrNotOwned               = &Error{Kind: NotOwned}
	ErrOwnerAlreadySet        = &Error{Kind: OwnerAlreadySet}
	ErrNameTooLong            = &Error{Kind: NameTooLong}
	ErrForeignBoundListener   = &Error{Kind: ForeignBoundListener}
	ErrStaticProviderRequired = &Error{Kind: StaticProviderRequired}
	ErrNullReceiver           = &Error{Kind: NullReceiver}
	ErrListenerNotFound       = &Error{Kind: ListenerNotFound}
	ErrCollectionNotFound     = &Error{Kind: CollectionNotFound}
	ErrElementNotFound        = &Error{Kind: ElementNotFound}
	ErrInvalidConfig          = &Error{Kind: InvalidConfig}
)

// Param is a piece of diagnostic context attached to an Error.
type Param struct {
	Key   string
	Value any
}

// Error is a kind-tagged failure with structured context.
type Error struct {
	Kind   Kind
	Msg    string
	Params []Param
}

// New creates an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// With returns a copy of the error with one more parameter. The receiver is
// left untouched, so sentinels can be decorated safely. Calls can be chained.
func (e *Error) With(key string, value any) *Error {
	c := *e
	c.Params = make([]Param, len(e.Params), len(e.Params)+1)
	copy(c.Params, e.Params)
	c.Params = append(c.Params, Param{Key: key, Value: value})

	return &c
}

// Param returns the value of the first parameter with the given key.
func (e *Error) Param(key string) (any, bool) {
	for _, p := range e.Params {
		if p.Key == key {
			return p.Value, true
		}
	}

	return nil, false
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}

	if len(e.Params) == 0 {
		return msg
	}

	parts := make([]string, 0, len(e.Params))
	for _, p := range e.Params {
		parts = append(parts, fmt.Sprintf("%s=%v", p.Key, p.Value))
	}

	return msg + " (" + strings.Join(parts, ", ") + ")"
}

// Is reports whether target is an Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// KindOf returns the kind of the first Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return Unknown
}

// IsKind reports whether err's chain holds an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
