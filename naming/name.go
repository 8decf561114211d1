package naming

import "unicode/utf8"

const (
	ownerSeparator = "-"
	shortSeparator = "_"
	hashSeparator  = "__"
)

// JoinName builds the long name of a child from its owner's long name, the
// namespace tag of the collection it lives in and its short name. An empty
// namespace yields "owner_short".
func JoinName(ownerName, namespace, shortName string) string {
	name := ownerName
	if namespace != "" {
		name += ownerSeparator + namespace
	}

	return name + shortSeparator + shortName
}

// Length returns the length of a name in characters.
func Length(name string) int {
	return utf8.RuneCountInString(name)
}
