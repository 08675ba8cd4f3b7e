package vault

import "strings"

const pathSeparator = "/"

// JoinPath joins a parent path and a child segment with exactly one "/".
//
// Every trailing separator is stripped from parent and every leading and
// trailing separator from child, so the result does not depend on how the
// inputs were delimited:
//
//	JoinPath("http://h:8200", "v1")    // "http://h:8200/v1"
//	JoinPath("http://h:8200//", "/v1/") // "http://h:8200/v1"
//
// Separators inside either argument are kept as they are.
func JoinPath(parent, child string) string {
	parent = strings.TrimRight(parent, pathSeparator)
	child = strings.Trim(child, pathSeparator)
	return parent + pathSeparator + child
}
