// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strconv"
	"strings"
)

// Id addresses a widget by its path from the window root.
//
// An Id is the root marker followed by one encoded key per level. A
// key is stored as a length byte and the key's minimal big-endian
// bytes, so that byte order equals key order. Consequently ids order
// as strings: an ancestor is a prefix of (and less than) each of its
// descendants, and the subtree of an earlier sibling sorts before the
// subtree of a later one.
//
// The zero Id is invalid and marks an unconfigured widget.
type Id string

// Root is the id of the window's root widget.
const Root Id = "\x01"

// IsValid reports whether id was assigned by a configure pass.
func (id Id) IsValid() bool {
	return len(id) > 0
}

// MakeChild returns the id of the child of id with the given key.
// Children are normally keyed by their index.
func (id Id) MakeChild(key int) Id {
	if !id.IsValid() {
		panic("widget: MakeChild of invalid id")
	}
	if key < 0 {
		panic("widget: negative child key")
	}
	var buf [9]byte
	n := 1
	for k := key; k > 0xff; k >>= 8 {
		n++
	}
	buf[0] = byte(n)
	for i := n; i > 0; i-- {
		buf[i] = byte(key)
		key >>= 8
	}
	var b strings.Builder
	b.Grow(len(id) + n + 1)
	b.WriteString(string(id))
	b.Write(buf[:n+1])
	return Id(b.String())
}

// IsAncestorOf reports whether id is other or one of its ancestors.
func (id Id) IsAncestorOf(other Id) bool {
	return id.IsValid() && strings.HasPrefix(string(other), string(id))
}

// Compare returns -1, 0 or +1 as id sorts before, equal to or after
// other. Invalid ids sort first.
func (id Id) Compare(other Id) int {
	return strings.Compare(string(id), string(other))
}

// Less reports whether id sorts before other.
func (id Id) Less(other Id) bool {
	return id < other
}

// NextKeyAfter returns the key of the child of parent on the path to
// id. It reports false unless parent is a strict ancestor of id.
func (id Id) NextKeyAfter(parent Id) (int, bool) {
	if len(id) <= len(parent) || !parent.IsAncestorOf(id) {
		return 0, false
	}
	key, _, ok := decodeKey(string(id[len(parent):]))
	return key, ok
}

// Parent returns the id of the parent of id. The root and invalid ids
// have no parent.
func (id Id) Parent() (Id, bool) {
	keys, ok := id.split()
	if !ok || len(keys) == 0 {
		return "", false
	}
	return id[:len(id)-keys[len(keys)-1].size], true
}

// Key returns the last key of id's path. It reports false for the
// root.
func (id Id) Key() (int, bool) {
	keys, ok := id.split()
	if !ok || len(keys) == 0 {
		return 0, false
	}
	return keys[len(keys)-1].key, true
}

// Depth returns the number of levels below the root.
func (id Id) Depth() int {
	keys, _ := id.split()
	return len(keys)
}

type pathKey struct {
	key, size int
}

func (id Id) split() ([]pathKey, bool) {
	if !id.IsValid() {
		return nil, false
	}
	var keys []pathKey
	rest := string(id[len(Root):])
	for len(rest) > 0 {
		key, n, ok := decodeKey(rest)
		if !ok {
			return nil, false
		}
		keys = append(keys, pathKey{key: key, size: n})
		rest = rest[n:]
	}
	return keys, true
}

// decodeKey decodes the key at the start of s, returning it and its
// encoded size.
func decodeKey(s string) (int, int, bool) {
	n := int(s[0])
	if n == 0 || n > 8 || len(s) < n+1 {
		return 0, 0, false
	}
	key := 0
	for i := 1; i <= n; i++ {
		key = key<<8 | int(s[i])
	}
	return key, n + 1, true
}

// String formats id as "#" followed by its keys, as in "#0.3.1". The
// root formats as "#" and an invalid id as "#INVALID".
func (id Id) String() string {
	keys, ok := id.split()
	if !ok {
		return "#INVALID"
	}
	var b strings.Builder
	b.WriteByte('#')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(k.key))
	}
	return b.String()
}
