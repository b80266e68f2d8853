package conllu

import "strings"

const (
	miscSeparator = "|"
	keySeparator  = "="

	// SpaceAfter is the misc key recording the absence of whitespace after a
	// token.
	SpaceAfter = "SpaceAfter"
)

// Misc is the ordered list of entries of the misc column. Entries are kept
// verbatim, so entries without a `=` survive a parse and format cycle.
type Misc []string

// ParseMisc splits a misc column. The placeholder `_` is an empty list.
func ParseMisc(s string) Misc {
	if s == Empty || s == "" {
		return Misc{}
	}
	return strings.Split(s, miscSeparator)
}

func (m Misc) index(key string) int {
	for i, entry := range m {
		k, _, _ := strings.Cut(entry, keySeparator)
		if k == key {
			return i
		}
	}
	return -1
}

// Get returns the value of the first entry with the given key.
func (m Misc) Get(key string) (string, bool) {
	i := m.index(key)
	if i < 0 {
		return "", false
	}
	_, v, _ := strings.Cut(m[i], keySeparator)
	return v, true
}

// Set replaces the value of an existing entry in place or appends a new one.
func (m Misc) Set(key, value string) Misc {
	entry := key + keySeparator + value
	if i := m.index(key); i >= 0 {
		m[i] = entry
		return m
	}
	return append(m, entry)
}

// Delete removes all entries with the given key.
func (m Misc) Delete(key string) Misc {
	out := m[:0]
	for _, entry := range m {
		k, _, _ := strings.Cut(entry, keySeparator)
		if k != key {
			out = append(out, entry)
		}
	}
	return out
}

func (m Misc) String() string {
	if len(m) == 0 {
		return Empty
	}
	return strings.Join(m, miscSeparator)
}

// SetSpaceAfter records the spacing of a token in its misc column. Spacing
// is the implicit default, so the entry is only kept when no space follows.
func (t *Token) SetSpaceAfter(spaceAfter bool) {
	misc := ParseMisc(t.Misc)
	if spaceAfter {
		misc = misc.Delete(SpaceAfter)
	} else {
		misc = misc.Set(SpaceAfter, "No")
	}
	t.Misc = misc.String()
}

// SpaceAfter reports whether whitespace follows the token, per its misc column.
func (t Token) SpaceAfter() bool {
	v, ok := ParseMisc(t.Misc).Get(SpaceAfter)
	return !ok || v != "No"
}
