// Package qname validates and represents XML qualified names.
//
// A QName is a string of the form "prefix:local" or "local" whose
// characters follow the XML 1.0 NameStartChar and NameChar productions.
// Parse validates at run time; MustParse combined with the qnamelint
// analyzer (cmd/qnamelint) rejects invalid constant names at build time.
//
// The package only checks name syntax. It does not resolve prefixes to
// namespace URIs.
package qname

import (
	"cmp"
	"errors"
)

// QName is a validated qualified name. The zero value is not a valid name;
// use Parse or MustParse to construct one.
//
// QName values are immutable and comparable with ==.
type QName struct {
	prefix    string
	local     string
	full      string
	hasPrefix bool
}

// Namespace returns the text before the first colon and true, or "" and
// false when the name has no colon.
func (q QName) Namespace() (string, bool) {
	return q.prefix, q.hasPrefix
}

// LocalPart returns the text after the first colon, or the whole name.
func (q QName) LocalPart() string {
	return q.local
}

// FullText returns the name exactly as it was parsed.
func (q QName) FullText() string {
	return q.full
}

// String returns the full text of the name.
func (q QName) String() string {
	return q.full
}

// IsZero reports whether q is the zero value.
func (q QName) IsZero() bool {
	return q == QName{}
}

// Equal reports whether q and other are the same name.
func (q QName) Equal(other QName) bool {
	return q == other
}

// Compare orders names without a namespace first, then by namespace, then
// by local part. It returns -1, 0 or +1.
func (q QName) Compare(other QName) int {
	if q.hasPrefix != other.hasPrefix {
		if !q.hasPrefix {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(q.prefix, other.prefix); c != 0 {
		return c
	}
	return cmp.Compare(q.local, other.local)
}

var errMarshalZero = errors.New("qname: cannot marshal zero QName")

// MarshalText implements encoding.TextMarshaler.
func (q QName) MarshalText() ([]byte, error) {
	if q.IsZero() {
		return nil, errMarshalZero
	}
	return []byte(q.full), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is validated
// with Parse; q is left unchanged on error.
func (q *QName) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
