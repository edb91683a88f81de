package qname

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jacoelho/qname/internal/xmlnames"
)

// classify returns the first grammar violation in s, or nil when s is a
// valid QName. Every other entry point delegates here.
func classify(s string) *Error {
	if s == "" {
		return &Error{Kind: KindEmpty}
	}
	r, size := utf8.DecodeRuneInString(s)
	if !isDecoded(r, size) {
		return &Error{Kind: KindInvalidStart, Char: r, badByte: s[0], hasBadByte: true}
	}
	if !xmlnames.IsNameStartChar(r) {
		return &Error{Kind: KindInvalidStart, Char: r}
	}
	for i := size; i < len(s); {
		r, size = utf8.DecodeRuneInString(s[i:])
		if !isDecoded(r, size) {
			return &Error{Kind: KindInvalidContinuation, Char: r, Offset: i, badByte: s[i], hasBadByte: true}
		}
		if !xmlnames.IsNameChar(r) {
			return &Error{Kind: KindInvalidContinuation, Char: r, Offset: i}
		}
		i += size
	}
	return nil
}

// isDecoded reports false for bytes that are not valid UTF-8, so that they
// are never mistaken for U+FFFD, which the grammar accepts.
func isDecoded(r rune, size int) bool {
	return r != utf8.RuneError || size != 1
}

// Check reports the first grammar violation in s as an *Error, or nil when
// s is a valid QName.
func Check(s string) error {
	if err := classify(s); err != nil {
		return err
	}
	return nil
}

// IsValid reports whether s is a valid QName.
func IsValid(s string) bool {
	return classify(s) == nil
}

// Parse validates s and splits it at the first colon.
// The returned error is always an *Error.
func Parse(s string) (QName, error) {
	if err := classify(s); err != nil {
		return QName{}, err
	}
	return split(s), nil
}

// MustParse is like Parse but panics if s is not a valid QName.
// It is intended for constants; qnamelint reports invalid literal arguments
// at build time.
func MustParse(s string) QName {
	if err := classify(s); err != nil {
		panic(fmt.Sprintf("qname: %q is not a valid QName: %v", s, err))
	}
	return split(s)
}

// split assumes s has already been classified as valid.
func split(s string) QName {
	s = strings.Clone(s)
	prefix, local, hasPrefix := strings.Cut(s, ":")
	if !hasPrefix {
		return QName{local: s, full: s}
	}
	return QName{prefix: prefix, hasPrefix: true, local: local, full: s}
}
