package qname

import "fmt"

// ErrorKind classifies why a string is not a valid QName.
// New kinds may be added; switch statements should carry a default case.
type ErrorKind uint8

const (
	// KindEmpty indicates the input had no characters.
	KindEmpty ErrorKind = iota + 1
	// KindInvalidStart indicates the first character is not a name start character.
	KindInvalidStart
	// KindInvalidContinuation indicates a later character is not a name character.
	KindInvalidContinuation
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInvalidStart:
		return "invalid-start"
	case KindInvalidContinuation:
		return "invalid-continuation"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Error describes the first grammar violation found in a candidate QName.
//
//nolint:errname // public API name mirrors the package name.
type Error struct {
	Kind ErrorKind
	// Char is the offending character. Undecodable UTF-8 is reported as
	// utf8.RuneError and rendered by Error as the raw byte. Zero for
	// KindEmpty.
	Char rune
	// Offset is the byte offset of Char in the input.
	Offset int

	// badByte holds the input byte when Char is an undecodable RuneError.
	badByte    byte
	hasBadByte bool
}

// Error returns the human-readable description of the violation.
func (e *Error) Error() string {
	switch e.Kind {
	case KindEmpty:
		return "Invalid QName: Cannot be empty"
	case KindInvalidStart:
		return "Invalid QName: First char cannot be " + e.quotedChar()
	case KindInvalidContinuation:
		return "Invalid QName: Cannot contain " + e.quotedChar()
	default:
		return fmt.Sprintf("Invalid QName: %s", e.Kind)
	}
}

// quotedChar renders Char as a Go character literal. Undecodable input is
// shown as its raw byte so it does not read as the valid U+FFFD.
func (e *Error) quotedChar() string {
	if e.hasBadByte {
		return fmt.Sprintf(`'\x%02x'`, e.badByte)
	}
	return fmt.Sprintf("%q", e.Char)
}

// Is reports whether target is an *Error of the same kind. Char and Offset
// are ignored so callers can match with errors.Is(err, &qname.Error{Kind: k}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t.Kind == e.Kind
}
