package strict

import "github.com/jacoelho/qname"

func build(input string) {
	_ = qname.MustParse("ok")
	_ = qname.MustParse(input) // want `argument to qname.MustParse is not a constant and cannot be checked at build time`
	_ = qname.MustParse("a b") // want `invalid QName literal "a b": Invalid QName: Cannot contain ' '`

	// Parse returns an error, so a dynamic argument is fine.
	_, _ = qname.Parse(input)
}
