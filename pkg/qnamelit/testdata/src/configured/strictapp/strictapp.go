package strictapp

import (
	"configured/names"

	"github.com/jacoelho/qname"
)

func build(input string) {
	_ = names.Element(input) // want `argument to names.Element is not a constant and cannot be checked at build time`
	_ = names.Element("ok")
	_ = names.Element("not ok") // want `invalid QName literal "not ok": Invalid QName: Cannot contain ' '`

	// Attribute is not marked must, so a dynamic argument is fine.
	_ = names.Attribute("xs", input)

	_ = names.Doc{}.Element(input)

	_ = qname.MustParse(input) // want `argument to qname.MustParse is not a constant and cannot be checked at build time`
}
