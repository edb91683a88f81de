package app

import "configured/names"

var (
	_ = names.Element("xs:element")
	_ = names.Element("xs:9")     // '9' is a name character after the colon
	_ = names.Element("bad name") // want `invalid QName literal "bad name": Invalid QName: Cannot contain ' '`
	_ = names.Attribute("xs", "type")
	_ = names.Attribute("xs", "-type") // want `invalid QName literal "-type": Invalid QName: First char cannot be '-'`

	// Methods are never constructors, even when their name is configured.
	_ = names.Doc{}.Element("Hello world")
)
