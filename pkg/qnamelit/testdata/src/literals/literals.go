package literals

import "github.com/jacoelho/qname"

const (
	elementName = "xs:element"
	badName     = "9lives"
	prefix      = "xs"
)

var (
	_ = qname.MustParse("ns:local")
	_ = qname.MustParse("Foo")
	_ = qname.MustParse("foo-bar")
	_ = qname.MustParse("a:b:c")
	_ = qname.MustParse(elementName)
	_ = qname.MustParse(prefix + ":schema")
	_ = qname.MustParse("élément")

	_ = qname.MustParse("")               // want `invalid QName literal "": Invalid QName: Cannot be empty`
	_ = qname.MustParse("9")              // want `invalid QName literal "9": Invalid QName: First char cannot be '9'`
	_ = qname.MustParse("\n")             // want `invalid QName literal "\\n": Invalid QName: First char cannot be '\\n'`
	_ = qname.MustParse("9\n")            // want `invalid QName literal "9\\n": Invalid QName: First char cannot be '9'`
	_ = qname.MustParse(badName)          // want `invalid QName literal "9lives": Invalid QName: First char cannot be '9'`
	_ = qname.MustParse(prefix + ": bad") // want `invalid QName literal "xs: bad": Invalid QName: Cannot contain ' '`
	_ = qname.MustParse(`foo/bar`)        // want `invalid QName literal "foo/bar": Invalid QName: Cannot contain '/'`
	_ = qname.MustParse("a\xff")          // want `invalid QName literal "a\\xff": Invalid QName: Cannot contain '\\xff'`
)

func parseAtRuntime(input string) {
	_, _ = qname.Parse("ok")
	_, _ = qname.Parse("-bad") // want `invalid QName literal "-bad": Invalid QName: First char cannot be '-'`

	// Not constants: checked at run time only.
	_, _ = qname.Parse(input)
	_ = qname.MustParse(input)

	// Other functions in the package are not constructors.
	_ = qname.IsValid("9")
}

type local struct{}

func (local) MustParse(s string) string { return s }

func shadowed() {
	var l local
	_ = l.MustParse("9")
}
