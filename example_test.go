package qname_test

import (
	"errors"
	"fmt"

	"github.com/jacoelho/qname"
)

func ExampleParse() {
	q, err := qname.Parse("xs:element")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	ns, _ := q.Namespace()
	fmt.Println(ns, q.LocalPart())
	// Output: xs element
}

func ExampleParse_invalid() {
	_, err := qname.Parse("9lives")
	fmt.Println(err)

	var qerr *qname.Error
	if errors.As(err, &qerr) {
		fmt.Println(qerr.Kind, string(qerr.Char))
	}
	// Output:
	// Invalid QName: First char cannot be '9'
	// invalid-start 9
}

func ExampleMustParse() {
	schema := qname.MustParse("xs:schema")
	fmt.Println(schema)
	// Output: xs:schema
}

func ExampleIsValid() {
	fmt.Println(qname.IsValid("foo-bar"), qname.IsValid("foo bar"))
	// Output: true false
}
