package names

import "github.com/jacoelho/qname"

func Element(s string) qname.QName { return qname.MustParse(s) }

func Attribute(ns, local string) qname.QName { return qname.MustParse(ns + ":" + local) }

// Doc has a method named like a configured constructor.
type Doc struct{}

func (Doc) Element(title string) string { return "<h1>" + title + "</h1>" }
