// Package qname is a fixture exposing the constructor signatures the
// analyzer matches on.
package qname

type QName struct{ full string }

func Parse(s string) (QName, error) { return QName{full: s}, nil }

func MustParse(s string) QName { return QName{full: s} }

func IsValid(s string) bool { return s != "" }
