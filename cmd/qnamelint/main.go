// qnamelint reports QName string constants that are not valid XML
// qualified names, failing the build before the program runs.
//
// Usage:
//
//	qnamelint [-config=qnamelint.toml] [-strict] ./...
//	go vet -vettool=$(which qnamelint) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/jacoelho/qname/pkg/qnamelit"
)

func main() {
	singlechecker.Main(qnamelit.Analyzer)
}
