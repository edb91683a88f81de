// Package qnamelit implements a go/analysis analyzer that validates QName
// string constants at build time.
//
// Every call to qname.MustParse or qname.Parse whose argument is a
// compile-time string constant is checked with qname.Check, the same
// validator used at run time. Invalid constants are reported at the
// argument's position, which makes go vet (or any driver) fail the build.
// Valid MustParse calls need no further checking at run time beyond the
// constructor's own guard.
//
// Additional constructors that forward a constant to qname can be declared
// in a TOML config file passed with -config.
package qnamelit

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/jacoelho/qname"
)

// Diagnostic categories.
const (
	CategoryInvalidLiteral = "invalid-literal"
	CategoryNonConstant    = "non-constant"
)

// QNamePackage is the import path of the package whose constructors are
// always checked.
const QNamePackage = "github.com/jacoelho/qname"

var (
	configPath string
	strict     bool
)

// Analyzer reports invalid QName constants passed to qname constructors.
var Analyzer = &analysis.Analyzer{
	Name:     "qnamelit",
	Doc:      "reports QName string constants that are not valid XML qualified names",
	URL:      "https://github.com/jacoelho/qname/pkg/qnamelit",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to TOML file declaring additional QName constructors")
	Analyzer.Flags.BoolVar(&strict, "strict", false,
		"also report MustParse calls whose argument is not a compile-time constant")
}

// runConfig holds the flag values read once per run.
type runConfig struct {
	configPath string
	strict     bool
}

func newRunConfig() runConfig {
	return runConfig{configPath: configPath, strict: strict}
}

func run(pass *analysis.Pass) (any, error) {
	rc := newRunConfig()

	cfg, err := loadConfig(rc.configPath)
	if err != nil {
		return nil, err
	}
	targets := cfg.targets()

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.Pkg() == nil {
			return
		}
		// Constructors are package-level functions; a method sharing the
		// name is unrelated.
		if sig, ok := fn.Type().(*types.Signature); !ok || sig.Recv() != nil {
			return
		}
		t, ok := targets[funcKey{pkg: fn.Pkg().Path(), name: fn.Name()}]
		if !ok || t.arg >= len(call.Args) {
			return
		}
		checkArg(pass, fn, call.Args[t.arg], t.mustBeConstant && rc.strict)
	})

	return nil, nil
}

// checkArg validates a single constructor argument.
func checkArg(pass *analysis.Pass, fn *types.Func, arg ast.Expr, requireConstant bool) {
	tv, ok := pass.TypesInfo.Types[arg]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		if requireConstant {
			pass.Report(analysis.Diagnostic{
				Pos:      arg.Pos(),
				End:      arg.End(),
				Category: CategoryNonConstant,
				Message:  fmt.Sprintf("argument to %s.%s is not a constant and cannot be checked at build time", fn.Pkg().Name(), fn.Name()),
			})
		}
		return
	}

	value := constant.StringVal(tv.Value)
	if err := qname.Check(value); err != nil {
		pass.Report(analysis.Diagnostic{
			Pos:      arg.Pos(),
			End:      arg.End(),
			Category: CategoryInvalidLiteral,
			Message:  fmt.Sprintf("invalid QName literal %q: %v", value, err),
		})
	}
}
