// Package lintdocstr provides a Google-style docstring linter for Go doc
// comments, exposed through the go/analysis framework.
package lintdocstr

import (
	"errors"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"github.com/docstr-labs/docstr/pkg/docstring"
)

var (
	requireParamTypes bool
	checkReferences   = true
)

// Analyzer is the docstring format linter.
var Analyzer = &analysis.Analyzer{
	Name: "lintdocstr",
	Doc:  "checks Google-style doc comments for format and type annotation errors",
	Run:  run,
}

func init() {
	Analyzer.Flags.BoolVar(&requireParamTypes, "require-param-types", false, "require a type annotation for every documented parameter")
	Analyzer.Flags.BoolVar(&checkReferences, "check-references", true, "check References sections for format errors")
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		inspectDocComments(file, pass)
	}
	return nil, nil
}

func inspectDocComments(file *ast.File, pass *analysis.Pass) {
	ast.Inspect(file, func(n ast.Node) bool {
		switch decl := n.(type) {
		case *ast.FuncDecl:
			if decl.Doc != nil {
				reportDocErrors(pass, decl.Pos(), decl.Name.Name, decl.Doc)
			}
		case *ast.GenDecl:
			if decl.Doc != nil && decl.Tok == token.TYPE {
				for _, spec := range decl.Specs {
					if ts, ok := spec.(*ast.TypeSpec); ok {
						reportDocErrors(pass, decl.Pos(), ts.Name.Name, decl.Doc)
					}
				}
			}
		}
		return true
	})
}

func reportDocErrors(pass *analysis.Pass, pos token.Pos, name string, doc *ast.CommentGroup) {
	opts := docstring.DefaultOptions()
	opts.Mode = docstring.CollectErrors

	parsed, err := docstring.Parse(doc.Text(), opts)
	if err != nil {
		var refErr *docstring.ReferenceError
		if errors.As(err, &refErr) && !checkReferences {
			return
		}
		pass.Reportf(pos, "%s: %v", name, err)
		return
	}
	for _, msg := range parsed.Errors {
		pass.Reportf(pos, "%s: %s", name, msg)
	}
	if requireParamTypes {
		for _, p := range parsed.Args {
			if p.Type == "" {
				pass.Reportf(pos, "%s: parameter '%s' is missing a type annotation", name, p.Name)
			}
		}
	}
}
