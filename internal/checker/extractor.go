package checker

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

// DocComment is one extracted doc comment with its source location.
type DocComment struct {
	Name string
	File string
	Line int
	Text string
}

// Extractor walks Go source trees and collects the doc comments of
// documented functions, methods and type declarations.
type Extractor struct {
	fset     *token.FileSet
	exclude  []string
	comments []DocComment
}

// NewExtractor allocates a new instance. excludeFiles holds glob patterns
// matched against file base names.
func NewExtractor(excludeFiles []string) *Extractor {
	return &Extractor{fset: token.NewFileSet(), exclude: excludeFiles}
}

// ParseDirectory walks the provided directory recursively and parses every
// Go file it finds. Vendor directories are skipped, and files that fail to
// parse are ignored rather than failing the walk.
func (e *Extractor) ParseDirectory(dir string) error {
	return filepath.WalkDir(dir, func(path string, de os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if de.Name() == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(de.Name(), ".go") || e.excluded(de.Name()) {
			return nil
		}
		_ = e.parseFile(path)
		return nil
	})
}

// DocComments returns the collected comments in discovery order.
func (e *Extractor) DocComments() []DocComment {
	return e.comments
}

func (e *Extractor) excluded(name string) bool {
	for _, pattern := range e.exclude {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func (e *Extractor) parseFile(path string) error {
	file, err := parser.ParseFile(e.fset, path, nil, parser.ParseComments)
	if err != nil {
		return err
	}
	ast.Inspect(file, e.inspectNode)
	return nil
}

func (e *Extractor) inspectNode(n ast.Node) bool {
	switch decl := n.(type) {
	case *ast.FuncDecl:
		if decl.Doc != nil {
			e.record(funcName(decl), decl.Doc)
		}
	case *ast.GenDecl:
		if decl.Doc != nil && decl.Tok == token.TYPE {
			for _, spec := range decl.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					e.record(ts.Name.Name, decl.Doc)
				}
			}
		}
	}
	return true
}

func (e *Extractor) record(name string, doc *ast.CommentGroup) {
	pos := e.fset.Position(doc.Pos())
	e.comments = append(e.comments, DocComment{
		Name: name,
		File: pos.Filename,
		Line: pos.Line,
		Text: doc.Text(),
	})
}

// funcName qualifies methods with their receiver type, e.g. "Parser.Parse".
func funcName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return decl.Name.Name
	}
	return receiverTypeName(decl.Recv.List[0].Type) + "." + decl.Name.Name
}

func receiverTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.IndexExpr:
		return receiverTypeName(t.X)
	case *ast.IndexListExpr:
		return receiverTypeName(t.X)
	}
	return ""
}
