package analyze

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/SamuraiJack/typedoc/internal/diagnostic"
)

// Program is the loaded view of the analyzed source: syntax trees, the
// checker's type information, and the engine's categorized diagnostics.
type Program struct {
	pkgs   []*packages.Package
	fset   *token.FileSet
	byFile map[*ast.File]*packages.Package
	paths  map[string]bool
}

func newProgram(pkgs []*packages.Package) *Program {
	p := &Program{
		pkgs:   pkgs,
		byFile: make(map[*ast.File]*packages.Package),
		paths:  make(map[string]bool, len(pkgs)),
	}
	for _, pkg := range pkgs {
		if p.fset == nil && pkg.Fset != nil {
			p.fset = pkg.Fset
		}
		p.paths[pkg.PkgPath] = true
		for _, file := range pkg.Syntax {
			p.byFile[file] = pkg
		}
	}
	if p.fset == nil {
		p.fset = token.NewFileSet()
	}

	return p
}

// Packages returns the loaded packages in engine order.
func (p *Program) Packages() []*packages.Package {
	return p.pkgs
}

// Fset returns the file set positions are resolved against.
func (p *Program) Fset() *token.FileSet {
	return p.fset
}

// Files returns every parsed source file in program order: packages in
// engine order, files in parse order within each package.
func (p *Program) Files() []*ast.File {
	var files []*ast.File
	for _, pkg := range p.pkgs {
		files = append(files, pkg.Syntax...)
	}

	return files
}

// PackageOf returns the package a parsed file belongs to, or nil.
func (p *Program) PackageOf(file *ast.File) *packages.Package {
	return p.byFile[file]
}

// FileName returns the on-disk name of a parsed file.
func (p *Program) FileName(file *ast.File) string {
	if file == nil {
		return ""
	}

	return p.fset.Position(file.Package).Filename
}

// Position renders the position of a node as "file:line:col".
func (p *Program) Position(node ast.Node) string {
	if node == nil {
		return ""
	}

	return p.fset.Position(node.Pos()).String()
}

// TypeOf resolves the checker type of an expression appearing in file, or
// nil when the checker has nothing recorded for it.
func (p *Program) TypeOf(file *ast.File, expr ast.Expr) types.Type {
	pkg := p.byFile[file]
	if pkg == nil || pkg.TypesInfo == nil {
		return nil
	}

	return pkg.TypesInfo.TypeOf(expr)
}

// ObjectOf returns the checker object an identifier denotes, or nil.
func (p *Program) ObjectOf(file *ast.File, ident *ast.Ident) types.Object {
	pkg := p.byFile[file]
	if pkg == nil || pkg.TypesInfo == nil {
		return nil
	}

	return pkg.TypesInfo.ObjectOf(ident)
}

// IsAnalyzed reports whether pkgPath is part of the loaded package set.
// Symbols outside it are external: references to them never resolve to a
// reflection and are not reported as dangling.
func (p *Program) IsAnalyzed(pkgPath string) bool {
	return p.paths[pkgPath]
}

// Diagnostics groups the engine's reported errors into the classifier's
// categories: parse errors are syntactic, list errors are global, type
// errors are semantic. Unknown kinds are treated as global, the engine's
// own fallback.
func (p *Program) Diagnostics() diagnostic.CategorySet {
	var set diagnostic.CategorySet
	for _, pkg := range p.pkgs {
		for _, e := range pkg.Errors {
			pos := e.Pos
			if pos == "-" {
				pos = ""
			}
			d := diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Message:  e.Msg,
				Pos:      pos,
			}
			switch e.Kind {
			case packages.ParseError:
				d.Category = diagnostic.CategorySyntax
				d.Code = "parse_error"
				set.Syntax = append(set.Syntax, d)
			case packages.TypeError:
				d.Category = diagnostic.CategorySemantic
				d.Code = "type_error"
				set.Semantic = append(set.Semantic, d)
			default:
				d.Category = diagnostic.CategoryGlobal
				d.Code = "list_error"
				set.Global = append(set.Global, d)
			}
		}
	}

	return set
}
