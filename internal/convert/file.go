package convert

import (
	"go/ast"
	"strings"

	"github.com/SamuraiJack/typedoc/internal/model"
)

// fileConverter turns a source file into declarations under its package
// reflection. One package reflection exists per import path no matter how
// many files contribute to it.
type fileConverter struct{}

func (fileConverter) SupportedKinds() []NodeKind {
	return []NodeKind{NodeFile}
}

func (fileConverter) Convert(ctx *Context, node ast.Node) *model.Reflection {
	file, ok := node.(*ast.File)
	if !ok {
		return nil
	}
	pkg := ctx.Program.PackageOf(file)
	if pkg == nil {
		return nil
	}

	pr := ctx.packageReflections[pkg.PkgPath]
	if pr == nil {
		pr = ctx.CreateDeclaration(pkg.PkgPath, model.KindPackage, file)
		ctx.packageReflections[pkg.PkgPath] = pr
	}
	if pr.Comment == "" && file.Doc != nil {
		pr.Comment = strings.TrimSpace(file.Doc.Text())
	}

	ctx.EnterFile(file, func() {
		ctx.WithScope(pr, func() {
			for _, decl := range file.Decls {
				switch d := decl.(type) {
				case *ast.FuncDecl:
					ctx.Converter.ConvertNode(ctx, d)
				case *ast.GenDecl:
					for _, spec := range d.Specs {
						ctx.Converter.ConvertNode(ctx, spec)
					}
				}
			}
		})
	})

	return pr
}

// docText extracts a trimmed doc comment, preferring doc over trailing.
func docText(doc, trailing *ast.CommentGroup) string {
	if doc != nil {
		return strings.TrimSpace(doc.Text())
	}
	if trailing != nil {
		return strings.TrimSpace(trailing.Text())
	}

	return ""
}
