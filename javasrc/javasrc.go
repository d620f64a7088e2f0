// Package javasrc is the source front end of the model: it parses Java
// compilation units with tree-sitter and builds ClassItem/MethodItem graphs
// for the type-resolution engine to operate on. Only API surface is read;
// method bodies are skipped entirely.
package javasrc

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/apilens/javamodel/model"
	"github.com/apilens/javamodel/nodeutil"
)

// ParseSource parses a single Java compilation unit into a fresh codebase
func ParseSource(source string) (*model.Codebase, error) {
	cb := model.NewCodebase()
	if err := ParseInto(cb, source); err != nil {
		return nil, err
	}
	return cb, nil
}

// ParseInto parses a Java compilation unit and registers its classes into an
// existing codebase, so that a model can be assembled from several files
func ParseInto(cb *model.Codebase, source string) error {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	src := []byte(source)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return fmt.Errorf("parsing java source: %w", err)
	}
	root := tree.RootNode()
	if root.HasError() {
		return fmt.Errorf("java source contains syntax errors")
	}

	ctx := &fileCtx{
		source:   src,
		imports:  make(map[string]string),
		codebase: cb,
	}

	for _, node := range nodeutil.NamedChildrenOf(root) {
		switch node.Type() {
		case "package_declaration":
			ctx.pkg = node.NamedChild(0).Content(src)
		case "import_declaration":
			imported := node.NamedChild(0)
			if imported.Type() != "scoped_identifier" {
				continue
			}
			name := imported.ChildByFieldName("name").Content(src)
			scope := imported.ChildByFieldName("scope").Content(src)
			ctx.imports[name] = scope + "." + name
		case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration":
			cb.RegisterClass(ctx.parseClass(node, nil, nil))
		}
	}
	return nil
}

// fileCtx carries the per-file state every parse step needs: the raw source,
// the package and import table for name qualification, and the codebase the
// classes land in
type fileCtx struct {
	source   []byte
	pkg      string
	imports  map[string]string
	codebase *model.Codebase
}

// javaLangClasses are the implicitly imported java.lang types a fixture can
// reference without an import declaration
var javaLangClasses = map[string]struct{}{
	"Object": {}, "String": {}, "CharSequence": {}, "Number": {},
	"Boolean": {}, "Byte": {}, "Character": {}, "Double": {}, "Float": {},
	"Integer": {}, "Long": {}, "Short": {}, "Void": {},
	"Comparable": {}, "Iterable": {}, "Runnable": {}, "Cloneable": {},
	"Throwable": {}, "Exception": {}, "RuntimeException": {}, "Error": {},
}

// qualify resolves a type name as written in source to a qualified name:
// explicit imports first, then the implicit java.lang import, then the
// file's own package. Already-qualified names pass through.
func (ctx *fileCtx) qualify(name string) string {
	if strings.ContainsRune(name, '.') {
		return name
	}
	if qualified, ok := ctx.imports[name]; ok {
		return qualified
	}
	if _, ok := javaLangClasses[name]; ok {
		return "java.lang." + name
	}
	if ctx.pkg == "" {
		return name
	}
	return ctx.pkg + "." + name
}
