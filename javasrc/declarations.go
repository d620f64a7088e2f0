package javasrc

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/apilens/javamodel/model"
	"github.com/apilens/javamodel/nodeutil"
	"github.com/apilens/javamodel/types"
)

func classKindOf(nodeType string) model.ClassKind {
	switch nodeType {
	case "interface_declaration":
		return model.KindInterface
	case "enum_declaration":
		return model.KindEnum
	case "annotation_type_declaration":
		return model.KindAnnotation
	default:
		return model.KindClass
	}
}

// parseClass builds a ClassItem (and its nested classes) from a declaration
// node. enclosingScope is the type-parameter scope of the containing class,
// or nil at the top level.
func (ctx *fileCtx) parseClass(node *sitter.Node, containing *model.ClassItem, enclosingScope *types.TypeParameterScope) *model.ClassItem {
	nodeutil.AssertTypeIs(node.ChildByFieldName("name"), "identifier")
	name := node.ChildByFieldName("name").Content(ctx.source)

	qualifiedName := name
	switch {
	case containing != nil:
		qualifiedName = containing.QualifiedName + "." + name
	case ctx.pkg != "":
		qualifiedName = ctx.pkg + "." + name
	}

	cls := &model.ClassItem{
		QualifiedName:   qualifiedName,
		Kind:            classKindOf(node.Type()),
		Modifiers:       ctx.parseModifiers(node),
		ContainingClass: containing,
	}
	if cls.IsInterface() {
		// Interfaces are implicitly abstract
		cls.Modifiers.Abstract = true
	}

	if enclosingScope == nil {
		enclosingScope = types.EmptyScope
	}
	classScope := ctx.parseTypeParameters(node.ChildByFieldName("type_parameters"), &cls.TypeParameters, enclosingScope)

	// extends clause (classes only; interface "extends" lists are interfaces)
	if superclass := node.ChildByFieldName("superclass"); superclass != nil {
		cls.SuperClassType = types.AsClassType(ctx.parseType(superclass.NamedChild(0), classScope))
	}

	// implements clause on classes and enums, extends clause on interfaces
	if interfaces := node.ChildByFieldName("interfaces"); interfaces != nil {
		ctx.parseInterfaceList(interfaces, cls, classScope)
	}
	for _, child := range nodeutil.NamedChildrenOf(node) {
		if child.Type() == "extends_interfaces" {
			ctx.parseInterfaceList(child, cls, classScope)
		}
	}

	if body := node.ChildByFieldName("body"); body != nil {
		for _, member := range nodeutil.NamedChildrenOf(body) {
			ctx.parseMember(member, cls, classScope)
		}
	}
	return cls
}

func (ctx *fileCtx) parseInterfaceList(node *sitter.Node, cls *model.ClassItem, scope *types.TypeParameterScope) {
	for _, child := range nodeutil.NamedChildrenOf(node) {
		if child.Type() != "type_list" {
			continue
		}
		for _, ifaceNode := range nodeutil.NamedChildrenOf(child) {
			cls.InterfaceTypes = append(cls.InterfaceTypes,
				types.AsClassType(ctx.parseType(ifaceNode, scope)))
		}
	}
}

// parseMember dispatches one class-body declaration
func (ctx *fileCtx) parseMember(node *sitter.Node, cls *model.ClassItem, classScope *types.TypeParameterScope) {
	switch node.Type() {
	case "field_declaration":
		ctx.parseField(node, cls, classScope)
	case "method_declaration", "constructor_declaration":
		cls.AddMethod(ctx.parseMethod(node, cls, classScope))
	case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration":
		inner := ctx.parseClass(node, cls, classScope)
		cls.InnerClasses = append(cls.InnerClasses, inner)
	case "enum_constant":
		cls.AddField(&model.FieldItem{
			Name:         node.ChildByFieldName("name").Content(ctx.source),
			Modifiers:    model.Modifiers{Visibility: model.VisibilityPublic, Static: true, Final: true},
			Type:         &types.ClassType{QualifiedName: cls.QualifiedName, TypeModifiers: types.NonNullModifiers()},
			EnumConstant: true,
		})
	case "enum_body_declarations":
		for _, decl := range nodeutil.NamedChildrenOf(node) {
			ctx.parseMember(decl, cls, classScope)
		}
	}
}

func (ctx *fileCtx) parseField(node *sitter.Node, cls *model.ClassItem, classScope *types.TypeParameterScope) {
	modifiers := ctx.parseModifiers(node)
	fieldType := ctx.parseType(node.ChildByFieldName("type"), classScope)
	fieldType = applyNullnessAnnotations(fieldType, modifiers.Annotations)

	// One declaration can declare several fields: `int a, b;`
	for _, child := range nodeutil.NamedChildrenOf(node) {
		if child.Type() != "variable_declarator" {
			continue
		}
		cls.AddField(&model.FieldItem{
			Name:      child.ChildByFieldName("name").Content(ctx.source),
			Modifiers: modifiers,
			Type:      fieldType,
		})
	}
}

func (ctx *fileCtx) parseMethod(node *sitter.Node, cls *model.ClassItem, classScope *types.TypeParameterScope) *model.MethodItem {
	nodeutil.AssertTypeIs(node.ChildByFieldName("name"), "identifier")

	method := &model.MethodItem{
		Name:        node.ChildByFieldName("name").Content(ctx.source),
		Constructor: node.Type() == "constructor_declaration",
		Modifiers:   ctx.parseModifiers(node),
	}
	if cls.IsInterface() {
		// Interface members are implicitly public, and abstract unless they
		// carry a body (default and static methods)
		method.Modifiers.Visibility = model.VisibilityPublic
		if !method.Modifiers.Default && !method.Modifiers.Static && node.ChildByFieldName("body") == nil {
			method.Modifiers.Abstract = true
		}
	}

	methodScope := ctx.parseTypeParameters(node.ChildByFieldName("type_parameters"), &method.TypeParameters, classScope)

	if returnType := node.ChildByFieldName("type"); returnType != nil {
		method.ReturnType = applyNullnessAnnotations(
			ctx.parseType(returnType, methodScope), method.Modifiers.Annotations)
	}

	for _, parameter := range nodeutil.NamedChildrenOf(node.ChildByFieldName("parameters")) {
		switch parameter.Type() {
		case "formal_parameter":
			parameterModifiers := ctx.parseModifiers(parameter)
			parameterType := ctx.parseType(parameter.ChildByFieldName("type"), methodScope)
			method.Parameters = append(method.Parameters, &model.ParameterItem{
				Name: parameter.ChildByFieldName("name").Content(ctx.source),
				Type: applyNullnessAnnotations(parameterType, parameterModifiers.Annotations),
			})
		case "spread_parameter":
			// A spread parameter is in the format: (type) (variable_declarator name: (name))
			component := ctx.parseType(parameter.NamedChild(0), methodScope)
			method.Parameters = append(method.Parameters, &model.ParameterItem{
				Name: parameter.NamedChild(1).ChildByFieldName("name").Content(ctx.source),
				Type: &types.ArrayType{
					TypeModifiers: types.NonNullModifiers(),
					Component:     component,
					Varargs:       true,
				},
			})
		}
	}
	return method
}

// parseTypeParameters runs the two-phase construction of a declaration's
// type-parameter list: every placeholder is declared and registered in the
// nested scope before the first bound is parsed, so bounds may reference any
// sibling parameter, including the one being declared. The resulting list is
// stored through out and the nested scope returned.
func (ctx *fileCtx) parseTypeParameters(node *sitter.Node, out *types.TypeParameterList, enclosing *types.TypeParameterScope) *types.TypeParameterScope {
	if node == nil {
		return enclosing
	}

	var paramNodes []*sitter.Node
	var names []string
	for _, param := range nodeutil.NamedChildrenOf(node) {
		if param.Type() != "type_parameter" {
			continue
		}
		nameNode := param.NamedChild(0)
		for nameNode != nil && nameNode.Type() != "identifier" {
			// Skip over annotations on the parameter
			nameNode = nameNode.NextNamedSibling()
		}
		if nameNode == nil {
			continue
		}
		paramNodes = append(paramNodes, param)
		names = append(names, nameNode.Content(ctx.source))
	}

	params, scope := types.DeclareTypeParameters(enclosing, names)
	for ind, param := range paramNodes {
		params[ind].SetBounds(ctx.parseTypeParameterBounds(param, scope))
	}
	*out = params
	return scope
}

func (ctx *fileCtx) parseTypeParameterBounds(param *sitter.Node, scope *types.TypeParameterScope) []types.Type {
	var bounds []types.Type
	for _, child := range nodeutil.NamedChildrenOf(param) {
		if child.Type() != "type_bound" {
			continue
		}
		for _, boundNode := range nodeutil.NamedChildrenOf(child) {
			bounds = append(bounds, ctx.parseType(boundNode, scope))
		}
	}
	return bounds
}

// parseModifiers reads the modifiers node of a declaration, if present,
// into visibility, flags and annotation names
func (ctx *fileCtx) parseModifiers(node *sitter.Node) model.Modifiers {
	modifiers := model.Modifiers{Visibility: model.VisibilityPackagePrivate}
	for _, child := range nodeutil.NamedChildrenOf(node) {
		if child.Type() != "modifiers" {
			continue
		}
		for _, modifier := range nodeutil.UnnamedChildrenOf(child) {
			switch modifier.Type() {
			case "public":
				modifiers.Visibility = model.VisibilityPublic
			case "protected":
				modifiers.Visibility = model.VisibilityProtected
			case "private":
				modifiers.Visibility = model.VisibilityPrivate
			case "static":
				modifiers.Static = true
			case "abstract":
				modifiers.Abstract = true
			case "final":
				modifiers.Final = true
			case "default":
				modifiers.Default = true
			case "marker_annotation", "annotation":
				name := strings.TrimPrefix(modifier.Content(ctx.source), "@")
				// Strip any annotation arguments
				if ind := strings.IndexByte(name, '('); ind != -1 {
					name = name[:ind]
				}
				modifiers.Annotations = append(modifiers.Annotations, name)
			}
		}
	}
	return modifiers
}
