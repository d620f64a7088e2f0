package javasrc

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/apilens/javamodel/nodeutil"
	"github.com/apilens/javamodel/types"
)

// nullnessAnnotations maps the commonly used nullability annotation names
// (simple or qualified) to the nullness they declare
var nullnessAnnotations = map[string]types.Nullability{
	"Nullable":     types.NullabilityNullable,
	"CheckForNull": types.NullabilityNullable,
	"NonNull":      types.NullabilityNonNull,
	"NotNull":      types.NullabilityNonNull,
	"Nonnull":      types.NullabilityNonNull,
}

func nullnessOf(annotationName string) (types.Nullability, bool) {
	simple := annotationName
	if ind := strings.LastIndexByte(simple, '.'); ind != -1 {
		simple = simple[ind+1:]
	}
	nullness, ok := nullnessAnnotations[simple]
	return nullness, ok
}

// applyNullnessAnnotations folds declaration annotations such as @Nullable
// into the nullness of the annotated type. Reference types from source with
// no such annotation keep platform nullness.
func applyNullnessAnnotations(t types.Type, annotations []string) types.Type {
	for _, annotation := range annotations {
		if nullness, ok := nullnessOf(annotation); ok {
			return withNullness(t, nullness)
		}
	}
	return t
}

func withNullness(t types.Type, nullness types.Nullability) types.Type {
	switch t := t.(type) {
	case *types.ArrayType:
		clone := *t
		clone.Nullability = nullness
		return &clone
	case *types.ClassType:
		clone := *t
		clone.Nullability = nullness
		return &clone
	case *types.VariableType:
		clone := *t
		clone.Nullability = nullness
		return &clone
	case *types.WildcardType:
		clone := *t
		clone.Nullability = nullness
		return &clone
	default:
		// Primitives are non-null no matter what the source claims
		return t
	}
}

// parseType converts a Java type node into its model representation. Names
// are resolved against the type-parameter scope first, so a `T` inside
// `class Box<T>` becomes a variable use, and qualified against the file's
// imports otherwise.
func (ctx *fileCtx) parseType(node *sitter.Node, scope *types.TypeParameterScope) types.Type {
	switch node.Type() {
	case "integral_type", "floating_point_type", "boolean_type", "void_type":
		kind, known := types.PrimitiveKindOf(node.Content(ctx.source))
		if !known {
			panic(fmt.Errorf("unknown primitive type: %v", node.Content(ctx.source)))
		}
		return types.NewPrimitiveType(kind)

	case "array_type":
		component := ctx.parseType(node.ChildByFieldName("element"), scope)
		dimensions := strings.Count(node.ChildByFieldName("dimensions").Content(ctx.source), "[")
		for ind := 0; ind < dimensions; ind++ {
			component = &types.ArrayType{TypeModifiers: types.PlatformModifiers(), Component: component}
		}
		return component

	case "type_identifier":
		name := node.Content(ctx.source)
		if param := scope.Find(name); param != nil {
			return types.NewVariableType(param)
		}
		return &types.ClassType{
			TypeModifiers: types.PlatformModifiers(),
			QualifiedName: ctx.qualify(name),
		}

	case "scoped_type_identifier":
		return &types.ClassType{
			TypeModifiers: types.PlatformModifiers(),
			QualifiedName: node.Content(ctx.source),
		}

	case "generic_type":
		// A generic type is of the form Base<Arg, ...>: its first child is
		// the base name, the rest are the type arguments
		base := types.AsClassType(ctx.parseType(node.NamedChild(0), scope))
		for _, child := range nodeutil.NamedChildrenOf(node) {
			if child.Type() != "type_arguments" {
				continue
			}
			for _, argument := range nodeutil.NamedChildrenOf(child) {
				base.Arguments = append(base.Arguments, ctx.parseType(argument, scope))
			}
		}
		return base

	case "wildcard":
		wildcard := &types.WildcardType{TypeModifiers: types.PlatformModifiers()}
		isSuper := false
		for _, child := range nodeutil.UnnamedChildrenOf(node) {
			switch {
			case child.Type() == "super":
				isSuper = true
			case child.IsNamed() && child.Type() != "super":
				bound := ctx.parseType(child, scope)
				if isSuper {
					wildcard.SuperBound = bound
				} else {
					wildcard.ExtendsBound = bound
				}
			}
		}
		return wildcard

	case "annotated_type":
		// The final named child is the underlying type; the rest are
		// type-use annotations
		children := nodeutil.NamedChildrenOf(node)
		underlying := ctx.parseType(children[len(children)-1], scope)
		for _, child := range children[:len(children)-1] {
			switch child.Type() {
			case "marker_annotation", "annotation":
				name := strings.TrimPrefix(child.Content(ctx.source), "@")
				if ind := strings.IndexByte(name, '('); ind != -1 {
					name = name[:ind]
				}
				if nullness, ok := nullnessOf(name); ok {
					underlying = withNullness(underlying, nullness)
				} else {
					underlying = withTypeAnnotation(underlying, name)
				}
			}
		}
		return underlying
	}

	panic(fmt.Errorf("unknown java type node: %v", node.Type()))
}

func withTypeAnnotation(t types.Type, annotationName string) types.Type {
	switch t := t.(type) {
	case *types.PrimitiveType:
		clone := *t
		clone.Annotations = append(clone.Annotations[:len(clone.Annotations):len(clone.Annotations)], annotationName)
		return &clone
	case *types.ArrayType:
		clone := *t
		clone.Annotations = append(clone.Annotations[:len(clone.Annotations):len(clone.Annotations)], annotationName)
		return &clone
	case *types.ClassType:
		clone := *t
		clone.Annotations = append(clone.Annotations[:len(clone.Annotations):len(clone.Annotations)], annotationName)
		return &clone
	case *types.VariableType:
		clone := *t
		clone.Annotations = append(clone.Annotations[:len(clone.Annotations):len(clone.Annotations)], annotationName)
		return &clone
	case *types.WildcardType:
		clone := *t
		clone.Annotations = append(clone.Annotations[:len(clone.Annotations):len(clone.Annotations)], annotationName)
		return &clone
	}
	panic(fmt.Errorf("unknown type variant: %T", t))
}
