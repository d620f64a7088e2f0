package model

import "github.com/apilens/javamodel/types"

// FieldItem is a single field or enum-constant declaration
type FieldItem struct {
	Name      string
	Modifiers Modifiers
	Type      types.Type
	// EnumConstant is set when the field models an enum constant
	EnumConstant bool

	ContainingClass *ClassItem
	inheritedFrom   *FieldItem
}

// DuplicateFor returns this field as viewed through cls, an heir of the
// declaring class: its type is substituted through the type-variable
// bindings between the two. The duplicate remembers where it came from.
func (f *FieldItem) DuplicateFor(cls *ClassItem) *FieldItem {
	bindings := cls.MapTypeVariables(f.ContainingClass)
	return &FieldItem{
		Name:            f.Name,
		Modifiers:       f.Modifiers,
		Type:            types.Substitute(f.Type, bindings),
		EnumConstant:    f.EnumConstant,
		ContainingClass: cls,
		inheritedFrom:   f,
	}
}

// InheritedFrom returns the field this one was duplicated from, or nil for
// an original declaration
func (f *FieldItem) InheritedFrom() *FieldItem {
	return f.inheritedFrom
}
