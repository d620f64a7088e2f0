package model

import (
	log "github.com/sirupsen/logrus"
)

// Codebase is the registry of every class known to one model instance. It is
// populated single-threaded by a front end during construction and treated
// as read-only afterwards.
type Codebase struct {
	classes map[string]*ClassItem
	// Registration order, so that iteration is deterministic
	order []*ClassItem
}

// NewCodebase returns an empty class registry
func NewCodebase() *Codebase {
	return &Codebase{classes: make(map[string]*ClassItem)}
}

// RegisterClass adds a class to the registry and wires its back-reference.
// Registering the same qualified name twice keeps the first registration;
// the duplicate is dropped with a warning.
func (cb *Codebase) RegisterClass(cls *ClassItem) *ClassItem {
	if existing, ok := cb.classes[cls.QualifiedName]; ok {
		log.WithField("class", cls.QualifiedName).Warn("Duplicate class registration ignored")
		return existing
	}
	cls.codebase = cb
	cb.classes[cls.QualifiedName] = cls
	cb.order = append(cb.order, cls)
	for _, inner := range cls.InnerClasses {
		cb.RegisterClass(inner)
	}
	return cls
}

// FindClass resolves a qualified name to its class, or nil when the name is
// not on the classpath of this model. Callers treat nil as a dead end, not
// an error: a model built against an incomplete classpath still answers
// every query it can.
func (cb *Codebase) FindClass(qualifiedName string) *ClassItem {
	return cb.classes[qualifiedName]
}

// Classes returns every registered class in registration order
func (cb *Codebase) Classes() []*ClassItem {
	return cb.order
}
