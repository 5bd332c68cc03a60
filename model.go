// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/umldiag

package umldiag

import (
	"fmt"
	"strings"
)

// RangeKind classifies a field range after cross-reference resolution.
type RangeKind int

const (
	// RangePrimitive marks a field whose range is a plain type name.
	RangePrimitive RangeKind = iota
	// RangeEnum marks a field whose range is a declared enumeration.
	RangeEnum
	// RangeClass marks a field whose range is another class; such a field
	// induces a relationship edge instead of a field line.
	RangeClass
)

// RelationKind classifies a relationship edge between two classes.
type RelationKind int

const (
	// RelationReference marks a plain association edge.
	RelationReference RelationKind = iota
	// RelationComposition marks an edge whose target lifetime is owned by
	// the source (inlined field).
	RelationComposition
)

// Schema is the fully resolved input model for diagram generation.
// It is immutable for the lifetime of every generation call.
type Schema struct {
	// Name is the declared schema name, used as image base name.
	Name string
	// Description is free-text schema documentation.
	Description string
	// Classes holds class definitions in declaration order.
	Classes []*Class
	// Enums holds enumeration definitions in declaration order.
	Enums []*Enum
}

// Class is one class definition in the schema model.
type Class struct {
	// Name uniquely identifies the class.
	Name string
	// Description is free-text class documentation.
	Description string
	// Parent is the optional single-inheritance parent class name.
	Parent string
	// Fields holds owned fields in declaration order.
	Fields []Field
}

// Field is one owned field of a class.
type Field struct {
	// Name identifies the field within its owning class.
	Name string
	// Range is a primitive type name, enum name or class name.
	Range string
	// Required marks the field as mandatory.
	Required bool
	// Multivalued marks the field as zero-or-more valued.
	Multivalued bool
	// Inlined marks a class-ranged field whose target is owned by the
	// source class; it renders as a composition edge.
	Inlined bool
}

// Enum is one enumeration definition. Enumerations only occur as field
// range markers and are never expanded into the diagram.
type Enum struct {
	Name        string
	Description string
	Values      []string
}

// Relationship is one directed edge between two classes, induced by a
// class-ranged field of the source class.
type Relationship struct {
	Source      *Class
	Target      *Class
	Kind        RelationKind
	Cardinality string
	Label       string
}

// Model is a read-only accessor over a resolved Schema. Range kinds and
// relationship edges are resolved once at construction; all per-call
// state lives in the caller, so one Model is safe for concurrent
// generation calls.
type Model struct {
	schema     *Schema
	classes    map[string]*Class
	enums      map[string]*Enum
	parents    map[string]*Class
	rangeKinds map[string]RangeKind
	relations  map[string][]Relationship
}

// NewModel resolves cross-references of a schema value into a Model.
// Dangling parent references are defects of the loading collaborator and
// fail construction outright.
func NewModel(schema *Schema) (*Model, error) {
	model := &Model{
		schema:     schema,
		classes:    make(map[string]*Class, len(schema.Classes)),
		enums:      make(map[string]*Enum, len(schema.Enums)),
		parents:    make(map[string]*Class),
		rangeKinds: make(map[string]RangeKind),
		relations:  make(map[string][]Relationship, len(schema.Classes)),
	}

	for _, class := range schema.Classes {
		if _, ok := model.classes[class.Name]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateClass, class.Name)
		}

		model.classes[class.Name] = class
	}

	for _, enum := range schema.Enums {
		model.enums[enum.Name] = enum
	}

	for _, class := range schema.Classes {
		if strings.TrimSpace(class.Parent) != "" {
			parent, ok := model.classes[class.Parent]
			if !ok {
				return nil, fmt.Errorf("%w: class %q inherits unknown class %q", ErrUnresolvedReference, class.Name, class.Parent)
			}

			model.parents[class.Name] = parent
		}

		for _, field := range class.Fields {
			if _, ok := model.rangeKinds[field.Range]; !ok {
				model.rangeKinds[field.Range] = model.resolveRangeKind(field.Range)
			}
		}
	}

	for _, class := range schema.Classes {
		model.relations[class.Name] = model.buildRelationships(class)
	}

	return model, nil
}

// Schema returns the underlying schema value.
func (model *Model) Schema() *Schema {
	return model.schema
}

// Classes returns all classes in declaration order, stable across calls.
func (model *Model) Classes() []*Class {
	return model.schema.Classes
}

// Class returns one class by name.
func (model *Model) Class(name string) (*Class, bool) {
	class, ok := model.classes[name]
	return class, ok
}

// FieldsOf returns owned fields in declaration order followed by
// inherited fields in nearest-ancestor-first order. An overridden field
// name appears once; the nearest declaration wins.
func (model *Model) FieldsOf(class *Class) []Field {
	out := make([]Field, 0, len(class.Fields))
	seen := make(map[string]struct{}, len(class.Fields))

	for current := class; current != nil; current = model.parents[current.Name] {
		for _, field := range current.Fields {
			if _, ok := seen[field.Name]; ok {
				continue
			}

			seen[field.Name] = struct{}{}
			out = append(out, field)
		}
	}

	return out
}

// RelationshipsFrom returns relationship edges whose source is class,
// in owned field declaration order.
func (model *Model) RelationshipsFrom(class *Class) []Relationship {
	return model.relations[class.Name]
}

// RangeKindOf returns the range kind resolved at model construction for
// one field.
func (model *Model) RangeKindOf(field Field) RangeKind {
	return model.rangeKind(field.Range)
}

// rangeKind returns the cached classification of a range name.
func (model *Model) rangeKind(rangeName string) RangeKind {
	if kind, ok := model.rangeKinds[rangeName]; ok {
		return kind
	}

	return model.resolveRangeKind(rangeName)
}

// resolveRangeKind classifies a range name against declared classes and enums.
func (model *Model) resolveRangeKind(rangeName string) RangeKind {
	if _, ok := model.classes[rangeName]; ok {
		return RangeClass
	}

	if _, ok := model.enums[rangeName]; ok {
		return RangeEnum
	}

	return RangePrimitive
}

// buildRelationships derives edges from owned class-ranged fields.
func (model *Model) buildRelationships(class *Class) []Relationship {
	var out []Relationship
	for _, field := range class.Fields {
		if model.rangeKind(field.Range) != RangeClass {
			continue
		}

		kind := RelationReference
		if field.Inlined {
			kind = RelationComposition
		}

		out = append(out, Relationship{
			Source:      class,
			Target:      model.classes[field.Range],
			Kind:        kind,
			Cardinality: cardinalityLabel(field),
			Label:       field.Name,
		})
	}

	return out
}

// cardinalityLabel maps field shape to the target-end cardinality token.
func cardinalityLabel(field Field) string {
	switch {
	case field.Multivalued && field.Required:
		return "1..*"
	case field.Multivalued:
		return "0..*"
	case field.Required:
		return "1"
	default:
		return "0..1"
	}
}
