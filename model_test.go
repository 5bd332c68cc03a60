// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/umldiag

package umldiag

import (
	"strings"
	"testing"
)

func TestFieldsOfOwnedThenInherited(t *testing.T) {
	t.Parallel()

	model := newTestModel(t, &Schema{
		Name: "Family",
		Classes: []*Class{
			{Name: "Root", Fields: []Field{
				{Name: "id", Range: "string"},
				{Name: "label", Range: "string"},
			}},
			{Name: "Middle", Parent: "Root", Fields: []Field{
				{Name: "code", Range: "string"},
			}},
			{Name: "Leaf", Parent: "Middle", Fields: []Field{
				{Name: "value", Range: "string"},
			}},
		},
	})

	leaf, _ := model.Class("Leaf")
	got := fieldNames(model.FieldsOf(leaf))
	want := "value,code,id,label"
	if got != want {
		t.Fatalf("field order = %q, want %q", got, want)
	}
}

func TestFieldsOfOverrideNearestAncestorWins(t *testing.T) {
	t.Parallel()

	model := newTestModel(t, &Schema{
		Name: "Family",
		Classes: []*Class{
			{Name: "Root", Fields: []Field{
				{Name: "name", Range: "string"},
			}},
			{Name: "Leaf", Parent: "Root", Fields: []Field{
				{Name: "name", Range: "symbol"},
			}},
		},
	})

	leaf, _ := model.Class("Leaf")
	fields := model.FieldsOf(leaf)
	if len(fields) != 1 {
		t.Fatalf("overridden field appears %d times, want 1", len(fields))
	}

	if fields[0].Range != "symbol" {
		t.Fatalf("override range = %q, want %q", fields[0].Range, "symbol")
	}
}

func TestFieldsOfEmptyClass(t *testing.T) {
	t.Parallel()

	model := newTestModel(t, &Schema{
		Name:    "Empty",
		Classes: []*Class{{Name: "Bare"}},
	})

	bare, _ := model.Class("Bare")
	if got := model.FieldsOf(bare); len(got) != 0 {
		t.Fatalf("expected no fields, got %d", len(got))
	}
}

func TestRangeKindClassification(t *testing.T) {
	t.Parallel()

	model := newTestModel(t, &Schema{
		Name:  "Kinds",
		Enums: []*Enum{{Name: "ColorEnum", Values: []string{"RED"}}},
		Classes: []*Class{
			{Name: "Widget", Fields: []Field{
				{Name: "id", Range: "string"},
				{Name: "color", Range: "ColorEnum"},
				{Name: "part", Range: "Part"},
			}},
			{Name: "Part"},
		},
	})

	widget, _ := model.Class("Widget")
	kinds := map[string]RangeKind{}
	for _, field := range model.FieldsOf(widget) {
		kinds[field.Name] = model.RangeKindOf(field)
	}

	if kinds["id"] != RangePrimitive {
		t.Fatalf("id kind = %v, want primitive", kinds["id"])
	}

	if kinds["color"] != RangeEnum {
		t.Fatalf("color kind = %v, want enum", kinds["color"])
	}

	if kinds["part"] != RangeClass {
		t.Fatalf("part kind = %v, want class", kinds["part"])
	}
}

func TestRelationshipsFromKindsAndCardinality(t *testing.T) {
	t.Parallel()

	model := newTestModel(t, &Schema{
		Name: "Edges",
		Classes: []*Class{
			{Name: "Source", Fields: []Field{
				{Name: "owned", Range: "Target", Multivalued: true, Inlined: true},
				{Name: "linked", Range: "Target", Required: true},
				{Name: "needed", Range: "Target", Required: true, Multivalued: true},
				{Name: "plain", Range: "string"},
			}},
			{Name: "Target"},
		},
	})

	source, _ := model.Class("Source")
	edges := model.RelationshipsFrom(source)
	if len(edges) != 3 {
		t.Fatalf("edge count = %d, want 3", len(edges))
	}

	if edges[0].Kind != RelationComposition || edges[0].Cardinality != "0..*" {
		t.Fatalf("owned edge = %+v", edges[0])
	}

	if edges[1].Kind != RelationReference || edges[1].Cardinality != "1" {
		t.Fatalf("linked edge = %+v", edges[1])
	}

	if edges[2].Cardinality != "1..*" {
		t.Fatalf("needed edge = %+v", edges[2])
	}

	if edges[1].Label != "linked" {
		t.Fatalf("edge label = %q, want field name", edges[1].Label)
	}
}

func TestNewModelRejectsUnknownParent(t *testing.T) {
	t.Parallel()

	_, err := NewModel(&Schema{
		Name:    "Broken",
		Classes: []*Class{{Name: "Orphan", Parent: "Ghost"}},
	})
	assertErrorIs(t, err, ErrUnresolvedReference)
}

func TestNewModelRejectsDuplicateClass(t *testing.T) {
	t.Parallel()

	_, err := NewModel(&Schema{
		Name:    "Broken",
		Classes: []*Class{{Name: "Twin"}, {Name: "Twin"}},
	})
	assertErrorIs(t, err, ErrDuplicateClass)
}

func TestClassesDeclarationOrderStable(t *testing.T) {
	t.Parallel()

	model := loadKitchenSinkModel(t)
	first := classNames(model.Classes())
	second := classNames(model.Classes())
	want := "Person,MedicalEvent,Place,FamilialRelationship,Dataset,MarriageEvent"
	if first != want || second != want {
		t.Fatalf("class order = %q / %q, want %q", first, second, want)
	}
}

func fieldNames(fields []Field) string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Name)
	}

	return strings.Join(names, ",")
}

func classNames(classes []*Class) string {
	names := make([]string, 0, len(classes))
	for _, class := range classes {
		names = append(names, class.Name)
	}

	return strings.Join(names, ",")
}
