// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/umldiag

package umldiag

import (
	"testing"
)

func TestReachableEmptyScopeSelectsEverything(t *testing.T) {
	t.Parallel()

	model := loadKitchenSinkModel(t)
	set, err := model.reachable(nil)
	if err != nil {
		t.Fatalf("reachable: %v", err)
	}

	if got := classNames(set.classes); got != classNames(model.Classes()) {
		t.Fatalf("full scope classes = %q", got)
	}

	if len(set.relationships) != 4 {
		t.Fatalf("full scope edges = %d, want 4", len(set.relationships))
	}
}

func TestReachableFollowsOutgoingEdges(t *testing.T) {
	t.Parallel()

	model := loadKitchenSinkModel(t)
	set, err := model.reachable([]string{"Dataset"})
	if err != nil {
		t.Fatalf("reachable: %v", err)
	}

	names := classNames(set.classes)
	// Dataset -> Person pulls in everything linked to Person, transitively.
	want := "Person,MedicalEvent,Place,FamilialRelationship,Dataset"
	if names != want {
		t.Fatalf("reachable classes = %q, want %q", names, want)
	}
}

func TestReachableFollowsIncomingEdges(t *testing.T) {
	t.Parallel()

	model := loadKitchenSinkModel(t)
	set, err := model.reachable([]string{"Place"})
	if err != nil {
		t.Fatalf("reachable: %v", err)
	}

	found := false
	for _, class := range set.classes {
		if class.Name == "MedicalEvent" {
			found = true
		}
	}

	if !found {
		t.Fatalf("MedicalEvent not reached through its edge to Place: %q", classNames(set.classes))
	}
}

func TestReachableExcludesUnlinkedClass(t *testing.T) {
	t.Parallel()

	model := loadKitchenSinkModel(t)
	set, err := model.reachable([]string{"FamilialRelationship"})
	if err != nil {
		t.Fatalf("reachable: %v", err)
	}

	for _, class := range set.classes {
		if class.Name == "MarriageEvent" {
			t.Fatalf("MarriageEvent leaked into scope: %q", classNames(set.classes))
		}
	}
}

func TestReachableEdgesRequireBothEndpoints(t *testing.T) {
	t.Parallel()

	model := newTestModel(t, &Schema{
		Name: "Split",
		Classes: []*Class{
			{Name: "Island"},
			{Name: "Left", Fields: []Field{
				{Name: "to", Range: "Right"},
			}},
			{Name: "Right"},
		},
	})

	set, err := model.reachable([]string{"Island"})
	if err != nil {
		t.Fatalf("reachable: %v", err)
	}

	if len(set.classes) != 1 || set.classes[0].Name != "Island" {
		t.Fatalf("island scope classes = %q", classNames(set.classes))
	}

	if len(set.relationships) != 0 {
		t.Fatalf("island scope edges = %d, want 0", len(set.relationships))
	}
}

func TestReachableUnknownSeed(t *testing.T) {
	t.Parallel()

	model := loadKitchenSinkModel(t)
	_, err := model.reachable([]string{"Missing"})
	assertErrorIs(t, err, ErrUnknownClass)
}

func TestReachableRepeatedSeedsCollapse(t *testing.T) {
	t.Parallel()

	model := loadKitchenSinkModel(t)
	single, err := model.reachable([]string{"Person"})
	if err != nil {
		t.Fatalf("reachable: %v", err)
	}

	repeated, err := model.reachable([]string{"Person", "Person"})
	if err != nil {
		t.Fatalf("reachable: %v", err)
	}

	if classNames(single.classes) != classNames(repeated.classes) {
		t.Fatalf("repeated seeds changed result: %q vs %q",
			classNames(single.classes), classNames(repeated.classes))
	}
}

func TestReachableCycleTerminates(t *testing.T) {
	t.Parallel()

	model := newTestModel(t, &Schema{
		Name: "Cycle",
		Classes: []*Class{
			{Name: "A", Fields: []Field{{Name: "b", Range: "B"}}},
			{Name: "B", Fields: []Field{{Name: "a", Range: "A"}}},
		},
	})

	set, err := model.reachable([]string{"A"})
	if err != nil {
		t.Fatalf("reachable: %v", err)
	}

	if len(set.classes) != 2 || len(set.relationships) != 2 {
		t.Fatalf("cycle scope = %d classes, %d edges", len(set.classes), len(set.relationships))
	}
}
