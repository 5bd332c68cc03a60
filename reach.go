// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/umldiag

package umldiag

import (
	"fmt"
	"strings"
)

// reachableSet is the closed set of classes and relationship edges
// selected for one generation call. It is transient per call and never
// shared between scopes.
type reachableSet struct {
	// classes holds selected classes in model declaration order.
	classes []*Class
	// relationships holds deduplicated edges in source declaration
	// order, then field declaration order within one source.
	relationships []Relationship
}

// reachable computes the reachable set for one selection scope. An empty
// scope selects the whole model without traversal. A non-empty scope
// runs a breadth-first traversal over relationship edges, treating every
// edge as traversable from either endpoint. Inheritance edges do not
// participate in traversal; inherited fields are flattened into blocks
// by FieldsOf instead.
func (model *Model) reachable(scope []string) (*reachableSet, error) {
	if len(scope) == 0 {
		return model.fullSet(), nil
	}

	visited := make(map[string]struct{}, len(scope))
	queue := make([]*Class, 0, len(scope))

	for _, name := range scope {
		name = strings.TrimSpace(name)
		class, ok := model.Class(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownClass, name)
		}

		if _, ok := visited[class.Name]; ok {
			continue
		}

		visited[class.Name] = struct{}{}
		queue = append(queue, class)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range model.neighborsOf(current) {
			if _, ok := visited[neighbor.Name]; ok {
				continue
			}

			visited[neighbor.Name] = struct{}{}
			queue = append(queue, neighbor)
		}
	}

	return model.collectSet(visited), nil
}

// neighborsOf returns traversal candidates for one class in declaration
// order: targets of its outgoing edges, then sources of edges that
// target it. Declaration-order iteration keeps traversal repeatable.
func (model *Model) neighborsOf(class *Class) []*Class {
	var out []*Class
	for _, edge := range model.RelationshipsFrom(class) {
		out = append(out, edge.Target)
	}

	for _, candidate := range model.Classes() {
		if candidate.Name == class.Name {
			continue
		}

		for _, edge := range model.RelationshipsFrom(candidate) {
			if edge.Target.Name == class.Name {
				out = append(out, candidate)
				break
			}
		}
	}

	return out
}

// fullSet selects every class and every edge without traversal.
func (model *Model) fullSet() *reachableSet {
	visited := make(map[string]struct{}, len(model.Classes()))
	for _, class := range model.Classes() {
		visited[class.Name] = struct{}{}
	}

	return model.collectSet(visited)
}

// collectSet assembles the final set in deterministic order. An edge is
// included only when both endpoints were visited; duplicate edges with
// identical (source, target, label) collapse to one.
func (model *Model) collectSet(visited map[string]struct{}) *reachableSet {
	set := &reachableSet{
		classes: make([]*Class, 0, len(visited)),
	}

	seenEdges := make(map[string]struct{})
	for _, class := range model.Classes() {
		if _, ok := visited[class.Name]; !ok {
			continue
		}

		set.classes = append(set.classes, class)
	}

	for _, class := range set.classes {
		for _, edge := range model.RelationshipsFrom(class) {
			if _, ok := visited[edge.Target.Name]; !ok {
				continue
			}

			key := edge.Source.Name + "\x00" + edge.Target.Name + "\x00" + edge.Label
			if _, ok := seenEdges[key]; ok {
				continue
			}

			seenEdges[key] = struct{}{}
			set.relationships = append(set.relationships, edge)
		}
	}

	return set
}
