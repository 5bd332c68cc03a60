// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/umldiag

package umldiag

import (
	"strings"
)

const (
	// diagramHeader opens every document with fixed style directives.
	diagramHeader = "@startuml\nskinparam nodesep 10\nhide circle\nhide empty members\n"
	// diagramFooter closes every document.
	diagramFooter = "@enduml\n"
	// multivaluedSuffix marks zero-or-more fields in class blocks.
	multivaluedSuffix = "[0..*]"
)

// Options configures one diagram generation call.
type Options struct {
	// Classes restricts the diagram to classes reachable from the named
	// seed set. Empty means the whole model.
	Classes []string
}

// Generate converts a schema model into PlantUML class diagram text.
// Output is deterministic: regenerating from an unchanged model with an
// unchanged scope yields byte-identical text. The result never contains
// markdown code fences.
func Generate(model *Model, opt Options) (string, error) {
	set, err := model.reachable(opt.Classes)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString(diagramHeader)

	for _, class := range set.classes {
		out.WriteString("\n")
		writeClassBlock(&out, model, class)
	}

	if len(set.relationships) > 0 {
		out.WriteString("\n")
		for _, edge := range set.relationships {
			out.WriteString(relationshipLine(edge))
			out.WriteString("\n")
		}
	}

	out.WriteString("\n")
	out.WriteString(diagramFooter)
	return out.String(), nil
}

// writeClassBlock emits one class declaration block. The description is
// embedded as an inline annotation token when non-empty. Class-ranged
// fields are skipped here; they surface as relationship lines only.
func writeClassBlock(out *strings.Builder, model *Model, class *Class) {
	out.WriteString(`class "`)
	out.WriteString(class.Name)
	out.WriteString(`"`)

	if description := sanitizeText(class.Description); description != "" {
		out.WriteString(" [[{")
		out.WriteString(description)
		out.WriteString("}]]")
	}

	out.WriteString(" {\n")
	for _, field := range model.FieldsOf(class) {
		if model.RangeKindOf(field) == RangeClass {
			continue
		}

		out.WriteString(fieldLine(field))
		out.WriteString("\n")
	}

	out.WriteString("}\n")
}

// fieldLine emits one field entry. Enum ranges render the enum name as
// the range token; enumerations are never expanded.
func fieldLine(field Field) string {
	line := "    {field} " + field.Name + " : " + field.Range + "  "
	if field.Multivalued {
		line += multivaluedSuffix
	}

	return line
}

// relationshipLine emits one edge. The arrow glyph encodes composition
// against reference; the cardinality token annotates the target end.
func relationshipLine(edge Relationship) string {
	arrow := "-->"
	if edge.Kind == RelationComposition {
		arrow = "*-->"
	}

	return `"` + edge.Source.Name + `" ` + arrow +
		` "` + edge.Cardinality + `" "` + edge.Target.Name + `" : "` + edge.Label + `"`
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}
