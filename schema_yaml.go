// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/umldiag

package umldiag

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSchemaFile reads a schema definition file and resolves it into a
// Model ready for diagram generation.
func LoadSchemaFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	return LoadSchema(data)
}

// LoadSchema parses schema YAML bytes and resolves them into a Model.
func LoadSchema(data []byte) (*Model, error) {
	schema, err := ParseSchema(data)
	if err != nil {
		return nil, err
	}

	return NewModel(schema)
}

// ParseSchema decodes schema YAML into a Schema value. Decoding walks
// yaml nodes instead of maps: class and field declaration order is
// preserved, which generation output depends on.
func ParseSchema(data []byte) (*Schema, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	root := unwrapDocument(&document)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: schema root must be a mapping", ErrDecodeSchema)
	}

	schema := &Schema{}
	var parseErr error
	eachMappingEntry(root, func(key string, value *yaml.Node) {
		if parseErr != nil {
			return
		}

		switch key {
		case "name":
			schema.Name = scalarValue(value)
		case "description":
			schema.Description = scalarValue(value)
		case "enums":
			schema.Enums, parseErr = parseEnums(value)
		case "classes":
			schema.Classes, parseErr = parseClasses(value)
		}
	})

	if parseErr != nil {
		return nil, parseErr
	}

	if strings.TrimSpace(schema.Name) == "" {
		return nil, ErrSchemaName
	}

	return schema, nil
}

// parseEnums decodes the enums mapping in declaration order.
func parseEnums(node *yaml.Node) ([]*Enum, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: enums must be a mapping", ErrDecodeSchema)
	}

	var out []*Enum
	eachMappingEntry(node, func(name string, value *yaml.Node) {
		enum := &Enum{Name: name}
		if value.Kind == yaml.MappingNode {
			eachMappingEntry(value, func(key string, child *yaml.Node) {
				switch key {
				case "description":
					enum.Description = scalarValue(child)
				case "permissible_values":
					enum.Values = mappingKeysOrSequence(child)
				}
			})
		}

		out = append(out, enum)
	})

	return out, nil
}

// parseClasses decodes the classes mapping in declaration order.
func parseClasses(node *yaml.Node) ([]*Class, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: classes must be a mapping", ErrDecodeSchema)
	}

	var out []*Class
	var parseErr error
	eachMappingEntry(node, func(name string, value *yaml.Node) {
		if parseErr != nil {
			return
		}

		class := &Class{Name: name}
		if value.Kind == yaml.MappingNode {
			eachMappingEntry(value, func(key string, child *yaml.Node) {
				if parseErr != nil {
					return
				}

				switch key {
				case "description":
					class.Description = scalarValue(child)
				case "is_a":
					class.Parent = scalarValue(child)
				case "attributes":
					class.Fields, parseErr = parseFields(name, child)
				}
			})
		}

		out = append(out, class)
	})

	if parseErr != nil {
		return nil, parseErr
	}

	return out, nil
}

// parseFields decodes one class attributes mapping in declaration order.
func parseFields(className string, node *yaml.Node) ([]Field, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: attributes of class %q must be a mapping", ErrDecodeSchema, className)
	}

	var out []Field
	eachMappingEntry(node, func(name string, value *yaml.Node) {
		field := Field{Name: name, Range: "string"}
		if value.Kind == yaml.MappingNode {
			eachMappingEntry(value, func(key string, child *yaml.Node) {
				switch key {
				case "range":
					field.Range = scalarValue(child)
				case "required":
					field.Required = boolValue(child)
				case "multivalued":
					field.Multivalued = boolValue(child)
				case "inlined":
					field.Inlined = boolValue(child)
				}
			})
		}

		out = append(out, field)
	})

	return out, nil
}

// unwrapDocument returns the payload node of a parsed yaml document.
func unwrapDocument(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		return node.Content[0]
	}

	return node
}

// eachMappingEntry visits mapping entries in file declaration order.
func eachMappingEntry(node *yaml.Node, visit func(key string, value *yaml.Node)) {
	for index := 0; index+1 < len(node.Content); index += 2 {
		keyNode := node.Content[index]
		if keyNode.Kind != yaml.ScalarNode {
			continue
		}

		visit(keyNode.Value, node.Content[index+1])
	}
}

// mappingKeysOrSequence accepts either mapping keys or a plain sequence
// of scalars, in declaration order.
func mappingKeysOrSequence(node *yaml.Node) []string {
	var out []string
	switch node.Kind {
	case yaml.MappingNode:
		eachMappingEntry(node, func(key string, _ *yaml.Node) {
			out = append(out, key)
		})
	case yaml.SequenceNode:
		for _, child := range node.Content {
			if child.Kind == yaml.ScalarNode {
				out = append(out, child.Value)
			}
		}
	}

	return out
}

// scalarValue returns the trimmed scalar text of a node.
func scalarValue(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}

	return strings.TrimSpace(node.Value)
}

// boolValue interprets a scalar node as boolean.
func boolValue(node *yaml.Node) bool {
	switch strings.ToLower(scalarValue(node)) {
	case "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}
