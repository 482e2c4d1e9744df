package swc

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValueKind enumerates the constant value kinds.
type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueInt
	ValueString
	ValueRecord
	ValueArray
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case ValueInt:
		return "int"
	case ValueString:
		return "string"
	case ValueRecord:
		return "record"
	case ValueArray:
		return "array"
	default:
		return "invalid"
	}
}

// Value is a constant value: an integer, a string, or an ordered
// collection of further values (record or array).
type Value struct {
	Kind     ValueKind
	Int      int64
	Str      string
	Elements []Value
}

// IntValue creates an integer constant value.
func IntValue(i int64) Value {
	return Value{Kind: ValueInt, Int: i}
}

// StringValue creates a string constant value.
func StringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// RecordValue creates a record constant value.
func RecordValue(elements ...Value) Value {
	return Value{Kind: ValueRecord, Elements: elements}
}

// ArrayValue creates an array constant value.
func ArrayValue(elements ...Value) Value {
	return Value{Kind: ValueArray, Elements: elements}
}

// UnmarshalYAML decodes a constant value from its natural YAML shape:
// integer scalar, string scalar, sequence (array) or mapping (record,
// field order preserved).
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!int":
			var i int64
			if err := node.Decode(&i); err != nil {
				return err
			}
			*v = IntValue(i)
			return nil
		case "!!str":
			*v = StringValue(node.Value)
			return nil
		default:
			return fmt.Errorf("line %d: unsupported constant scalar %s", node.Line, node.Tag)
		}
	case yaml.SequenceNode:
		elements := make([]Value, len(node.Content))
		for i, c := range node.Content {
			if err := elements[i].UnmarshalYAML(c); err != nil {
				return err
			}
		}
		*v = Value{Kind: ValueArray, Elements: elements}
		return nil
	case yaml.MappingNode:
		elements := make([]Value, 0, len(node.Content)/2)
		for i := 1; i < len(node.Content); i += 2 {
			var e Value
			if err := e.UnmarshalYAML(node.Content[i]); err != nil {
				return err
			}
			elements = append(elements, e)
		}
		*v = Value{Kind: ValueRecord, Elements: elements}
		return nil
	default:
		return fmt.Errorf("line %d: unsupported constant value", node.Line)
	}
}
