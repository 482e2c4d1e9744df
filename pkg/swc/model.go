// Package swc models the foreign software-component description that
// APX nodes are imported from: data types, port interfaces, constants
// and components, grouped in a workspace and loadable from YAML.
package swc

import "fmt"

// TypeKind enumerates the data type kinds the workspace can describe.
type TypeKind string

const (
	TypeBoolean TypeKind = "boolean"
	TypeInteger TypeKind = "integer"
	TypeArray   TypeKind = "array"
	TypeString  TypeKind = "string"
	TypeRecord  TypeKind = "record"
)

// InterfaceKind enumerates the port interface kinds.
type InterfaceKind string

const (
	SenderReceiver InterfaceKind = "sender-receiver"
	ClientServer   InterfaceKind = "client-server"
)

// Direction tells which side of a component a port belongs to.
type Direction uint8

const (
	Provide Direction = iota
	Require
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Provide {
		return "provide"
	}
	return "require"
}

// DataType describes one named type. The kind selects which of the
// remaining fields are meaningful.
type DataType struct {
	Name string   `yaml:"name" validate:"required"`
	Kind TypeKind `yaml:"kind" validate:"required,oneof=boolean integer array string record"`

	// integer bounds; both must be present for a classifiable range
	Min *int64 `yaml:"min"`
	Max *int64 `yaml:"max"`

	// array element type and element count, or string capacity
	ElemRef string `yaml:"element"`
	Length  int    `yaml:"length"`

	// record fields in declared order
	Fields []Field `yaml:"fields" validate:"dive"`

	// optional enumerated text values attached to the type
	ValueTable []string `yaml:"valueTable"`
}

// Field is one named element of a record type.
type Field struct {
	Name    string `yaml:"name" validate:"required"`
	TypeRef string `yaml:"type" validate:"required"`
}

// PortInterface describes the data carried by a port. Only
// sender-receiver interfaces take part in APX import.
type PortInterface struct {
	Name     string        `yaml:"name" validate:"required"`
	Kind     InterfaceKind `yaml:"kind" validate:"omitempty,oneof=sender-receiver client-server"`
	Elements []DataElement `yaml:"elements" validate:"dive"`
}

// DataElement is one typed element of a sender-receiver interface.
type DataElement struct {
	Name    string `yaml:"name" validate:"required"`
	TypeRef string `yaml:"type" validate:"required"`
}

// Constant is a named initial value.
type Constant struct {
	Name  string `yaml:"name" validate:"required"`
	Value Value  `yaml:"value"`
}

// Component is a software component exposing provide and require
// ports.
type Component struct {
	Name         string  `yaml:"name" validate:"required"`
	ProvidePorts []*Port `yaml:"provide" validate:"dive"`
	RequirePorts []*Port `yaml:"require" validate:"dive"`
}

// Port is a signal endpoint of a component. It references a port
// interface and optionally a constant holding its initial value.
type Port struct {
	Name         string `yaml:"name" validate:"required"`
	InterfaceRef string `yaml:"interface" validate:"required"`
	InitValueRef string `yaml:"init"`

	dir Direction
	ws  *Workspace
}

// Direction tells whether the port is on the provide or require side.
func (p *Port) Direction() Direction {
	return p.dir
}

// Workspace returns the workspace the port was loaded into.
func (p *Port) Workspace() *Workspace {
	return p.ws
}

// Workspace is the root of a loaded component model.
type Workspace struct {
	Types      []*DataType      `yaml:"types" validate:"dive"`
	Interfaces []*PortInterface `yaml:"interfaces" validate:"dive"`
	Constants  []*Constant      `yaml:"constants" validate:"dive"`
	Components []*Component     `yaml:"components" validate:"required,min=1,dive"`

	typesByName      map[string]*DataType
	interfacesByName map[string]*PortInterface
	constantsByName  map[string]*Constant
}

// FindType returns the data type with the given name, or nil.
func (w *Workspace) FindType(name string) *DataType {
	return w.typesByName[name]
}

// FindInterface returns the port interface with the given name, or nil.
func (w *Workspace) FindInterface(name string) *PortInterface {
	return w.interfacesByName[name]
}

// FindConstant returns the constant with the given name, or nil.
func (w *Workspace) FindConstant(name string) *Constant {
	return w.constantsByName[name]
}

// FindComponent returns the component with the given name, or nil.
func (w *Workspace) FindComponent(name string) *Component {
	for _, c := range w.Components {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// normalize builds the lookup maps, rejects duplicate names and wires
// port back-references.
func (w *Workspace) normalize() error {
	w.typesByName = make(map[string]*DataType, len(w.Types))
	for _, t := range w.Types {
		if _, dup := w.typesByName[t.Name]; dup {
			return fmt.Errorf("duplicate type %q", t.Name)
		}
		w.typesByName[t.Name] = t
	}
	w.interfacesByName = make(map[string]*PortInterface, len(w.Interfaces))
	for _, i := range w.Interfaces {
		if i.Kind == "" {
			i.Kind = SenderReceiver
		}
		if _, dup := w.interfacesByName[i.Name]; dup {
			return fmt.Errorf("duplicate interface %q", i.Name)
		}
		w.interfacesByName[i.Name] = i
	}
	w.constantsByName = make(map[string]*Constant, len(w.Constants))
	for _, c := range w.Constants {
		if _, dup := w.constantsByName[c.Name]; dup {
			return fmt.Errorf("duplicate constant %q", c.Name)
		}
		w.constantsByName[c.Name] = c
	}
	for _, c := range w.Components {
		for _, p := range c.ProvidePorts {
			p.dir = Provide
			p.ws = w
		}
		for _, p := range c.RequirePorts {
			p.dir = Require
			p.ws = w
		}
	}
	return nil
}

// checkReferences rejects dangling type, interface and constant
// references anywhere in the workspace.
func (w *Workspace) checkReferences() error {
	for _, t := range w.Types {
		switch t.Kind {
		case TypeArray:
			if w.FindType(t.ElemRef) == nil {
				return fmt.Errorf("type %q: unknown element type %q", t.Name, t.ElemRef)
			}
		case TypeRecord:
			for _, f := range t.Fields {
				if w.FindType(f.TypeRef) == nil {
					return fmt.Errorf("type %q: field %q references unknown type %q", t.Name, f.Name, f.TypeRef)
				}
			}
		}
	}
	for _, i := range w.Interfaces {
		for _, e := range i.Elements {
			if w.FindType(e.TypeRef) == nil {
				return fmt.Errorf("interface %q: element %q references unknown type %q", i.Name, e.Name, e.TypeRef)
			}
		}
	}
	for _, c := range w.Components {
		ports := append(append([]*Port{}, c.ProvidePorts...), c.RequirePorts...)
		for _, p := range ports {
			if w.FindInterface(p.InterfaceRef) == nil {
				return fmt.Errorf("component %q: port %q references unknown interface %q", c.Name, p.Name, p.InterfaceRef)
			}
			if p.InitValueRef != "" && w.FindConstant(p.InitValueRef) == nil {
				return fmt.Errorf("component %q: port %q references unknown constant %q", c.Name, p.Name, p.InitValueRef)
			}
		}
	}
	return nil
}
