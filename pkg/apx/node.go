// Package apx implements the APX node model: a canonical textual
// description of a software component's typed signal ports, imported
// from a foreign component model and serializable line by line.
package apx

import (
	"fmt"
	"io"

	"github.com/autoee/apx-go/pkg/swc"
)

// Entry is anything a node can hold and look up by name: a data type,
// a require port or a provide port.
type Entry interface {
	EntryName() string
}

// Node is a named collection of data types and ports describing one
// side of a signal interface.
//
// Data types live in an append-only arena; a type's id is its arena
// index and stays stable for the lifetime of the node. Provide and
// require ports are numbered independently the same way.
type Node struct {
	Name         string
	DataTypes    []*DataType
	ProvidePorts []*ProvidePort
	RequirePorts []*RequirePort

	typeIndex map[string]int // type name -> arena index
}

// NewNode creates an empty node.
func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		typeIndex: make(map[string]int),
	}
}

// AppendType adds a data type to the arena and assigns its id.
// A duplicate name is an error: the caller did not ask for dedup.
func (n *Node) AppendType(t *DataType) (*DataType, error) {
	if _, exists := n.typeIndex[t.Name]; exists {
		return nil, typeError("AppendType", t.Name, ErrTypeExists)
	}
	if ref, ok := t.Sig.(*RefSig); ok && !ref.Resolved {
		if err := resolveTypeRef(n, ref); err != nil {
			return nil, typeError("AppendType", t.Name, err)
		}
	}
	t.ID = len(n.DataTypes)
	n.typeIndex[t.Name] = t.ID
	n.DataTypes = append(n.DataTypes, t)
	return t, nil
}

// registerType is the dedup entry point used by the importer. If a type
// of that name already exists the existing instance is returned
// unchanged; otherwise the signature is built and the type appended.
func (n *Node) registerType(name string, build func() (Signature, string, error)) (*DataType, error) {
	if idx, ok := n.typeIndex[name]; ok {
		return n.DataTypes[idx], nil
	}
	sig, attr, err := build()
	if err != nil {
		return nil, err
	}
	return n.AppendType(NewDataType(name, sig, attr))
}

// AddRequirePort appends a require port and assigns its id. A type
// reference that cannot be bound yet stays unresolved until
// ResolveReferences is called.
func (n *Node) AddRequirePort(p *RequirePort) *RequirePort {
	p.ID = len(n.RequirePorts)
	if p.unresolved() {
		_ = p.resolve(n) // deferred to ResolveReferences on failure
	}
	n.RequirePorts = append(n.RequirePorts, p)
	return p
}

// AddProvidePort appends a provide port and assigns its id. A type
// reference that cannot be bound yet stays unresolved until
// ResolveReferences is called.
func (n *Node) AddProvidePort(p *ProvidePort) *ProvidePort {
	p.ID = len(n.ProvidePorts)
	if p.unresolved() {
		_ = p.resolve(n)
	}
	n.ProvidePorts = append(n.ProvidePorts, p)
	return p
}

// Append adds an item to the node. The item can be a *DataType, a
// *RequirePort, a *ProvidePort, a foreign *swc.Port or a raw APX text
// line. It returns the appended entry.
func (n *Node) Append(item any) (Entry, error) {
	switch v := item.(type) {
	case *DataType:
		return n.AppendType(v)
	case *RequirePort:
		return n.AddRequirePort(v), nil
	case *ProvidePort:
		return n.AddProvidePort(v), nil
	case *swc.Port:
		return n.importPort(v.Workspace(), v)
	case string:
		return n.appendLine(v)
	default:
		return nil, &Error{Op: "Append", Entity: "item", Cause: fmt.Errorf("unsupported item type %T", item)}
	}
}

// appendLine parses one APX text line and appends the port it declares.
func (n *Node) appendLine(line string) (Entry, error) {
	parts, err := SplitLine(line)
	if err != nil {
		return nil, err
	}
	switch parts[0] {
	case "R":
		p, err := NewRequirePort(parts[1], parts[2], parts[3])
		if err != nil {
			return nil, err
		}
		return n.AddRequirePort(p), nil
	case "P":
		p, err := NewProvidePort(parts[1], parts[2], parts[3])
		if err != nil {
			return nil, err
		}
		return n.AddProvidePort(p), nil
	default:
		return nil, lineError("Append", fmt.Errorf("%w: unknown role marker %q", ErrInvalidLine, parts[0]))
	}
}

// Lines returns the node as APX text, one line per entry: header, data
// types in arena order, provide ports, require ports. The ordering is a
// compatibility contract for consumers of the textual form.
func (n *Node) Lines() []string {
	lines := make([]string, 0, 1+len(n.DataTypes)+len(n.ProvidePorts)+len(n.RequirePorts))
	lines = append(lines, fmt.Sprintf("N%q", n.Name))
	for _, t := range n.DataTypes {
		lines = append(lines, t.Line())
	}
	for _, p := range n.ProvidePorts {
		lines = append(lines, p.Line())
	}
	for _, p := range n.RequirePorts {
		lines = append(lines, p.Line())
	}
	return lines
}

// Write writes the node as APX text to w.
func (n *Node) Write(w io.Writer) error {
	for _, line := range n.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Mirror returns a structurally independent node with provide and
// require roles swapped. Data types are deep-copied so that mutating
// one node never affects the other; port ids are reassigned by position
// in the new lists. An empty name keeps the source node's name.
func (n *Node) Mirror(name string) *Node {
	if name == "" {
		name = n.Name
	}
	m := NewNode(name)
	for _, t := range n.DataTypes {
		c := t.clone()
		m.typeIndex[c.Name] = c.ID
		m.DataTypes = append(m.DataTypes, c)
	}
	for _, p := range n.ProvidePorts {
		m.AddRequirePort(p.Mirror())
	}
	for _, p := range n.RequirePorts {
		m.AddProvidePort(p.Mirror())
	}
	return m
}

// Find returns the first entry with the given name, scanning data
// types, then require ports, then provide ports. It returns nil when
// nothing matches.
func (n *Node) Find(name string) Entry {
	for _, t := range n.DataTypes {
		if t.Name == name {
			return t
		}
	}
	for _, p := range n.RequirePorts {
		if p.Name == name {
			return p
		}
	}
	for _, p := range n.ProvidePorts {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FindAll looks up several names at once. Missing names yield nil
// entries at the matching positions.
func (n *Node) FindAll(names []string) []Entry {
	result := make([]Entry, len(names))
	for i, name := range names {
		result[i] = n.Find(name)
	}
	return result
}

// ResolveReferences binds every port whose signature is still an
// unresolved type reference. Used after bulk construction from text.
func (n *Node) ResolveReferences() error {
	for _, p := range n.RequirePorts {
		if err := p.resolve(n); err != nil {
			return err
		}
	}
	for _, p := range n.ProvidePorts {
		if err := p.resolve(n); err != nil {
			return err
		}
	}
	return nil
}

// resolveTypeRef binds a reference inside a data type signature against
// the arena built so far.
func resolveTypeRef(n *Node, ref *RefSig) error {
	if ref.Resolved {
		return nil
	}
	if ref.Name != "" {
		idx, ok := n.typeIndex[ref.Name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrTypeNotFound, ref.Name)
		}
		ref.ID = idx
		ref.Resolved = true
		return nil
	}
	if ref.ID < 0 || ref.ID >= len(n.DataTypes) {
		return fmt.Errorf("%w: T[%d] out of range", ErrInvalidReference, ref.ID)
	}
	ref.Resolved = true
	return nil
}
