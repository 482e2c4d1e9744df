package apx

import "fmt"

// DataType is one entry of a node's type arena. The id equals the arena
// index assigned at insertion and is never reused or renumbered.
type DataType struct {
	Name string
	ID   int
	Sig  Signature
	Attr string // optional, e.g. a VT(...) value table; "" when absent
}

// NewDataType creates a data type that is not yet owned by a node.
// The id is assigned when the type is appended to a node.
func NewDataType(name string, sig Signature, attr string) *DataType {
	return &DataType{Name: name, ID: -1, Sig: sig, Attr: attr}
}

// EntryName returns the type name.
func (t *DataType) EntryName() string {
	return t.Name
}

// Line renders the type as one APX text line.
func (t *DataType) Line() string {
	if t.Attr != "" {
		return fmt.Sprintf("T%q%s:%s", t.Name, t.Sig, t.Attr)
	}
	return fmt.Sprintf("T%q%s", t.Name, t.Sig)
}

// clone returns a structurally independent copy keeping name and id.
func (t *DataType) clone() *DataType {
	return &DataType{Name: t.Name, ID: t.ID, Sig: t.Sig.Clone(), Attr: t.Attr}
}
