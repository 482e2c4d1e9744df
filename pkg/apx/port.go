package apx

import "fmt"

// Port holds the fields shared by require and provide ports. The id
// equals the port's position in its own list at insertion; provide and
// require lists are numbered independently.
type Port struct {
	Name string
	ID   int
	Sig  Signature
	Attr string // optional initial value, e.g. "=255"; "" when absent
}

// RequirePort is an input signal endpoint.
type RequirePort struct {
	Port
}

// ProvidePort is an output signal endpoint.
type ProvidePort struct {
	Port
}

// NewRequirePort creates a require port from the textual form of its
// signature. Only the T[...] reference form is interpreted.
func NewRequirePort(name, sig, attr string) (*RequirePort, error) {
	s, err := ParsePortSignature(sig)
	if err != nil {
		return nil, portError("NewRequirePort", name, err)
	}
	return &RequirePort{Port{Name: name, ID: -1, Sig: s, Attr: attr}}, nil
}

// NewProvidePort creates a provide port from the textual form of its
// signature. Only the T[...] reference form is interpreted.
func NewProvidePort(name, sig, attr string) (*ProvidePort, error) {
	s, err := ParsePortSignature(sig)
	if err != nil {
		return nil, portError("NewProvidePort", name, err)
	}
	return &ProvidePort{Port{Name: name, ID: -1, Sig: s, Attr: attr}}, nil
}

// EntryName returns the port name.
func (p *Port) EntryName() string {
	return p.Name
}

func (p *Port) line(role byte) string {
	if p.Attr != "" {
		return fmt.Sprintf("%c%q%s:%s", role, p.Name, p.Sig, p.Attr)
	}
	return fmt.Sprintf("%c%q%s", role, p.Name, p.Sig)
}

// Line renders the port as one APX text line.
func (p *RequirePort) Line() string {
	return p.line('R')
}

// Line renders the port as one APX text line.
func (p *ProvidePort) Line() string {
	return p.line('P')
}

// Mirror returns the provide-side counterpart of the port, preserving
// name, signature and attribute. The id is reassigned on insertion.
func (p *RequirePort) Mirror() *ProvidePort {
	return &ProvidePort{Port{Name: p.Name, ID: -1, Sig: p.Sig.Clone(), Attr: p.Attr}}
}

// Mirror returns the require-side counterpart of the port, preserving
// name, signature and attribute. The id is reassigned on insertion.
func (p *ProvidePort) Mirror() *RequirePort {
	return &RequirePort{Port{Name: p.Name, ID: -1, Sig: p.Sig.Clone(), Attr: p.Attr}}
}

// resolve binds an unresolved type reference to an arena index.
// Resolving an already-resolved port is a no-op.
func (p *Port) resolve(n *Node) error {
	ref, ok := p.Sig.(*RefSig)
	if !ok || ref.Resolved {
		return nil
	}
	if err := resolveTypeRef(n, ref); err != nil {
		return portError("Resolve", p.Name, err)
	}
	return nil
}

// unresolved reports whether the port still carries an unbound type
// reference.
func (p *Port) unresolved() bool {
	ref, ok := p.Sig.(*RefSig)
	return ok && !ref.Resolved
}
