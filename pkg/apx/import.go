package apx

import (
	"fmt"
	"strings"

	"github.com/autoee/apx-go/pkg/swc"
)

// NewNodeFromComponent builds a node from a foreign software component.
// An empty name keeps the component's own name.
func NewNodeFromComponent(ws *swc.Workspace, comp *swc.Component, name string) (*Node, error) {
	n := NewNode("")
	if err := n.ImportComponent(ws, comp, name); err != nil {
		return nil, err
	}
	return n, nil
}

// ImportComponent converts every port of the component into a node
// port carrying a T[id] reference into the type arena. Provide ports
// are converted before require ports; types are deduplicated by name
// in order of first use.
func (n *Node) ImportComponent(ws *swc.Workspace, comp *swc.Component, name string) error {
	if name == "" {
		n.Name = comp.Name
	} else {
		n.Name = name
	}
	for _, p := range comp.ProvidePorts {
		if _, err := n.importPort(ws, p); err != nil {
			return err
		}
	}
	for _, p := range comp.RequirePorts {
		if _, err := n.importPort(ws, p); err != nil {
			return err
		}
	}
	return nil
}

// importPort converts one foreign port. Ports bound to interfaces the
// codec does not model (non sender-receiver, or sender-receiver without
// data elements) are skipped and yield a nil entry.
func (n *Node) importPort(ws *swc.Workspace, p *swc.Port) (Entry, error) {
	if ws == nil {
		return nil, portError("Import", p.Name, fmt.Errorf("%w: port has no workspace", ErrInvalidReference))
	}
	iface := ws.FindInterface(p.InterfaceRef)
	if iface == nil {
		return nil, portError("Import", p.Name, fmt.Errorf("%w: interface %q", ErrInvalidReference, p.InterfaceRef))
	}
	if iface.Kind != swc.SenderReceiver || len(iface.Elements) == 0 {
		return nil, nil
	}
	if len(iface.Elements) > 1 {
		return nil, portError("Import", p.Name,
			fmt.Errorf("%w: interface %q has %d data elements", ErrUnsupportedPort, iface.Name, len(iface.Elements)))
	}
	elemType := ws.FindType(iface.Elements[0].TypeRef)
	if elemType == nil {
		return nil, portError("Import", p.Name, fmt.Errorf("%w: type %q", ErrInvalidReference, iface.Elements[0].TypeRef))
	}
	dt, err := n.registerType(elemType.Name, func() (Signature, string, error) {
		sig, err := signatureOf(ws, elemType)
		if err != nil {
			return nil, "", err
		}
		return sig, valueTableAttr(elemType), nil
	})
	if err != nil {
		return nil, err
	}
	attr, err := initValueAttr(ws, p)
	if err != nil {
		return nil, err
	}
	ref := &RefSig{ID: dt.ID, Resolved: true}
	if p.Direction() == swc.Require {
		return n.AddRequirePort(&RequirePort{Port{Name: p.Name, ID: -1, Sig: ref, Attr: attr}}), nil
	}
	return n.AddProvidePort(&ProvidePort{Port{Name: p.Name, ID: -1, Sig: ref, Attr: attr}}), nil
}

// signatureOf derives the canonical signature of a foreign data type.
func signatureOf(ws *swc.Workspace, t *swc.DataType) (Signature, error) {
	switch t.Kind {
	case swc.TypeBoolean:
		return &RangedSig{Code: UInt8, Min: 0, Max: 1}, nil
	case swc.TypeInteger:
		return integerSignatureOf(t)
	case swc.TypeArray:
		elem := ws.FindType(t.ElemRef)
		if elem == nil {
			return nil, typeError("Signature", t.Name, fmt.Errorf("%w: element type %q", ErrInvalidReference, t.ElemRef))
		}
		if elem.Kind != swc.TypeInteger {
			return nil, typeError("Signature", t.Name,
				fmt.Errorf("%w: array element kind %q", ErrUnsupportedType, elem.Kind))
		}
		elemSig, err := integerSignatureOf(elem)
		if err != nil {
			return nil, err
		}
		return &ArraySig{Elem: elemSig, Length: t.Length}, nil
	case swc.TypeString:
		return &StringSig{Capacity: t.Length}, nil
	case swc.TypeRecord:
		fields := make([]RecordField, 0, len(t.Fields))
		for _, f := range t.Fields {
			child := ws.FindType(f.TypeRef)
			if child == nil {
				return nil, typeError("Signature", t.Name, fmt.Errorf("%w: field type %q", ErrInvalidReference, f.TypeRef))
			}
			childSig, err := signatureOf(ws, child)
			if err != nil {
				return nil, err
			}
			// _RE marks a redundant element in the source modeling
			// convention; the marker never appears in the signature.
			fields = append(fields, RecordField{Name: strings.TrimSuffix(f.Name, "_RE"), Sig: childSig})
		}
		return &RecordSig{Fields: fields}, nil
	default:
		return nil, typeError("Signature", t.Name, fmt.Errorf("%w: kind %q", ErrUnsupportedType, t.Kind))
	}
}

// integerSignatureOf classifies a foreign integer type's declared
// bounds. Missing bounds cannot be classified.
func integerSignatureOf(t *swc.DataType) (Signature, error) {
	if t.Min == nil || t.Max == nil {
		return nil, typeError("Signature", t.Name, fmt.Errorf("%w: integer bounds missing", ErrUnsupportedType))
	}
	sig, err := IntegerSignature(*t.Min, *t.Max)
	if err != nil {
		return nil, typeError("Signature", t.Name, err)
	}
	return sig, nil
}

// valueTableAttr renders the type's enumerated text values as a
// VT(...) attribute, or "" when the type has none.
func valueTableAttr(t *swc.DataType) string {
	if len(t.ValueTable) == 0 {
		return ""
	}
	quoted := make([]string, len(t.ValueTable))
	for i, v := range t.ValueTable {
		quoted[i] = "\"" + v + "\""
	}
	return "VT(" + strings.Join(quoted, ",") + ")"
}

// initValueAttr derives the "=<literal>" attribute from the port's
// initial value constant, or "" when the port has none.
func initValueAttr(ws *swc.Workspace, p *swc.Port) (string, error) {
	if p.InitValueRef == "" {
		return "", nil
	}
	c := ws.FindConstant(p.InitValueRef)
	if c == nil {
		return "", portError("Import", p.Name, fmt.Errorf("%w: init value %q", ErrInvalidReference, p.InitValueRef))
	}
	v, err := DeriveInitValue(c.Value)
	if err != nil {
		return "", portError("Import", p.Name, err)
	}
	return "=" + v, nil
}
