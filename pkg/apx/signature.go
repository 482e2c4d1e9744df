package apx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TypeCode identifies a scalar signature code.
type TypeCode uint8

const (
	UInt8  TypeCode = iota // 'C'
	UInt16                 // 'S'
	UInt32                 // 'L'
	UInt64                 // 'U'
	Int8                   // 'c'
	Int16                  // 's'
	Int32                  // 'l'
	Int64                  // 'u'
)

// String returns the signature letter for the code.
func (c TypeCode) String() string {
	switch c {
	case UInt8:
		return "C"
	case UInt16:
		return "S"
	case UInt32:
		return "L"
	case UInt64:
		return "U"
	case Int8:
		return "c"
	case Int16:
		return "s"
	case Int32:
		return "l"
	case Int64:
		return "u"
	default:
		return "?"
	}
}

// Signature is the structural encoding of a type's on-wire shape.
// The set of implementations is closed: scalar, ranged, array, string,
// record, type reference and raw text.
type Signature interface {
	// String renders the canonical signature text.
	String() string
	// Clone returns a structurally independent copy.
	Clone() Signature

	sig()
}

// ScalarSig is a bare integer width class (C, S, L, U, c, s, l, u).
type ScalarSig struct {
	Code TypeCode
}

// RangedSig is the 8-bit form carrying exact bounds, e.g. C(0,10).
type RangedSig struct {
	Code TypeCode // UInt8 or Int8
	Min  int64
	Max  int64
}

// ArraySig wraps an integer element signature with an element count.
type ArraySig struct {
	Elem   Signature // ScalarSig or RangedSig
	Length int
}

// StringSig is a string of a declared capacity. One extra slot is
// always reserved for the terminator when rendered.
type StringSig struct {
	Capacity int
}

// RecordField is one named sub-signature of a record.
type RecordField struct {
	Name string
	Sig  Signature
}

// RecordSig is an ordered sequence of named sub-signatures.
type RecordSig struct {
	Fields []RecordField
}

// RefSig points at a data type in the owning node, either by name
// (unresolved) or by arena index (resolved).
type RefSig struct {
	Name     string // set when referencing by name
	ID       int    // arena index; authoritative once Resolved
	Resolved bool
}

// RawSig holds concrete signature text taken verbatim from an APX line.
// The write-side codec never parses it.
type RawSig struct {
	Text string
}

func (s *ScalarSig) sig() {}
func (s *RangedSig) sig() {}
func (s *ArraySig) sig()  {}
func (s *StringSig) sig() {}
func (s *RecordSig) sig() {}
func (s *RefSig) sig()    {}
func (s *RawSig) sig()    {}

func (s *ScalarSig) String() string {
	return s.Code.String()
}

func (s *RangedSig) String() string {
	return fmt.Sprintf("%s(%d,%d)", s.Code, s.Min, s.Max)
}

func (s *ArraySig) String() string {
	return fmt.Sprintf("%s[%d]", s.Elem, s.Length)
}

func (s *StringSig) String() string {
	return fmt.Sprintf("a[%d]", s.Capacity+1)
}

func (s *RecordSig) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for _, f := range s.Fields {
		fmt.Fprintf(&b, "%q%s", f.Name, f.Sig)
	}
	b.WriteByte('}')
	return b.String()
}

func (s *RefSig) String() string {
	if s.Resolved {
		return fmt.Sprintf("T[%d]", s.ID)
	}
	if s.Name != "" {
		return fmt.Sprintf("T[%s]", s.Name)
	}
	return fmt.Sprintf("T[%d]", s.ID)
}

func (s *RawSig) String() string {
	return s.Text
}

func (s *ScalarSig) Clone() Signature {
	c := *s
	return &c
}

func (s *RangedSig) Clone() Signature {
	c := *s
	return &c
}

func (s *ArraySig) Clone() Signature {
	return &ArraySig{Elem: s.Elem.Clone(), Length: s.Length}
}

func (s *StringSig) Clone() Signature {
	c := *s
	return &c
}

func (s *RecordSig) Clone() Signature {
	fields := make([]RecordField, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = RecordField{Name: f.Name, Sig: f.Sig.Clone()}
	}
	return &RecordSig{Fields: fields}
}

func (s *RefSig) Clone() Signature {
	c := *s
	return &c
}

func (s *RawSig) Clone() Signature {
	c := *s
	return &c
}

// ParsePortSignature turns the signature field of an APX text line into
// a Signature. Only the T[...] reference form is interpreted; any other
// text is kept verbatim as a RawSig.
func ParsePortSignature(text string) (Signature, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty signature", ErrInvalidLine)
	}
	if !strings.HasPrefix(text, "T[") {
		return &RawSig{Text: text}, nil
	}
	if !strings.HasSuffix(text, "]") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReference, text)
	}
	inner := text[2 : len(text)-1]
	if inner == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReference, text)
	}
	if id, err := strconv.Atoi(inner); err == nil {
		if id < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidReference, text)
		}
		return &RefSig{ID: id}, nil
	}
	return &RefSig{Name: inner, ID: -1}, nil
}

// IntegerSignature classifies a declared integer value range into the
// smallest signature that can hold it. Unsigned ranges map onto C/S/L/U,
// signed ranges onto c/s/l/u. The 8-bit classes carry exact bounds when
// the range is tighter than the full width.
func IntegerSignature(minVal, maxVal int64) (Signature, error) {
	if minVal >= 0 {
		if maxVal <= 0 {
			return nil, fmt.Errorf("%w: degenerate range [%d,%d]", ErrUnsupportedType, minVal, maxVal)
		}
		bits := uintBitLen(maxVal)
		switch {
		case bits <= 8:
			if minVal > 0 || maxVal < 255 {
				return &RangedSig{Code: UInt8, Min: minVal, Max: maxVal}, nil
			}
			return &ScalarSig{Code: UInt8}, nil
		case bits <= 16:
			return &ScalarSig{Code: UInt16}, nil
		case bits <= 32:
			return &ScalarSig{Code: UInt32}, nil
		case bits <= 64:
			return &ScalarSig{Code: UInt64}, nil
		}
		return nil, fmt.Errorf("%w: range [%d,%d] needs %d bits", ErrUnsupportedType, minVal, maxVal, bits)
	}
	if maxVal == 0 {
		return nil, fmt.Errorf("%w: degenerate range [%d,%d]", ErrUnsupportedType, minVal, maxVal)
	}
	bits := intBitLen(maxVal)
	switch {
	case bits <= 8:
		if minVal > -128 || maxVal < 127 {
			return &RangedSig{Code: Int8, Min: minVal, Max: maxVal}, nil
		}
		return &ScalarSig{Code: Int8}, nil
	case bits <= 16:
		return &ScalarSig{Code: Int16}, nil
	case bits <= 32:
		return &ScalarSig{Code: Int32}, nil
	case bits <= 64:
		return &ScalarSig{Code: Int64}, nil
	}
	return nil, fmt.Errorf("%w: range [%d,%d] needs %d bits", ErrUnsupportedType, minVal, maxVal, bits)
}

// uintBitLen returns the number of bits needed to represent maxVal in
// an unsigned width class.
func uintBitLen(maxVal int64) int {
	return int(math.Ceil(math.Log2(float64(maxVal))))
}

// intBitLen is the signed counterpart of uintBitLen.
func intBitLen(maxVal int64) int {
	return int(math.Ceil(math.Log2(math.Abs(float64(maxVal))))) + 1
}
