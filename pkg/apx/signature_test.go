package apx

import (
	"errors"
	"testing"
)

// TestIntegerSignature_Unsigned tests width classification of unsigned ranges
func TestIntegerSignature_Unsigned(t *testing.T) {
	tests := []struct {
		name string
		min  int64
		max  int64
		want string
	}{
		{"full 8-bit span", 0, 255, "C"},
		{"tight upper bound", 0, 10, "C(0,10)"},
		{"tight lower bound", 1, 255, "C(1,255)"},
		{"single bit", 0, 1, "C(0,1)"},
		{"power of two stays 8-bit", 0, 256, "C"},
		{"16-bit", 0, 257, "S"},
		{"full 16-bit span", 0, 65535, "S"},
		{"32-bit", 0, 65537, "L"},
		{"full 32-bit span", 0, 4294967295, "L"},
		{"64-bit", 0, 4294967297, "U"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := IntegerSignature(tt.min, tt.max)
			if err != nil {
				t.Fatalf("IntegerSignature(%d,%d) error: %v", tt.min, tt.max, err)
			}
			if got := sig.String(); got != tt.want {
				t.Errorf("IntegerSignature(%d,%d) = %q, want %q", tt.min, tt.max, got, tt.want)
			}
		})
	}
}

// TestIntegerSignature_Signed tests width classification of signed ranges
func TestIntegerSignature_Signed(t *testing.T) {
	tests := []struct {
		name string
		min  int64
		max  int64
		want string
	}{
		{"full 8-bit span", -128, 127, "c"},
		{"tight upper bound", -128, 100, "c(-128,100)"},
		{"tight lower bound", -100, 127, "c(-100,127)"},
		{"negative max", -10, -1, "c(-10,-1)"},
		{"16-bit", -32768, 32767, "s"},
		{"boundary stays 16-bit", -1, 32767, "s"},
		{"32-bit", -2147483648, 2147483647, "l"},
		{"64-bit", -1, 4294967296, "u"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := IntegerSignature(tt.min, tt.max)
			if err != nil {
				t.Fatalf("IntegerSignature(%d,%d) error: %v", tt.min, tt.max, err)
			}
			if got := sig.String(); got != tt.want {
				t.Errorf("IntegerSignature(%d,%d) = %q, want %q", tt.min, tt.max, got, tt.want)
			}
		})
	}
}

// TestIntegerSignature_Degenerate tests that unclassifiable ranges fail
func TestIntegerSignature_Degenerate(t *testing.T) {
	for _, r := range [][2]int64{{0, 0}, {0, -1}, {-5, 0}} {
		if _, err := IntegerSignature(r[0], r[1]); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("IntegerSignature(%d,%d) error = %v, want ErrUnsupportedType", r[0], r[1], err)
		}
	}
}

// TestSignatureString tests canonical rendering of structured signatures
func TestSignatureString(t *testing.T) {
	tests := []struct {
		name string
		sig  Signature
		want string
	}{
		{"scalar", &ScalarSig{Code: UInt16}, "S"},
		{"signed scalar", &ScalarSig{Code: Int32}, "l"},
		{"ranged", &RangedSig{Code: UInt8, Min: 0, Max: 7}, "C(0,7)"},
		{"array", &ArraySig{Elem: &ScalarSig{Code: Int16}, Length: 256}, "s[256]"},
		{"ranged array", &ArraySig{Elem: &RangedSig{Code: UInt8, Min: 0, Max: 10}, Length: 4}, "C(0,10)[4]"},
		{"string reserves terminator", &StringSig{Capacity: 8}, "a[9]"},
		{"record", &RecordSig{Fields: []RecordField{
			{Name: "x", Sig: &ScalarSig{Code: UInt8}},
			{Name: "y", Sig: &StringSig{Capacity: 3}},
		}}, `{"x"C"y"a[4]}`},
		{"nested record", &RecordSig{Fields: []RecordField{
			{Name: "inner", Sig: &RecordSig{Fields: []RecordField{
				{Name: "v", Sig: &ScalarSig{Code: UInt32}},
			}}},
		}}, `{"inner"{"v"L}}`},
		{"resolved reference", &RefSig{ID: 3, Resolved: true}, "T[3]"},
		{"name reference", &RefSig{Name: "Speed_T", ID: -1}, "T[Speed_T]"},
		{"raw", &RawSig{Text: "C(0,3)"}, "C(0,3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sig.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSignatureClone tests that clones are structurally independent
func TestSignatureClone(t *testing.T) {
	orig := &RecordSig{Fields: []RecordField{
		{Name: "a", Sig: &RangedSig{Code: UInt8, Min: 0, Max: 10}},
		{Name: "b", Sig: &ArraySig{Elem: &ScalarSig{Code: UInt16}, Length: 2}},
	}}
	clone := orig.Clone().(*RecordSig)

	clone.Fields[0].Sig.(*RangedSig).Max = 99
	clone.Fields[1].Name = "mutated"

	if got := orig.Fields[0].Sig.String(); got != "C(0,10)" {
		t.Errorf("original field signature changed to %q after clone mutation", got)
	}
	if orig.Fields[1].Name != "b" {
		t.Errorf("original field name changed to %q after clone mutation", orig.Fields[1].Name)
	}
}

// TestParsePortSignature tests reference recognition in signature text
func TestParsePortSignature(t *testing.T) {
	sig, err := ParsePortSignature("T[4]")
	if err != nil {
		t.Fatalf("ParsePortSignature(T[4]) error: %v", err)
	}
	ref, ok := sig.(*RefSig)
	if !ok || ref.ID != 4 || ref.Resolved {
		t.Errorf("ParsePortSignature(T[4]) = %+v, want unresolved id reference 4", sig)
	}

	sig, err = ParsePortSignature("T[Speed_T]")
	if err != nil {
		t.Fatalf("ParsePortSignature(T[Speed_T]) error: %v", err)
	}
	ref, ok = sig.(*RefSig)
	if !ok || ref.Name != "Speed_T" {
		t.Errorf("ParsePortSignature(T[Speed_T]) = %+v, want name reference", sig)
	}

	sig, err = ParsePortSignature("C(0,3)")
	if err != nil {
		t.Fatalf("ParsePortSignature(C(0,3)) error: %v", err)
	}
	if _, ok := sig.(*RawSig); !ok {
		t.Errorf("ParsePortSignature(C(0,3)) = %T, want raw signature", sig)
	}

	for _, bad := range []string{"", "T[", "T[]", "T[-1]"} {
		if _, err := ParsePortSignature(bad); err == nil {
			t.Errorf("ParsePortSignature(%q) succeeded, want error", bad)
		}
	}
}
