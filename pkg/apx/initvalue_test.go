package apx

import (
	"errors"
	"testing"

	"github.com/autoee/apx-go/pkg/swc"
)

// TestDeriveInitValue tests literal derivation over the constant value union
func TestDeriveInitValue(t *testing.T) {
	tests := []struct {
		name  string
		value swc.Value
		want  string
	}{
		{"small int", swc.IntValue(255), "255"},
		{"zero", swc.IntValue(0), "0"},
		{"negative", swc.IntValue(-1), "-1"},
		{"hex threshold", swc.IntValue(256), "0x0100"},
		{"large hex", swc.IntValue(4294967295), "0xFFFFFFFF"},
		{"string", swc.StringValue("abc"), `"abc"`},
		{"empty string", swc.StringValue(""), `""`},
		{"record", swc.RecordValue(swc.IntValue(1), swc.StringValue("a")), `{1,"a"}`},
		{"array", swc.ArrayValue(swc.IntValue(1), swc.IntValue(2), swc.IntValue(3)), "{1,2,3}"},
		{"nested", swc.RecordValue(swc.IntValue(7), swc.ArrayValue(swc.IntValue(300))), "{7,{0x012C}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveInitValue(tt.value)
			if err != nil {
				t.Fatalf("DeriveInitValue() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DeriveInitValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDeriveInitValue_Unsupported tests that unknown value kinds fail
func TestDeriveInitValue_Unsupported(t *testing.T) {
	if _, err := DeriveInitValue(swc.Value{}); !errors.Is(err, ErrUnsupportedConstant) {
		t.Errorf("DeriveInitValue(invalid) error = %v, want ErrUnsupportedConstant", err)
	}
	// a bad element inside a record propagates the failure
	if _, err := DeriveInitValue(swc.RecordValue(swc.IntValue(1), swc.Value{})); !errors.Is(err, ErrUnsupportedConstant) {
		t.Errorf("DeriveInitValue(record with invalid element) error = %v, want ErrUnsupportedConstant", err)
	}
}
