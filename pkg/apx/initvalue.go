package apx

import (
	"fmt"
	"strings"

	"github.com/autoee/apx-go/pkg/swc"
)

// DeriveInitValue turns a foreign constant value into its literal APX
// text form. Integers above 255 are rendered as padded uppercase hex;
// records and arrays are derived element-wise and brace-joined.
func DeriveInitValue(v swc.Value) (string, error) {
	switch v.Kind {
	case swc.ValueInt:
		if v.Int > 255 {
			hex := fmt.Sprintf("%X", v.Int)
			if len(hex)%2 != 0 {
				hex = "0" + hex
			}
			return "0x" + hex, nil
		}
		return fmt.Sprintf("%d", v.Int), nil
	case swc.ValueString:
		return "\"" + v.Str + "\"", nil
	case swc.ValueRecord, swc.ValueArray:
		elems := make([]string, len(v.Elements))
		for i, e := range v.Elements {
			s, err := DeriveInitValue(e)
			if err != nil {
				return "", err
			}
			elems[i] = s
		}
		return "{" + strings.Join(elems, ",") + "}", nil
	default:
		return "", fmt.Errorf("%w: kind %v", ErrUnsupportedConstant, v.Kind)
	}
}
