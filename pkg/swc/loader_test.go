package swc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validModel = `
types:
  - name: Speed_T
    kind: integer
    min: 0
    max: 65535
  - name: Label_T
    kind: string
    length: 16
  - name: Pair_T
    kind: record
    fields:
      - name: Speed
        type: Speed_T
      - name: Label
        type: Label_T

interfaces:
  - name: I_Speed
    elements:
      - name: Val
        type: Speed_T

constants:
  - name: C_Init
    value: 0

components:
  - name: Sensor
    provide:
      - name: SpeedOut
        interface: I_Speed
        init: C_Init
  - name: Display
    require:
      - name: SpeedIn
        interface: I_Speed
`

func TestParse_Valid(t *testing.T) {
	ws, err := Parse([]byte(validModel))
	require.NoError(t, err)

	require.Len(t, ws.Components, 2)
	assert.NotNil(t, ws.FindType("Speed_T"))
	assert.NotNil(t, ws.FindInterface("I_Speed"))
	assert.NotNil(t, ws.FindConstant("C_Init"))
	assert.Nil(t, ws.FindType("Missing"))

	sensor := ws.FindComponent("Sensor")
	require.NotNil(t, sensor)
	require.Len(t, sensor.ProvidePorts, 1)

	port := sensor.ProvidePorts[0]
	assert.Equal(t, Provide, port.Direction())
	assert.Same(t, ws, port.Workspace())

	display := ws.FindComponent("Display")
	require.NotNil(t, display)
	assert.Equal(t, Require, display.RequirePorts[0].Direction())

	// interfaces default to sender-receiver
	assert.Equal(t, SenderReceiver, ws.FindInterface("I_Speed").Kind)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		model string
	}{
		{"no components", `
types:
  - name: Speed_T
    kind: integer
`},
		{"unknown kind", `
types:
  - name: Speed_T
    kind: float
components:
  - name: C
`},
		{"duplicate type", `
types:
  - name: Speed_T
    kind: integer
    min: 0
    max: 1
  - name: Speed_T
    kind: boolean
components:
  - name: C
`},
		{"dangling interface ref", `
components:
  - name: C
    require:
      - name: In
        interface: I_Missing
`},
		{"dangling field type", `
types:
  - name: Pair_T
    kind: record
    fields:
      - name: X
        type: Missing_T
components:
  - name: C
`},
		{"dangling init constant", `
types:
  - name: Speed_T
    kind: integer
    min: 0
    max: 1
interfaces:
  - name: I_Speed
    elements:
      - name: Val
        type: Speed_T
components:
  - name: C
    require:
      - name: In
        interface: I_Speed
        init: C_Missing
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.model))
			assert.Error(t, err)
		})
	}
}

func TestValueUnmarshal(t *testing.T) {
	model := `
types:
  - name: Speed_T
    kind: integer
    min: 0
    max: 1
constants:
  - name: C_Int
    value: 42
  - name: C_Str
    value: hello
  - name: C_Arr
    value: [1, 2, 3]
  - name: C_Rec
    value:
      first: 1
      second: two
components:
  - name: C
`
	ws, err := Parse([]byte(model))
	require.NoError(t, err)

	v := ws.FindConstant("C_Int").Value
	assert.Equal(t, ValueInt, v.Kind)
	assert.Equal(t, int64(42), v.Int)

	v = ws.FindConstant("C_Str").Value
	assert.Equal(t, ValueString, v.Kind)
	assert.Equal(t, "hello", v.Str)

	v = ws.FindConstant("C_Arr").Value
	require.Equal(t, ValueArray, v.Kind)
	require.Len(t, v.Elements, 3)
	assert.Equal(t, int64(2), v.Elements[1].Int)

	// record fields keep their declared order
	v = ws.FindConstant("C_Rec").Value
	require.Equal(t, ValueRecord, v.Kind)
	require.Len(t, v.Elements, 2)
	assert.Equal(t, ValueInt, v.Elements[0].Kind)
	assert.Equal(t, ValueString, v.Elements[1].Kind)
	assert.Equal(t, "two", v.Elements[1].Str)
}

func TestValueUnmarshal_UnsupportedScalar(t *testing.T) {
	model := `
constants:
  - name: C_Bool
    value: true
components:
  - name: C
`
	_, err := Parse([]byte(model))
	assert.Error(t, err)
}
