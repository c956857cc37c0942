package cssplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVariables(t *testing.T) {
	vars := DefaultVariables()
	require.Len(t, vars, 10)

	seen := make(map[string]bool)
	for _, v := range vars {
		assert.False(t, v.Removable, "%s should be built-in", v.Name)
		assert.False(t, seen[v.Name], "duplicate %s", v.Name)
		seen[v.Name] = true
		require.NoError(t, ValidateVariable(v))
	}

	// Each call hands out an independent list.
	other := DefaultVariables()
	other[0].Value = "#000000"
	assert.Equal(t, "#4f46e5", vars[0].Value)
}

func TestVariableList_SetValue(t *testing.T) {
	vars := DefaultVariables()

	require.NoError(t, vars.SetValue(5, "1.25"))
	assert.Equal(t, "1.25", vars[5].Value)
	assert.Equal(t, "rem", vars[5].Unit)

	for _, idx := range []int{-1, len(vars)} {
		err := vars.SetValue(idx, "x")
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestVariableList_AppendCustom(t *testing.T) {
	vars := DefaultVariables()
	before := vars.Clone()

	added := vars.AppendCustom()
	require.Len(t, vars, len(before)+1)
	assert.Equal(t, "--css-custom-color-11", added.Name)
	assert.Equal(t, KindColor, added.Kind)
	assert.Equal(t, CustomColorValue, added.Value)
	assert.True(t, added.Removable)
	assert.Equal(t, before, vars[:len(before)])
	require.NoError(t, ValidateVariable(added))
}

func TestVariableList_AppendCustomStaysUnique(t *testing.T) {
	vars := DefaultVariables()
	first := vars.AppendCustom()  // custom-color-11
	second := vars.AppendCustom() // custom-color-12

	require.NoError(t, vars.Remove(vars.Index(first.Name)))
	third := vars.AppendCustom()

	assert.NotEqual(t, second.Name, third.Name)
	assert.Equal(t, "--css-custom-color-13", third.Name)
}

func TestVariableList_RemoveProtectsBuiltins(t *testing.T) {
	vars := DefaultVariables()
	builtins := len(vars)
	vars.AppendCustom()
	vars.AppendCustom()
	vars.AppendCustom()

	for i := 0; i < builtins; i++ {
		snapshot := vars.Clone()
		err := vars.Remove(i)
		require.ErrorIs(t, err, ErrBuiltinVariable)
		assert.Equal(t, snapshot, vars)
	}

	target := builtins + 1
	following := vars[target+1]
	snapshot := vars.Clone()
	require.NoError(t, vars.Remove(target))
	require.Len(t, vars, len(snapshot)-1)
	assert.Equal(t, following, vars[target])
	assert.Equal(t, snapshot[:target], vars[:target])
	assert.Equal(t, -1, vars.Index(snapshot[target].Name))
}

func TestVariableList_RemoveOutOfRange(t *testing.T) {
	vars := DefaultVariables()
	require.ErrorIs(t, vars.Remove(len(vars)), ErrIndexOutOfRange)
	require.ErrorIs(t, vars.Remove(-3), ErrIndexOutOfRange)
	assert.Len(t, vars, 10)
}

func TestVariableList_Append(t *testing.T) {
	vars := DefaultVariables()

	err := vars.Append(StyleVariable{Name: "--css-brand-glow", Label: "Brand Glow", Value: "0 0 4px red", Kind: KindText, Removable: true})
	require.NoError(t, err)

	err = vars.Append(StyleVariable{Name: "--css-brand-glow", Label: "Again", Kind: KindText})
	require.ErrorIs(t, err, ErrDuplicateName)

	err = vars.Append(StyleVariable{Name: "brand", Label: "No Prefix", Kind: KindText})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "css_property")

	err = vars.Append(StyleVariable{Name: "--css-tone", Label: "Tone", Kind: KindColor, Unit: "px"})
	require.Error(t, err)
}

func TestVariableList_SetProperty(t *testing.T) {
	tests := []struct {
		name        string
		property    string
		value       string
		wantApplied bool
		wantIndex   int
		wantValue   string
		wantKind    Kind
		wantCSS     string
		wantLen     int
	}{
		{
			name:        "updates color",
			property:    "--css-primary-color",
			value:       "#111111",
			wantApplied: true,
			wantIndex:   0,
			wantValue:   "#111111",
			wantKind:    KindColor,
			wantCSS:     "#111111",
			wantLen:     10,
		},
		{
			name:        "strips unit from numeric",
			property:    "--css-spacing",
			value:       "2rem",
			wantApplied: true,
			wantIndex:   6,
			wantValue:   "2",
			wantKind:    KindNumeric,
			wantCSS:     "2rem",
			wantLen:     10,
		},
		{
			name:        "bare number keeps unit",
			property:    "--css-spacing",
			value:       " 1.25 ",
			wantApplied: true,
			wantIndex:   6,
			wantValue:   "1.25",
			wantKind:    KindNumeric,
			wantCSS:     "1.25rem",
			wantLen:     10,
		},
		{
			name:        "foreign unit becomes text",
			property:    "--css-spacing",
			value:       "12px",
			wantApplied: true,
			wantIndex:   6,
			wantValue:   "12px",
			wantKind:    KindText,
			wantCSS:     "12px",
			wantLen:     10,
		},
		{
			name:        "expression becomes text",
			property:    "--css-border-radius",
			value:       "calc(1rem + 2px)",
			wantApplied: true,
			wantIndex:   5,
			wantValue:   "calc(1rem + 2px)",
			wantKind:    KindText,
			wantCSS:     "calc(1rem + 2px)",
			wantLen:     10,
		},
		{
			name:        "appends unknown playground property",
			property:    "--css-brand-glow",
			value:       "0 0 4px red",
			wantApplied: true,
			wantIndex:   10,
			wantValue:   "0 0 4px red",
			wantKind:    KindText,
			wantCSS:     "0 0 4px red",
			wantLen:     11,
		},
		{
			name:      "rejects invalid playground name",
			property:  "--css-Brand",
			value:     "red",
			wantIndex: -1,
			wantLen:   10,
		},
		{
			name:      "ignores foreign property",
			property:  "--other",
			value:     "1",
			wantIndex: -1,
			wantLen:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := DefaultVariables()
			applied := vars.SetProperty(tt.property, tt.value)

			assert.Equal(t, tt.wantApplied, applied)
			require.Len(t, vars, tt.wantLen)
			idx := vars.Index(tt.property)
			require.Equal(t, tt.wantIndex, idx)
			if idx < 0 {
				return
			}
			v := vars[idx]
			assert.Equal(t, tt.wantValue, v.Value)
			assert.Equal(t, tt.wantKind, v.Kind)
			assert.Equal(t, tt.wantCSS, v.CSSValue())
			require.NoError(t, ValidateVariable(v))
		})
	}
}

func TestLabelFromName(t *testing.T) {
	assert.Equal(t, "Brand Glow", labelFromName("--css-brand-glow"))
	assert.Equal(t, "--css-", labelFromName("--css-"))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Number ")
	require.NoError(t, err)
	assert.Equal(t, KindNumeric, k)

	_, err = ParseKind("size")
	require.Error(t, err)
}
