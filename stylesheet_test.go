package cssplay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStylesheet_Deterministic(t *testing.T) {
	vars := DefaultVariables()
	first := GenerateStylesheet(vars)
	second := GenerateStylesheet(vars)
	require.Equal(t, first, second)
}

func TestGenerateStylesheet_PreservesOrder(t *testing.T) {
	vars := []StyleVariable{
		{Name: "--css-zeta", Value: "1", Kind: KindNumeric, Unit: "px"},
		{Name: "--css-alpha", Value: "#000000", Kind: KindColor},
		{Name: "--css-mid", Value: "none", Kind: KindText},
	}
	css := GenerateStylesheet(vars)

	zeta := strings.Index(css, "--css-zeta:")
	alpha := strings.Index(css, "--css-alpha:")
	mid := strings.Index(css, "--css-mid:")
	require.True(t, zeta >= 0 && alpha >= 0 && mid >= 0)
	assert.Less(t, zeta, alpha)
	assert.Less(t, alpha, mid)
}

func TestGenerateStylesheet_Serialization(t *testing.T) {
	tests := []struct {
		name string
		v    StyleVariable
		want string
	}{
		{
			name: "numeric gets unit",
			v:    StyleVariable{Name: "--css-gap", Value: "0.5", Kind: KindNumeric, Unit: "rem"},
			want: "  --css-gap: 0.5rem;\n",
		},
		{
			name: "numeric without unit",
			v:    StyleVariable{Name: "--css-scale", Value: "2", Kind: KindNumeric},
			want: "  --css-scale: 2;\n",
		},
		{
			name: "color ignores unit",
			v:    StyleVariable{Name: "--css-ink", Value: "#112233", Kind: KindColor, Unit: "rem"},
			want: "  --css-ink: #112233;\n",
		},
		{
			name: "duration is verbatim",
			v:    StyleVariable{Name: "--css-delay", Value: "300ms", Kind: KindDuration},
			want: "  --css-delay: 300ms;\n",
		},
		{
			name: "malformed value is emitted as is",
			v:    StyleVariable{Name: "--css-odd", Value: "}{;", Kind: KindText},
			want: "  --css-odd: }{;;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			css := GenerateStylesheet([]StyleVariable{tt.v})
			assert.Contains(t, css, tt.want)
		})
	}
}

func TestGenerateStylesheet_EmptyList(t *testing.T) {
	css := GenerateStylesheet(nil)

	require.True(t, strings.HasPrefix(css, ":root {\n  --css-transition: "),
		"derived properties must directly follow the opening of :root")
	assert.Contains(t, css, "--css-shadow: ")
	assert.Contains(t, css, "--css-border: ")
	assert.Contains(t, css, "--css-backdrop-filter: blur(10px);")
}

func TestGenerateStylesheet_SectionOrder(t *testing.T) {
	css := GenerateStylesheet(DefaultVariables())

	markers := []string{
		":root {",
		"--css-primary-color: #4f46e5;",
		"--css-transition:",
		"@media (prefers-color-scheme: dark)",
		".preview-button {",
		"@keyframes pulse",
		".animation-pulse {",
		".theme-glassmorphism {",
		".theme-modern {",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(css, m)
		require.GreaterOrEqual(t, idx, 0, "missing %q", m)
		assert.Greater(t, idx, last, "%q out of order", m)
		last = idx
	}
}

func TestGenerateStylesheet_ValueChangeOnlyTouchesDeclaration(t *testing.T) {
	vars := DefaultVariables()
	before := GenerateStylesheet(vars)

	require.NoError(t, vars.SetValue(0, "#abcdef"))
	after := GenerateStylesheet(vars)

	beforeLines := strings.Split(before, "\n")
	afterLines := strings.Split(after, "\n")
	require.Len(t, afterLines, len(beforeLines))

	var diffs []string
	for i := range beforeLines {
		if beforeLines[i] != afterLines[i] {
			diffs = append(diffs, afterLines[i])
		}
	}
	assert.Equal(t, []string{"  --css-primary-color: #abcdef;"}, diffs)
}

func TestGenerateStylesheet_ThemeBlocks(t *testing.T) {
	css := GenerateStylesheet(nil)
	for _, theme := range Themes() {
		if theme.StyleClass == "" {
			continue
		}
		assert.Contains(t, css, "."+theme.StyleClass+" {", "theme %s has no override block", theme.ID)
	}
}
