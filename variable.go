package cssplay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PropertyPrefix is the prefix every playground custom property carries.
const PropertyPrefix = "--css-"

// Kind selects the input affordance and serialization rule of a variable.
type Kind string

// Variable kinds
const (
	KindColor    Kind = "color"
	KindNumeric  Kind = "number"
	KindText     Kind = "text"
	KindDuration Kind = "time"
)

// ParseKind converts a kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindColor, KindNumeric, KindText, KindDuration:
		return k, nil
	default:
		return "", fmt.Errorf("unknown variable kind %q", s)
	}
}

// Range bounds a numeric variable for input widgets. It is never used when
// serializing.
type Range struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max" validate:"gtefield=Min"`
	Step float64 `json:"step" yaml:"step" validate:"gt=0"`
}

// StyleVariable is one named style variable.
type StyleVariable struct {
	Name      string `json:"name" validate:"required,css_property"`
	Label     string `json:"label" validate:"required"`
	Value     string `json:"value"`
	Kind      Kind   `json:"type" validate:"required,oneof=color number text time"`
	Unit      string `json:"unit,omitempty" validate:"omitempty,max=8"`
	Range     *Range `json:"range,omitempty" validate:"omitempty"`
	Removable bool   `json:"removable"`
}

// CSSValue returns the value as it appears in a declaration. Only numeric
// variables get their unit appended.
func (v StyleVariable) CSSValue() string {
	if v.Kind == KindNumeric {
		return v.Value + v.Unit
	}
	return v.Value
}

// Declaration renders the variable as a custom property declaration.
func (v StyleVariable) Declaration() string {
	return v.Name + ": " + v.CSSValue() + ";"
}

// Errors reported by VariableList mutations.
var (
	ErrIndexOutOfRange = errors.New("variable index out of range")
	ErrBuiltinVariable = errors.New("built-in variables cannot be removed")
	ErrDuplicateName   = errors.New("variable name already in use")
)

// Defaults for variables created by AppendCustom.
const (
	CustomColorValue  = "#6366f1"
	customColorPrefix = PropertyPrefix + "custom-color-"
)

// VariableList is the ordered variable store of a playground session.
// Declaration order follows list order.
type VariableList []StyleVariable

// DefaultVariables returns a fresh copy of the built-in variable set.
func DefaultVariables() VariableList {
	return VariableList{
		{Name: "--css-primary-color", Label: "Primary Color", Value: "#4f46e5", Kind: KindColor},
		{Name: "--css-secondary-color", Label: "Secondary Color", Value: "#ec4899", Kind: KindColor},
		{Name: "--css-accent-color", Label: "Accent Color", Value: "#10b981", Kind: KindColor},
		{Name: "--css-background-color", Label: "Background Color", Value: "#ffffff", Kind: KindColor},
		{Name: "--css-text-color", Label: "Text Color", Value: "#1f2937", Kind: KindColor},
		{Name: "--css-border-radius", Label: "Border Radius", Value: "0.5", Kind: KindNumeric, Unit: "rem", Range: &Range{Min: 0, Max: 2, Step: 0.1}},
		{Name: "--css-spacing", Label: "Spacing", Value: "1", Kind: KindNumeric, Unit: "rem", Range: &Range{Min: 0, Max: 3, Step: 0.25}},
		{Name: "--css-font-size", Label: "Font Size", Value: "1", Kind: KindNumeric, Unit: "rem", Range: &Range{Min: 0.5, Max: 2, Step: 0.1}},
		{Name: "--css-animation-duration", Label: "Animation Duration", Value: "0.3", Kind: KindNumeric, Unit: "s", Range: &Range{Min: 0, Max: 2, Step: 0.1}},
		{Name: "--css-gradient-background", Label: "Gradient Background", Value: "linear-gradient(90deg, #4f46e5, #ec4899)", Kind: KindText},
	}
}

// Clone returns an independent copy of the list.
func (l VariableList) Clone() VariableList {
	out := make(VariableList, len(l))
	for i, v := range l {
		if v.Range != nil {
			r := *v.Range
			v.Range = &r
		}
		out[i] = v
	}
	return out
}

// Index returns the position of the named variable, or -1.
func (l VariableList) Index(name string) int {
	for i, v := range l {
		if v.Name == name {
			return i
		}
	}
	return -1
}

// SetValue replaces the value at index. Kind and unit are left alone; the
// caller keeps them consistent with the value.
func (l *VariableList) SetValue(index int, value string) error {
	if index < 0 || index >= len(*l) {
		return fmt.Errorf("set value at %d: %w", index, ErrIndexOutOfRange)
	}
	(*l)[index].Value = value
	return nil
}

// AppendCustom appends a removable color variable with a generated name and
// returns it. Existing entries are not touched.
func (l *VariableList) AppendCustom() StyleVariable {
	n := len(*l) + 1
	for l.Index(customColorPrefix+strconv.Itoa(n)) >= 0 {
		n++
	}
	v := StyleVariable{
		Name:      customColorPrefix + strconv.Itoa(n),
		Label:     "Custom Color " + strconv.Itoa(n),
		Value:     CustomColorValue,
		Kind:      KindColor,
		Removable: true,
	}
	*l = append(*l, v)
	return v
}

// Append validates v and adds it to the end of the list.
func (l *VariableList) Append(v StyleVariable) error {
	if err := ValidateVariable(v); err != nil {
		return err
	}
	if l.Index(v.Name) >= 0 {
		return fmt.Errorf("append %s: %w", v.Name, ErrDuplicateName)
	}
	*l = append(*l, v)
	return nil
}

// Remove deletes the entry at index. Built-in entries are rejected and the
// list is left unchanged.
func (l *VariableList) Remove(index int) error {
	if index < 0 || index >= len(*l) {
		return fmt.Errorf("remove at %d: %w", index, ErrIndexOutOfRange)
	}
	if !(*l)[index].Removable {
		return fmt.Errorf("remove %s: %w", (*l)[index].Name, ErrBuiltinVariable)
	}
	*l = append((*l)[:index], (*l)[index+1:]...)
	return nil
}

// SetProperty applies an imported declaration to the list and reports
// whether it was applied. Known names are updated. A numeric variable keeps
// its kind only when the value, minus its unit, parses as a number;
// otherwise it becomes a text variable holding the value verbatim. Unknown
// names carrying the playground prefix are appended as removable text
// variables when they validate; anything else is ignored.
func (l *VariableList) SetProperty(name, value string) bool {
	if i := l.Index(name); i >= 0 {
		v := &(*l)[i]
		if v.Kind == KindNumeric {
			number := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), v.Unit))
			if _, err := strconv.ParseFloat(number, 64); err == nil {
				v.Value = number
				return true
			}
			v.Kind = KindText
			v.Unit = ""
			v.Range = nil
		}
		v.Value = value
		return true
	}
	if !strings.HasPrefix(name, PropertyPrefix) {
		return false
	}
	err := l.Append(StyleVariable{
		Name:      name,
		Label:     labelFromName(name),
		Value:     value,
		Kind:      KindText,
		Removable: true,
	})
	return err == nil
}

// labelFromName turns "--css-brand-glow" into "Brand Glow".
func labelFromName(name string) string {
	parts := strings.Split(strings.TrimPrefix(name, PropertyPrefix), "-")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		words = append(words, strings.ToUpper(p[:1])+p[1:])
	}
	if len(words) == 0 {
		return name
	}
	return strings.Join(words, " ")
}

var _ PropertyApplier = (*VariableList)(nil)
