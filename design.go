package cssplay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PropertyApplier receives custom property updates and reports whether each
// one was applied. The live preview and *VariableList implement it; the
// import path never touches a rendering environment directly.
type PropertyApplier interface {
	SetProperty(name, value string) bool
}

// ApplierFunc adapts a function to PropertyApplier.
type ApplierFunc func(name, value string) bool

// SetProperty calls f(name, value).
func (f ApplierFunc) SetProperty(name, value string) bool {
	return f(name, value)
}

// ErrMalformedDesign is returned when a design payload cannot be used as a
// whole. No updates are applied in that case.
var ErrMalformedDesign = errors.New("malformed design payload")

// Design is the serialized form of a playground session.
type Design struct {
	Theme     string          `json:"theme,omitempty" yaml:"theme,omitempty"`
	Variables []StyleVariable `json:"variables" yaml:"variables"`
}

// DesignArtifact serializes vars and the active theme as an import payload.
func DesignArtifact(vars []StyleVariable, themeID string) (Artifact, error) {
	data, err := json.MarshalIndent(Design{Theme: themeID, Variables: vars}, "", "  ")
	if err != nil {
		return Artifact{}, fmt.Errorf("encode design: %w", err)
	}
	return Artifact{
		Filename:    DesignFilename,
		ContentType: ContentTypeJSON,
		Content:     string(data) + "\n",
	}, nil
}

// ExportDesign writes playground-design.json to sink.
func ExportDesign(sink Sink, vars []StyleVariable, themeID string) error {
	a, err := DesignArtifact(vars, themeID)
	if err != nil {
		return err
	}
	return writeArtifact(sink, a)
}

// ImportDesign applies the variables of a JSON design payload to applier and
// returns how many updates the applier accepted.
//
// The payload must parse as a whole and carry a "variables" array, otherwise
// ErrMalformedDesign is returned before anything is applied. Entries without
// a non-empty name and value are skipped silently.
func ImportDesign(payload []byte, applier PropertyApplier) (int, error) {
	var raw struct {
		Variables json.RawMessage `json:"variables"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedDesign, err)
	}
	if len(raw.Variables) == 0 || string(raw.Variables) == "null" {
		return 0, fmt.Errorf("%w: missing variables", ErrMalformedDesign)
	}
	var entries []any
	dec := json.NewDecoder(bytes.NewReader(raw.Variables))
	dec.UseNumber()
	if err := dec.Decode(&entries); err != nil {
		return 0, fmt.Errorf("%w: variables must be a list: %v", ErrMalformedDesign, err)
	}
	return applyEntries(entries, applier), nil
}

// LoadDesign reads a design file and applies it to applier. YAML files are
// decoded into the same shape as JSON payloads.
func LoadDesign(path string, applier PropertyApplier) (int, error) {
	// #nosec G304 - path comes from the user's command line or config
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read design: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedDesign, err)
		}
		entries, ok := doc["variables"].([]any)
		if !ok {
			return 0, fmt.Errorf("%w: missing variables", ErrMalformedDesign)
		}
		return applyEntries(entries, applier), nil
	default:
		return ImportDesign(data, applier)
	}
}

// ReadDesignTheme returns the theme id stored in a design payload, if any.
func ReadDesignTheme(payload []byte) string {
	var d struct {
		Theme string `json:"theme"`
	}
	if err := json.Unmarshal(payload, &d); err != nil {
		return ""
	}
	return d.Theme
}

func applyEntries(entries []any, applier PropertyApplier) int {
	applied := 0
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		name := scalarText(entry["name"])
		value := scalarText(entry["value"])
		if name == "" || value == "" {
			continue
		}
		if applier.SetProperty(name, value) {
			applied++
		}
	}
	return applied
}

// scalarText renders a decoded JSON/YAML scalar as property text. Numbers
// keep their literal form; other types count as absent.
func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
