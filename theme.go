package cssplay

// ThemePreset is a named bundle of overrides activated by putting StyleClass
// on an ancestor of the previewed components. The override rules themselves
// are part of the generated stylesheet.
type ThemePreset struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	StyleClass  string `json:"styleClass"`
}

// DefaultThemeID is the preset with no override class.
const DefaultThemeID = "default"

var themes = []ThemePreset{
	{
		ID:          DefaultThemeID,
		Label:       "Default",
		Description: "Clean and minimal design with modern aesthetics",
	},
	{
		ID:          "glassmorphism",
		Label:       "Glassmorphism",
		Description: "Transparent, blurred glass effect with elegant borders",
		StyleClass:  "theme-glassmorphism",
	},
	{
		ID:          "neumorphism",
		Label:       "Neumorphism",
		Description: "Soft UI with subtle shadows and highlights",
		StyleClass:  "theme-neumorphism",
	},
	{
		ID:          "brutalist",
		Label:       "Brutalist",
		Description: "Bold, raw design with sharp edges and high contrast",
		StyleClass:  "theme-brutalist",
	},
	{
		ID:          "modern",
		Label:       "Modern",
		Description: "Contemporary design with smooth gradients and refined interactions",
		StyleClass:  "theme-modern",
	},
}

// Themes returns the known presets in display order.
func Themes() []ThemePreset {
	out := make([]ThemePreset, len(themes))
	copy(out, themes)
	return out
}

// LookupTheme finds a preset by id.
func LookupTheme(id string) (ThemePreset, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return ThemePreset{}, false
}
