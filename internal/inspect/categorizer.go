package inspect

import (
	"sort"
	"strings"
)

// PropertyCategory groups related CSS properties
type PropertyCategory string

// Property categories for summarizing stylesheets
const (
	CategoryVisual     PropertyCategory = "Visual"
	CategoryLayout     PropertyCategory = "Layout"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryInternal   PropertyCategory = "Internal"
	CategoryOther      PropertyCategory = "Other"
)

// categoryOrder is the display order of categories
var categoryOrder = []PropertyCategory{
	CategoryVisual,
	CategoryLayout,
	CategoryTypography,
	CategoryEffects,
	CategoryInternal,
	CategoryOther,
}

// propertyCategories maps CSS property names to categories
var propertyCategories = map[string]PropertyCategory{
	// Visual
	"background":       CategoryVisual,
	"background-color": CategoryVisual,
	"background-image": CategoryVisual,
	"color":            CategoryVisual,
	"border":           CategoryVisual,
	"border-color":     CategoryVisual,
	"border-radius":    CategoryVisual,
	"box-shadow":       CategoryVisual,
	"opacity":          CategoryVisual,
	"outline":          CategoryVisual,
	"fill":             CategoryVisual,
	"stroke":           CategoryVisual,
	"cursor":           CategoryVisual,

	// Layout
	"display":               CategoryLayout,
	"flex":                  CategoryLayout,
	"flex-direction":        CategoryLayout,
	"flex-wrap":             CategoryLayout,
	"justify-content":       CategoryLayout,
	"align-items":           CategoryLayout,
	"gap":                   CategoryLayout,
	"grid":                  CategoryLayout,
	"grid-template-columns": CategoryLayout,
	"position":              CategoryLayout,
	"inset":                 CategoryLayout,
	"top":                   CategoryLayout,
	"right":                 CategoryLayout,
	"bottom":                CategoryLayout,
	"left":                  CategoryLayout,
	"width":                 CategoryLayout,
	"height":                CategoryLayout,
	"min-width":             CategoryLayout,
	"min-height":            CategoryLayout,
	"max-width":             CategoryLayout,
	"max-height":            CategoryLayout,
	"padding":               CategoryLayout,
	"margin":                CategoryLayout,
	"overflow":              CategoryLayout,
	"z-index":               CategoryLayout,
	"aspect-ratio":          CategoryLayout,
	"box-sizing":            CategoryLayout,

	// Typography
	"font":            CategoryTypography,
	"font-family":     CategoryTypography,
	"font-size":       CategoryTypography,
	"font-weight":     CategoryTypography,
	"font-style":      CategoryTypography,
	"line-height":     CategoryTypography,
	"letter-spacing":  CategoryTypography,
	"text-align":      CategoryTypography,
	"text-decoration": CategoryTypography,
	"text-transform":  CategoryTypography,
	"white-space":     CategoryTypography,

	// Effects
	"transition":                CategoryEffects,
	"transform":                 CategoryEffects,
	"transform-origin":          CategoryEffects,
	"animation":                 CategoryEffects,
	"animation-name":            CategoryEffects,
	"animation-duration":        CategoryEffects,
	"animation-timing-function": CategoryEffects,
	"animation-delay":           CategoryEffects,
	"animation-iteration-count": CategoryEffects,
	"filter":                    CategoryEffects,
	"backdrop-filter":           CategoryEffects,
	"mix-blend-mode":            CategoryEffects,
	"clip-path":                 CategoryEffects,
}

// categorizeProperty determines the category of a CSS property
func categorizeProperty(name string) PropertyCategory {
	if cat, exists := propertyCategories[name]; exists {
		return cat
	}

	// Vendor prefixes
	if strings.HasPrefix(name, "-webkit-") ||
		strings.HasPrefix(name, "-moz-") ||
		strings.HasPrefix(name, "-ms-") ||
		strings.HasPrefix(name, "-o-") {
		return CategoryInternal
	}

	switch {
	case strings.HasPrefix(name, "flex-"), strings.HasPrefix(name, "grid-"),
		strings.HasPrefix(name, "padding-"), strings.HasPrefix(name, "margin-"):
		return CategoryLayout
	case strings.HasPrefix(name, "border-"), strings.HasPrefix(name, "background-"),
		strings.HasPrefix(name, "outline-"):
		return CategoryVisual
	case strings.HasPrefix(name, "font-"), strings.HasPrefix(name, "text-"):
		return CategoryTypography
	case strings.HasPrefix(name, "transition-"), strings.HasPrefix(name, "animation-"):
		return CategoryEffects
	}

	return CategoryOther
}

// CategoryCount is one row of a category breakdown
type CategoryCount struct {
	Category PropertyCategory
	Count    int
}

// sortedCategories returns non-empty categories in display order
func sortedCategories(counts map[PropertyCategory]int) []CategoryCount {
	out := make([]CategoryCount, 0, len(counts))
	for _, cat := range categoryOrder {
		if n := counts[cat]; n > 0 {
			out = append(out, CategoryCount{Category: cat, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
