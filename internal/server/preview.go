package server

import (
	_ "embed"
	"strings"

	"github.com/yacobolo/cssplay"
)

//go:embed live.js
var liveScript string

// renderPreview builds the bundle for the session with the theme class on
// <body> and the live-update script appended.
func renderPreview(vars []cssplay.StyleVariable, theme cssplay.ThemePreset) string {
	page := cssplay.BundleArtifact(vars).Content

	if theme.StyleClass != "" {
		page = strings.Replace(page, "<body>", `<body class="`+theme.StyleClass+`">`, 1)
	}

	script := "<script>\n" + liveScript + "</script>\n"
	if idx := strings.LastIndex(page, "</body>"); idx >= 0 {
		return page[:idx] + script + page[idx:]
	}
	return page + script
}
