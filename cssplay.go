// Package cssplay provides the stylesheet generation and export pipeline
// behind the CSS playground.
//
// A playground session owns an ordered list of style variables. The pipeline
// turns that list into text artifacts:
//
//	vars := cssplay.DefaultVariables()
//	_ = vars.SetValue(0, "#112233")
//	css := cssplay.GenerateStylesheet(vars)
//
// # Exports
//
// Artifacts are handed to a Sink (a directory, an HTTP response, stdout):
//
//	sink := cssplay.DirSink{Dir: "dist"}
//	err := cssplay.ExportBundle(sink, vars)
//
// The bundle is the showcase document from GenerateHTML with the generated
// stylesheet substituted for its placeholder.
//
// # Import
//
// Design payloads ({"variables":[{"name":..., "value":...}]}) are applied
// through a PropertyApplier. *VariableList is one; the preview server's live
// broadcaster is another.
//
// # CLI Tool
//
// Install with:
//
//	go install github.com/yacobolo/cssplay/cmd/cssplay@latest
package cssplay
