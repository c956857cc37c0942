package cssplay

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Export filenames and content types.
const (
	StylesheetFilename = "styles.css"
	MarkupFilename     = "index.html"
	BundleFilename     = "playground-export.html"
	DesignFilename     = "playground-design.json"

	ContentTypeCSS  = "text/css"
	ContentTypeHTML = "text/html"
	ContentTypeJSON = "application/json"
)

// Artifact is one downloadable export.
type Artifact struct {
	Filename    string
	ContentType string
	Content     string
}

// Sink receives finished artifacts: a browser download, a directory, a
// terminal.
type Sink interface {
	Write(a Artifact) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(a Artifact) error

// Write calls f(a).
func (f SinkFunc) Write(a Artifact) error {
	return f(a)
}

// StylesheetArtifact wraps GenerateStylesheet(vars) as styles.css.
func StylesheetArtifact(vars []StyleVariable) Artifact {
	return Artifact{
		Filename:    StylesheetFilename,
		ContentType: ContentTypeCSS,
		Content:     GenerateStylesheet(vars),
	}
}

// MarkupArtifact wraps GenerateHTML() as index.html.
func MarkupArtifact() Artifact {
	return Artifact{
		Filename:    MarkupFilename,
		ContentType: ContentTypeHTML,
		Content:     GenerateHTML(),
	}
}

// BundleArtifact merges the stylesheet into the showcase document.
func BundleArtifact(vars []StyleVariable) Artifact {
	return Artifact{
		Filename:    BundleFilename,
		ContentType: ContentTypeHTML,
		Content:     MergeBundle(GenerateHTML(), GenerateStylesheet(vars)),
	}
}

// ExportStylesheet writes styles.css to sink.
func ExportStylesheet(sink Sink, vars []StyleVariable) error {
	return writeArtifact(sink, StylesheetArtifact(vars))
}

// ExportMarkup writes index.html to sink.
func ExportMarkup(sink Sink) error {
	return writeArtifact(sink, MarkupArtifact())
}

// ExportBundle writes playground-export.html to sink.
func ExportBundle(sink Sink, vars []StyleVariable) error {
	return writeArtifact(sink, BundleArtifact(vars))
}

func writeArtifact(sink Sink, a Artifact) error {
	if err := sink.Write(a); err != nil {
		return fmt.Errorf("export %s: %w", a.Filename, err)
	}
	return nil
}

// DirSink writes artifacts as files under Dir, creating it when missing.
type DirSink struct {
	Dir string
}

// Write stores a under its filename.
func (s DirSink) Write(a Artifact) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(s.Dir, a.Filename)
	// #nosec G306 - exported artifacts are meant to be shared
	if err := os.WriteFile(path, []byte(a.Content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriterSink streams artifact content to W, ignoring filenames.
type WriterSink struct {
	W io.Writer
}

// Write copies the content to the writer.
func (s WriterSink) Write(a Artifact) error {
	_, err := io.WriteString(s.W, a.Content)
	return err
}
