package cssplay

import (
	"context"
	"errors"
	"fmt"
)

// Clipboard writes plain text to a system clipboard. Access can be denied at
// runtime, so callers must expect errors.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// CopyOutcome is the terminal state of a clipboard write.
type CopyOutcome int

const (
	// CopyNotWritten means the clipboard was left untouched.
	CopyNotWritten CopyOutcome = iota
	// CopyWritten means the whole text was written.
	CopyWritten
)

func (o CopyOutcome) String() string {
	if o == CopyWritten {
		return "written"
	}
	return "not written"
}

// CopyResult reports a clipboard write. Err is set only when the outcome is
// CopyNotWritten.
type CopyResult struct {
	Outcome CopyOutcome
	Err     error
}

// OK reports whether the text reached the clipboard.
func (r CopyResult) OK() bool {
	return r.Outcome == CopyWritten
}

// ErrNoClipboard is reported when no clipboard is available.
var ErrNoClipboard = errors.New("clipboard unavailable")

// CopyStylesheet generates the stylesheet for vars and writes it to clip.
// Failures come back in the result; nothing panics and vars are only read.
func CopyStylesheet(ctx context.Context, clip Clipboard, vars []StyleVariable) (res CopyResult) {
	if clip == nil {
		return CopyResult{Outcome: CopyNotWritten, Err: ErrNoClipboard}
	}
	defer func() {
		if r := recover(); r != nil {
			res = CopyResult{Outcome: CopyNotWritten, Err: fmt.Errorf("clipboard write panicked: %v", r)}
		}
	}()

	if err := clip.WriteText(ctx, GenerateStylesheet(vars)); err != nil {
		return CopyResult{Outcome: CopyNotWritten, Err: fmt.Errorf("copy stylesheet: %w", err)}
	}
	return CopyResult{Outcome: CopyWritten}
}

// CopyStylesheetAsync starts CopyStylesheet on its own goroutine and calls
// done exactly once with the result. vars is copied before returning, so
// later edits do not leak into the copy.
func CopyStylesheetAsync(ctx context.Context, clip Clipboard, vars []StyleVariable, done func(CopyResult)) {
	snapshot := VariableList(vars).Clone()
	go func() {
		res := CopyStylesheet(ctx, clip, snapshot)
		if done != nil {
			done(res)
		}
	}()
}
