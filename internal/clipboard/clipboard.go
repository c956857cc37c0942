// Package clipboard connects the system clipboard to cssplay.CopyStylesheet.
package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/yacobolo/cssplay"
)

// System writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows API).
type System struct {
	write func(string) error
}

// New returns a clipboard backed by the OS, or cssplay.ErrNoClipboard when
// no clipboard utility is available.
func New() (*System, error) {
	if clipboard.Unsupported {
		return nil, cssplay.ErrNoClipboard
	}
	return &System{write: clipboard.WriteAll}, nil
}

// WriteText replaces the clipboard contents with text. The write is not
// cancellable once started; ctx is only checked beforehand.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

var _ cssplay.Clipboard = (*System)(nil)
