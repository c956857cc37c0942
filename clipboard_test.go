package cssplay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text  string
	err   error
	panic bool
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	if c.panic {
		panic("clipboard backend crashed")
	}
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func TestCopyStylesheet(t *testing.T) {
	vars := DefaultVariables()
	clip := &fakeClipboard{}

	res := CopyStylesheet(context.Background(), clip, vars)
	require.True(t, res.OK())
	require.NoError(t, res.Err)
	assert.Equal(t, CopyWritten, res.Outcome)
	assert.Equal(t, GenerateStylesheet(vars), clip.text)
}

func TestCopyStylesheet_Failures(t *testing.T) {
	denied := errors.New("permission denied")

	tests := []struct {
		name    string
		clip    Clipboard
		wantErr error
	}{
		{name: "no clipboard", clip: nil, wantErr: ErrNoClipboard},
		{name: "denied", clip: &fakeClipboard{err: denied}, wantErr: denied},
		{name: "panicking backend", clip: &fakeClipboard{panic: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := DefaultVariables()
			snapshot := vars.Clone()

			res := CopyStylesheet(context.Background(), tt.clip, vars)
			assert.False(t, res.OK())
			assert.Equal(t, CopyNotWritten, res.Outcome)
			require.Error(t, res.Err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, res.Err, tt.wantErr)
			}
			assert.Equal(t, snapshot, vars)
		})
	}
}

func TestCopyStylesheetAsync(t *testing.T) {
	vars := DefaultVariables()
	want := GenerateStylesheet(vars)
	clip := &fakeClipboard{}

	done := make(chan CopyResult, 1)
	CopyStylesheetAsync(context.Background(), clip, vars, func(r CopyResult) { done <- r })

	// Edits after the call must not reach the clipboard.
	vars[0].Value = "#000000"

	select {
	case res := <-done:
		require.True(t, res.OK())
		assert.Equal(t, want, clip.text)
	case <-time.After(2 * time.Second):
		t.Fatal("copy did not finish")
	}
}

func TestCopyOutcomeString(t *testing.T) {
	assert.Equal(t, "written", CopyWritten.String())
	assert.Equal(t, "not written", CopyNotWritten.String())
}
