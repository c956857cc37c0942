package server

import (
	"errors"
	"fmt"
	"sync"

	"github.com/yacobolo/cssplay"
)

// ErrUnknownTheme is returned when a theme id matches no preset.
var ErrUnknownTheme = errors.New("unknown theme")

// Session is the playground state shared by all HTTP handlers. The variable
// list itself is not safe for concurrent use, so every access goes through
// the session mutex.
type Session struct {
	mu    sync.Mutex
	vars  cssplay.VariableList
	theme cssplay.ThemePreset
}

// NewSession starts a session from vars and the given theme id.
func NewSession(vars cssplay.VariableList, themeID string) (*Session, error) {
	theme, ok := cssplay.LookupTheme(themeID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, themeID)
	}
	return &Session{vars: vars.Clone(), theme: theme}, nil
}

// Snapshot returns a copy of the variables and the active theme.
func (s *Session) Snapshot() (cssplay.VariableList, cssplay.ThemePreset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vars.Clone(), s.theme
}

// SetValue updates the value at index and returns the updated entry.
func (s *Session) SetValue(index int, value string) (cssplay.StyleVariable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.vars.SetValue(index, value); err != nil {
		return cssplay.StyleVariable{}, err
	}
	return s.vars[index], nil
}

// AppendCustom adds a custom color variable.
func (s *Session) AppendCustom() cssplay.StyleVariable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vars.AppendCustom()
}

// Remove deletes the entry at index and returns it.
func (s *Session) Remove(index int) (cssplay.StyleVariable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed cssplay.StyleVariable
	if index >= 0 && index < len(s.vars) {
		removed = s.vars[index]
	}
	if err := s.vars.Remove(index); err != nil {
		return cssplay.StyleVariable{}, err
	}
	return removed, nil
}

// SetTheme activates a preset by id.
func (s *Session) SetTheme(id string) (cssplay.ThemePreset, error) {
	theme, ok := cssplay.LookupTheme(id)
	if !ok {
		return cssplay.ThemePreset{}, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	return theme, nil
}

// ApplyProperty applies an imported declaration to the session variables
// and returns the resulting entry when it was accepted.
func (s *Session) ApplyProperty(name, value string) (cssplay.StyleVariable, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.vars.SetProperty(name, value) {
		return cssplay.StyleVariable{}, false
	}
	return s.vars[s.vars.Index(name)], true
}

// SetProperty applies an imported declaration to the session variables.
func (s *Session) SetProperty(name, value string) bool {
	_, ok := s.ApplyProperty(name, value)
	return ok
}

var _ cssplay.PropertyApplier = (*Session)(nil)
