package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/yacobolo/cssplay"
)

// styleAttrPattern locates the value of a style attribute in a raw start tag
var styleAttrPattern = regexp.MustCompile(`(?i)\sstyle\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)

// ParseHTML inspects the <style> elements and style attributes of a document
func ParseHTML(path string, content []byte) (*Sheet, error) {
	state := newParserState(newSource(path, content))
	z := html.NewTokenizer(bytes.NewReader(content))

	offset := 0
	inStyle := false
	for {
		tt := z.Next()
		raw := string(z.Raw())
		start := offset
		offset += len(raw)

		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return state.sheet, nil
			}
			return state.sheet, fmt.Errorf("parse %s: %w", path, z.Err())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			inStyle = tt == html.StartTagToken && string(name) == "style"
			state.parseStyleAttr(start, raw)

		case html.EndTagToken:
			inStyle = false

		case html.TextToken:
			if !inStyle {
				continue
			}
			if idx := strings.Index(raw, cssplay.Placeholder); idx >= 0 {
				state.sheet.Placeholders = append(state.sheet.Placeholders, state.src.position(start+idx))
			}
			state.parse(start, raw, false)
		}
	}
}

// parseStyleAttr inspects an inline style attribute of a raw start tag
func (s *parserState) parseStyleAttr(tagOffset int, raw string) {
	m := styleAttrPattern.FindStringSubmatchIndex(raw)
	if m == nil {
		return
	}
	for g := 1; g <= 3; g++ {
		lo, hi := m[2*g], m[2*g+1]
		if lo < 0 {
			continue
		}
		value := html.UnescapeString(raw[lo:hi])
		s.parse(tagOffset+lo, value, true)
		return
	}
}
