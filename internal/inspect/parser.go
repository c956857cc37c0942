package inspect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// varReferencePattern matches var(--name) and var(--name, fallback)
var varReferencePattern = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)\s*(,)?`)

// parserState maintains context while parsing one file
type parserState struct {
	src         *source
	sheet       *Sheet
	blocks      []int // Open rule blocks, innermost last
	nextBlock   int
	seenClasses map[string]bool
}

func newParserState(src *source) *parserState {
	return &parserState{
		src: src,
		sheet: &Sheet{
			Path:       src.path,
			Properties: make(map[string]int),
		},
		seenClasses: make(map[string]bool),
	}
}

// ParseCSS parses stylesheet content and returns what it declares and references
func ParseCSS(path string, content []byte) *Sheet {
	state := newParserState(newSource(path, content))
	state.parse(0, string(content), false)
	return state.sheet
}

// parse walks one stylesheet or inline declaration list located at base
// within the file
func (s *parserState) parse(base int, text string, inline bool) {
	p := css.NewParser(parse.NewInputString(text), inline)
	masked := maskComments(text)

	if inline {
		// A style attribute is a block of its own
		s.pushBlock()
		defer s.popBlock()
	}

	for {
		start := p.Offset()
		gt, _, data := p.Next()
		end := p.Offset()
		if end > len(masked) {
			end = len(masked)
		}
		if start > end {
			start = end
		}

		switch gt {
		case css.ErrorGrammar:
			if !p.HasParseError() || end <= start {
				return
			}
			s.sheet.ParseErrors = append(s.sheet.ParseErrors,
				fmt.Sprintf("%s: %v", s.src.path, p.Err()))

		case css.BeginAtRuleGrammar:
			if isKeyframes(string(data)) {
				if name := firstName(p.Values()); name != "" {
					s.sheet.Keyframes = append(s.sheet.Keyframes, name)
				}
			}
			s.pushBlock()

		case css.QualifiedRuleGrammar:
			s.recordClasses(p.Values())

		case css.BeginRulesetGrammar:
			s.recordClasses(p.Values())
			s.pushBlock()

		case css.EndRulesetGrammar, css.EndAtRuleGrammar:
			s.popBlock()

		case css.CustomPropertyGrammar:
			name := string(data)
			value := ""
			if values := p.Values(); len(values) > 0 {
				value = strings.TrimSpace(string(values[0].Data))
			}
			at := start
			if idx := strings.Index(masked[start:end], name); idx >= 0 {
				at += idx
			}
			s.sheet.Declarations = append(s.sheet.Declarations, Declaration{
				Name:  name,
				Value: value,
				Block: s.currentBlock(),
				Pos:   s.src.position(base + at),
			})
			s.recordReferences(base+start, masked[start:end])

		case css.DeclarationGrammar:
			s.sheet.Properties[string(data)]++
			s.recordReferences(base+start, masked[start:end])
		}
	}
}

// recordReferences finds var() usages in a declaration span starting at offset
func (s *parserState) recordReferences(offset int, span string) {
	for _, m := range varReferencePattern.FindAllStringSubmatchIndex(span, -1) {
		s.sheet.References = append(s.sheet.References, Reference{
			Name:     span[m[2]:m[3]],
			Fallback: m[4] >= 0,
			Pos:      s.src.position(offset + m[2]),
		})
	}
}

// recordClasses collects class selectors (".name") from selector tokens
func (s *parserState) recordClasses(tokens []css.Token) {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].TokenType != css.DelimToken || string(tokens[i].Data) != "." {
			continue
		}
		if tokens[i+1].TokenType != css.IdentToken {
			continue
		}
		name := string(tokens[i+1].Data)
		if !s.seenClasses[name] {
			s.seenClasses[name] = true
			s.sheet.Classes = append(s.sheet.Classes, name)
		}
	}
}

func (s *parserState) pushBlock() {
	s.nextBlock++
	s.blocks = append(s.blocks, s.nextBlock)
}

func (s *parserState) popBlock() {
	if len(s.blocks) > 0 {
		s.blocks = s.blocks[:len(s.blocks)-1]
	}
}

// currentBlock returns the innermost open block, 0 at top level
func (s *parserState) currentBlock() int {
	if len(s.blocks) == 0 {
		return 0
	}
	return s.blocks[len(s.blocks)-1]
}

// isKeyframes accepts @keyframes and vendor-prefixed variants
func isKeyframes(atRule string) bool {
	return atRule == "@keyframes" || strings.HasSuffix(atRule, "-keyframes")
}

// firstName returns the first identifier or string in at-rule prelude tokens
func firstName(tokens []css.Token) string {
	for _, t := range tokens {
		switch t.TokenType {
		case css.IdentToken:
			return string(t.Data)
		case css.StringToken:
			return strings.Trim(string(t.Data), `"'`)
		}
	}
	return ""
}
