package inspect

import (
	"sort"
	"strings"
)

// source maps byte offsets of a file to 1-based line/column positions
type source struct {
	path       string
	content    string
	lineStarts []int
}

func newSource(path string, content []byte) *source {
	s := &source{path: path, content: string(content), lineStarts: []int{0}}
	for i := 0; i < len(s.content); i++ {
		if s.content[i] == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

// position converts a byte offset into a Position
func (s *source) position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.content) {
		offset = len(s.content)
	}
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1

	start := s.lineStarts[line]
	end := len(s.content)
	if line+1 < len(s.lineStarts) {
		end = s.lineStarts[line+1]
	}
	text := strings.TrimRight(s.content[start:end], "\r\n")

	return Position{
		File:   s.path,
		Line:   line + 1,
		Column: offset - start + 1,
		Text:   text,
	}
}

// maskComments blanks /* ... */ comments while keeping offsets intact
func maskComments(s string) string {
	if !strings.Contains(s, "/*") {
		return s
	}
	b := []byte(s)
	for i := 0; i+1 < len(b); i++ {
		if b[i] != '/' || b[i+1] != '*' {
			continue
		}
		end := strings.Index(s[i+2:], "*/")
		stop := len(b)
		if end >= 0 {
			stop = i + 2 + end + 2
		}
		for j := i; j < stop; j++ {
			if b[j] != '\n' {
				b[j] = ' '
			}
		}
		i = stop - 1
	}
	return string(b)
}
