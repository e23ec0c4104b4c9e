// Package scan finds phone-shaped candidates in OCR text.
//
// The scanner is line oriented: noise lines (timestamps, dates, message
// bodies without a long digit run) never reach the pattern matchers, and
// candidates are reported in order of appearance. It deliberately does not
// deduplicate; the pipeline decides what repeated sightings mean.
package scan

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/reconkit/phone-recon/constants"
)

// Candidate is one phone-shaped token found in the text.
type Candidate struct {
	// Raw is the token as found, with surrounding punctuation trimmed.
	Raw string
	// Line is the 1-based line the token was found on.
	Line int
	// Pos is the byte offset of the match within the line.
	Pos int
}

// whatsappPatterns covers chat exports where numbers show up labeled, grouped
// for readability, or jammed together by the OCR pass. Order matters: earlier
// patterns claim their span first.
var whatsappPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:phone|mobile|cell|tel|contact)[\s:]+(\+?\d[\d\s\-().]{7,19})`),
	regexp.MustCompile(`\+\d{1,3}[\s\-]?\(?\d{1,4}\)?[\s\-]?\d{1,4}[\s\-]?\d{1,9}`),
	regexp.MustCompile(`\+?\d{1,3}[\s\-]?\d{3,4}[\s\-]?\d{3,4}[\s\-]?\d{0,4}`),
	regexp.MustCompile(`\(?\d{3}\)?[\s\-.]?\d{3}[\s\-.]?\d{4}`),
	regexp.MustCompile(`\b\d{5}[\s\-]?\d{5,6}\b`),
	regexp.MustCompile(`\b\d{10,12}\b`),
}

// genericPatterns is the conservative set used for SMS, call logs and
// unattributed screenshots.
var genericPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+\d{1,3}[\s\-]?\(?\d{1,4}\)?[\s\-]?\d{1,4}[\s\-]?\d{1,9}`),
	regexp.MustCompile(`\(?\d{3}\)?[\s\-.]?\d{3}[\s\-.]?\d{4}`),
	regexp.MustCompile(`\b\d{10,12}\b`),
}

// Scanner extracts candidates using a source-specific pattern set.
type Scanner struct {
	patterns []*regexp.Regexp
}

// NewScanner picks the pattern set for the given screenshot source.
func NewScanner(source constants.Source) *Scanner {
	switch source {
	case constants.SourceWhatsApp:
		return &Scanner{patterns: whatsappPatterns}
	default:
		return &Scanner{patterns: genericPatterns}
	}
}

// Scan walks the text line by line and returns every candidate in order of
// appearance (top to bottom, left to right). Overlapping matches from
// different patterns collapse into the earliest pattern's span.
func (s *Scanner) Scan(text string) []Candidate {
	var out []Candidate
	for i, line := range strings.Split(text, "\n") {
		out = append(out, s.scanLine(line, i+1)...)
	}
	return out
}

type span struct{ start, end int }

func (s *Scanner) scanLine(line string, lineNo int) []Candidate {
	if digitCount(line) < 7 {
		return nil
	}

	var claimed []span
	var found []Candidate
	for _, re := range s.patterns {
		for _, idx := range re.FindAllStringSubmatchIndex(line, -1) {
			start, end := idx[0], idx[1]
			// labeled patterns capture the number in group 1
			if len(idx) > 3 && idx[2] >= 0 {
				start, end = idx[2], idx[3]
			}
			if overlaps(claimed, start, end) {
				continue
			}
			// a match flanked by more digits is a fragment of a longer run,
			// not a dialable number
			if start > 0 && isDigit(line[start-1]) {
				continue
			}
			if end < len(line) && isDigit(line[end]) {
				continue
			}
			raw := trimCandidate(line[start:end])
			if n := digitCount(raw); n < 7 || n > 15 {
				continue
			}
			claimed = append(claimed, span{start, end})
			found = append(found, Candidate{Raw: raw, Line: lineNo, Pos: start})
		}
	}

	sort.Slice(found, func(a, b int) bool { return found[a].Pos < found[b].Pos })
	return found
}

func overlaps(claimed []span, start, end int) bool {
	for _, c := range claimed {
		if start < c.end && c.start < end {
			return true
		}
	}
	return false
}

// trimCandidate strips the punctuation a match drags in from its edges while
// keeping a leading + and balanced parentheses.
func trimCandidate(s string) string {
	cut := func(r rune) bool {
		return !unicode.IsDigit(r) && r != '+' && r != '(' && r != ')'
	}
	s = strings.TrimFunc(s, cut)
	for strings.HasSuffix(s, ")") && strings.Count(s, ")") > strings.Count(s, "(") {
		s = strings.TrimFunc(strings.TrimSuffix(s, ")"), cut)
	}
	for strings.HasPrefix(s, "(") && strings.Count(s, "(") > strings.Count(s, ")") {
		s = strings.TrimFunc(strings.TrimPrefix(s, "("), cut)
	}
	return s
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
