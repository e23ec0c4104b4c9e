package ocr

import (
	"regexp"
	"strings"
)

// reBoxNoise matches the box-drawing and block glyphs tesseract emits for
// bubble borders and dividers in chat screenshots.
var reBoxNoise = regexp.MustCompile(`[\x{2500}-\x{259F}]+`)

// Normalize cleans raw tesseract output: line endings become \n, border
// noise is dropped, trailing whitespace goes, and runs of blank lines
// collapse to one. Digits and phone punctuation pass through untouched.
func Normalize(txt string) string {
	txt = strings.ReplaceAll(txt, "\r\n", "\n")
	txt = strings.ReplaceAll(txt, "\r", "\n")
	txt = reBoxNoise.ReplaceAllString(txt, " ")

	lines := strings.Split(txt, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, ln := range lines {
		ln = strings.TrimRight(ln, " \t")
		if strings.TrimSpace(ln) == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, ln)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
