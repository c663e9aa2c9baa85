package review

import (
	"regexp"
	"strings"
)

// notAvailable fills fields the model response did not label
const notAvailable = "N/A"

var codeBlockPattern = regexp.MustCompile("(?s)```" + codeLanguage + "(.*?)```")

// ParseResponse extracts a Result from free-form model output:
//   - the first ```python fenced block becomes Code, otherwise originalCode is kept
//   - the last line starting with "positive" (case-insensitive) sets Positive
//   - the last line containing "why" (case-insensitive) sets Why
//
// Labeled values are the text after the first colon, or the whole line when there is none.
func ParseResponse(text, originalCode string) Result {
	text = strings.TrimSpace(text)

	code := originalCode
	if m := codeBlockPattern.FindStringSubmatch(text); m != nil {
		code = strings.TrimSpace(m[1])
	}

	positive, why := notAvailable, notAvailable
	for _, line := range splitLines(text) {
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "positive") {
			positive = afterFirstColon(line)
		}
		if strings.Contains(lower, "why") {
			why = afterFirstColon(line)
		}
	}

	return Result{
		Positive: positive,
		Why:      withReference(why),
		Code:     code,
	}
}

func afterFirstColon(line string) string {
	if _, after, found := strings.Cut(line, ":"); found {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(line)
}

// splitLines breaks text at the same boundaries as Python's str.splitlines:
// \r\n, \n, \r, \v, \f, \x1c-\x1e, \x85, U+2028 and U+2029.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.FieldsFunc(text, isLineBreak)
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
