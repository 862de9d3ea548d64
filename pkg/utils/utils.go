package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrJSON produces a standard JSON error response.
// An optional raw payload is attached for diagnosing bad model output.
func ErrJSON(msg string, raw ...string) map[string]any {
	out := map[string]any{
		"error": msg,
	}
	if len(raw) > 0 {
		out["raw"] = raw[0]
	}
	return out
}

// LimitStr returns a string truncated to n runes with "..." appended if longer.
func LimitStr(s string, n int) string {
	i := 0
	for count := 0; i < len(s); count++ {
		if count == n {
			return s[:i] + "..."
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s
}

var (
	openingFenceRX = regexp.MustCompile("^```(?:json)?\\s*")
	closingFenceRX = regexp.MustCompile("\\s*```$")
)

// CleanJSON removes a surrounding markdown code fence to extract raw JSON.
// Only a leading ``` (optionally tagged json) and a trailing ``` are stripped;
// fences in the middle of the text are left alone.
func CleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = openingFenceRX.ReplaceAllString(s, "")
	return closingFenceRX.ReplaceAllString(s, "")
}
