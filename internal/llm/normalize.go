package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Pure normalizers for provider output. Structured-output operations ask the
// model for a JSON array; these functions attempt the strict parse and
// recover usable strings when the model answers in prose anyway.

var (
	fenceRe     = regexp.MustCompile("```json|```")
	numberingRe = regexp.MustCompile(`^\d+[.)]\s*`)
	tagRe       = regexp.MustCompile(`\b[a-z][a-z0-9-]+\b`)
)

// minLineLen filters headers and chatter out of the line fallback. Real
// prompt variations are longer than this.
const minLineLen = 20

// StripFences removes markdown code-fence markers from raw model output.
func StripFences(raw string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))
}

// ParseStringArray attempts a strict JSON-array parse of raw model output,
// tolerating surrounding code fences.
func ParseStringArray(raw string) ([]string, bool) {
	var out []string
	if err := json.Unmarshal([]byte(StripFences(raw)), &out); err != nil {
		return nil, false
	}
	return out, true
}

// FallbackLines recovers up to count strings from unstructured model output:
// one candidate per line, numbering/bullets and wrapping quotes stripped,
// short lines discarded.
func FallbackLines(raw string, count int) []string {
	result := make([]string, 0, count)
	for _, line := range strings.Split(raw, "\n") {
		line = numberingRe.ReplaceAllString(strings.TrimSpace(line), "")
		line = strings.TrimPrefix(line, "- ")
		line = StripQuotes(line)
		if len(line) <= minLineLen {
			continue
		}
		result = append(result, line)
		if len(result) == count {
			break
		}
	}
	return result
}

// FallbackTags extracts lowercase hyphenated tag tokens from unstructured
// model output, capped at max.
func FallbackTags(raw string, max int) []string {
	tags := tagRe.FindAllString(strings.ToLower(raw), -1)
	if tags == nil {
		return []string{}
	}
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, max)
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
		if len(result) == max {
			break
		}
	}
	return result
}

// StripQuotes removes a single layer of wrapping quote characters.
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range []string{`"`, `'`} {
		if len(s) >= 2 && strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	// Mismatched leading or trailing quote, as models sometimes emit.
	s = strings.TrimLeft(s, `"'`)
	s = strings.TrimRight(s, `"'`)
	return strings.TrimSpace(s)
}

// Truncate bounds text sent to the provider to limit request size.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
