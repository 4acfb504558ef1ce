package llm

import (
	"strings"
	"testing"
)

func TestParseStringArrayClean(t *testing.T) {
	out, ok := ParseStringArray(`["first prompt", "second prompt"]`)
	if !ok {
		t.Fatal("expected clean JSON array to parse")
	}
	if len(out) != 2 || out[0] != "first prompt" {
		t.Errorf("unexpected parse result: %v", out)
	}
}

func TestParseStringArrayFenced(t *testing.T) {
	raw := "```json\n[\"one prompt here\", \"another prompt here\"]\n```"
	out, ok := ParseStringArray(raw)
	if !ok {
		t.Fatal("expected fenced JSON array to parse")
	}
	if len(out) != 2 {
		t.Errorf("expected 2 entries, got %v", out)
	}
}

func TestParseStringArrayMalformed(t *testing.T) {
	if _, ok := ParseStringArray("Here are your variations:\n1. foo"); ok {
		t.Error("expected prose to fail strict parsing")
	}
	if _, ok := ParseStringArray(`{"not": "an array"}`); ok {
		t.Error("expected JSON object to fail strict parsing")
	}
}

func TestFallbackLines(t *testing.T) {
	raw := `Some variations:
1. Write a detailed code review focusing on performance issues.
2) "Act as a senior engineer reviewing this pull request carefully."
short line
3. Review the following function for readability and correctness.
4. Explain the tradeoffs in this implementation in plain language.`

	out := FallbackLines(raw, 3)
	if len(out) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(out), out)
	}
	for i, line := range out {
		if len(line) <= minLineLen {
			t.Errorf("line %d too short: %q", i, line)
		}
		if strings.HasPrefix(line, "1") || strings.HasPrefix(line, "2") || strings.HasPrefix(line, "3") {
			t.Errorf("line %d kept its numbering: %q", i, line)
		}
		if strings.Contains(line, `"`) {
			t.Errorf("line %d kept wrapping quotes: %q", i, line)
		}
	}
	if out[0] != "Write a detailed code review focusing on performance issues." {
		t.Errorf("unexpected first line: %q", out[0])
	}
}

func TestFallbackLinesFewerThanCount(t *testing.T) {
	out := FallbackLines("only one usable variation line appears in this text", 3)
	if len(out) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(out), out)
	}
}

func TestFallbackTags(t *testing.T) {
	raw := "Sure! Tags: react, code-review, performance, react"
	out := FallbackTags(raw, 6)

	want := map[string]bool{"react": true, "code-review": true, "performance": true}
	for _, tag := range out {
		if tag != strings.ToLower(tag) {
			t.Errorf("tag not lowercase: %q", tag)
		}
	}
	found := 0
	for _, tag := range out {
		if want[tag] {
			found++
		}
	}
	if found < 3 {
		t.Errorf("expected react, code-review, performance in %v", out)
	}

	// Duplicates collapse.
	counts := map[string]int{}
	for _, tag := range out {
		counts[tag]++
	}
	if counts["react"] > 1 {
		t.Errorf("duplicate tag survived: %v", out)
	}
}

func TestFallbackTagsCap(t *testing.T) {
	raw := "alpha beta gamma delta epsilon zeta eta theta"
	out := FallbackTags(raw, 6)
	if len(out) != 6 {
		t.Errorf("expected cap at 6 tags, got %d: %v", len(out), out)
	}
}

func TestFallbackTagsEmpty(t *testing.T) {
	out := FallbackTags("!!! ??? 123", 6)
	if out == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(out) != 0 {
		t.Errorf("expected no tags, got %v", out)
	}
}

func TestStripQuotes(t *testing.T) {
	cases := map[string]string{
		`"Code Review Helper"`: "Code Review Helper",
		`'Code Review Helper'`: "Code Review Helper",
		`Code Review Helper`:   "Code Review Helper",
		`"Unbalanced title`:    "Unbalanced title",
		`  "Padded title"  `:   "Padded title",
	}
	for in, want := range cases {
		if got := StripQuotes(in); got != want {
			t.Errorf("StripQuotes(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 4); got != "abcd" {
		t.Errorf("Truncate() = %q, want %q", got, "abcd")
	}
	if got := Truncate("abc", 4); got != "abc" {
		t.Errorf("Truncate() should leave short strings alone, got %q", got)
	}
}
