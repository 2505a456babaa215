package summarize

import (
	"strings"
	"testing"
)

func TestExtractive_EmptyInput(t *testing.T) {
	e := NewExtractive()
	if got := e.Summarize("", 4); got != "" {
		t.Errorf("empty input should yield empty output, got %q", got)
	}
	if got := e.Summarize("   \n ", 4); got != "" {
		t.Errorf("whitespace input should yield empty output, got %q", got)
	}
}

func TestExtractive_ShortTextPassesThrough(t *testing.T) {
	e := NewExtractive()
	got := e.Summarize("One sentence. Two sentences.", 4)
	if got != "One sentence. Two sentences." {
		t.Errorf("text under the cap should pass through, got %q", got)
	}
}

func TestExtractive_RespectsSentenceCap(t *testing.T) {
	e := NewExtractive()
	text := "Cats sleep a lot. Cats hunt mice at night. Cats purr when content. " +
		"The weather was cloudy. Cats groom themselves daily. Stocks fell sharply."
	got := e.Summarize(text, 2)
	if n := strings.Count(got, "."); n > 2 {
		t.Errorf("expected at most 2 sentences, got %d: %q", n, got)
	}
	if got == "" {
		t.Error("expected non-empty summary")
	}
}

func TestExtractive_KeepsOriginalOrder(t *testing.T) {
	e := NewExtractive()
	text := "Alpha topic sentence one. Filler unrelated words entirely. Alpha topic sentence two. " +
		"More filler nothing shared. Alpha topic sentence three."
	got := e.Summarize(text, 3)
	one := strings.Index(got, "one")
	two := strings.Index(got, "two")
	three := strings.Index(got, "three")
	if one == -1 || two == -1 || three == -1 {
		t.Skipf("summary picked different sentences: %q", got)
	}
	if !(one < two && two < three) {
		t.Errorf("sentences out of original order: %q", got)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"periods", "First. Second. Third.", 3},
		{"mixed enders", "Really? Yes! Sure.", 3},
		{"newlines break", "line one\nline two", 2},
		{"decimal points survive", "Costs 3.50 today.", 1},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitSentences(tt.in); len(got) != tt.want {
				t.Errorf("splitSentences(%q) = %v (%d), want %d parts", tt.in, got, len(got), tt.want)
			}
		})
	}
}
