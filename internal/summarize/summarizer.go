// Package summarize provides extractive summarization: the highest-signal
// sentences of a text, re-emitted in their original order.
package summarize

import (
	"sort"
	"strings"

	"github.com/hoshizora/oboeru/internal/index"
)

// Extractive scores sentences by the frequency of their terms across the
// whole text and keeps the top few. It has no model and no external calls.
type Extractive struct{}

// NewExtractive returns a new summarizer.
func NewExtractive() *Extractive {
	return &Extractive{}
}

// Summarize returns up to maxSentences sentences of text, chosen by
// normalized term-frequency weight and emitted in original order. Empty
// input yields empty output; the sentence cap is an upper bound, not a
// guarantee.
func (e *Extractive) Summarize(text string, maxSentences int) string {
	if strings.TrimSpace(text) == "" || maxSentences <= 0 {
		return ""
	}

	sentences := splitSentences(text)
	if len(sentences) <= maxSentences {
		return strings.Join(sentences, " ")
	}

	freq := make(map[string]int)
	for _, s := range sentences {
		for _, t := range index.Tokenize(s) {
			freq[t]++
		}
	}

	type ranked struct {
		pos   int
		score float64
	}
	scores := make([]ranked, len(sentences))
	for i, s := range sentences {
		tokens := index.Tokenize(s)
		var sum int
		for _, t := range tokens {
			sum += freq[t]
		}
		var score float64
		if len(tokens) > 0 {
			// Length-normalized so long sentences don't win by volume.
			score = float64(sum) / float64(len(tokens))
		}
		scores[i] = ranked{pos: i, score: score}
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	kept := scores[:maxSentences]
	sort.Slice(kept, func(i, j int) bool { return kept[i].pos < kept[j].pos })

	out := make([]string, len(kept))
	for i, r := range kept {
		out[i] = sentences[r.pos]
	}
	return strings.Join(out, " ")
}

// sentenceEnders terminate a sentence when followed by whitespace or EOF.
const sentenceEnders = ".!?"

// splitSentences splits text into trimmed sentences on ., ! and ?
// boundaries. Newlines also break sentences so list-style text summarizes
// reasonably.
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' {
			flush()
			continue
		}
		b.WriteRune(r)
		if strings.ContainsRune(sentenceEnders, r) {
			next := i + 1
			if next >= len(runes) || runes[next] == ' ' || runes[next] == '\t' || runes[next] == '\n' {
				flush()
			}
		}
	}
	flush()
	return sentences
}
