package index

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases and splits", "The Cat SAT", []string{"the", "cat", "sat"}},
		{"collapses whitespace", "  a \t b\n\nc ", []string{"a", "b", "c"}},
		{"keeps punctuation attached", "dogs bark, loudly!", []string{"dogs", "bark,", "loudly!"}},
		{"empty input", "", nil},
		{"whitespace only", "   \n\t ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	in := "Some Mixed CASE text with repeats repeats"
	first := Tokenize(in)
	for i := 0; i < 5; i++ {
		if !reflect.DeepEqual(Tokenize(in), first) {
			t.Fatal("Tokenize is not deterministic")
		}
	}
}
