package extract

import (
	"testing"

	"truth-analysis-service/internal/analysis"
)

func TestText_Blank(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := Text(text)
		if err == nil {
			t.Errorf("expected error for blank text %q", text)
			continue
		}
		if !analysis.IsMissingInput(err) {
			t.Errorf("expected MissingInputError for %q, got %T: %v", text, err, err)
		}
	}
}

func TestText_BasicCounts(t *testing.T) {
	f, err := Text("I am telling the truth.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.WordCount != 5 {
		t.Errorf("expected word count 5, got %d", f.WordCount)
	}
	if f.SentenceCount != 1 {
		t.Errorf("expected sentence count 1, got %d", f.SentenceCount)
	}
	if f.UniqueWordCount != 5 {
		t.Errorf("expected unique word count 5, got %d", f.UniqueWordCount)
	}
	if f.SentimentRaw != 0 {
		t.Errorf("expected neutral sentiment, got %d", f.SentimentRaw)
	}
	if f.ContradictionWordHits != 0 {
		t.Errorf("expected no contradiction hits, got %d", f.ContradictionWordHits)
	}
	if f.DeceptionWordHits != 0 {
		t.Errorf("expected no deception hits, got %d", f.DeceptionWordHits)
	}
}

func TestText_SentenceCounting(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"unterminated", "no terminator here", 1},
		{"single", "One sentence.", 1},
		{"multiple", "First. Second! Third?", 3},
		{"trailing punctuation only", "Done...", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Text(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.SentenceCount != tt.expected {
				t.Errorf("sentence count for %q = %d, want %d", tt.text, f.SentenceCount, tt.expected)
			}
		})
	}
}

func TestText_Sentiment(t *testing.T) {
	f, err := Text("I feel happy and calm about this.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.SentimentRaw != 2 {
		t.Errorf("expected sentiment +2, got %d", f.SentimentRaw)
	}

	f, err = Text("This is terrible and I feel sad.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.SentimentRaw != -2 {
		t.Errorf("expected sentiment -2, got %d", f.SentimentRaw)
	}
}

func TestText_ContradictionExactMatch(t *testing.T) {
	f, err := Text("He agreed but then refused, yet denied everything.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ContradictionWordHits != 2 {
		t.Errorf("expected 2 contradiction hits (but, yet), got %d", f.ContradictionWordHits)
	}

	// Exact token membership: "butter" must not count as "but".
	f, err = Text("She bought butter and bread.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ContradictionWordHits != 0 {
		t.Errorf("expected no contradiction hits for 'butter', got %d", f.ContradictionWordHits)
	}
}

func TestText_StressSubstringMatch(t *testing.T) {
	// Substring containment: "stressed" carries "stress".
	f, err := Text("I was stressed and nervous all day.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.StressWordHits != 2 {
		t.Errorf("expected 2 stress hits (stressed, nervous), got %d", f.StressWordHits)
	}
}

func TestText_HesitationSubstringMatch(t *testing.T) {
	f, err := Text("Um well it was uh late I think.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.HesitationWordHits != 2 {
		t.Errorf("expected 2 hesitation hits (um, uh), got %d", f.HesitationWordHits)
	}
}

func TestText_DeceptionHedges(t *testing.T) {
	f, err := Text("Maybe it happened, perhaps not, I am not sure.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// maybe + perhaps + the "not sure" phrase
	if f.DeceptionWordHits != 3 {
		t.Errorf("expected 3 deception hits, got %d", f.DeceptionWordHits)
	}
}

func TestText_ConfidenceWords(t *testing.T) {
	f, err := Text("I definitely saw it and I am absolutely certain it was him.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.ConfidenceWordHits != 2 {
		t.Errorf("expected 2 confidence hits (definitely, absolutely), got %d", f.ConfidenceWordHits)
	}
}

func TestText_UniqueWords(t *testing.T) {
	f, err := Text("the the the cat cat sat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.WordCount != 6 {
		t.Errorf("expected word count 6, got %d", f.WordCount)
	}
	if f.UniqueWordCount != 3 {
		t.Errorf("expected unique word count 3, got %d", f.UniqueWordCount)
	}
}

func TestTokenize_CaseFoldingAndPunctuation(t *testing.T) {
	tokens := Tokenize("Hello, WORLD! (indeed)")
	expected := []string{"hello", "world", "indeed"}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok != expected[i] {
			t.Errorf("token %d = %q, want %q", i, tok, expected[i])
		}
	}
}
