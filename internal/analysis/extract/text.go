package extract

import (
	"strings"

	"truth-analysis-service/internal/analysis"
	"truth-analysis-service/internal/models"
)

// Text derives lexical and sentiment features from a text. Unlike the audio
// and video extractors there is no default record: blank input is a
// MissingInputError, because text scoring requires real content.
func Text(text string) (models.TextLexicalFeatures, error) {
	if strings.TrimSpace(text) == "" {
		return models.TextLexicalFeatures{}, analysis.NewMissingInput("extractText", "text is empty or whitespace only")
	}

	tokens := Tokenize(text)

	unique := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		unique[t] = struct{}{}
	}

	deceptionHits := CountExact(tokens, deceptionWords)
	lower := strings.ToLower(text)
	for _, p := range deceptionPhrases {
		deceptionHits += strings.Count(lower, p)
	}

	return models.TextLexicalFeatures{
		WordCount:             len(tokens),
		SentenceCount:         sentenceCount(text),
		UniqueWordCount:       len(unique),
		SentimentRaw:          SentimentRaw(tokens),
		StressWordHits:        CountSubstring(tokens, stressWords),
		HesitationWordHits:    CountSubstring(tokens, hesitationWords),
		ContradictionWordHits: CountExact(tokens, contradictionWords),
		DeceptionWordHits:     deceptionHits,
		ConfidenceWordHits:    CountExact(tokens, confidenceWords),
	}, nil
}

// sentenceCount splits on sentence terminators and counts non-blank
// segments. A text with no terminator is a single unterminated sentence,
// which also keeps word/sentence ratios free of zero division.
func sentenceCount(text string) int {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	n := 0
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}
