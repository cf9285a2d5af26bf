// Package extract turns raw per-modality inputs (audio bytes, video bytes,
// text) into fixed-shape feature records. Extraction is deterministic and
// heuristic: the audio/video paths interpolate features from buffer size
// rather than running DSP or computer vision, and the text path is a
// lexicon-based counter. Callers get the same record for the same input,
// every time.
package extract

import "strings"

// Sentiment lexicons. Matching is exact token membership after trimming
// surrounding punctuation.
var (
	positiveWords = wordSet(
		"good", "great", "happy", "joy", "love", "wonderful", "excellent",
		"calm", "glad", "pleased", "relaxed", "fine", "comfortable",
	)
	negativeWords = wordSet(
		"bad", "terrible", "sad", "angry", "hate", "awful", "horrible",
		"fear", "afraid", "worried", "upset", "anxious", "guilty",
	)
)

// Cue word lists. The stress and hesitation lists match by substring
// containment per token; the contradiction, deception and confidence lists
// match by exact token membership. The difference in strictness is
// deliberate: filler cues surface inside inflected words ("stressed",
// "umm"), while discourse markers only count as standalone tokens.
var (
	stressWords = []string{
		"nervous", "anxious", "worried", "stress", "afraid", "scared",
		"panic", "tense", "uncomfortable",
	}
	hesitationWords = []string{"um", "uh", "hmm", "err", "pause"}

	contradictionWords = wordSet("but", "however", "although", "despite", "nevertheless", "yet")
	deceptionWords     = wordSet("maybe", "perhaps", "possibly", "might")
	confidenceWords    = wordSet("definitely", "certainly", "absolutely", "surely")
)

// deceptionPhrases are multi-word hedges that exact token matching misses.
var deceptionPhrases = []string{"not sure"}

// Fusion-time transcript cue lists, substring-matched per token.
var (
	truthWords = []string{"truth", "honest", "certain", "definitely", "sure", "fact"}
	lieWords   = []string{"lie", "lying", "fake", "false", "maybe", "perhaps", "doubt"}
)

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Tokenize lower-cases the text, splits it on whitespace and strips
// surrounding punctuation from each token. Tokens that were pure punctuation
// are dropped.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.Trim(f, ".,!?;:\"'()[]"); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// SentimentRaw returns the signed polarity count for the given tokens:
// positive lexicon hits minus negative lexicon hits.
func SentimentRaw(tokens []string) int {
	pos, neg := PolarityCounts(tokens)
	return pos - neg
}

// PolarityCounts returns the positive and negative lexicon hit counts.
func PolarityCounts(tokens []string) (positive, negative int) {
	for _, t := range tokens {
		if _, ok := positiveWords[t]; ok {
			positive++
		}
		if _, ok := negativeWords[t]; ok {
			negative++
		}
	}
	return positive, negative
}

// CountSubstring counts tokens that contain any word in the list.
func CountSubstring(tokens []string, words []string) int {
	n := 0
	for _, t := range tokens {
		for _, w := range words {
			if strings.Contains(t, w) {
				n++
				break
			}
		}
	}
	return n
}

// CountExact counts tokens that are members of the given word set.
func CountExact(tokens []string, words map[string]struct{}) int {
	n := 0
	for _, t := range tokens {
		if _, ok := words[t]; ok {
			n++
		}
	}
	return n
}

// StressHits counts stress cue hits for a transcript, substring-matched.
func StressHits(tokens []string) int { return CountSubstring(tokens, stressWords) }

// HesitationHits counts hesitation cue hits for a transcript, substring-matched.
func HesitationHits(tokens []string) int { return CountSubstring(tokens, hesitationWords) }

// TruthCueHits counts truth and lie cue hits in a transcript, for the
// fusion engine's lexical adjustment.
func TruthCueHits(tokens []string) (truth, lie int) {
	return CountSubstring(tokens, truthWords), CountSubstring(tokens, lieWords)
}
