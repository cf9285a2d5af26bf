package score

import (
	"fmt"
	"math"

	"truth-analysis-service/internal/analysis"
	"truth-analysis-service/internal/analysis/extract"
	"truth-analysis-service/internal/models"
)

// Text scores the text modality. Blank input is rejected: unlike voice and
// facial there is no default feature record to fall back on.
func Text(text string) (*models.ModalityScore, error) {
	f, err := extract.Text(text)
	if err != nil {
		return nil, err
	}

	sentiment := analysis.Clamp(50 + float64(f.SentimentRaw)*20)
	complexity := analysis.Clamp(math.Min(float64(f.WordCount)/float64(f.SentenceCount)*8, 100))

	consistency := 0
	if f.WordCount > 0 {
		consistency = analysis.Clamp(float64(f.UniqueWordCount) / float64(f.WordCount) * 100)
	}

	contradiction := analysis.Clamp(100 - float64(f.ContradictionWordHits)*15)
	deception := analysis.Clamp(100 - float64(f.DeceptionWordHits)*10)
	confidenceWords := analysis.Clamp(60 + float64(f.ConfidenceWordHits)*8)

	positive, negative := extract.PolarityCounts(extract.Tokenize(text))
	confidence := 70 + math.Min(float64(len(text))/100, 30)
	if positive > negative {
		confidence += 10
	}

	return &models.ModalityScore{
		Modality: models.ModalityText,
		Scores: map[string]int{
			models.ScoreSentiment:       sentiment,
			models.ScoreConsistency:     consistency,
			models.ScoreComplexity:      complexity,
			models.ScoreContradiction:   contradiction,
			models.ScoreDeception:       deception,
			models.ScoreConfidenceWords: confidenceWords,
		},
		Confidence:     analysis.Clamp(confidence),
		Interpretation: textInterpretation(sentiment, contradiction, deception),
	}, nil
}

func textInterpretation(sentiment, contradiction, deception int) string {
	return fmt.Sprintf("Sentiment is %s, wording is %s, hedging is %s.",
		band(sentiment, 40, 60, "negative", "neutral", "positive"),
		band(contradiction, 40, 70, "contradictory", "somewhat contradictory", "consistent"),
		band(deception, 40, 70, "heavy", "present", "minimal"),
	)
}
