package fusion

import (
	"math"
	"strings"

	"truth-analysis-service/internal/analysis"
	"truth-analysis-service/internal/analysis/extract"
	"truth-analysis-service/internal/models"
)

// Interpretation bands, thresholded on the final truthfulness score.
// Bands are half-open on the upper threshold: a score of exactly 80 falls
// into the second band, not the first.
const (
	bandVeryHigh = "High truthfulness indicators with strong consistency across modalities."
	bandHigh     = "Moderate-to-high truthfulness with minor inconsistencies."
	bandMixed    = "Mixed signals; moderate truthfulness indicators."
	bandLow      = "Low truthfulness indicators; potential deception signals."
	bandVeryLow  = "Very low truthfulness; strong deception signals across modalities."
)

// Transcript blend constants: with a transcript present, the weighted score
// is blended with a length-derived factor and nudged by truth/lie cue hits.
const (
	transcriptBlendWeight = 0.8
	transcriptLengthScale = 200.0
	lexicalAdjustScale    = 15.0
)

// Fuse combines the present modality scores, plus an optional transcript,
// into a single FusedResult. Nil slots are simply absent; all three nil is a
// MissingInputError. The assembled weight vector always sums to 1 after
// normalization, however many modalities are present.
func Fuse(voice, facial, text *models.ModalityScore, transcript string) (*models.FusedResult, error) {
	present := map[models.Modality]*models.ModalityScore{
		models.ModalityVoice:  voice,
		models.ModalityFacial: facial,
		models.ModalityText:   text,
	}

	var (
		features  []float64
		weights   []float64
		breakdown = make(map[models.Modality]models.BreakdownItem)
		confSum   float64
		count     int
	)
	for _, m := range fusionOrder {
		ms := present[m]
		if ms == nil {
			continue
		}
		for _, fw := range modalityFeatures[m] {
			v := ms.Confidence
			if fw.name != confidenceFeature {
				v = ms.Scores[fw.name]
			}
			features = append(features, float64(v)/100)
			weights = append(weights, fw.weight)
		}
		breakdown[m] = models.BreakdownItem{
			Scores:         ms.Scores,
			Confidence:     ms.Confidence,
			Interpretation: ms.Interpretation,
		}
		confSum += float64(ms.Confidence)
		count++
	}

	if count == 0 {
		return nil, analysis.NewMissingInput("fuse", "no modality scores supplied")
	}

	normalizeWeights(weights)

	raw := 0.0
	for i, f := range features {
		raw += f * weights[i]
	}

	var truthfulness int
	if t := strings.TrimSpace(transcript); t != "" {
		blended := raw*transcriptBlendWeight + math.Min(float64(len(t))/transcriptLengthScale, 1)*(1-transcriptBlendWeight)

		tokens := extract.Tokenize(t)
		truthHits, lieHits := extract.TruthCueHits(tokens)
		wordCount := len(tokens)
		if wordCount < 1 {
			wordCount = 1
		}
		adjust := float64(truthHits-lieHits) / float64(wordCount) * lexicalAdjustScale

		truthfulness = analysis.Clamp(blended*100 + adjust)
	} else {
		truthfulness = analysis.Clamp(raw * 100)
	}

	base := 50 + 15*float64(count)
	confidence := analysis.Clamp((base + confSum/float64(count)) / 2)

	return &models.FusedResult{
		Truthfulness:   truthfulness,
		Confidence:     confidence,
		Interpretation: interpret(truthfulness),
		Breakdown:      breakdown,
		FeatureVector:  features,
		Weights:        weights,
	}, nil
}

func normalizeWeights(weights []float64) {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
}

func interpret(truthfulness int) string {
	switch {
	case truthfulness > 80:
		return bandVeryHigh
	case truthfulness > 65:
		return bandHigh
	case truthfulness > 45:
		return bandMixed
	case truthfulness > 25:
		return bandLow
	default:
		return bandVeryLow
	}
}
