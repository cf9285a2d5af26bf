// Package fusion combines whichever modality scores are present (1-3) into a
// single bounded truthfulness result with aggregate confidence and an
// interpretation band.
package fusion

import "truth-analysis-service/internal/models"

// featureWeight names one fused sub-score and its canonical weight.
type featureWeight struct {
	name   string
	weight float64
}

// confidenceFeature marks the voice confidence slot, which is fused as a
// feature but lives outside the Scores map.
const confidenceFeature = "confidence"

// Canonical per-feature weights. The raw weights are fixed; at fusion time
// the vector assembled from the present modalities is normalized to sum to 1.
// The text modality contributes five features: complexity is deliberately
// left out of fusion.
var modalityFeatures = map[models.Modality][]featureWeight{
	models.ModalityVoice: {
		{models.ScoreEmotional, 0.15},
		{models.ScoreStress, 0.12},
		{models.ScorePitch, 0.08},
		{models.ScoreTone, 0.10},
		{models.ScoreTremor, 0.10},
		{models.ScoreHesitation, 0.08},
		{confidenceFeature, 0.07},
	},
	models.ModalityFacial: {
		{models.ScoreMicroExpressions, 0.12},
		{models.ScoreEyeMovement, 0.10},
		{models.ScoreSmileSuppression, 0.08},
		{models.ScoreHeadPoseStability, 0.06},
		{models.ScoreGazeStability, 0.05},
		{models.ScoreEmotionalResponse, 0.05},
	},
	models.ModalityText: {
		{models.ScoreSentiment, 0.08},
		{models.ScoreConsistency, 0.06},
		{models.ScoreContradiction, 0.05},
		{models.ScoreDeception, 0.05},
		{models.ScoreConfidenceWords, 0.03},
	},
}

// fusionOrder fixes the iteration order over modalities so the assembled
// vectors are stable regardless of which slots are present.
var fusionOrder = []models.Modality{
	models.ModalityVoice,
	models.ModalityFacial,
	models.ModalityText,
}
