package score

import (
	"fmt"
	"math"
	"strings"

	"truth-analysis-service/internal/analysis"
	"truth-analysis-service/internal/analysis/extract"
	"truth-analysis-service/internal/models"
)

// Voice scores the voice modality from a raw audio buffer and an optional
// transcript. At least one of the two must be present; with no audio the
// scorer runs on the default feature record and transcript-derived
// adjustments only.
func Voice(audio []byte, transcript string) (*models.ModalityScore, error) {
	transcript = strings.TrimSpace(transcript)
	if len(audio) == 0 && transcript == "" {
		return nil, analysis.NewMissingInput("scoreVoice", "no audio and no transcript supplied")
	}

	f := extract.Audio(audio)

	pitch := analysis.Clamp(math.Min(f.PitchHz/255, 1) * 100)
	tone := analysis.Clamp((1 - math.Abs(f.Volume-0.5)*2) * 100)
	tremor := analysis.Clamp(100 - math.Abs(f.SpectralCentroidHz-1000)/1000*100)

	stress := analysis.Clamp(30 + mfccMeanSquare(f.MFCC)*70)
	emotional := analysis.Clamp(50 + ((f.PitchHz-150)/100+(f.TempoBpm-120)/80)*25)
	hesitation := analysis.Clamp(f.ZeroCrossingRate * 100)
	confidence := analysis.Clamp(70 + f.Volume*30)

	if transcript != "" {
		tokens := extract.Tokenize(transcript)

		textEmotional := analysis.Clamp(50 + float64(extract.SentimentRaw(tokens))*15)
		emotional = average(emotional, textEmotional)

		stressHits := extract.StressHits(tokens)
		hesitationHits := extract.HesitationHits(tokens)

		textStress := analysis.Clamp(30 + float64(stressHits)*10 + float64(hesitationHits)*8)
		stress = average(stress, textStress)

		textHesitation := analysis.Clamp(float64(hesitationHits) * 15)
		hesitation = average(hesitation, textHesitation)

		textConfidence := analysis.Clamp(60 + math.Min(float64(len(transcript))/20, 40))
		confidence = average(confidence, textConfidence)
	}

	return &models.ModalityScore{
		Modality: models.ModalityVoice,
		Scores: map[string]int{
			models.ScoreEmotional:  emotional,
			models.ScoreStress:     stress,
			models.ScorePitch:      pitch,
			models.ScoreTone:       tone,
			models.ScoreTremor:     tremor,
			models.ScoreHesitation: hesitation,
		},
		Confidence:     confidence,
		Interpretation: voiceInterpretation(emotional, stress, pitch),
	}, nil
}

// mfccMeanSquare is the mean of the squared MFCC values.
func mfccMeanSquare(mfcc []float64) float64 {
	if len(mfcc) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range mfcc {
		sum += v * v
	}
	return sum / float64(len(mfcc))
}

func average(a, b int) int {
	return analysis.Clamp(float64(a+b) / 2)
}

func voiceInterpretation(emotional, stress, pitch int) string {
	return fmt.Sprintf("Emotional tone is %s, stress level is %s, pitch control is %s.",
		band(emotional, 40, 60, "negative", "neutral", "positive"),
		band(stress, 40, 60, "low", "moderate", "high"),
		pitchLabel(pitch),
	)
}

func pitchLabel(pitch int) string {
	if pitch > 70 {
		return "good"
	}
	return "needs improvement"
}
