// Package models defines the data structures exchanged between the
// extractors, modality scorers, the fusion engine and downstream consumers.
package models

// Modality identifies one independent observation channel.
type Modality string

const (
	ModalityVoice  Modality = "voice"
	ModalityFacial Modality = "facial"
	ModalityText   Modality = "text"
)

// AudioFeatures is the fixed-shape feature record derived from a raw audio
// buffer. Produced once per scoring call and discarded afterwards.
type AudioFeatures struct {
	PitchHz             float64   `json:"pitchHz"`
	Volume              float64   `json:"volume"`
	TempoBpm            float64   `json:"tempoBpm"`
	SpectralCentroidHz  float64   `json:"spectralCentroidHz"`
	ZeroCrossingRate    float64   `json:"zeroCrossingRate"`
	MFCC                []float64 `json:"mfcc"`
	SpectralRolloffHz   float64   `json:"spectralRolloffHz"`
	SpectralBandwidthHz float64   `json:"spectralBandwidthHz"`
}

// HeadPose holds head orientation angles in degrees.
type HeadPose struct {
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
	Roll  float64 `json:"roll"`
}

// GazeDirection holds normalized gaze coordinates, 0.5/0.5 being centered.
type GazeDirection struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// VideoFeatures is the fixed-shape feature record derived from a raw video
// or still-image buffer.
type VideoFeatures struct {
	FaceDetected             bool          `json:"faceDetected"`
	EyeAspectRatio           float64       `json:"eyeAspectRatio"`
	MouthAspectRatio         float64       `json:"mouthAspectRatio"`
	HeadPose                 HeadPose      `json:"headPose"`
	MicroExpressionIntensity float64       `json:"microExpressionIntensity"`
	BlinkRatePerMinute       float64       `json:"blinkRatePerMinute"`
	SmileIntensity           float64       `json:"smileIntensity"`
	GazeDirection            GazeDirection `json:"gazeDirection"`
}

// TextLexicalFeatures holds lexical and sentiment counts for one text.
type TextLexicalFeatures struct {
	WordCount             int `json:"wordCount"`
	SentenceCount         int `json:"sentenceCount"`
	UniqueWordCount       int `json:"uniqueWordCount"`
	SentimentRaw          int `json:"sentimentRaw"`
	StressWordHits        int `json:"stressWordHits"`
	HesitationWordHits    int `json:"hesitationWordHits"`
	ContradictionWordHits int `json:"contradictionWordHits"`
	DeceptionWordHits     int `json:"deceptionWordHits"`
	ConfidenceWordHits    int `json:"confidenceWordHits"`
}

// ModalityScore is the bounded score object emitted by one modality scorer.
// Every value in Scores, and Confidence, is an integer in [0,100]. A
// ModalityScore is never partially populated: either every sub-score for the
// modality is present, or the modality is absent from the call entirely.
type ModalityScore struct {
	Modality       Modality       `json:"modality"`
	Scores         map[string]int `json:"scores"`
	Confidence     int            `json:"confidence"`
	Interpretation string         `json:"interpretation"`
}

// Voice sub-score names.
const (
	ScoreEmotional  = "emotional"
	ScoreStress     = "stress"
	ScorePitch      = "pitch"
	ScoreTone       = "tone"
	ScoreTremor     = "tremor"
	ScoreHesitation = "hesitation"
)

// Facial sub-score names.
const (
	ScoreMicroExpressions  = "microExpressions"
	ScoreEyeMovement       = "eyeMovement"
	ScoreSmileSuppression  = "smileSuppression"
	ScoreHeadPoseStability = "headPoseStability"
	ScoreGazeStability     = "gazeStability"
	ScoreEmotionalResponse = "emotionalResponse"
)

// Text sub-score names.
const (
	ScoreSentiment       = "sentiment"
	ScoreConsistency     = "consistency"
	ScoreComplexity      = "complexity"
	ScoreContradiction   = "contradiction"
	ScoreDeception       = "deception"
	ScoreConfidenceWords = "confidenceWords"
)

// FusedResult is the aggregate outcome of fusing 1-3 modality scores.
type FusedResult struct {
	Truthfulness   int                        `json:"truthfulness"`
	Confidence     int                        `json:"confidence"`
	Interpretation string                     `json:"interpretation"`
	Breakdown      map[Modality]BreakdownItem `json:"breakdown"`
	FeatureVector  []float64                  `json:"featureVector"`
	Weights        []float64                  `json:"weights"`
}

// BreakdownItem echoes one modality's sub-scores inside a FusedResult.
type BreakdownItem struct {
	Scores         map[string]int `json:"scores"`
	Confidence     int            `json:"confidence"`
	Interpretation string         `json:"interpretation"`
}
