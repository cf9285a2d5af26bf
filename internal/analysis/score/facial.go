package score

import (
	"fmt"
	"math"

	"truth-analysis-service/internal/analysis"
	"truth-analysis-service/internal/analysis/extract"
	"truth-analysis-service/internal/models"
)

// Facial scores the facial modality from a raw video buffer and/or a still
// image buffer. At least one must be present; when both are supplied the
// video buffer wins.
func Facial(video, image []byte) (*models.ModalityScore, error) {
	buf := video
	if len(buf) == 0 {
		buf = image
	}
	if len(buf) == 0 {
		return nil, analysis.NewMissingInput("scoreFacial", "no video and no image supplied")
	}

	f := extract.Video(buf)

	micro := analysis.Clamp(f.MicroExpressionIntensity * 100)
	eyeMovement := analysis.Clamp((1 - f.EyeAspectRatio) * 100)
	smileSuppression := analysis.Clamp((1 - f.SmileIntensity) * 100)
	headPose := analysis.Clamp(100 - (math.Abs(f.HeadPose.Pitch)+math.Abs(f.HeadPose.Yaw)+math.Abs(f.HeadPose.Roll))*2)
	gaze := analysis.Clamp(100 - (math.Abs(f.GazeDirection.X-0.5)+math.Abs(f.GazeDirection.Y-0.5))*200)
	emotionalResponse := analysis.Clamp(float64(micro+(100-smileSuppression)+(100-eyeMovement)) / 3)

	confidence := 70.0
	if f.FaceDetected {
		confidence += 20
	}
	if f.MicroExpressionIntensity > 0.1 {
		confidence += 10
	}

	return &models.ModalityScore{
		Modality: models.ModalityFacial,
		Scores: map[string]int{
			models.ScoreMicroExpressions:  micro,
			models.ScoreEyeMovement:       eyeMovement,
			models.ScoreSmileSuppression:  smileSuppression,
			models.ScoreHeadPoseStability: headPose,
			models.ScoreGazeStability:     gaze,
			models.ScoreEmotionalResponse: emotionalResponse,
		},
		Confidence:     analysis.Clamp(confidence),
		Interpretation: facialInterpretation(micro, headPose, gaze),
	}, nil
}

func facialInterpretation(micro, headPose, gaze int) string {
	return fmt.Sprintf("Micro-expression activity is %s, head pose is %s, gaze is %s.",
		band(micro, 40, 60, "minimal", "moderate", "pronounced"),
		band(headPose, 40, 60, "unstable", "mostly stable", "stable"),
		band(gaze, 40, 60, "wandering", "mostly steady", "steady"),
	)
}
