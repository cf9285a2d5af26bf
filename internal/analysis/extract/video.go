package extract

import "truth-analysis-service/internal/models"

// videoComplexityScale is the buffer length at which the video complexity
// scalar saturates at 1.
const videoComplexityScale = 5000.0

// Video derives a fixed visual feature record from a raw video or still
// image buffer. A nil or empty buffer yields the default record. Like Audio,
// this is a declared heuristic proxy: features are interpolated from buffer
// size, not computed by vision models.
func Video(buf []byte) models.VideoFeatures {
	if len(buf) == 0 {
		return defaultVideoFeatures()
	}

	c := complexity(len(buf), videoComplexityScale)

	return models.VideoFeatures{
		FaceDetected:     true,
		EyeAspectRatio:   0.2 + c*0.15,
		MouthAspectRatio: 0.1 + c*0.2,
		HeadPose: models.HeadPose{
			Pitch: -5 + c*10,
			Yaw:   -8 + c*16,
			Roll:  -3 + c*6,
		},
		MicroExpressionIntensity: 0.05 + c*0.35,
		BlinkRatePerMinute:       15 + c*12,
		SmileIntensity:           0.2 + c*0.4,
		GazeDirection: models.GazeDirection{
			X: 0.4 + c*0.2,
			Y: 0.4 + c*0.2,
		},
	}
}

func defaultVideoFeatures() models.VideoFeatures {
	return models.VideoFeatures{
		FaceDetected:             true,
		EyeAspectRatio:           0.25,
		MouthAspectRatio:         0.15,
		HeadPose:                 models.HeadPose{},
		MicroExpressionIntensity: 0.1,
		BlinkRatePerMinute:       20,
		SmileIntensity:           0.3,
		GazeDirection:            models.GazeDirection{X: 0.5, Y: 0.5},
	}
}
