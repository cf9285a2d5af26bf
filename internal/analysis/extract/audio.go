package extract

import "truth-analysis-service/internal/models"

// Default audio feature values, used when no audio buffer is supplied.
// These exact constants are part of the scoring contract.
const (
	defaultPitchHz           = 150.0
	defaultVolume            = 0.5
	defaultTempoBpm          = 120.0
	defaultSpectralCentroid  = 1000.0
	defaultZeroCrossingRate  = 0.1
	defaultMFCCValue         = 0.1
	defaultSpectralRolloff   = 2000.0
	defaultSpectralBandwidth = 500.0
)

// mfccCoefficients is the fixed length of the MFCC sequence.
const mfccCoefficients = 13

// audioComplexityScale is the buffer length at which the audio complexity
// scalar saturates at 1.
const audioComplexityScale = 10000.0

// Audio derives a fixed audio feature record from the raw buffer. A nil or
// empty buffer yields the default record; otherwise each feature is linearly
// interpolated across its documented range from a buffer-size complexity
// scalar. This is an explicit heuristic, not a DSP estimate: no transform is
// performed and no error is possible.
func Audio(buf []byte) models.AudioFeatures {
	if len(buf) == 0 {
		return defaultAudioFeatures()
	}

	c := complexity(len(buf), audioComplexityScale)

	mfcc := make([]float64, mfccCoefficients)
	for i := range mfcc {
		mfcc[i] = 0.05 + c*0.15
	}

	return models.AudioFeatures{
		PitchHz:             120 + c*100,
		Volume:              0.3 + c*0.5,
		TempoBpm:            100 + c*60,
		SpectralCentroidHz:  800 + c*1200,
		ZeroCrossingRate:    0.05 + c*0.15,
		MFCC:                mfcc,
		SpectralRolloffHz:   1500 + c*1500,
		SpectralBandwidthHz: 400 + c*400,
	}
}

func defaultAudioFeatures() models.AudioFeatures {
	mfcc := make([]float64, mfccCoefficients)
	for i := range mfcc {
		mfcc[i] = defaultMFCCValue
	}
	return models.AudioFeatures{
		PitchHz:             defaultPitchHz,
		Volume:              defaultVolume,
		TempoBpm:            defaultTempoBpm,
		SpectralCentroidHz:  defaultSpectralCentroid,
		ZeroCrossingRate:    defaultZeroCrossingRate,
		MFCC:                mfcc,
		SpectralRolloffHz:   defaultSpectralRolloff,
		SpectralBandwidthHz: defaultSpectralBandwidth,
	}
}

// complexity maps a buffer length onto [0,1], saturating at scale bytes.
func complexity(n int, scale float64) float64 {
	c := float64(n) / scale
	if c > 1 {
		return 1
	}
	return c
}
