// Package score maps per-modality feature records onto bounded 0-100 score
// objects. Each scorer is a pure function: identical input bytes yield an
// identical ModalityScore, and a returned score is always fully populated.
package score

// band buckets a score into low/mid/high labels for interpretations.
func band(v int, low, high int, belowLabel, midLabel, aboveLabel string) string {
	switch {
	case v > high:
		return aboveLabel
	case v < low:
		return belowLabel
	default:
		return midLabel
	}
}
