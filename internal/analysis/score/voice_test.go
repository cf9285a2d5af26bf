package score

import (
	"testing"

	"truth-analysis-service/internal/analysis"
	"truth-analysis-service/internal/models"
)

func TestVoice_BothAbsent(t *testing.T) {
	_, err := Voice(nil, "")
	if err == nil {
		t.Fatal("expected error with no audio and no transcript")
	}
	if !analysis.IsMissingInput(err) {
		t.Errorf("expected MissingInputError, got %T: %v", err, err)
	}

	_, err = Voice(nil, "   \t ")
	if err == nil || !analysis.IsMissingInput(err) {
		t.Errorf("whitespace-only transcript must count as absent, got %v", err)
	}
}

func TestVoice_TranscriptOnly_DefaultFeatures(t *testing.T) {
	// No audio: scoring runs on the default feature record plus
	// transcript-derived adjustments. Expected values are hand-computed
	// from the default constants.
	s, err := Voice(nil, "I am happy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[string]int{
		models.ScorePitch:      59,  // 150/255*100
		models.ScoreTone:       100, // volume exactly 0.5
		models.ScoreTremor:     100, // centroid exactly 1000
		models.ScoreEmotional:  58,  // avg(50, 50+1*15)
		models.ScoreStress:     31,  // avg(30.7 -> 31, 30)
		models.ScoreHesitation: 5,   // avg(10, 0)
	}
	for name, want := range expected {
		if got := s.Scores[name]; got != want {
			t.Errorf("score %s = %d, want %d", name, got, want)
		}
	}

	// avg(85, 60+10/20 -> 61) = 73
	if s.Confidence != 73 {
		t.Errorf("confidence = %d, want 73", s.Confidence)
	}
	if s.Interpretation == "" {
		t.Error("expected non-empty interpretation")
	}
	if s.Modality != models.ModalityVoice {
		t.Errorf("modality = %s, want voice", s.Modality)
	}
}

func TestVoice_AudioOnly(t *testing.T) {
	s, err := Voice(make([]byte, 10000), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s.Scores) != 6 {
		t.Fatalf("expected 6 voice sub-scores, got %d", len(s.Scores))
	}
	for name, v := range s.Scores {
		if v < 0 || v > 100 {
			t.Errorf("sub-score %s out of range: %d", name, v)
		}
	}
	if s.Confidence < 0 || s.Confidence > 100 {
		t.Errorf("confidence out of range: %d", s.Confidence)
	}
}

func TestVoice_TranscriptHesitationCues(t *testing.T) {
	calm, err := Voice(nil, "I am certain about what I saw that night")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hesitant, err := Voice(nil, "Um well uh I um think uh it was um him")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hesitant.Scores[models.ScoreHesitation] <= calm.Scores[models.ScoreHesitation] {
		t.Errorf("hesitation cues must raise the hesitation score: %d <= %d",
			hesitant.Scores[models.ScoreHesitation], calm.Scores[models.ScoreHesitation])
	}
	if hesitant.Scores[models.ScoreStress] <= calm.Scores[models.ScoreStress] {
		t.Errorf("hesitation cues must raise the stress score: %d <= %d",
			hesitant.Scores[models.ScoreStress], calm.Scores[models.ScoreStress])
	}
}

func TestVoice_Idempotent(t *testing.T) {
	buf := make([]byte, 4321)
	for i := range buf {
		buf[i] = byte(i)
	}

	a, err := Voice(buf, "the same transcript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Voice(buf, "the same transcript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, v := range a.Scores {
		if b.Scores[name] != v {
			t.Errorf("score %s differs between identical calls: %d != %d", name, v, b.Scores[name])
		}
	}
	if a.Confidence != b.Confidence || a.Interpretation != b.Interpretation {
		t.Error("confidence and interpretation must be identical for identical input")
	}
}

func TestVoice_ExtremeBuffers(t *testing.T) {
	for _, n := range []int{1, 10, 100_000_000 / 100} {
		s, err := Voice(make([]byte, n), "")
		if err != nil {
			t.Fatalf("unexpected error for %d-byte buffer: %v", n, err)
		}
		for name, v := range s.Scores {
			if v < 0 || v > 100 {
				t.Errorf("buffer %d: sub-score %s out of range: %d", n, name, v)
			}
		}
	}
}
