package score

import (
	"testing"

	"truth-analysis-service/internal/analysis"
	"truth-analysis-service/internal/models"
)

func TestText_Blank(t *testing.T) {
	for _, text := range []string{"", "   ", "\n"} {
		_, err := Text(text)
		if err == nil {
			t.Errorf("expected error for blank text %q", text)
			continue
		}
		if !analysis.IsMissingInput(err) {
			t.Errorf("expected MissingInputError for %q, got %T: %v", text, err, err)
		}
	}
}

func TestText_TruthScenario(t *testing.T) {
	s, err := Text("I am telling the truth.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[string]int{
		models.ScoreSentiment:       50,  // neutral lexicon hits
		models.ScoreConsistency:     100, // 5 unique words of 5
		models.ScoreComplexity:      40,  // 5 words / 1 sentence * 8
		models.ScoreContradiction:   100, // no hits
		models.ScoreDeception:       100, // no hits
		models.ScoreConfidenceWords: 60,  // no hits
	}
	for name, want := range expected {
		if got := s.Scores[name]; got != want {
			t.Errorf("score %s = %d, want %d", name, got, want)
		}
	}

	// 70 + min(23/100, 30), no positive-polarity bonus
	if s.Confidence != 70 {
		t.Errorf("confidence = %d, want 70", s.Confidence)
	}
	if s.Modality != models.ModalityText {
		t.Errorf("modality = %s, want text", s.Modality)
	}
}

func TestText_ContradictionLowersScore(t *testing.T) {
	s, err := Text("He said yes but later he said no, yet he denied it.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// two hits (but, yet): 100 - 2*15
	if s.Scores[models.ScoreContradiction] != 70 {
		t.Errorf("contradiction = %d, want 70", s.Scores[models.ScoreContradiction])
	}
}

func TestText_HedgingLowersDeceptionScore(t *testing.T) {
	s, err := Text("Maybe it was him, perhaps it was not, I might be wrong.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// three hits (maybe, perhaps, might): 100 - 3*10
	if s.Scores[models.ScoreDeception] != 70 {
		t.Errorf("deception = %d, want 70", s.Scores[models.ScoreDeception])
	}
}

func TestText_ConfidenceWordsRaiseScore(t *testing.T) {
	s, err := Text("I definitely and certainly saw him there.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// two hits: 60 + 2*8
	if s.Scores[models.ScoreConfidenceWords] != 76 {
		t.Errorf("confidenceWords = %d, want 76", s.Scores[models.ScoreConfidenceWords])
	}
}

func TestText_PositivePolarityConfidenceBonus(t *testing.T) {
	positive, err := Text("I feel happy and glad about the outcome today.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	neutral, err := Text("I walked to the station and waited for a while.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if positive.Confidence <= neutral.Confidence {
		t.Errorf("positive polarity must add the confidence bonus: %d <= %d",
			positive.Confidence, neutral.Confidence)
	}
}

func TestText_AllScoresInRange(t *testing.T) {
	texts := []string{
		"x",
		"short.",
		"A much longer statement with but and yet and maybe and um and definitely, " +
			"repeated words words words, nervous stressed anxious worried!!!",
	}
	for _, text := range texts {
		s, err := Text(text)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", text, err)
		}
		if len(s.Scores) != 6 {
			t.Fatalf("expected 6 text sub-scores, got %d", len(s.Scores))
		}
		for name, v := range s.Scores {
			if v < 0 || v > 100 {
				t.Errorf("%q: sub-score %s out of range: %d", text, name, v)
			}
		}
	}
}

func TestText_Idempotent(t *testing.T) {
	const text = "The account I gave has never changed."

	a, err := Text(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Text(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, v := range a.Scores {
		if b.Scores[name] != v {
			t.Errorf("score %s differs between identical calls", name)
		}
	}
	if a.Confidence != b.Confidence {
		t.Error("confidence differs between identical calls")
	}
}
