// Package analyzer coordinates a full analysis session: it decodes the raw
// inputs, runs the three modality scorers concurrently and feeds whichever
// of them succeeded into the fusion engine. The scorers are independent pure
// computations, so the branches need no coordination beyond waiting for all
// of them to settle; a failure in one branch never aborts the others.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"truth-analysis-service/internal/analysis"
	"truth-analysis-service/internal/analysis/fusion"
	"truth-analysis-service/internal/analysis/score"
	"truth-analysis-service/internal/models"
	"truth-analysis-service/internal/observability/logging"
	"truth-analysis-service/internal/observability/metrics"
)

// InputLimits defines safety guardrails for raw input sizes. These prevent
// unbounded memory usage on hostile or malformed payloads.
type InputLimits struct {
	MaxAudioBytes      int64
	MaxVideoBytes      int64
	MaxTranscriptChars int
}

// DefaultLimits returns sensible default input limits.
func DefaultLimits() InputLimits {
	return InputLimits{
		MaxAudioBytes:      25 * 1024 * 1024, // 25MB raw audio
		MaxVideoBytes:      100 * 1024 * 1024, // 100MB raw video
		MaxTranscriptChars: 100_000,
	}
}

// Inputs carries the raw per-modality payloads for one session. Any slot may
// be absent; at least one modality must be scorable or Analyze fails.
type Inputs struct {
	Audio      []byte
	Video      []byte
	Image      []byte
	Text       string
	Transcript string
}

// Report is the outcome of one analysis session. Failures holds the
// per-modality errors for branches that did not produce a score; the present
// scores and the fused result cover the rest.
type Report struct {
	Voice    *models.ModalityScore      `json:"voice,omitempty"`
	Facial   *models.ModalityScore      `json:"facial,omitempty"`
	Text     *models.ModalityScore      `json:"text,omitempty"`
	Failures map[models.Modality]string `json:"failures,omitempty"`
	Result   *models.FusedResult        `json:"result"`
}

// Analyzer runs analysis sessions. It holds no per-session state; a single
// Analyzer may be shared across goroutines.
type Analyzer struct {
	limits  InputLimits
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// New creates an Analyzer with default input limits.
func New(m *metrics.Metrics) *Analyzer {
	return NewWithLimits(m, DefaultLimits())
}

// NewWithLimits creates an Analyzer with custom input limits.
func NewWithLimits(m *metrics.Metrics, limits InputLimits) *Analyzer {
	if m == nil {
		m = metrics.DefaultMetrics
	}
	return &Analyzer{
		limits:  limits,
		metrics: m,
		log:     logging.WithComponent("analyzer"),
	}
}

// branch is the settled outcome of one modality scorer.
type branch struct {
	score *models.ModalityScore
	err   error
}

// Analyze runs the three modality scorers concurrently and fuses the
// successful ones. If ctx expires before a branch settles, that branch is
// treated as absent. The returned error is non-nil only when no modality
// produced a score.
func (a *Analyzer) Analyze(ctx context.Context, in Inputs) (*Report, error) {
	start := time.Now()
	a.metrics.RecordAnalysisStart()

	audio, video, image, err := a.decodeInputs(in)
	if err != nil {
		a.metrics.RecordAnalysisEnd(false, time.Since(start).Seconds())
		return nil, err
	}

	var voice, facial, text branch

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		voice = a.settle(ctx, models.ModalityVoice, func() (*models.ModalityScore, error) {
			return score.Voice(audio, in.Transcript)
		})
		return nil
	})
	g.Go(func() error {
		facial = a.settle(ctx, models.ModalityFacial, func() (*models.ModalityScore, error) {
			return score.Facial(video, image)
		})
		return nil
	})
	g.Go(func() error {
		text = a.settle(ctx, models.ModalityText, func() (*models.ModalityScore, error) {
			return score.Text(in.Text)
		})
		return nil
	})
	_ = g.Wait() // branches never return errors; outcomes are collected per slot

	report := &Report{
		Voice:    voice.score,
		Facial:   facial.score,
		Text:     text.score,
		Failures: collectFailures(voice, facial, text),
	}

	result, err := fusion.Fuse(voice.score, facial.score, text.score, in.Transcript)
	if err != nil {
		a.metrics.RecordAnalysisEnd(false, time.Since(start).Seconds())
		a.log.Warn().Err(err).Msg("analysis produced no scorable modality")
		return nil, fmt.Errorf("analyze: %w", err)
	}
	report.Result = result

	a.metrics.RecordFusion(result.Truthfulness, result.Confidence, len(result.Breakdown))
	a.metrics.RecordAnalysisEnd(true, time.Since(start).Seconds())

	a.log.Info().
		Int("truthfulness", result.Truthfulness).
		Int("confidence", result.Confidence).
		Int("modalities", len(result.Breakdown)).
		Dur("duration", time.Since(start)).
		Msg("analysis completed")

	return report, nil
}

// settle runs one scorer and records its outcome. A branch whose context has
// already expired is treated as absent rather than computed late.
func (a *Analyzer) settle(ctx context.Context, m models.Modality, fn func() (*models.ModalityScore, error)) branch {
	if err := ctx.Err(); err != nil {
		a.metrics.RecordModalityError(string(m), "timeout")
		return branch{err: fmt.Errorf("%s: %w", m, err)}
	}

	s, err := fn()
	if err != nil {
		a.metrics.RecordModalityError(string(m), errorKind(err))
		a.log.Debug().Err(err).Str("modality", string(m)).Msg("modality scoring skipped")
		return branch{err: err}
	}

	a.metrics.RecordModalityScored(string(m))
	return branch{score: s}
}

// decodeInputs decodes media payloads and enforces size guardrails. A decode
// failure or over-limit input is fatal for the whole session: it signals a
// malformed caller, not a merely absent modality.
func (a *Analyzer) decodeInputs(in Inputs) (audio, video, image []byte, err error) {
	if audio, err = analysis.DecodeMedia("audio", in.Audio); err != nil {
		return nil, nil, nil, err
	}
	if video, err = analysis.DecodeMedia("video", in.Video); err != nil {
		return nil, nil, nil, err
	}
	if image, err = analysis.DecodeMedia("image", in.Image); err != nil {
		return nil, nil, nil, err
	}

	if a.limits.MaxAudioBytes > 0 && int64(len(audio)) > a.limits.MaxAudioBytes {
		a.metrics.RecordLimitExceeded("audio")
		return nil, nil, nil, fmt.Errorf("audio input exceeds limit: %d > %d bytes", len(audio), a.limits.MaxAudioBytes)
	}
	if a.limits.MaxVideoBytes > 0 {
		if int64(len(video)) > a.limits.MaxVideoBytes {
			a.metrics.RecordLimitExceeded("video")
			return nil, nil, nil, fmt.Errorf("video input exceeds limit: %d > %d bytes", len(video), a.limits.MaxVideoBytes)
		}
		if int64(len(image)) > a.limits.MaxVideoBytes {
			a.metrics.RecordLimitExceeded("image")
			return nil, nil, nil, fmt.Errorf("image input exceeds limit: %d > %d bytes", len(image), a.limits.MaxVideoBytes)
		}
	}
	if a.limits.MaxTranscriptChars > 0 && len(in.Transcript) > a.limits.MaxTranscriptChars {
		a.metrics.RecordLimitExceeded("transcript")
		return nil, nil, nil, fmt.Errorf("transcript exceeds limit: %d > %d chars", len(in.Transcript), a.limits.MaxTranscriptChars)
	}

	return audio, video, image, nil
}

func collectFailures(branches ...branch) map[models.Modality]string {
	order := []models.Modality{models.ModalityVoice, models.ModalityFacial, models.ModalityText}
	var failures map[models.Modality]string
	for i, b := range branches {
		if b.err == nil {
			continue
		}
		if failures == nil {
			failures = make(map[models.Modality]string)
		}
		failures[order[i]] = b.err.Error()
	}
	return failures
}

func errorKind(err error) string {
	switch {
	case analysis.IsMissingInput(err):
		return "missing_input"
	case analysis.IsInvalidEncoding(err):
		return "invalid_encoding"
	case strings.Contains(err.Error(), "context"):
		return "timeout"
	default:
		return "internal"
	}
}
