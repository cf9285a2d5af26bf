package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"truth-analysis-service/internal/analysis/analyzer"
	"truth-analysis-service/internal/app"
	"truth-analysis-service/internal/config"
	"truth-analysis-service/internal/events"
	"truth-analysis-service/internal/models"
	"truth-analysis-service/internal/observability"
	"truth-analysis-service/internal/observability/logging"
	"truth-analysis-service/internal/observability/metrics"
	"truth-analysis-service/internal/schema"
	"truth-analysis-service/internal/session"
)

var (
	audioPath      string
	videoPath      string
	imagePath      string
	textArg        string
	transcriptArg  string
	outPath        string
	publishResults bool
	serveMetrics   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full analysis session",
	Long: `Run a full analysis session over the supplied inputs.

Audio, video and image inputs are file paths; files may contain raw media
bytes, plain base64, or a base64 data URI. Text and transcript may be given
inline or as @path to read from a file. At least one scorable modality must
be present.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&audioPath, "audio", "", "path to audio input")
	analyzeCmd.Flags().StringVar(&videoPath, "video", "", "path to video input")
	analyzeCmd.Flags().StringVar(&imagePath, "image", "", "path to still image input")
	analyzeCmd.Flags().StringVar(&textArg, "text", "", "subject statement text, or @path")
	analyzeCmd.Flags().StringVar(&transcriptArg, "transcript", "", "voice transcript text, or @path")
	analyzeCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the JSON report to this file instead of stdout")
	analyzeCmd.Flags().BoolVar(&publishResults, "publish", false, "publish score and result events")
	analyzeCmd.Flags().BoolVar(&serveMetrics, "metrics", false, "expose Prometheus metrics while running")

	rootCmd.AddCommand(analyzeCmd)
}

// sessionReport is the JSON document the CLI emits for one session.
type sessionReport struct {
	SessionID   string           `json:"sessionId"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Report      *analyzer.Report `json:"report"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	application := app.New(cfg)
	if err := application.Start(); err != nil {
		return err
	}
	defer application.Shutdown()

	if serveMetrics {
		obs := observability.NewServer(cfg.Observability.MetricsAddr)
		obs.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = obs.Shutdown(ctx)
		}()
	}

	inputs, err := collectInputs()
	if err != nil {
		return err
	}

	a := analyzer.NewWithLimits(metrics.DefaultMetrics, analyzer.InputLimits{
		MaxAudioBytes:      cfg.Analyzer.MaxAudioBytes,
		MaxVideoBytes:      cfg.Analyzer.MaxVideoBytes,
		MaxTranscriptChars: cfg.Analyzer.MaxTranscriptChars,
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Analyzer.Timeout)
	defer cancel()

	sessionID := session.New().Next()
	sessionLog := logging.WithSession(sessionID)

	report, err := a.Analyze(ctx, inputs)
	if err != nil {
		sessionLog.Error().Err(err).Msg("analysis failed")
		return err
	}
	sessionLog.Info().
		Int("truthfulness", report.Result.Truthfulness).
		Int("confidence", report.Result.Confidence).
		Msg("session analyzed")

	validator := schema.New()
	if err := validator.ValidateResult(report.Result); err != nil {
		return fmt.Errorf("result failed validation: %w", err)
	}

	if publishResults {
		if err := publish(ctx, cfg, validator, sessionID, report); err != nil {
			return err
		}
	}

	return writeReport(sessionReport{
		SessionID:   sessionID,
		GeneratedAt: time.Now().UTC(),
		Report:      report,
	})
}

func collectInputs() (analyzer.Inputs, error) {
	var in analyzer.Inputs
	var err error

	if in.Audio, err = readOptionalFile(audioPath); err != nil {
		return in, err
	}
	if in.Video, err = readOptionalFile(videoPath); err != nil {
		return in, err
	}
	if in.Image, err = readOptionalFile(imagePath); err != nil {
		return in, err
	}
	if in.Text, err = readTextArg(textArg); err != nil {
		return in, err
	}
	if in.Transcript, err = readTextArg(transcriptArg); err != nil {
		return in, err
	}

	if len(in.Audio) == 0 && len(in.Video) == 0 && len(in.Image) == 0 &&
		strings.TrimSpace(in.Text) == "" && strings.TrimSpace(in.Transcript) == "" {
		return in, fmt.Errorf("no inputs supplied; see 'truthanalysis analyze --help'")
	}
	return in, nil
}

func readOptionalFile(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// readTextArg resolves a text flag value: "@path" reads the file, anything
// else is taken verbatim.
func readTextArg(arg string) (string, error) {
	if !strings.HasPrefix(arg, "@") {
		return arg, nil
	}
	data, err := os.ReadFile(arg[1:])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", arg[1:], err)
	}
	return string(data), nil
}

func publish(ctx context.Context, cfg *config.Configuration, validator *schema.Validator, sessionID string, report *analyzer.Report) error {
	publisher := events.New(&events.Config{
		Enabled:      cfg.Kafka.Enabled,
		Brokers:      cfg.Kafka.Brokers,
		TopicScores:  cfg.Kafka.TopicScores,
		TopicResults: cfg.Kafka.TopicResults,
		Principal:    cfg.Kafka.Principal,
	})
	defer publisher.Close()

	now := time.Now().UnixMilli()
	for _, ms := range []*models.ModalityScore{report.Voice, report.Facial, report.Text} {
		if ms == nil {
			continue
		}
		if err := validator.ValidateScore(ms); err != nil {
			return fmt.Errorf("%s score failed validation: %w", ms.Modality, err)
		}
		ev := models.ModalityScoreEvent{
			EventType:      "session.analysis.score",
			SessionID:      sessionID,
			Modality:       ms.Modality,
			Scores:         ms.Scores,
			Confidence:     ms.Confidence,
			Interpretation: ms.Interpretation,
			Timestamp:      now,
		}
		if err := publisher.PublishScore(ctx, sessionID, ev); err != nil {
			return err
		}
	}

	modalities := make([]models.Modality, 0, len(report.Result.Breakdown))
	for _, m := range []models.Modality{models.ModalityVoice, models.ModalityFacial, models.ModalityText} {
		if _, ok := report.Result.Breakdown[m]; ok {
			modalities = append(modalities, m)
		}
	}

	resultEv := models.AnalysisResultEvent{
		EventType:      "session.analysis.result",
		SessionID:      sessionID,
		Truthfulness:   report.Result.Truthfulness,
		Confidence:     report.Result.Confidence,
		Interpretation: report.Result.Interpretation,
		Modalities:     modalities,
		Breakdown:      report.Result.Breakdown,
		Timestamp:      now,
	}
	return publisher.PublishResult(ctx, sessionID, resultEv)
}

func writeReport(r sessionReport) error {
	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
