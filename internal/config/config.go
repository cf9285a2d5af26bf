// Package config loads service configuration from environment variables,
// with an optional YAML file overlay for deployments that prefer files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ServiceConfig identifies this service instance.
type ServiceConfig struct {
	Name      string `yaml:"name"`
	Principal string `yaml:"principal"`
}

// AnalyzerConfig holds input guardrails and the session deadline.
type AnalyzerConfig struct {
	MaxAudioBytes      int64         `yaml:"max_audio_bytes"`
	MaxVideoBytes      int64         `yaml:"max_video_bytes"`
	MaxTranscriptChars int           `yaml:"max_transcript_chars"`
	Timeout            time.Duration `yaml:"timeout"`
}

// KafkaConfig holds result event publishing configuration.
type KafkaConfig struct {
	Enabled      bool     `yaml:"enabled"`
	Brokers      []string `yaml:"brokers"`
	TopicScores  string   `yaml:"topic_scores"`
	TopicResults string   `yaml:"topic_results"`
	Principal    string   `yaml:"principal"`
}

// ObservabilityConfig holds logging and metrics configuration.
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Configuration is the full service configuration.
type Configuration struct {
	Service       ServiceConfig       `yaml:"service"`
	Analyzer      AnalyzerConfig      `yaml:"analyzer"`
	Kafka         KafkaConfig         `yaml:"kafka"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// Load builds the configuration from environment variables, falling back to
// defaults for anything unset or unparsable.
func Load() *Configuration {
	principal := envOrDefault("SERVICE_PRINCIPAL", "svc-truth-analysis")

	return &Configuration{
		Service: ServiceConfig{
			Name:      envOrDefault("SERVICE_NAME", "truth-analysis-service"),
			Principal: principal,
		},
		Analyzer: AnalyzerConfig{
			MaxAudioBytes:      envOrDefaultInt64("ANALYZER_MAX_AUDIO_BYTES", 25*1024*1024),
			MaxVideoBytes:      envOrDefaultInt64("ANALYZER_MAX_VIDEO_BYTES", 100*1024*1024),
			MaxTranscriptChars: envOrDefaultInt("ANALYZER_MAX_TRANSCRIPT_CHARS", 100_000),
			Timeout:            envOrDefaultDuration("ANALYZER_TIMEOUT", 30*time.Second),
		},
		Kafka: KafkaConfig{
			Enabled:      envOrDefaultBool("KAFKA_ENABLED", false),
			Brokers:      envOrDefaultList("KAFKA_BROKERS", nil),
			TopicScores:  envOrDefault("KAFKA_TOPIC_SCORES", "session.analysis.scores"),
			TopicResults: envOrDefault("KAFKA_TOPIC_RESULTS", "session.analysis.results"),
			Principal:    envOrDefault("KAFKA_PRINCIPAL", principal),
		},
		Observability: ObservabilityConfig{
			LogLevel:    envOrDefault("LOG_LEVEL", "info"),
			LogFormat:   envOrDefault("LOG_FORMAT", "json"),
			MetricsAddr: envOrDefault("METRICS_ADDR", ":9090"),
		},
	}
}

// LoadFile loads env-based defaults and overlays them with the YAML file at
// path. Fields absent from the file keep their env/default values.
func LoadFile(path string) (*Configuration, error) {
	cfg := Load()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.ToLower(v)); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
