package models

// ModalityScoreEvent is published once per successfully scored modality.
type ModalityScoreEvent struct {
	EventType      string         `json:"eventType"`
	SessionID      string         `json:"sessionId"`
	Modality       Modality       `json:"modality"`
	Scores         map[string]int `json:"scores"`
	Confidence     int            `json:"confidence"`
	Interpretation string         `json:"interpretation"`
	Timestamp      int64          `json:"timestamp"`
}

// AnalysisResultEvent is published once per session with the fused result.
type AnalysisResultEvent struct {
	EventType      string                     `json:"eventType"`
	SessionID      string                     `json:"sessionId"`
	Truthfulness   int                        `json:"truthfulness"`
	Confidence     int                        `json:"confidence"`
	Interpretation string                     `json:"interpretation"`
	Modalities     []Modality                 `json:"modalities"`
	Breakdown      map[Modality]BreakdownItem `json:"breakdown"`
	Timestamp      int64                      `json:"timestamp"`
}
