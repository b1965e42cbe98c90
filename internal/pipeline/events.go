package pipeline

// Event types pushed to streaming consumers
const (
	EventProgress        = "progress"
	EventSegmentComplete = "segment_complete"
	EventError           = "error"
	EventComplete        = "complete"
)

// Stage labels for the phases a run moves through
const (
	StageGenerating         = "generating"
	StageProcessing         = "processing"
	StageSegmentGenerated   = "segment_generated"
	StageSegmentFailed      = "segment_failed"
	StageGenerationComplete = "generation_complete"
	StageGenerationFailed   = "generation_failed"
)

// Progress tracks position within a run
type Progress struct {
	Current    int     `json:"current"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// SegmentRef points at one persisted audio segment. Duration is in seconds
// and is null when the segment length could not be determined.
type SegmentRef struct {
	Speaker  string   `json:"speaker"`
	Path     string   `json:"path"`
	Duration *float64 `json:"duration"`
}

// Event is one update in a run's push stream. Type selects which of the
// optional fields are populated; the orchestrator is the only producer.
type Event struct {
	Type        string       `json:"type"`
	Stage       string       `json:"stage"`
	Message     string       `json:"message,omitempty"`
	Speaker     string       `json:"speaker,omitempty"`
	SegmentPath string       `json:"segment_path,omitempty"`
	Duration    *float64     `json:"duration,omitempty"`
	Error       string       `json:"error,omitempty"`
	FinalPath   string       `json:"final_path,omitempty"`
	Segments    []SegmentRef `json:"segments,omitempty"`
	Progress    *Progress    `json:"progress,omitempty"`
}

func progressAt(current, total int) *Progress {
	pct := 0.0
	if total > 0 {
		pct = float64(current) / float64(total) * 100
	}
	return &Progress{Current: current, Total: total, Percentage: pct}
}
