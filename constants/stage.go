package constants

import "strings"

// Stage is the canonical lifecycle stage for rows in processing_job.
type Stage string

// Stable values (store these exact strings in DB).
const (
	StageQueued         Stage = "QUEUED"          // accepted, waiting for a worker
	StageConverting     Stage = "CONVERTING"      // OMR conversion in progress
	StageExtractingText Stage = "EXTRACTING_TEXT" // text harvest in progress
	StageSummarizing    Stage = "SUMMARIZING"     // LLM summary in progress
	StageCompleted      Stage = "COMPLETED"       // terminal success
	StageFailed         Stage = "FAILED"          // terminal failure
)

// stageOrder fixes the forward sequence a job may move through.
var stageOrder = []Stage{
	StageQueued,
	StageConverting,
	StageExtractingText,
	StageSummarizing,
	StageCompleted,
}

var stageIndex = func() map[Stage]int {
	idx := make(map[Stage]int, len(stageOrder))
	for i, s := range stageOrder {
		idx[s] = i
	}
	return idx
}()

// AllStages returns the ordered forward sequence plus FAILED.
func AllStages() []Stage {
	out := make([]Stage, 0, len(stageOrder)+1)
	out = append(out, stageOrder...)
	return append(out, StageFailed)
}

// ParseStage converts a string into a known Stage.
func ParseStage(value string) (Stage, bool) {
	s := Stage(strings.ToUpper(strings.TrimSpace(value)))
	if s == StageFailed {
		return s, true
	}
	_, ok := stageIndex[s]
	return s, ok
}

// Next returns the stage that follows s in the forward sequence.
// The second return is false for terminal or unknown stages.
func (s Stage) Next() (Stage, bool) {
	i, ok := stageIndex[s]
	if !ok || i == len(stageOrder)-1 {
		return "", false
	}
	return stageOrder[i+1], true
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Stage) IsTerminal() bool {
	return s == StageCompleted || s == StageFailed
}

// IsRunnable reports whether a worker may pick up a job at this stage.
func (s Stage) IsRunnable() bool {
	switch s {
	case StageQueued, StageConverting, StageExtractingText, StageSummarizing:
		return true
	default:
		return false
	}
}

// CanAdvanceTo reports whether a transition from s to next honors the
// forward order. FAILED is reachable from any non-terminal stage.
func (s Stage) CanAdvanceTo(next Stage) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StageFailed {
		return true
	}
	from, ok := stageIndex[s]
	if !ok {
		return false
	}
	to, ok := stageIndex[next]
	if !ok {
		return false
	}
	return to == from+1
}
