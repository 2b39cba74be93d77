package omr

import (
	"fmt"
	"strings"

	"github.com/nota-music/nota-pipeline/constants"
)

// ToolError is the classified outcome of a failed conversion.
type ToolError struct {
	Kind    constants.FailureKind
	Cause   string // stable cause tag, e.g. Timeout, ToolProducedNoOutput
	Message string // operator-readable detail, stderr already truncated
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Cause, e.Message)
}

// Retryable reports whether the failure is worth another attempt.
func (e *ToolError) Retryable() bool {
	return e.Kind == constants.FailureTransient
}

// transientExitCodes are exits the tool can recover from on retry:
// SIGKILL (often the OOM killer) and SIGTERM.
var transientExitCodes = map[int]struct{}{
	137: {},
	143: {},
}

// classifyExit maps a non-zero exit into a ToolError, recognizing the
// tool's known stderr signatures so users get an actionable message.
func classifyExit(exitCode int, stderr string) *ToolError {
	switch {
	case strings.Contains(stderr, "too low interline value"):
		return &ToolError{
			Kind:  constants.FailureFatal,
			Cause: "LowResolution",
			Message: "image resolution too low for music recognition; " +
				"upload a higher resolution scan (300 DPI or higher)",
		}
	case strings.Contains(stderr, "transcription did not complete"):
		return &ToolError{
			Kind:  constants.FailureFatal,
			Cause: "RecognitionFailed",
			Message: "music recognition failed; the image must contain clear, " +
				"well-lit sheet music with good contrast",
		}
	case strings.Contains(stderr, "OutOfMemoryError"):
		return &ToolError{
			Kind:    constants.FailureTransient,
			Cause:   "ResourceExhausted",
			Message: "conversion ran out of memory; will retry",
		}
	}
	if _, ok := transientExitCodes[exitCode]; ok {
		return &ToolError{
			Kind:    constants.FailureTransient,
			Cause:   "Interrupted",
			Message: fmt.Sprintf("tool terminated with exit code %d: %s", exitCode, stderr),
		}
	}
	return &ToolError{
		Kind:    constants.FailureFatal,
		Cause:   "ToolFailed",
		Message: fmt.Sprintf("tool exited with code %d: %s", exitCode, stderr),
	}
}
