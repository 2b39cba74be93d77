package pipeline

import (
	"errors"
	"fmt"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/omr"
)

// StageError is the classified outcome of a failed stage attempt.
type StageError struct {
	Kind    constants.FailureKind
	Cause   string // stable tag, e.g. Timeout, ToolProducedNoOutput
	Message string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s/%s: %s", e.Kind, e.Cause, e.Message)
}

func Transientf(cause, format string, args ...any) *StageError {
	return &StageError{Kind: constants.FailureTransient, Cause: cause, Message: fmt.Sprintf(format, args...)}
}

func Fatalf(cause, format string, args ...any) *StageError {
	return &StageError{Kind: constants.FailureFatal, Cause: cause, Message: fmt.Sprintf(format, args...)}
}

func NonFatalf(cause, format string, args ...any) *StageError {
	return &StageError{Kind: constants.FailureNonFatal, Cause: cause, Message: fmt.Sprintf(format, args...)}
}

// classify maps an arbitrary stage error into a StageError. Tool errors
// carry their own classification; anything unrecognized is treated as
// transient so an operator-side fix gets a chance on redelivery.
func classify(err error) *StageError {
	var se *StageError
	if errors.As(err, &se) {
		return se
	}
	var te *omr.ToolError
	if errors.As(err, &te) {
		return &StageError{Kind: te.Kind, Cause: te.Cause, Message: te.Message}
	}
	return Transientf("StageFailed", "%v", err)
}
