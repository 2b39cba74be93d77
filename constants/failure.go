package constants

// FailureKind classifies why a stage (or the whole job) failed.
type FailureKind string

// Stable values (store these exact strings in DB).
const (
	FailureTransient FailureKind = "TRANSIENT" // retried with backoff up to the per-stage ceiling
	FailureFatal     FailureKind = "FATAL"     // job moves to FAILED immediately
	FailureNonFatal  FailureKind = "NON_FATAL" // recorded; job still completes (summary stage only)
	FailureCancelled FailureKind = "CANCELLED" // explicit external cancellation
)

// Well-known failure causes surfaced in error messages and tests.
const (
	CauseTimeout              = "Timeout"
	CauseToolProducedNoOutput = "ToolProducedNoOutput"
	CauseCancelled            = "Cancelled"
)
