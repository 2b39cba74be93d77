package summarize

import (
	"context"

	"github.com/nota-music/nota-pipeline/internal/analysis"
)

// Request carries everything the model needs to describe a score.
type Request struct {
	Title    string
	Composer string
	Features analysis.Features
	Lyrics   []string
}

// Summary is the normalized shape we want back from the model.
type Summary struct {
	Summary    string   `json:"summary"`
	Difficulty string   `json:"difficulty"` // beginner | intermediate | advanced
	Highlights []string `json:"highlights,omitempty"`
}

// Summarizer is the interface the pipeline depends on.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (Summary, []byte /*rawJSON*/, error)
}
