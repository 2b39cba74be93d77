package artifactstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/constants"
)

// Store abstracts the blob store that holds source files and every
// pipeline artifact. Writes are atomic: a Get never observes a
// partially written object.
type Store interface {
	// Put uploads data under key. When the store is configured with
	// reject-on-exists (the pipeline always is), writing an existing
	// key returns ErrAlreadyExists.
	Put(ctx context.Context, key string, data []byte, contentType string) error
	// Get returns the object bytes, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

var (
	ErrNotFound      = errors.New("artifact not found")
	ErrAlreadyExists = errors.New("artifact already exists")
)

// OverwritePolicy controls Put behavior on existing keys.
type OverwritePolicy int

const (
	RejectOnExists OverwritePolicy = iota
	Replace
)

// ArtifactKey builds the store key for a pipeline artifact. Keys are
// namespaced by job id and kind so concurrent jobs never collide.
func ArtifactKey(jobID uuid.UUID, kind constants.ArtifactKind) string {
	return fmt.Sprintf("jobs/%s/%s%s", jobID, kind, kind.Ext())
}

// SourceKey builds the store key for an uploaded score file.
func SourceKey(scoreID uuid.UUID, ext string) string {
	return fmt.Sprintf("scores/%s/input.%s", scoreID, constants.NormalizeExt(ext))
}
