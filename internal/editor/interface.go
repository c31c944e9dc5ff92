package editor

import "context"

// Pauser blocks the run while the operator corrects the artifact file.
// Implementations must return only after the operator confirms they are
// done editing.
type Pauser interface {
	Wait(ctx context.Context, artifactPath string) error
}
