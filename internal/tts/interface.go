package tts

import "context"

// Engine defines the interface for speech synthesis backends
type Engine interface {
	// Name returns the engine identifier.
	Name() string
	// Synthesize renders text as audio and writes it to outputPath.
	// Reruns with the same outputPath overwrite the previous file.
	Synthesize(ctx context.Context, text, outputPath string) error
}
