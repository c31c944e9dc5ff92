package ocr

import "context"

// Engine defines the interface for text recognition backends
type Engine interface {
	// Name returns the engine identifier.
	Name() string
	// Recognize extracts the text visible in the image bytes.
	Recognize(ctx context.Context, image []byte, mimeType string) (string, error)
}
