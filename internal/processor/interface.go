package processor

import "context"

// Processor defines the interface for running one OCR-to-audio batch
type Processor interface {
	Run(ctx context.Context, folder string) (*Summary, error)
}

// Summary reports what one run produced. Per-item OCR/TTS failures are
// counted here instead of failing the run.
type Summary struct {
	Images       int
	OcrFailed    int
	AudioWritten int
	TtsFailed    int
	OutputDir    string
	ArtifactPath string
}
