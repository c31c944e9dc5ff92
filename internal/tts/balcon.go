package tts

import (
	"context"
	"fmt"

	"github.com/r3nd4n-pattern/meme-ocr-tts/pkg/executor"
)

// implBalcon drives the Balcon command line TTS frontend on Windows.
type implBalcon struct {
	binary   string
	voice    string
	executor executor.Executor
}

func (b *implBalcon) Name() string {
	return "balcon"
}

func (b *implBalcon) Synthesize(ctx context.Context, text, outputPath string) error {
	args := []string{
		"-n", b.voice,
		"-t", text,
		"-w", outputPath,
	}

	if _, err := b.executor.Execute(ctx, b.binary, args...); err != nil {
		return fmt.Errorf("balcon synthesize: %w", err)
	}

	return nil
}
