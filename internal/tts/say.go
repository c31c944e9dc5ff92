package tts

import (
	"context"
	"fmt"

	"github.com/r3nd4n-pattern/meme-ocr-tts/pkg/executor"
)

// implSay drives the macOS built-in say command.
type implSay struct {
	binary   string
	voice    string
	executor executor.Executor
}

func (s *implSay) Name() string {
	return "say"
}

func (s *implSay) Synthesize(ctx context.Context, text, outputPath string) error {
	args := []string{
		"-v", s.voice,
		text,
		"-o", outputPath,
		"--data-format=WAVE",
	}

	if _, err := s.executor.Execute(ctx, s.binary, args...); err != nil {
		return fmt.Errorf("say synthesize: %w", err)
	}

	return nil
}
