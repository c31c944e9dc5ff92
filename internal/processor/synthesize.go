package processor

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/batch"
)

// synthesizeAll generates one audio file per block, named by identifier
// so a rerun overwrites instead of accumulating duplicates. A failed call
// skips that block and the batch continues.
func (p *implProcessor) synthesizeAll(ctx context.Context, blocks []batch.Block, audioDir string) (written, failed int) {
	for i, blk := range blocks {
		if strings.TrimSpace(blk.Text) == "" {
			p.logger.Warn(ctx, "[%d/%d] Skipping %s: block is empty", i+1, len(blocks), blk.ID)
			continue
		}

		outputPath := filepath.Join(audioDir, blk.ID+".wav")
		p.logger.Info(ctx, "[%d/%d] Generating audio: %s.wav", i+1, len(blocks), blk.ID)

		if err := p.tts.Synthesize(ctx, blk.Text, outputPath); err != nil {
			p.logger.Error(ctx, "TTS failed for %s: %v", blk.ID, err)
			failed++
			continue
		}
		written++
	}

	return written, failed
}
