package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/batch"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/ocr"
)

// ocrFailedPlaceholder keeps the failed image's block in the artifact so
// the operator can type the text in by hand during the edit pause.
const ocrFailedPlaceholder = "(text could not be recognized)"

// recognizeAll runs OCR over every entry in scan order. A failed call is
// logged and replaced with a placeholder block; the batch never loses an
// entry to an OCR error.
func (p *implProcessor) recognizeAll(ctx context.Context, entries []batch.Entry) ([]batch.Block, int) {
	blocks := make([]batch.Block, 0, len(entries))
	failed := 0

	for i, e := range entries {
		p.logger.Info(ctx, "[%d/%d] Recognizing text: %s", i+1, len(entries), filepath.Base(e.Path))

		text, err := p.recognizeOne(ctx, e)
		if err != nil {
			p.logger.Error(ctx, "OCR failed for %s: %v", e.Path, err)
			text = ocrFailedPlaceholder
			failed++
		}

		blocks = append(blocks, batch.Block{ID: e.ID, Text: text})
	}

	return blocks, failed
}

func (p *implProcessor) recognizeOne(ctx context.Context, e batch.Entry) (string, error) {
	data, err := os.ReadFile(e.Path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	text, err := p.ocr.Recognize(ctx, data, ocr.MIMEForPath(e.Path))
	if err != nil {
		return "", err
	}

	// Recognized text can span lines; present it as one line for editing.
	return strings.Join(strings.Fields(text), " "), nil
}
