package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/batch"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/report"
)

const artifactName = "detected_texts.txt"

// Run orchestrates one batch: scan, recognize, write the artifact, pause
// for manual correction, re-parse, synthesize audio. Per-item OCR/TTS
// failures are reported and the batch continues; a missing folder or an
// artifact that no longer pairs with the scanned images is fatal.
func (p *implProcessor) Run(ctx context.Context, folder string) (*Summary, error) {
	startTime := time.Now()

	entries, err := batch.Scan(folder, p.cfg.Formats.Extensions)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	p.logger.Info(ctx, "Total images found: %d", len(entries))

	outputDir := filepath.Join(folder, "output-"+uuid.NewString()[:8])
	audioDir := filepath.Join(outputDir, "audio")
	if err := os.MkdirAll(audioDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	blocks, ocrFailed := p.recognizeAll(ctx, entries)

	artifactPath := filepath.Join(outputDir, artifactName)
	if err := batch.WriteArtifact(artifactPath, blocks); err != nil {
		return nil, fmt.Errorf("write artifact: %w", err)
	}

	if err := p.pauser.Wait(ctx, artifactPath); err != nil {
		return nil, fmt.Errorf("edit pause: %w", err)
	}

	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return nil, fmt.Errorf("reread artifact: %w", err)
	}

	edited, err := batch.ParseArtifact(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse artifact: %w", err)
	}
	if err := batch.Reconcile(edited, entries); err != nil {
		return nil, fmt.Errorf("reconcile artifact: %w", err)
	}

	written, ttsFailed := p.synthesizeAll(ctx, edited, audioDir)

	if p.cfg.Report.Transcript {
		transcriptPath := filepath.Join(outputDir, "transcript.docx")
		if err := report.WriteTranscript(transcriptPath, filepath.Base(folder), edited); err != nil {
			p.logger.Warn(ctx, "Failed to write transcript: %v", err)
		} else {
			p.logger.Info(ctx, "Transcript written: %s", transcriptPath)
		}
	}

	summary := &Summary{
		Images:       len(entries),
		OcrFailed:    ocrFailed,
		AudioWritten: written,
		TtsFailed:    ttsFailed,
		OutputDir:    outputDir,
		ArtifactPath: artifactPath,
	}

	p.logger.Info(ctx, "Batch complete in %s: %d images, %d OCR failures, %d audio files, %d TTS failures",
		time.Since(startTime).Round(time.Second), summary.Images, summary.OcrFailed, summary.AudioWritten, summary.TtsFailed)
	p.logger.Info(ctx, "Outputs saved to: %s", outputDir)

	return summary, nil
}
