package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/config"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/editor"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/logger"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/ocr"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/processor"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/tts"
	"github.com/r3nd4n-pattern/meme-ocr-tts/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config config.yaml] <image-folder>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	folder := flag.Arg(0)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Meme OCR -> TTS Batch")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Input folder: %s", folder)
	log.Info(ctx, "OCR engine: %s", cfg.OCR.Engine)
	log.Info(ctx, "TTS engine: %s (voice: %s)", cfg.TTS.Engine, cfg.TTS.Voice)

	// Initialize dependencies
	exec := executor.New()

	ocrEngine, err := ocr.New(cfg, exec, log)
	if err != nil {
		log.Error(ctx, "Failed to create OCR engine: %v", err)
		os.Exit(1)
	}

	ttsEngine, err := tts.New(cfg, exec, log)
	if err != nil {
		log.Error(ctx, "Failed to create TTS engine: %v", err)
		os.Exit(1)
	}

	pauser := editor.New(cfg.Editor.Command, exec, log)
	proc := processor.New(cfg, ocrEngine, ttsEngine, pauser, log)

	summary, err := proc.Run(ctx, folder)
	if err != nil {
		log.Error(ctx, "Run failed: %v", err)
		os.Exit(1)
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Done! %d audio files in %s", summary.AudioWritten, filepath.Join(summary.OutputDir, "audio"))
	if summary.OcrFailed > 0 || summary.TtsFailed > 0 {
		log.Warn(ctx, "Completed with %d OCR and %d TTS failures", summary.OcrFailed, summary.TtsFailed)
	}
	log.Info(ctx, "========================================")
}
