package ocr

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/config"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/logger"
	"github.com/r3nd4n-pattern/meme-ocr-tts/pkg/executor"
)

// New creates the Engine selected by the configuration
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Engine, error) {
	switch cfg.OCR.Engine {
	case "gemini":
		return &implGemini{
			apiKeys: cfg.OCR.APIKeys,
			model:   cfg.OCR.Model,
			logger:  log,
		}, nil
	case "tesseract":
		return &implTesseract{
			binary:   cfg.OCR.BinaryPath,
			language: cfg.OCR.Language,
			executor: exec,
		}, nil
	default:
		return nil, fmt.Errorf("unknown ocr engine %q", cfg.OCR.Engine)
	}
}

// MIMEForPath maps an image file extension to its MIME type.
func MIMEForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".webp":
		return "image/webp"
	case ".tiff", ".tif":
		return "image/tiff"
	default:
		return "image/png"
	}
}
