package ocr

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/r3nd4n-pattern/meme-ocr-tts/pkg/executor"
)

type implTesseract struct {
	binary   string
	language string
	executor executor.Executor
}

func (t *implTesseract) Name() string {
	return "tesseract"
}

// Recognize writes the image to a temp file and runs the tesseract binary
// against it, reading the recognized text from stdout.
func (t *implTesseract) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	if _, err := t.executor.LookPath(t.binary); err != nil {
		return "", fmt.Errorf("tesseract binary %q not found: %w", t.binary, err)
	}

	tmp, err := os.CreateTemp("", "ocr-*"+extForMIME(mimeType))
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(image); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp image: %w", err)
	}

	args := []string{tmpPath, "stdout"}
	if t.language != "" {
		args = append(args, "-l", t.language)
	}

	out, err := t.executor.Execute(ctx, t.binary, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}

	return strings.TrimSpace(out), nil
}

func extForMIME(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "image/webp":
		return ".webp"
	case "image/tiff":
		return ".tiff"
	default:
		return ".png"
	}
}
