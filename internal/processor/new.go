package processor

import (
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/config"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/editor"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/logger"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/ocr"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/tts"
)

type implProcessor struct {
	cfg    *config.Config
	ocr    ocr.Engine
	tts    tts.Engine
	pauser editor.Pauser
	logger logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, ocrEngine ocr.Engine, ttsEngine tts.Engine, pauser editor.Pauser, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		ocr:    ocrEngine,
		tts:    ttsEngine,
		pauser: pauser,
		logger: log,
	}
}
