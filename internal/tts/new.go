package tts

import (
	"fmt"
	"net/http"
	"time"

	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/config"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/logger"
	"github.com/r3nd4n-pattern/meme-ocr-tts/pkg/executor"
)

// New creates the Engine selected by the configuration
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Engine, error) {
	switch cfg.TTS.Engine {
	case "balcon":
		return &implBalcon{
			binary:   cfg.TTS.BinaryPath,
			voice:    cfg.TTS.Voice,
			executor: exec,
		}, nil
	case "say":
		return &implSay{
			binary:   cfg.TTS.BinaryPath,
			voice:    cfg.TTS.Voice,
			executor: exec,
		}, nil
	case "google":
		return &implGoogle{
			apiKey:       cfg.TTS.APIKey,
			voice:        cfg.TTS.Voice,
			languageCode: cfg.TTS.LanguageCode,
			baseURL:      googleTTSBaseURL,
			client:       &http.Client{Timeout: 60 * time.Second},
			logger:       log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown tts engine %q", cfg.TTS.Engine)
	}
}
