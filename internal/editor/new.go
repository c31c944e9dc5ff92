package editor

import (
	"io"
	"os"

	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/logger"
	"github.com/r3nd4n-pattern/meme-ocr-tts/pkg/executor"
)

type implPauser struct {
	command  string
	executor executor.Executor
	logger   logger.Logger
	confirm  io.Reader
	prompt   io.Writer
}

// New creates a Pauser that reads the confirmation keypress from stdin
func New(command string, exec executor.Executor, log logger.Logger) Pauser {
	return NewWithIO(command, exec, log, os.Stdin, os.Stdout)
}

// NewWithIO creates a Pauser with injectable confirm/prompt streams so
// tests can substitute an automated confirmation
func NewWithIO(command string, exec executor.Executor, log logger.Logger, confirm io.Reader, prompt io.Writer) Pauser {
	return &implPauser{
		command:  command,
		executor: exec,
		logger:   log,
		confirm:  confirm,
		prompt:   prompt,
	}
}
