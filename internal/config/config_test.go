package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_TTS_API_KEY", "")

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid gemini and balcon config",
			config: Config{
				OCR: OCRConfig{
					Engine:  "gemini",
					APIKeys: []string{"test-key"},
				},
				TTS: TTSConfig{
					Engine: "balcon",
				},
			},
			wantErr: false,
		},
		{
			name: "gemini without api keys",
			config: Config{
				OCR: OCRConfig{Engine: "gemini"},
				TTS: TTSConfig{Engine: "say"},
			},
			wantErr: true,
		},
		{
			name: "tesseract needs no keys",
			config: Config{
				OCR: OCRConfig{Engine: "tesseract"},
				TTS: TTSConfig{Engine: "say"},
			},
			wantErr: false,
		},
		{
			name: "unknown ocr engine",
			config: Config{
				OCR: OCRConfig{Engine: "vision"},
				TTS: TTSConfig{Engine: "balcon"},
			},
			wantErr: true,
		},
		{
			name: "unknown tts engine",
			config: Config{
				OCR: OCRConfig{Engine: "tesseract"},
				TTS: TTSConfig{Engine: "festival"},
			},
			wantErr: true,
		},
		{
			name: "google tts without api key",
			config: Config{
				OCR: OCRConfig{Engine: "tesseract"},
				TTS: TTSConfig{Engine: "google"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		OCR: OCRConfig{Engine: "tesseract"},
		TTS: TTSConfig{Engine: "say"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.OCR.BinaryPath != "tesseract" {
		t.Errorf("OCR.BinaryPath = %v, want tesseract", cfg.OCR.BinaryPath)
	}
	if cfg.TTS.Voice != "Alex" {
		t.Errorf("TTS.Voice = %v, want Alex", cfg.TTS.Voice)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
	if len(cfg.Formats.Extensions) == 0 {
		t.Error("Formats.Extensions should have defaults")
	}
}

func TestValidateNormalizesExtensions(t *testing.T) {
	cfg := Config{
		OCR:     OCRConfig{Engine: "tesseract"},
		TTS:     TTSConfig{Engine: "say"},
		Formats: FormatsConfig{Extensions: []string{"PNG", ".Jpg"}},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := []string{".png", ".jpg"}
	for i, ext := range cfg.Formats.Extensions {
		if ext != want[i] {
			t.Errorf("Extensions[%d] = %v, want %v", i, ext, want[i])
		}
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
ocr:
  engine: "gemini"
  model: "gemini-2.5-flash"
  api_keys:
    - "test-key"

tts:
  engine: "balcon"
  voice: "ScanSoft Daniel_Full_22kHz"
  binary_path: "C:\\balcon\\balcon.exe"

editor:
  command: "notepad"

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OCR.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want %v", cfg.OCR.Model, "gemini-2.5-flash")
	}

	if cfg.TTS.Voice != "ScanSoft Daniel_Full_22kHz" {
		t.Errorf("Voice = %v, want %v", cfg.TTS.Voice, "ScanSoft Daniel_Full_22kHz")
	}

	if cfg.Editor.Command != "notepad" {
		t.Errorf("Editor.Command = %v, want notepad", cfg.Editor.Command)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
