package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	OCR     OCRConfig     `yaml:"ocr"`
	TTS     TTSConfig     `yaml:"tts"`
	Editor  EditorConfig  `yaml:"editor"`
	Formats FormatsConfig `yaml:"formats"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

type OCRConfig struct {
	Engine     string   `yaml:"engine"`
	Model      string   `yaml:"model"`
	APIKeys    []string `yaml:"api_keys"`
	BinaryPath string   `yaml:"binary_path"`
	Language   string   `yaml:"language"`
}

type TTSConfig struct {
	Engine       string `yaml:"engine"`
	Voice        string `yaml:"voice"`
	BinaryPath   string `yaml:"binary_path"`
	APIKey       string `yaml:"api_key"`
	LanguageCode string `yaml:"language_code"`
}

type EditorConfig struct {
	Command string `yaml:"command"`
}

type FormatsConfig struct {
	Extensions []string `yaml:"extensions"`
}

type ReportConfig struct {
	Transcript bool `yaml:"transcript"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the YAML config file, applies defaults and validates it
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.OCR.Engine == "" {
		c.OCR.Engine = "gemini"
	}
	if c.TTS.Engine == "" {
		c.TTS.Engine = "balcon"
	}

	switch c.OCR.Engine {
	case "gemini":
		if len(c.OCR.APIKeys) == 0 {
			if key := os.Getenv("GEMINI_API_KEY"); key != "" {
				c.OCR.APIKeys = []string{key}
			}
		}
		if len(c.OCR.APIKeys) == 0 {
			return fmt.Errorf("ocr.api_keys is required for the gemini engine")
		}
	case "tesseract":
		if c.OCR.BinaryPath == "" {
			c.OCR.BinaryPath = "tesseract"
		}
	default:
		return fmt.Errorf("ocr.engine %q is not supported (gemini, tesseract)", c.OCR.Engine)
	}

	switch c.TTS.Engine {
	case "balcon":
		if c.TTS.BinaryPath == "" {
			c.TTS.BinaryPath = `C:\balcon\balcon.exe`
		}
		if c.TTS.Voice == "" {
			c.TTS.Voice = "ScanSoft Daniel_Full_22kHz"
		}
	case "say":
		if c.TTS.BinaryPath == "" {
			c.TTS.BinaryPath = "say"
		}
		if c.TTS.Voice == "" {
			c.TTS.Voice = "Alex"
		}
	case "google":
		if c.TTS.APIKey == "" {
			c.TTS.APIKey = os.Getenv("GOOGLE_TTS_API_KEY")
		}
		if c.TTS.APIKey == "" {
			return fmt.Errorf("tts.api_key is required for the google engine")
		}
		if c.TTS.Voice == "" {
			c.TTS.Voice = "en-GB-Wavenet-D"
		}
		if c.TTS.LanguageCode == "" {
			c.TTS.LanguageCode = "en-GB"
		}
	default:
		return fmt.Errorf("tts.engine %q is not supported (balcon, say, google)", c.TTS.Engine)
	}

	if c.OCR.Model == "" {
		c.OCR.Model = "gemini-2.5-flash"
	}
	if len(c.Formats.Extensions) == 0 {
		c.Formats.Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".tiff"}
	}
	for i, ext := range c.Formats.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Formats.Extensions[i] = ext
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
