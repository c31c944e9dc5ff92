package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/logger"
)

const googleTTSBaseURL = "https://texttospeech.googleapis.com/v1"

type synthesizeRequest struct {
	Input       synthesisInput `json:"input"`
	Voice       voiceParams    `json:"voice"`
	AudioConfig audioConfig    `json:"audioConfig"`
}

type synthesisInput struct {
	Text string `json:"text"`
}

type voiceParams struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
}

type audioConfig struct {
	AudioEncoding string `json:"audioEncoding"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

// implGoogle calls the Google Cloud Text-to-Speech REST API and writes
// the decoded LINEAR16 (WAV) payload to the output path.
type implGoogle struct {
	apiKey       string
	voice        string
	languageCode string
	baseURL      string
	client       *http.Client
	logger       logger.Logger
}

func (g *implGoogle) Name() string {
	return "google"
}

func (g *implGoogle) Synthesize(ctx context.Context, text, outputPath string) error {
	g.logger.Debug(ctx, "Synthesizing %d characters with voice %s", len(text), g.voice)

	reqBody := synthesizeRequest{
		Input: synthesisInput{Text: text},
		Voice: voiceParams{
			LanguageCode: g.languageCode,
			Name:         g.voice,
		},
		AudioConfig: audioConfig{AudioEncoding: "LINEAR16"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := g.baseURL + "/text:synthesize?key=" + g.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("call tts api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tts api returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var parsed synthesizeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(parsed.AudioContent)
	if err != nil {
		return fmt.Errorf("decode audio content: %w", err)
	}

	if err := os.WriteFile(outputPath, audio, 0644); err != nil {
		return fmt.Errorf("write audio file: %w", err)
	}

	return nil
}
