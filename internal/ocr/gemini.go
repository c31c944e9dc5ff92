package ocr

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/logger"
)

const recognizePrompt = `Transcribe all text visible in this image exactly as written. ` +
	`Return only the transcribed text with no commentary or formatting. ` +
	`If the image contains no text, return an empty response.`

type implGemini struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

func (g *implGemini) Name() string {
	return "gemini"
}

// Recognize sends the image to Gemini and returns the transcribed text.
// Rotates API keys on 429 / quota errors.
func (g *implGemini) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(recognizePrompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.apiKeys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return strings.TrimSpace(text), nil
		}

		// No text in the image is a valid outcome, not an error.
		return "", nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
