package tts

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/config"
	"github.com/r3nd4n-pattern/meme-ocr-tts/internal/logger"
)

type fakeExecutor struct {
	err      error
	lastName string
	lastArgs []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.lastName = name
	f.lastArgs = args
	return "", f.err
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	return name, nil
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		engine   string
		wantName string
		wantErr  bool
	}{
		{"balcon engine", "balcon", "balcon", false},
		{"say engine", "say", "say", false},
		{"google engine", "google", "google", false},
		{"unknown engine", "festival", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				TTS: config.TTSConfig{
					Engine:       tt.engine,
					Voice:        "Daniel",
					BinaryPath:   "bin",
					APIKey:       "k",
					LanguageCode: "en-GB",
				},
			}
			eng, err := New(cfg, &fakeExecutor{}, logger.New("error"))
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && eng.Name() != tt.wantName {
				t.Errorf("Name() = %v, want %v", eng.Name(), tt.wantName)
			}
		})
	}
}

func TestBalconSynthesize(t *testing.T) {
	exec := &fakeExecutor{}
	eng := &implBalcon{binary: `C:\balcon\balcon.exe`, voice: "ScanSoft Daniel_Full_22kHz", executor: exec}

	if err := eng.Synthesize(context.Background(), "hello", `out\001-cat.wav`); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	want := []string{"-n", "ScanSoft Daniel_Full_22kHz", "-t", "hello", "-w", `out\001-cat.wav`}
	if exec.lastName != `C:\balcon\balcon.exe` {
		t.Errorf("executed %q", exec.lastName)
	}
	if len(exec.lastArgs) != len(want) {
		t.Fatalf("args = %v, want %v", exec.lastArgs, want)
	}
	for i := range want {
		if exec.lastArgs[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, exec.lastArgs[i], want[i])
		}
	}
}

func TestSaySynthesize(t *testing.T) {
	exec := &fakeExecutor{}
	eng := &implSay{binary: "say", voice: "Alex", executor: exec}

	if err := eng.Synthesize(context.Background(), "hello", "out/001-cat.wav"); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	want := []string{"-v", "Alex", "hello", "-o", "out/001-cat.wav", "--data-format=WAVE"}
	for i := range want {
		if exec.lastArgs[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, exec.lastArgs[i], want[i])
		}
	}
}

func TestGoogleSynthesize(t *testing.T) {
	wavBytes := []byte("RIFF fake wav data")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/text:synthesize" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q", r.URL.Query().Get("key"))
		}

		var req synthesizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Input.Text != "hello" {
			t.Errorf("text = %q", req.Input.Text)
		}
		if req.Voice.Name != "en-GB-Wavenet-D" || req.Voice.LanguageCode != "en-GB" {
			t.Errorf("voice = %+v", req.Voice)
		}
		if req.AudioConfig.AudioEncoding != "LINEAR16" {
			t.Errorf("encoding = %q", req.AudioConfig.AudioEncoding)
		}

		json.NewEncoder(w).Encode(synthesizeResponse{
			AudioContent: base64.StdEncoding.EncodeToString(wavBytes),
		})
	}))
	defer server.Close()

	outPath := filepath.Join(t.TempDir(), "001-cat.wav")
	eng := &implGoogle{
		apiKey:       "test-key",
		voice:        "en-GB-Wavenet-D",
		languageCode: "en-GB",
		baseURL:      server.URL,
		client:       server.Client(),
		logger:       logger.New("error"),
	}

	if err := eng.Synthesize(context.Background(), "hello", outPath); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(wavBytes) {
		t.Errorf("audio file = %q, want %q", got, wavBytes)
	}
}

func TestGoogleSynthesizeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid voice"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	eng := &implGoogle{
		apiKey:  "test-key",
		baseURL: server.URL,
		client:  server.Client(),
		logger:  logger.New("error"),
	}

	err := eng.Synthesize(context.Background(), "hello", filepath.Join(t.TempDir(), "x.wav"))
	if err == nil {
		t.Error("Synthesize() should surface API errors")
	}
}
