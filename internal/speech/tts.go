// Package speech turns voice-preview phrases into audio files
package speech

import (
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Synthesizer renders spoken audio for a phrase. Speed and pitch use the
// voice settings scale (0.5 to 2.0); language is a BCP 47 tag like "en-US".
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, speed, pitch float64, language string) (string, error)
}

// GoogleSynthesizer fetches audio from Google Translate's text-to-speech
// endpoint and caches the MP3s on disk. No API key is needed.
type GoogleSynthesizer struct {
	audioDir string
	client   *http.Client
}

const defaultRequestTimeout = 10 * time.Second

// NewGoogleSynthesizer creates a synthesizer caching into audioDir. A zero
// timeout falls back to the default.
func NewGoogleSynthesizer(audioDir string, timeout time.Duration) *GoogleSynthesizer {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &GoogleSynthesizer{
		audioDir: audioDir,
		client:   &http.Client{Timeout: timeout},
	}
}

// Synthesize fetches audio for the phrase and returns the cached filename.
// The endpoint cannot vary speed or pitch, so those only distinguish cache
// entries; playback applies them client-side.
func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text string, speed, pitch float64, language string) (string, error) {
	filename := s.cacheFilename(text, speed, pitch, language)
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := s.fetch(ctx, text, language, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}
	return filename, nil
}

func (s *GoogleSynthesizer) cacheFilename(text string, speed, pitch float64, language string) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%.2f|%.2f|%s", text, speed, pitch, language)))
	return fmt.Sprintf("preview_%x.mp3", sum[:8])
}

func (s *GoogleSynthesizer) fetch(ctx context.Context, text, language, outputPath string) error {
	baseURL := "https://translate.google.com/translate_tts"

	lang := language
	if i := strings.Index(lang, "-"); i > 0 {
		lang = lang[:i]
	}
	if lang == "" {
		lang = "en"
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", lang)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	ctx, cancel := context.WithTimeout(ctx, s.client.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Required by Google
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}

// Silent is a no-op synthesizer for tests and audio-less deployments
type Silent struct{}

func (Silent) Synthesize(ctx context.Context, text string, speed, pitch float64, language string) (string, error) {
	return "", nil
}
