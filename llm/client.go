package llm

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// Generator abstracts a prompt-in, text-out language model call. The response
// is free text: callers must treat it as untrusted and parse defensively.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// NewDefaultGenerator returns a Cohere-backed generator when COHERE_API_KEY
// is set, nil otherwise. Callers must handle a nil generator by falling back
// to local heuristics.
func NewDefaultGenerator(preferredModel string) Generator {
	apiKey := os.Getenv("COHERE_API_KEY")
	if apiKey == "" {
		return nil
	}

	model := preferredModel
	if model == "" {
		model = "command-r-08-2024"
	}

	// Force HTTP/1.1 to avoid HTTP/2 protocol errors seen against the API
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereGenerator{client: client, model: model}
}

// CohereGenerator implements Generator using the Cohere Chat API.
// SDK: github.com/cohere-ai/cohere-go/v2
type CohereGenerator struct {
	client *cohereclient.Client
	model  string
}

func (c *CohereGenerator) ModelName() string { return c.model }

func (c *CohereGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message: prompt,
		Model:   &c.model,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
