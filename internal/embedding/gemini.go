// Package embedding wraps the Gemini embedding API behind a small interface
// so indexing code does not depend on the SDK directly.
package embedding

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/prasetya/academic-datamart/internal/config"
)

// Embedder converts text into a fixed-size vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dim() int
}

// Gemini embeds text with the Gemini embedding model configured for
// document retrieval.
type Gemini struct {
	client *genai.Client
	model  string
	dim    int
}

// NewGemini creates a Gemini embedder from the application config.
func NewGemini(ctx context.Context, cfg *config.GeminiConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  cfg.EmbeddingModel,
		dim:    cfg.EmbeddingDim,
	}, nil
}

// Embed returns the embedding vector for the given text.
func (g *Gemini) Embed(ctx context.Context, text string) ([]float32, error) {
	dim := int32(g.dim)
	resp, err := g.client.Models.EmbedContent(ctx, g.model, genai.Text(text), &genai.EmbedContentConfig{
		TaskType:             "RETRIEVAL_DOCUMENT",
		OutputDimensionality: &dim,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding content: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("empty embedding response for model %s", g.model)
	}
	return resp.Embeddings[0].Values, nil
}

// Dim reports the configured output dimensionality.
func (g *Gemini) Dim() int {
	return g.dim
}
