package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"sawa/internal/config"
	"sawa/internal/model"
	"sawa/internal/rag"
	"sawa/internal/repository"
)

// ErrEmptyCorpus is returned when no reference corpus has been ingested.
var ErrEmptyCorpus = errors.New("corpus is empty, run the ingest tool first")

const askTopK = 5

const askSystemPrompt = "You are SAWA, a Scientific Argumentative Writing Assistant. " +
	"Answer concisely with numbered steps and cite sources as [C1], [C2] based on provided context. " +
	"If uncertain, say so."

// AskService answers free-form questions against the ingested corpus.
// Retrieval is fully local (hashed bag-of-words + cosine); only the final
// answer generation talks to Gemini, and when no API key is configured the
// top-matching context is returned as the answer instead.
type AskService struct {
	config    *config.AIConfig
	client    *http.Client
	chunkRepo repository.ChunkRepo
}

// NewAskService creates a new ask service.
func NewAskService(chunkRepo repository.ChunkRepo) *AskService {
	cfg := config.DefaultAIConfig()
	return &AskService{
		config:    cfg,
		chunkRepo: chunkRepo,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

type scoredChunk struct {
	chunk *model.Chunk
	score float64
}

// Ask retrieves the best-matching corpus chunks for a query and produces an
// answer with citations.
func (s *AskService) Ask(ctx context.Context, query string) (*model.AskResponse, error) {
	chunks, err := s.chunkRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if len(chunks) == 0 {
		return nil, ErrEmptyCorpus
	}

	queryVec := rag.EmbedText(query)

	scored := make([]scoredChunk, len(chunks))
	for i, c := range chunks {
		scored[i] = scoredChunk{chunk: c, score: rag.Cosine(c.Embedding, queryVec)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > askTopK {
		scored = scored[:askTopK]
	}

	contextParts := make([]string, len(scored))
	citations := make([]model.Citation, len(scored))
	for i, sc := range scored {
		contextParts[i] = fmt.Sprintf("[C%d]\n%s", i+1, sc.chunk.Text)
		citations[i] = model.Citation{ID: sc.chunk.ID, Rank: i + 1, Score: sc.score}
	}
	contextBlock := strings.Join(contextParts, "\n\n---\n\n")

	answer := s.generateAnswer(ctx, query, contextBlock)

	return &model.AskResponse{
		Answer:    answer,
		Citations: citations,
	}, nil
}

func (s *AskService) generateAnswer(ctx context.Context, query, contextBlock string) string {
	if !s.config.IsEnabled() {
		return s.fallbackAnswer(contextBlock)
	}

	prompt := fmt.Sprintf("%s\n\nQuestion: %s\n\nContext:\n%s", askSystemPrompt, query, contextBlock)
	answer, err := s.callGemini(ctx, s.config.AskModel, prompt)
	if err != nil || answer == "" {
		// Fallback to local context on error
		return s.fallbackAnswer(contextBlock)
	}
	return answer
}

func (s *AskService) fallbackAnswer(contextBlock string) string {
	const limit = 1500
	if len(contextBlock) > limit {
		contextBlock = contextBlock[:limit]
	}
	return "No GEMINI_API_KEY set. Returning top-matching context as summary.\n\n" + contextBlock
}

// callGemini makes a request to the Gemini API.
func (s *AskService) callGemini(ctx context.Context, modelName, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.2,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(modelName), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
