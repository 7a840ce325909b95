package service

import (
	"context"
	"errors"
	"fmt"

	"sawa/internal/model"
	"sawa/internal/rag"
	"sawa/internal/repository"
)

// CorpusService turns raw reference text into the embedded chunk corpus the
// ask service searches. Ingestion replaces the previous corpus wholesale.
type CorpusService struct {
	chunkRepo repository.ChunkRepo
}

// NewCorpusService creates a new corpus service.
func NewCorpusService(chunkRepo repository.ChunkRepo) *CorpusService {
	return &CorpusService{chunkRepo: chunkRepo}
}

// IngestText normalizes, chunks, and embeds text, then replaces the stored
// corpus. Returns the number of chunks stored.
func (s *CorpusService) IngestText(ctx context.Context, text string) (int, error) {
	pieces := rag.ChunkText(rag.NormalizeText(text), rag.DefaultChunkSize, rag.DefaultChunkOverlap)
	if len(pieces) == 0 {
		return 0, errors.New("no usable chunks in input text")
	}

	chunks := make([]*model.Chunk, len(pieces))
	for i, piece := range pieces {
		chunks[i] = &model.Chunk{
			ID:        i,
			Text:      piece,
			Embedding: rag.EmbedText(piece),
		}
	}

	if err := s.chunkRepo.ReplaceAll(ctx, chunks); err != nil {
		return 0, fmt.Errorf("store corpus: %w", err)
	}
	return len(chunks), nil
}

// Size reports how many chunks are currently stored.
func (s *CorpusService) Size(ctx context.Context) (int64, error) {
	return s.chunkRepo.Count(ctx)
}
