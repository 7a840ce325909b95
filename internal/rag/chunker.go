package rag

import (
	"regexp"
	"strings"
)

const (
	// DefaultChunkSize and DefaultChunkOverlap are tuned for prose corpora:
	// big enough to keep a paragraph of context, overlapping so a sentence
	// split across a boundary still lands whole in one chunk.
	DefaultChunkSize    = 1200
	DefaultChunkOverlap = 150

	// Chunks at or under this length carry too little signal to embed.
	minChunkLength = 50
)

var (
	trailingSpaceRe = regexp.MustCompile(`[ \t]+\n`)
	blankRunsRe     = regexp.MustCompile(`\n{2,}`)
)

// NormalizeText collapses extraction artifacts (trailing spaces before
// newlines, runs of blank lines) before chunking.
func NormalizeText(text string) string {
	text = trailingSpaceRe.ReplaceAllString(text, "\n")
	return blankRunsRe.ReplaceAllString(text, "\n\n")
}

// ChunkText splits text into overlapping windows of at most maxLen bytes,
// dropping fragments too short to be useful.
func ChunkText(text string, maxLen, overlap int) []string {
	if maxLen <= 0 {
		maxLen = DefaultChunkSize
	}
	if overlap < 0 || overlap >= maxLen {
		overlap = DefaultChunkOverlap
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + maxLen
		if end > len(text) {
			end = len(text)
		}

		chunk := strings.TrimSpace(text[start:end])
		if len(chunk) > minChunkLength {
			chunks = append(chunks, chunk)
		}

		if end == len(text) {
			break
		}
		start = end - overlap
	}
	return chunks
}
