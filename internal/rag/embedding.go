package rag

import (
	"math"
	"regexp"
	"strings"
)

// EmbeddingDim is the dimensionality of the hashed bag-of-words vectors.
// Chunks embedded at one dimension are only comparable to queries embedded
// at the same dimension, so this is fixed for the life of a corpus.
const EmbeddingDim = 256

var tokenSplitRe = regexp.MustCompile(`[^a-z0-9]+`)

// EmbedText produces a deterministic hashed bag-of-words embedding:
// lowercase tokens are folded into EmbeddingDim buckets with a rolling
// 31-multiplier hash and the counts are L2-normalized. No model call, no
// network; identical text always embeds identically.
func EmbedText(text string) []float64 {
	vector := make([]float64, EmbeddingDim)

	tokens := tokenSplitRe.Split(strings.ToLower(text), -1)
	for _, token := range tokens {
		if token == "" {
			continue
		}
		var h uint32
		for i := 0; i < len(token); i++ {
			h = h*31 + uint32(token[i])
		}
		vector[h%EmbeddingDim]++
	}

	var norm float64
	for _, x := range vector {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		norm = 1
	}
	for i := range vector {
		vector[i] /= norm
	}
	return vector
}

// Cosine returns the cosine similarity of two vectors. The epsilon keeps a
// zero vector from dividing by zero.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	return dot / (math.Sqrt(na)*math.Sqrt(nb) + 1e-8)
}
