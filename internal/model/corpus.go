package model

// Chunk is one embedded slice of the ingested reference corpus.
type Chunk struct {
	ID        int       `json:"id" bson:"_id"`
	Text      string    `json:"text" bson:"text"`
	Embedding []float64 `json:"embedding" bson:"embedding"`
}

// Citation points at a corpus chunk that supported an answer.
type Citation struct {
	ID    int     `json:"id"`
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
}

// AskResponse is returned by the corpus question-answering endpoint.
type AskResponse struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`
}
