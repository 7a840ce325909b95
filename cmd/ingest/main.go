package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"rsc.io/pdf"

	"sawa/config"
	"sawa/internal/repository"
	"sawa/internal/service"
)

func main() {
	file := flag.String("file", "data/sawa-db.pdf", "reference corpus file (.pdf or plain text)")
	flag.Parse()

	text, err := readCorpusFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	corpusSvc := service.NewCorpusService(repository.NewChunkRepo(db))

	count, err := corpusSvc.IngestText(ctx, text)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	log.Printf("Ingested %s into %d chunks", *file, count)
}

func readCorpusFile(path string) (string, error) {
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	doc, err := pdf.Open(path)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= doc.NumPage(); pageNum++ {
		page := doc.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		for _, text := range content.Text {
			if strings.TrimSpace(text.S) == "" {
				continue
			}
			b.WriteString(text.S)
			b.WriteString(" ")
		}
		b.WriteString("\n\n")
	}
	return b.String(), nil
}
