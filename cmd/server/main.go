package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sawa/config"
	"sawa/internal/cache"
	aiconfig "sawa/internal/config"
	"sawa/internal/flow"
	"sawa/internal/playbook"
	"sawa/internal/repository"
	"sawa/internal/service"
	"sawa/internal/transport/rest"
	"sawa/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Load the coaching playbook once; it is immutable for the process lifetime
	pb, err := playbook.Load(cfg.PlaybookPath)
	if err != nil {
		log.Fatal("Failed to load playbook:", err)
	}
	log.Printf("Playbook loaded from %s (%d facets)", cfg.PlaybookPath, len(pb.Sequence()))

	aiCfg := aiconfig.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Ask model: %s", aiCfg.AskModel)
	if aiCfg.IsEnabled() {
		log.Println("  API Key:   configured")
	} else {
		log.Println("  API Key:   NOT SET (ask answers from retrieved context only)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	sessionRepo := repository.NewSessionRepo(db)
	chunkRepo := repository.NewChunkRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)

	// Initialize services
	engine := flow.NewEngine(pb)
	authSvc := service.NewAuthService()
	sessionSvc := service.NewSessionService(engine, sessionRepo, sessionCache)
	askSvc := service.NewAskService(chunkRepo)
	corpusSvc := service.NewCorpusService(chunkRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	sessionSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		SessionService: sessionSvc,
		AskService:     askSvc,
		CorpusService:  corpusSvc,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/sessions")
		log.Println("  POST /v1/sessions/{id}/answers")
		log.Println("  GET  /v1/sessions/{id}/export")
		log.Println("  POST /v1/ask")
		log.Println("  POST/GET /v1/corpus")
		log.Println("  WS   /v1/ws/sessions/{id}/watch")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
