package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"support-desk-backend/internal/api"
	"support-desk-backend/internal/api/router"
	"support-desk-backend/internal/archive"
	"support-desk-backend/internal/assist"
	"support-desk-backend/internal/config"
	"support-desk-backend/internal/database"
	"support-desk-backend/internal/digest"
	"support-desk-backend/internal/notify"
	"support-desk-backend/internal/queue"
	"support-desk-backend/internal/service/support"
	"support-desk-backend/internal/store"
	"support-desk-backend/internal/websocket"
)

const digestTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := newStore(cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	requestQueue := queue.NewRequestQueueManager("request", cfg.RequestQueueSize, cfg.RequestWorkers)
	defer requestQueue.Shutdown()
	backgroundQueue := queue.NewRequestQueueManager("background", cfg.BackgroundQueueSize, cfg.BackgroundWorkers)
	defer backgroundQueue.Shutdown()

	rdb, err := websocket.NewRedisClient(ctx, cfg.RedisURL, cfg.RedisPass)
	if err != nil {
		log.Fatalf("redis init failed: %v", err)
	}
	handler := websocket.NewHandler(websocket.NewHub(), rdb)
	handler.Start(ctx)

	opts := []support.Option{
		support.WithNotifier(handler, support.Rooms{
			Dashboard:    websocket.DashboardRoom,
			Conversation: websocket.ConversationRoom,
		}),
		support.WithAlerter(notify.NewSlack()),
		support.WithBackground(backgroundQueue),
	}
	if cfg.ArchiveEnabled() {
		db, err := database.NewDynamoDBClient(ctx, cfg.AWS)
		if err != nil {
			log.Fatalf("db init failed: %v", err)
		}
		opts = append(opts, support.WithArchiver(archive.NewDynamoArchiver(db, cfg.TranscriptsTable)))
		log.Printf("transcript archive: dynamodb table %s", cfg.TranscriptsTable)
	}
	svc := support.New(st, newAssistant(ctx, cfg.Gemini), opts...)

	if cfg.DigestCron != "" {
		scheduler, err := digest.New("analytics", cfg.DigestCron, digestTimeout, svc.SendDigest)
		if err != nil {
			log.Fatalf("digest init failed: %v", err)
		}
		scheduler.Start(ctx)
	}

	server := api.NewAPIServer(
		api.ServerConfig{
			ListenAddr:     cfg.ListenAddr,
			AllowedOrigins: cfg.AllowedOrigins,
		},
		requestQueue,
		svc,
		handler,
		router.SupportRoutes("/api")...,
	)

	if err := server.Run(ctx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
	log.Printf("server stopped")
}

func newStore(cfg config.Config) (*store.MemoryStore, error) {
	st := store.NewMemoryStore(store.WithPlaceholderMetrics(cfg.ResponseTime, cfg.CSAT))

	var (
		seed *store.Seed
		err  error
	)
	switch {
	case cfg.SeedFile != "":
		seed, err = store.LoadSeed(cfg.SeedFile)
	case cfg.SeedDemoData:
		seed, err = store.DemoSeed()
	default:
		return st, nil
	}
	if err != nil {
		return nil, err
	}
	seed.Apply(st)
	return st, nil
}

// newAssistant falls back to the offline assistant when no key is set or the
// client cannot be created; AI features then return their fallbacks.
func newAssistant(ctx context.Context, cfg config.GeminiConfig) assist.Assistant {
	if cfg.APIKey == "" {
		log.Printf("assist: GEMINI_API_KEY not set, using offline fallbacks")
		return assist.Offline()
	}
	gen, err := assist.NewGenAIGenerator(ctx, cfg.APIKey)
	if err != nil {
		log.Printf("assist: %v, using offline fallbacks", err)
		return assist.Offline()
	}
	return assist.NewGemini(gen, assist.Models{
		Reply:     cfg.ReplyModel,
		Sentiment: cfg.SentimentModel,
		Category:  cfg.CategoryModel,
	}, cfg.Timeout)
}
