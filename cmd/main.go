package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/voicepilot/voicepilot/internal/ai"
	"github.com/voicepilot/voicepilot/internal/asr"
	"github.com/voicepilot/voicepilot/internal/delivery"
	"github.com/voicepilot/voicepilot/internal/error_notificator"
	"github.com/voicepilot/voicepilot/internal/jobs"
	"github.com/voicepilot/voicepilot/internal/prefs"
	"github.com/voicepilot/voicepilot/internal/records"
	"github.com/voicepilot/voicepilot/internal/speech"
	"github.com/voicepilot/voicepilot/internal/storage"
	"github.com/voicepilot/voicepilot/internal/telegram"
)

func main() {

	// =========================================================================
	// ENV / DB INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_TOKEN is not set")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}
	defer db.Close()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := baseLogger.Sugar()

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	archive, err := storage.NewS3Client()
	if err != nil {
		zl.Infow("voice archive disabled", "reason", err)
		archive = nil
	}

	operatorChatID, _ := strconv.ParseInt(os.Getenv("OPERATOR_CHAT_ID"), 10, 64)
	errInfra := error_notificator.NewInfra(operatorChatID, zl)
	errInfra.SetBot(bot)
	errService := error_notificator.NewService(errInfra)

	// =========================================================================
	// REPOSITORIES
	// =========================================================================

	prefsRepo := prefs.NewRepo(db)
	recordsRepo := records.NewRepo(db)

	// =========================================================================
	// CLIENTS (AI / TTS / ASR)
	// =========================================================================

	openAIClient := ai.NewOpenAIClient()
	edgeClient := speech.NewEdgeClient()
	assemblyClient := asr.NewAssemblyAIClient()

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	prefsService := prefs.NewService(prefsRepo)
	recordsService := records.NewService(recordsRepo)
	speechService := speech.NewService(edgeClient)
	aiService := ai.NewService(openAIClient, recordsService)

	indicator := jobs.NewController(
		&telegram.ActionNotifier{Bot: bot},
		5*time.Second,
		zl,
	)

	asrService := asr.NewService(
		assemblyClient,
		indicator,
		5*time.Second, // poll interval
		2*time.Minute, // poll deadline
		zl,
	)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	botApp := telegram.NewBotApp(
		bot,
		prefsService,
		speechService,
		asrService,
		aiService,
		recordsService,
		indicator,
		archive,
		errService,
		zl,
	)

	go botApp.Run()

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	adminHandler := delivery.NewHandler(prefsService, speechService, recordsService, zl)
	delivery.RegisterRoutes(r, adminHandler)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			cutoff := time.Now().AddDate(0, 0, -30)
			n, err := recordsService.PruneBefore(context.Background(), cutoff)
			if err != nil {
				zl.Errorw("prune old messages fail", "err", err)
				continue
			}
			zl.Infow("pruned old messages", "count", n)
		}
	}()

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Infow("listening", "addr", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
