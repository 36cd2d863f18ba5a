package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"intakeflow/internal/bank"
	"intakeflow/internal/cache"
	"intakeflow/internal/config"
	"intakeflow/internal/oracle"
	"intakeflow/internal/repository"
	"intakeflow/internal/service"
	"intakeflow/internal/transport/rest"
)

func main() {
	log.Println("started")
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}
	ctx := context.Background()

	cfg := config.Load()
	oracleCfg := config.DefaultOracleConfig()
	log.Printf("Oracle Config:")
	log.Printf("  Provider:  %s", oracleCfg.Provider)
	log.Printf("  Classify:  %s", oracleCfg.Models.Classify)
	log.Printf("  Suggest:   %s", oracleCfg.Models.Suggest)
	log.Printf("  Summary:   %s", oracleCfg.Models.Summary)
	if oracleCfg.IsEnabled() {
		log.Println("  API Key:   configured")
	} else {
		log.Println("  API Key:   NOT SET (predictions fall back to bank order)")
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

	// Load the question bank: seeded Mongo copy first, JSON fixtures as
	// fallback so a fresh checkout runs without a seed step.
	bankRepo := repository.NewBankRepo(db)
	questionBank, err := bankRepo.Load(ctx)
	if err != nil || questionBank.Empty() {
		if err != nil {
			log.Printf("Warning: bank load from MongoDB failed: %v", err)
		}
		questionBank, err = bank.LoadFiles(cfg.QuestionsFile, cfg.PartTwoFile)
		if err != nil {
			log.Fatal("Failed to load question bank:", err)
		}
		log.Printf("Loaded question bank from %s", cfg.QuestionsFile)
	} else {
		log.Println("Loaded question bank from MongoDB")
	}
	log.Printf("Question bank: %d categories + part two", len(questionBank.CategoryNames()))

	// Oracle provider
	provider, err := oracle.NewProvider(oracleCfg)
	if err != nil {
		log.Fatal("Failed to build oracle provider:", err)
	}

	// Repositories and caches
	summaryRepo := repository.NewSummaryRepo(db)
	predictionCache := cache.NewPredictionCache(rdb)
	suggestionCache := cache.NewSuggestionCache(rdb)

	// Services
	authSvc := service.NewAuthService()
	flowSvc := service.NewFlowService(questionBank)
	schedulerSvc := service.NewSchedulerService(questionBank, provider, predictionCache)
	intakeSvc := service.NewIntakeService(flowSvc, schedulerSvc)
	autocompleteSvc := service.NewAutocompleteService(provider, suggestionCache)
	summarySvc := service.NewSummaryService(provider, summaryRepo, cfg.SummariesDir)

	container := &rest.Container{
		AuthService:         authSvc,
		IntakeService:       intakeSvc,
		SchedulerService:    schedulerSvc,
		AutocompleteService: autocompleteSvc,
		SummaryService:      summarySvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/ask_questions")
		log.Println("  POST /v1/submit_answer")
		log.Println("  POST /v1/predict_category")
		log.Println("  POST /v1/predict_next_category")
		log.Println("  POST /v1/autocomplete")
		log.Println("  POST /v1/generate_summary")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/summaries")

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
