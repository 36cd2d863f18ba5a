package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"intakeflow/internal/bank"
	"intakeflow/internal/config"
	"intakeflow/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	questionBank, err := bank.LoadFiles(cfg.QuestionsFile, cfg.PartTwoFile)
	if err != nil {
		log.Fatalf("Failed to load question fixtures: %v", err)
	}

	db := client.Database(cfg.MongoDatabase)
	if err := repository.NewBankRepo(db).Seed(ctx, questionBank); err != nil {
		log.Fatalf("Failed to seed question bank: %v", err)
	}

	total := 0
	for _, name := range questionBank.CategoryNames() {
		total += len(questionBank.QuestionsFor(name))
	}
	fmt.Printf("Seeded %d categories (%d questions) and %d part-two questions\n",
		len(questionBank.CategoryNames()), total, len(questionBank.PartTwo()))
}
