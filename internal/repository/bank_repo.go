package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"intakeflow/internal/bank"
	"intakeflow/internal/model"
)

// BankRepo persists the question bank in MongoDB. The bank is reference
// data: cmd/seed writes it once from the JSON fixtures and the server
// reads it back into an immutable Bank at startup.
type BankRepo interface {
	Seed(ctx context.Context, b *bank.Bank) error
	Load(ctx context.Context) (*bank.Bank, error)
}

// bankEntry is one stored question with its placement in the bank.
type bankEntry struct {
	Category string         `bson:"category"`
	Part     int            `bson:"part"` // 1 = primary categories, 2 = part two
	Order    int            `bson:"order"`
	Question model.Question `bson:"question"`
}

type bankRepo struct {
	collection *mongo.Collection
}

// NewBankRepo creates a new bank repository
func NewBankRepo(db *mongo.Database) BankRepo {
	return &bankRepo{
		collection: db.Collection("question_bank"),
	}
}

func (r *bankRepo) Seed(ctx context.Context, b *bank.Bank) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	var docs []interface{}
	for _, name := range b.CategoryNames() {
		for i, q := range b.QuestionsFor(name) {
			docs = append(docs, bankEntry{Category: name, Part: 1, Order: i, Question: q})
		}
	}
	for i, q := range b.PartTwo() {
		docs = append(docs, bankEntry{Category: model.PartTwoCategory, Part: 2, Order: i, Question: q})
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *bankRepo) Load(ctx context.Context) (*bank.Bank, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "part", Value: 1},
		{Key: "category", Value: 1},
		{Key: "order", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []bankEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	categories := make(map[string][]model.Question)
	var partTwo []model.Question
	for _, e := range entries {
		if e.Part == 2 {
			partTwo = append(partTwo, e.Question)
			continue
		}
		categories[e.Category] = append(categories[e.Category], e.Question)
	}

	return bank.New(categories, partTwo), nil
}
