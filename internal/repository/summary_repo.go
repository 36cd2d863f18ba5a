package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"intakeflow/internal/model"
)

// SummaryRepo handles MongoDB operations for generated clinical summaries
type SummaryRepo interface {
	Create(ctx context.Context, summary *model.Summary) error
	List(ctx context.Context, limit int64) ([]*model.Summary, error)
}

type summaryRepo struct {
	collection *mongo.Collection
}

// NewSummaryRepo creates a new summary repository
func NewSummaryRepo(db *mongo.Database) SummaryRepo {
	return &summaryRepo{
		collection: db.Collection("summaries"),
	}
}

func (r *summaryRepo) Create(ctx context.Context, summary *model.Summary) error {
	_, err := r.collection.InsertOne(ctx, summary)
	return err
}

func (r *summaryRepo) List(ctx context.Context, limit int64) ([]*model.Summary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []*model.Summary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
