package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quizmaster/models"
)

// HistoryStore is the append-only log of finished quizzes, stored in
// the "history" collection with one document per result.
type HistoryStore struct {
	coll *mongo.Collection
}

func NewHistoryStore(database *mongo.Database) *HistoryStore {
	return &HistoryStore{coll: database.Collection("history")}
}

type historyDoc struct {
	Email  string            `bson:"email"`
	Result models.QuizResult `bson:"result"`
}

func (s *HistoryStore) AppendResult(ctx context.Context, email string, result models.QuizResult) error {
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.coll.InsertOne(dbCtx, historyDoc{Email: email, Result: result})
	if err != nil {
		return fmt.Errorf("failed to append quiz result: %w", err)
	}
	return nil
}

func (s *HistoryStore) ListResults(ctx context.Context, email string) ([]models.QuizResult, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"result.date": 1})
	cursor, err := s.coll.Find(dbCtx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	defer cursor.Close(dbCtx)

	var docs []historyDoc
	if err := cursor.All(dbCtx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}

	results := make([]models.QuizResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, doc.Result)
	}
	return results, nil
}
